package expr

import "fmt"

// BinaryOp enumerates the operators a BinaryNode can carry.
type BinaryOp int

const (
	// And is the short-circuit boolean AND of two boolean subtrees.
	And BinaryOp = iota + 1

	// Or is the short-circuit boolean OR of two boolean subtrees.
	Or

	// Equal is satisfied when both operands evaluate to the same value.
	Equal

	// NotEqual is satisfied when the operands evaluate to different values.
	NotEqual

	// GreaterThan orders its operands; they must share an ordered kind.
	GreaterThan

	// GreaterThanOrEqual orders its operands; they must share an ordered kind.
	GreaterThanOrEqual

	// LessThan orders its operands; they must share an ordered kind.
	LessThan

	// LessThanOrEqual orders its operands; they must share an ordered kind.
	LessThanOrEqual
)

func (op BinaryOp) String() string {
	switch op {
	case And:
		return "&&"
	case Or:
		return "||"
	case Equal:
		return "=="
	case NotEqual:
		return "!="
	case GreaterThan:
		return ">"
	case GreaterThanOrEqual:
		return ">="
	case LessThan:
		return "<"
	case LessThanOrEqual:
		return "<="
	default:
		return fmt.Sprintf("BinaryOp(%d)", int(op))
	}
}

// Comparison reports whether the operator compares two scalar operands
// rather than connecting two boolean subtrees.
func (op BinaryOp) Comparison() bool {
	switch op {
	case Equal, NotEqual, GreaterThan, GreaterThanOrEqual, LessThan, LessThanOrEqual:
		return true
	default:
		return false
	}
}

// A BinaryNode applies a binary operator to its two operand subtrees.
type BinaryNode struct {
	op    BinaryOp
	left  Node
	right Node
}

func NewBinary(op BinaryOp, left Node, right Node) *BinaryNode {
	return &BinaryNode{op: op, left: left, right: right}
}

func (node *BinaryNode) Op() BinaryOp {
	return node.op
}

func (node *BinaryNode) Left() Node {
	return node.left
}

func (node *BinaryNode) Right() Node {
	return node.right
}

func (node *BinaryNode) String() string {
	return fmt.Sprintf("(%s %s %s)", node.left, node.op, node.right)
}

func (node *BinaryNode) node() {}
