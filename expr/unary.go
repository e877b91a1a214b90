package expr

import "fmt"

// UnaryOp enumerates the operators a UnaryNode can carry.
type UnaryOp int

const (
	// Not negates a boolean subtree.
	Not UnaryOp = iota + 1
)

func (op UnaryOp) String() string {
	switch op {
	case Not:
		return "!"
	default:
		return fmt.Sprintf("UnaryOp(%d)", int(op))
	}
}

// A UnaryNode applies a unary operator to its operand subtree.
type UnaryNode struct {
	op      UnaryOp
	operand Node
}

func NewUnary(op UnaryOp, operand Node) *UnaryNode {
	return &UnaryNode{op: op, operand: operand}
}

func (node *UnaryNode) Op() UnaryOp {
	return node.op
}

func (node *UnaryNode) Operand() Node {
	return node.operand
}

func (node *UnaryNode) String() string {
	return fmt.Sprintf("%s%s", node.op, node.operand)
}

func (node *UnaryNode) node() {}
