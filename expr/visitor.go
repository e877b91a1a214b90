package expr

import "golang.org/x/exp/slices"

// Rewrite applies fn to every node of the tree bottom up and returns the
// rewritten tree. Children are visited before their parent; a parent whose
// children were replaced is reconstructed, every untouched node is shared
// with the input tree. fn must return a non-nil node.
func Rewrite(node Node, fn func(Node) Node) Node {
	switch n := node.(type) {
	case *BinaryNode:
		left := Rewrite(n.left, fn)
		right := Rewrite(n.right, fn)
		if left != n.left || right != n.right {
			node = NewBinary(n.op, left, right)
		}
	case *UnaryNode:
		operand := Rewrite(n.operand, fn)
		if operand != n.operand {
			node = NewUnary(n.op, operand)
		}
	case *MemberNode:
		target := Rewrite(n.target, fn)
		if target != n.target {
			node = NewMember(target, n.name)
		}
	}
	return fn(node)
}

// Walk calls fn for node and then for every node below it, top down,
// skipping the subtree under any node for which fn returns false.
func Walk(node Node, fn func(Node) bool) {
	if !fn(node) {
		return
	}
	switch n := node.(type) {
	case *BinaryNode:
		Walk(n.left, fn)
		Walk(n.right, fn)
	case *UnaryNode:
		Walk(n.operand, fn)
	case *MemberNode:
		Walk(n.target, fn)
	}
}

// ReplaceParameter substitutes every placeholder reference in the tree with
// param, leaving all other nodes unchanged. It is the unification step that
// keeps a tree combined from two independently authored trees rooted at a
// single placeholder.
func ReplaceParameter(node Node, param *ParameterNode) Node {
	return Rewrite(node, func(n Node) Node {
		if _, ok := n.(*ParameterNode); ok {
			return param
		}
		return n
	})
}

// Parameters returns the distinct placeholders referenced by the tree, in
// order of first appearance.
func Parameters(node Node) []*ParameterNode {
	var params []*ParameterNode
	Walk(node, func(n Node) bool {
		if param, ok := n.(*ParameterNode); ok && !slices.Contains(params, param) {
			params = append(params, param)
		}
		return true
	})
	return params
}
