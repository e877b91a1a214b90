package expr

import (
	"fmt"
	"strconv"
)

// A ConstantNode holds a literal value.
type ConstantNode struct {
	value any
}

func NewConstant(value any) *ConstantNode {
	return &ConstantNode{value: value}
}

func (node *ConstantNode) Value() any {
	return node.value
}

func (node *ConstantNode) String() string {
	if s, ok := node.value.(string); ok {
		return strconv.Quote(s)
	}
	return fmt.Sprintf("%v", node.value)
}

func (node *ConstantNode) node() {}
