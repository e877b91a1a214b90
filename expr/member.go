package expr

// A MemberNode reads the named field of the value its target evaluates to.
type MemberNode struct {
	target Node
	name   string
}

func NewMember(target Node, name string) *MemberNode {
	return &MemberNode{target: target, name: name}
}

func (node *MemberNode) Target() Node {
	return node.target
}

func (node *MemberNode) Name() string {
	return node.name
}

func (node *MemberNode) String() string {
	return node.target.String() + "." + node.name
}

func (node *MemberNode) node() {}
