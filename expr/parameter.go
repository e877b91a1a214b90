package expr

// DefaultParameterName is the display name given to placeholders allocated
// without an explicit name.
const DefaultParameterName = "x"

// A ParameterNode is the placeholder for the single argument of a predicate
// tree. Identity is the node's address: two parameters carrying the same
// name are still different placeholders, so NewParameter mints a fresh
// placeholder on every call.
type ParameterNode struct {
	name string
}

func NewParameter(name string) *ParameterNode {
	if name == "" {
		name = DefaultParameterName
	}
	return &ParameterNode{name: name}
}

// Name reports the display name of the placeholder. Names exist for
// rendering only and carry no identity.
func (node *ParameterNode) Name() string {
	return node.name
}

func (node *ParameterNode) String() string {
	return node.name
}

func (node *ParameterNode) node() {}
