package expr

import (
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Marshal renders the tree as a JSON document, one object per node carrying
// a kind discriminator. The encoding is a diagnostic surface only: there is
// no matching decoder, predicates are authored in code, never parsed.
func Marshal(node Node) ([]byte, error) {
	return json.Marshal(document(node))
}

// MarshalJSON implements json.Marshaler.
func (x *Lambda[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		"parameter": x.param.name,
		"body":      document(x.body),
	})
}

func document(node Node) map[string]any {
	switch n := node.(type) {
	case *ParameterNode:
		return map[string]any{"kind": "parameter", "name": n.name}
	case *ConstantNode:
		return map[string]any{"kind": "constant", "value": n.value}
	case *MemberNode:
		return map[string]any{"kind": "member", "name": n.name, "target": document(n.target)}
	case *UnaryNode:
		return map[string]any{"kind": "unary", "op": n.op.String(), "operand": document(n.operand)}
	case *BinaryNode:
		return map[string]any{"kind": "binary", "op": n.op.String(), "left": document(n.left), "right": document(n.right)}
	default:
		return nil
	}
}
