package expr

import "fmt"

// A Lambda is a one argument boolean expression tree: a body built from the
// node kinds of this package, rooted at exactly one formal parameter. The
// type parameter T is the argument type the tree describes; it is what makes
// predicates over different entity types impossible to combine.
type Lambda[T any] struct {
	param *ParameterNode
	body  Node
}

// NewLambda wraps body as a predicate of one formal parameter. The body is
// adopted as is; use Validate to check that it references no other
// placeholder.
func NewLambda[T any](param *ParameterNode, body Node) *Lambda[T] {
	return &Lambda[T]{param: param, body: body}
}

// NewPredicate builds a predicate against a placeholder allocated by this
// call, so the returned tree never shares its placeholder with any other
// tree.
func NewPredicate[T any](build func(param *ParameterNode) Node) *Lambda[T] {
	param := NewParameter(DefaultParameterName)
	return &Lambda[T]{param: param, body: build(param)}
}

// Parameter returns the formal parameter the body is rooted at.
func (x *Lambda[T]) Parameter() *ParameterNode {
	return x.param
}

// Body returns the boolean body of the predicate.
func (x *Lambda[T]) Body() Node {
	return x.body
}

// Eval evaluates the tree with t bound to the formal parameter.
func (x *Lambda[T]) Eval(t T) (bool, error) {
	value, err := evalNode(x.body, x.param, t)
	if err != nil {
		return false, err
	}
	b, ok := value.(bool)
	if !ok {
		return false, &TypeError{Op: "predicate", Operands: []any{value}}
	}
	return b, nil
}

// Func compiles the tree into a plain function of T.
func (x *Lambda[T]) Func() func(T) (bool, error) {
	return func(t T) (bool, error) {
		return x.Eval(t)
	}
}

// Validate reports whether the tree is well formed: every placeholder
// reference in the body must be the formal parameter, leaving exactly one
// distinct placeholder alive in the tree.
func (x *Lambda[T]) Validate() error {
	for _, param := range Parameters(x.body) {
		if param != x.param {
			return fmt.Errorf("expr: %w: %s is not the formal parameter %s", ErrUnboundParameter, param, x.param)
		}
	}
	return nil
}

func (x *Lambda[T]) String() string {
	return fmt.Sprintf("%s => %s", x.param, x.body)
}
