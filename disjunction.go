package specification

import "github.com/go-leo/specification/expr"

// Disjunction create a new specification satisfied when at least one given
// specification is satisfied. Each step combines through Or and therefore
// rewrites against its own fresh placeholder. Without operands it is the
// always false specification; a single operand is returned as is.
func Disjunction[T any](specs ...Specification[T]) Specification[T] {
	switch len(specs) {
	case 0:
		return FromLambda(expr.NewPredicate[T](func(*expr.ParameterNode) expr.Node {
			return expr.NewConstant(false)
		}))
	case 1:
		return specs[0]
	}
	spec := specs[0]
	for _, another := range specs[1:] {
		spec = Or[T](spec, another)
	}
	return spec
}
