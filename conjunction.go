package specification

import "github.com/go-leo/specification/expr"

// Conjunction create a new specification satisfied when every given
// specification is satisfied. Each step combines through And and therefore
// rewrites against its own fresh placeholder. Without operands it is the
// always true specification; a single operand is returned as is, which is
// safe because specifications are immutable.
func Conjunction[T any](specs ...Specification[T]) Specification[T] {
	switch len(specs) {
	case 0:
		return FromLambda(expr.NewPredicate[T](func(*expr.ParameterNode) expr.Node {
			return expr.NewConstant(true)
		}))
	case 1:
		return specs[0]
	}
	spec := specs[0]
	for _, another := range specs[1:] {
		spec = And[T](spec, another)
	}
	return spec
}
