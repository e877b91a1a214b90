package specification

import "github.com/go-leo/specification/expr"

// NotSpecification used to create a new specification that is the inverse
// (NOT) of the given specification.
type NotSpecification[T any] struct {
	base[T]
	spec Specification[T]
}

func Not[T any](spec Specification[T]) Specification[T] {
	inner := spec.ToExpression()
	param := expr.NewParameter(inner.Parameter().Name())
	body := expr.NewUnary(expr.Not, inner.Body())
	return &NotSpecification[T]{
		base: base[T]{lambda: expr.NewLambda[T](param, expr.ReplaceParameter(body, param))},
		spec: spec,
	}
}

func (spec *NotSpecification[T]) Inner() Specification[T] {
	return spec.spec
}
