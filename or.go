package specification

import "github.com/go-leo/specification/expr"

// OrSpecification used to create a new specification that is the OR of two
// other specifications.
type OrSpecification[T any] struct {
	base[T]
	left  Specification[T]
	right Specification[T]
}

func Or[T any](left Specification[T], right Specification[T]) Specification[T] {
	return &OrSpecification[T]{
		base:  base[T]{lambda: combine(expr.Or, left, right)},
		left:  left,
		right: right,
	}
}

func (spec *OrSpecification[T]) Left() Specification[T] {
	return spec.left
}

func (spec *OrSpecification[T]) Right() Specification[T] {
	return spec.right
}
