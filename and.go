package specification

import "github.com/go-leo/specification/expr"

// AndSpecification used to create a new specification that is the AND of two
// other specifications.
type AndSpecification[T any] struct {
	base[T]
	left  Specification[T]
	right Specification[T]
}

func And[T any](left Specification[T], right Specification[T]) Specification[T] {
	return &AndSpecification[T]{
		base:  base[T]{lambda: combine(expr.And, left, right)},
		left:  left,
		right: right,
	}
}

func (spec *AndSpecification[T]) Left() Specification[T] {
	return spec.left
}

func (spec *AndSpecification[T]) Right() Specification[T] {
	return spec.right
}
