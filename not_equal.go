package specification

import "github.com/go-leo/specification/expr"

// NotEqualSpecification used to create a new specification comparing the
// boolean results of two other specifications for inequality.
type NotEqualSpecification[T any] struct {
	base[T]
	left  Specification[T]
	right Specification[T]
}

func NotEqual[T any](left Specification[T], right Specification[T]) Specification[T] {
	return &NotEqualSpecification[T]{
		base:  base[T]{lambda: combine(expr.NotEqual, left, right)},
		left:  left,
		right: right,
	}
}

func (spec *NotEqualSpecification[T]) Left() Specification[T] {
	return spec.left
}

func (spec *NotEqualSpecification[T]) Right() Specification[T] {
	return spec.right
}
