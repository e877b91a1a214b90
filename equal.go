package specification

import "github.com/go-leo/specification/expr"

// EqualSpecification used to create a new specification comparing the
// boolean results of two other specifications for equality. Both operands
// stay boolean valued trees: the combination is satisfied exactly when the
// operands agree on an entity, not when two entities are equal.
type EqualSpecification[T any] struct {
	base[T]
	left  Specification[T]
	right Specification[T]
}

func Equal[T any](left Specification[T], right Specification[T]) Specification[T] {
	return &EqualSpecification[T]{
		base:  base[T]{lambda: combine(expr.Equal, left, right)},
		left:  left,
		right: right,
	}
}

func (spec *EqualSpecification[T]) Left() Specification[T] {
	return spec.left
}

func (spec *EqualSpecification[T]) Right() Specification[T] {
	return spec.right
}
