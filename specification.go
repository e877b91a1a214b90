// Package specification implements the specification pattern on top of an
// inspectable expression tree. A specification is an immutable, reusable
// boolean predicate over one entity type; specifications combine with And,
// Or, Equal and NotEqual into new specifications whose trees stay rooted at
// a single placeholder, so a combined predicate can either be evaluated in
// process or pushed down to a query translation layer as one declarative
// expression.
package specification

import "github.com/go-leo/specification/expr"

// Specification interface.
// Use New for authoring leaf specifications, and the combinators for
// everything else; every variant derives its whole behavior from the
// expression tree returned by ToExpression.
type Specification[T any] interface {
	// ToExpression returns the predicate as a one argument boolean
	// expression tree rooted at exactly one placeholder. The tree is never
	// mutated afterwards; repeated calls return structurally equal trees.
	ToExpression() *expr.Lambda[T]

	// IsSatisfiedBy check if t is satisfied by the specification. It
	// evaluates the tree returned by ToExpression and panics if that tree is
	// malformed, which is an authoring defect rather than a data condition.
	IsSatisfiedBy(t T) bool

	// And create a new specification that is the AND operation of the
	// current specification and another specification.
	And(another Specification[T]) Specification[T]

	// Or create a new specification that is the OR operation of the current
	// specification and another specification.
	Or(another Specification[T]) Specification[T]

	// Equal create a new specification satisfied when the current
	// specification and another specification evaluate to the same boolean.
	Equal(another Specification[T]) Specification[T]

	// NotEqual create a new specification satisfied when the current
	// specification and another specification evaluate to different
	// booleans.
	NotEqual(another Specification[T]) Specification[T]

	// Not create a new specification that is the NOT operation of the
	// current specification.
	Not() Specification[T]
}

// New creates a leaf specification. build receives a placeholder allocated
// for this call only and returns the boolean body of the rule, so every
// leaf owns a placeholder no other tree shares.
func New[T any](build func(param *expr.ParameterNode) expr.Node) Specification[T] {
	return FromLambda(expr.NewPredicate[T](build))
}

// FromLambda adopts an already built expression tree as a specification.
func FromLambda[T any](lambda *expr.Lambda[T]) Specification[T] {
	return &base[T]{lambda: lambda}
}

// base carries the computed expression tree and derives every shared
// behavior from it. Leaf specifications are a bare base; the composite
// variants embed it and add their provenance.
type base[T any] struct {
	lambda *expr.Lambda[T]
}

func (spec *base[T]) ToExpression() *expr.Lambda[T] {
	return spec.lambda
}

func (spec *base[T]) IsSatisfiedBy(t T) bool {
	ok, err := spec.lambda.Eval(t)
	if err != nil {
		panic(err)
	}
	return ok
}

func (spec *base[T]) And(another Specification[T]) Specification[T] {
	return And[T](spec, another)
}

func (spec *base[T]) Or(another Specification[T]) Specification[T] {
	return Or[T](spec, another)
}

func (spec *base[T]) Equal(another Specification[T]) Specification[T] {
	return Equal[T](spec, another)
}

func (spec *base[T]) NotEqual(another Specification[T]) Specification[T] {
	return NotEqual[T](spec, another)
}

func (spec *base[T]) Not() Specification[T] {
	return Not[T](spec)
}
