package specification

import "github.com/go-leo/specification/expr"

// combine merges the trees of two independently authored specifications into
// one tree under op. Each operand body was written against its own
// placeholder; gluing the bodies under one binary node would leave two
// placeholders alive in a tree that declares a single formal parameter, so
// the combined body is rewritten to reference one freshly allocated
// placeholder before it is wrapped. The rewrite reconstructs only the
// combined spine and shares everything else, and the operands are read,
// never mutated, which keeps reusing left or right in further compositions
// safe.
func combine[T any](op expr.BinaryOp, left Specification[T], right Specification[T]) *expr.Lambda[T] {
	leftExpr := left.ToExpression()
	rightExpr := right.ToExpression()
	param := expr.NewParameter(leftExpr.Parameter().Name())
	body := expr.NewBinary(op, leftExpr.Body(), rightExpr.Body())
	return expr.NewLambda[T](param, expr.ReplaceParameter(body, param))
}
