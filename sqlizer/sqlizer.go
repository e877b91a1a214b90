// Package sqlizer translates specification expression trees into squirrel
// predicates, so a combined specification is pushed down to the database as
// one WHERE clause instead of being evaluated after fetching every row.
// Executing the resulting query stays the caller's concern.
package sqlizer

import (
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/go-leo/specification"
	"github.com/go-leo/specification/expr"
)

// Compiler renders the expression tree of a specification over T into a
// squirrel.Sqlizer. A Compiler is stateless apart from its options and safe
// for concurrent use.
type Compiler[T any] struct {
	options *option
}

func New[T any](opts ...Option) *Compiler[T] {
	return &Compiler[T]{options: newOption(opts...)}
}

// Compile validates that the tree is rooted at a single placeholder and
// translates its body. Member accesses on the placeholder become column
// references, comparisons against constants become squirrel comparison
// predicates and the boolean connectives become squirrel conjunctions.
func (c *Compiler[T]) Compile(spec specification.Specification[T]) (squirrel.Sqlizer, error) {
	lambda := spec.ToExpression()
	if err := lambda.Validate(); err != nil {
		return nil, err
	}
	return c.compile(lambda.Body())
}

func (c *Compiler[T]) compile(node expr.Node) (squirrel.Sqlizer, error) {
	switch n := node.(type) {
	case *expr.BinaryNode:
		return c.compileBinary(n)
	case *expr.UnaryNode:
		return c.compileUnary(n)
	case *expr.MemberNode:
		// a bare member read as a predicate is a boolean column
		column, err := c.column(n)
		if err != nil {
			return nil, err
		}
		return squirrel.Eq{column: true}, nil
	case *expr.ConstantNode:
		b, ok := n.Value().(bool)
		if !ok {
			return nil, &UnsupportedNodeError{Node: node}
		}
		if b {
			return squirrel.Expr("(1 = 1)"), nil
		}
		return squirrel.Expr("(1 = 0)"), nil
	default:
		return nil, &UnsupportedNodeError{Node: node}
	}
}

func (c *Compiler[T]) compileBinary(node *expr.BinaryNode) (squirrel.Sqlizer, error) {
	switch node.Op() {
	case expr.And, expr.Or:
		left, err := c.compile(node.Left())
		if err != nil {
			return nil, err
		}
		right, err := c.compile(node.Right())
		if err != nil {
			return nil, err
		}
		if node.Op() == expr.And {
			return squirrel.And{left, right}, nil
		}
		return squirrel.Or{left, right}, nil
	}

	if part, ok, err := c.compileComparison(node); err != nil || ok {
		return part, err
	}

	// Equal and NotEqual also combine two boolean subtrees, the algebra the
	// Equal combinator produces.
	if node.Op() == expr.Equal || node.Op() == expr.NotEqual {
		return c.compileBooleanComparison(node)
	}
	return nil, &UnsupportedNodeError{Node: node}
}

func (c *Compiler[T]) compileUnary(node *expr.UnaryNode) (squirrel.Sqlizer, error) {
	if node.Op() != expr.Not {
		return nil, &UnsupportedNodeError{Node: node}
	}
	operand, err := c.compile(node.Operand())
	if err != nil {
		return nil, err
	}
	sql, args, err := operand.ToSql()
	if err != nil {
		return nil, err
	}
	return squirrel.Expr(fmt.Sprintf("NOT (%s)", sql), args...), nil
}

// compileComparison translates comparisons between a placeholder member and
// a constant, in either operand order, and between two placeholder members.
// The bool result reports whether the node matched one of those shapes.
func (c *Compiler[T]) compileComparison(node *expr.BinaryNode) (squirrel.Sqlizer, bool, error) {
	if left, ok := node.Left().(*expr.MemberNode); ok {
		if right, ok := node.Right().(*expr.ConstantNode); ok {
			part, err := c.comparison(node.Op(), left, right.Value())
			return part, true, err
		}
		if right, ok := node.Right().(*expr.MemberNode); ok {
			part, err := c.columnComparison(node.Op(), left, right)
			return part, true, err
		}
		return nil, false, nil
	}
	if left, ok := node.Left().(*expr.ConstantNode); ok {
		if right, ok := node.Right().(*expr.MemberNode); ok {
			part, err := c.comparison(flip(node.Op()), right, left.Value())
			return part, true, err
		}
	}
	return nil, false, nil
}

func (c *Compiler[T]) comparison(op expr.BinaryOp, member *expr.MemberNode, value any) (squirrel.Sqlizer, error) {
	column, err := c.column(member)
	if err != nil {
		return nil, err
	}
	switch op {
	case expr.Equal:
		return squirrel.Eq{column: value}, nil
	case expr.NotEqual:
		return squirrel.NotEq{column: value}, nil
	case expr.GreaterThan:
		return squirrel.Gt{column: value}, nil
	case expr.GreaterThanOrEqual:
		return squirrel.GtOrEq{column: value}, nil
	case expr.LessThan:
		return squirrel.Lt{column: value}, nil
	case expr.LessThanOrEqual:
		return squirrel.LtOrEq{column: value}, nil
	default:
		return nil, &UnsupportedNodeError{Node: member}
	}
}

func (c *Compiler[T]) columnComparison(op expr.BinaryOp, left *expr.MemberNode, right *expr.MemberNode) (squirrel.Sqlizer, error) {
	leftColumn, err := c.column(left)
	if err != nil {
		return nil, err
	}
	rightColumn, err := c.column(right)
	if err != nil {
		return nil, err
	}
	operator, ok := sqlOperators[op]
	if !ok {
		return nil, &UnsupportedNodeError{Node: left}
	}
	return squirrel.Expr(fmt.Sprintf("%s %s %s", leftColumn, operator, rightColumn)), nil
}

// compileBooleanComparison renders ops comparing the boolean results of two
// predicate subtrees, wrapping both rendered operands.
func (c *Compiler[T]) compileBooleanComparison(node *expr.BinaryNode) (squirrel.Sqlizer, error) {
	left, err := c.compile(node.Left())
	if err != nil {
		return nil, err
	}
	right, err := c.compile(node.Right())
	if err != nil {
		return nil, err
	}
	leftSQL, leftArgs, err := left.ToSql()
	if err != nil {
		return nil, err
	}
	rightSQL, rightArgs, err := right.ToSql()
	if err != nil {
		return nil, err
	}
	args := make([]any, 0, len(leftArgs)+len(rightArgs))
	args = append(args, leftArgs...)
	args = append(args, rightArgs...)
	return squirrel.Expr(fmt.Sprintf("(%s) %s (%s)", leftSQL, sqlOperators[node.Op()], rightSQL), args...), nil
}

// column resolves a member access on the placeholder to a column name.
func (c *Compiler[T]) column(member *expr.MemberNode) (string, error) {
	if _, ok := member.Target().(*expr.ParameterNode); !ok {
		return "", &UnsupportedNodeError{Node: member}
	}
	if column, ok := c.options.Columns[member.Name()]; ok {
		return column, nil
	}
	return member.Name(), nil
}

var sqlOperators = map[expr.BinaryOp]string{
	expr.Equal:              "=",
	expr.NotEqual:           "<>",
	expr.GreaterThan:        ">",
	expr.GreaterThanOrEqual: ">=",
	expr.LessThan:           "<",
	expr.LessThanOrEqual:    "<=",
}

// flip mirrors a comparison so that constant-first operand order renders
// with the member on the left.
func flip(op expr.BinaryOp) expr.BinaryOp {
	switch op {
	case expr.GreaterThan:
		return expr.LessThan
	case expr.GreaterThanOrEqual:
		return expr.LessThanOrEqual
	case expr.LessThan:
		return expr.GreaterThan
	case expr.LessThanOrEqual:
		return expr.GreaterThanOrEqual
	default:
		return op
	}
}
