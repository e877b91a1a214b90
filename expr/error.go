package expr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-leo/gox/convx"
)

var (
	// ErrUnboundParameter a tree references a placeholder other than its own
	// formal parameter.
	ErrUnboundParameter = errors.New("unbound parameter")
)

// A MemberError reports a member access the target value cannot satisfy.
type MemberError struct {
	Member string
	Target any
}

func (e *MemberError) Error() string {
	return fmt.Sprintf("expr: member error, no field %s on %T", e.Member, e.Target)
}

// A TypeError reports operand values an operator cannot be applied to.
type TypeError struct {
	Op       string
	Operands []any
}

func (e *TypeError) Error() string {
	rendered := make([]string, 0, len(e.Operands))
	for _, operand := range e.Operands {
		rendered = append(rendered, fmt.Sprintf("%T(%s)", operand, convx.ToString(operand)))
	}
	return fmt.Sprintf("expr: type error, operator %s is not applicable to %s", e.Op, strings.Join(rendered, " and "))
}
