package sqlizer

import (
	"errors"
	"fmt"

	"github.com/go-leo/specification/expr"
)

var (
	// ErrNotTranslatable expression tree has no SQL rendering
	ErrNotTranslatable = errors.New("expression is not translatable to SQL")
)

// UnsupportedNodeError reports the node the compiler stopped at. It unwraps
// to ErrNotTranslatable.
type UnsupportedNodeError struct {
	Node expr.Node
}

func (e *UnsupportedNodeError) Error() string {
	return fmt.Sprintf("sqlizer: %v, no rendering for %s", ErrNotTranslatable, e.Node)
}

func (e *UnsupportedNodeError) Unwrap() error {
	return ErrNotTranslatable
}
