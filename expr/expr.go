// Package expr models a predicate as an inspectable expression tree: a one
// argument boolean function whose body is built from comparisons, member
// access, constants and boolean connectives, rooted at a single placeholder
// parameter.
//
// The tree is plain data. It can be evaluated in process against a concrete
// value (see Lambda.Eval), rewritten structurally (see Rewrite and
// ReplaceParameter), or handed to a translation layer that renders it into
// another query language.
package expr

import "fmt"

// Node is a node of a predicate expression tree.
//
// Nodes are immutable values. Rewriting never mutates a node, it
// reconstructs the changed spine and shares everything else, so trees may be
// referenced by any number of other trees at once.
type Node interface {
	fmt.Stringer

	// node restricts implementations to this package.
	node()
}
