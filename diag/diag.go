// Package diag reports programmer-model violations: bugs in the
// generator's own configuration, such as an atom request whose ofType
// query has no inhabitant and no literal fallback. These are distinct
// from recoverable input errors. There is nothing for a caller to
// retry or recover from, so they are reported by panicking rather than
// by returning an error value.
package diag

import "fmt"

// Violation is a programmer-model error: the operation that detected it
// and a human-readable detail naming the offending type or operation.
type Violation struct {
	Op     string
	Detail string
}

func (v *Violation) Error() string {
	return fmt.Sprintf("%s: %s", v.Op, v.Detail)
}

// Abort panics with a *Violation built from op and a formatted detail.
// The generator packages never recover it; the absgen CLI recovers a
// *Violation at its top level and reports it as an error.
func Abort(op, format string, args ...any) {
	panic(&Violation{Op: op, Detail: fmt.Sprintf(format, args...)})
}
