// Package assert is the internal invariant channel: a triggered
// invariant is fatal with a diagnostic, an unconditional panic rather
// than a typed sentinel error.
package assert

import "fmt"

// Truef panics with a formatted diagnostic if cond is false.
func Truef(cond bool, format string, args ...interface{}) {
	if !cond {
		panic(fmt.Sprintf("internal invariant violated: "+format, args...))
	}
}
