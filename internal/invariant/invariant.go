//go:build !release

// Package invariant provides debug-only assertions for internal bookkeeping
// that callers should never be able to violate through the public API. They
// are compiled out entirely in release builds.
package invariant

import "fmt"

// Enabled reports whether assertions are checked in this build. Callers
// whose condition is itself expensive to compute should guard the call to
// That with it, e.g. `if invariant.Enabled { invariant.That(expensive(), ...) }`,
// so a release build never evaluates the condition at all.
const Enabled = true

// That panics with a formatted message when cond is false.
func That(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
