//go:build release

package invariant

// Enabled is false in release builds; see the !release build's doc comment.
const Enabled = false

// That is a no-op in release builds.
func That(cond bool, format string, args ...any) {}
