package hangar

import "io"

// Config holds global, process-wide tunables.
var Config config = config{
	logger: defaultLogger(),
}

type config struct {
	logger Logger
}

// SetLogWriter redirects the default logger used by new Registries to w.
// Registries created before this call keep their own logger; use
// Registry.SetLogger to change one in place.
func (c *config) SetLogWriter(w io.Writer) {
	c.logger = newLogger(w)
}

// SetLogger installs a pre-built logger as the default for new Registries.
func (c *config) SetLogger(l Logger) {
	c.logger = l
}
