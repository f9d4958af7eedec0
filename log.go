package hangar

import (
	"io"

	"github.com/rs/zerolog"
)

// Logger wraps zerolog.Logger, following the same embedding the Argus-Labs
// world-engine Cardinal ECS uses for its own per-subsystem loggers.
type Logger struct {
	*zerolog.Logger
}

func newLogger(w io.Writer) Logger {
	zl := zerolog.New(w).With().Timestamp().Str("pkg", "hangar").Logger()
	return Logger{&zl}
}

// defaultLogger discards everything; logging is a side channel and must
// never be load-bearing for correctness, so Registries are silent unless a
// caller opts in via Config.SetLogWriter/SetLogger or Registry.SetLogger.
func defaultLogger() Logger {
	return newLogger(io.Discard)
}
