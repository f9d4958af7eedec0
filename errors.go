package hangar

import "fmt"

// BindError is the closed set of recoverable failures Bind can report.
// A BindError is itself an error value and a valid target for errors.Is.
type BindError int

const (
	// InvalidKey is returned when Bind is called with NullID.
	InvalidKey BindError = iota + 1
	// DeadEntity is returned when Bind is called on an entity that is not alive.
	DeadEntity
)

// BindErrorDescriptions maps each BindError to a human-readable
// description, for callers building their own error messages or telemetry
// tags.
var BindErrorDescriptions = map[BindError]string{
	InvalidKey: "key must be less than the null id",
	DeadEntity: "entity is not alive",
}

func (e BindError) Error() string {
	if desc, ok := BindErrorDescriptions[e]; ok {
		return desc
	}
	return fmt.Sprintf("unknown bind error (%d)", int(e))
}

// ErrInvalidKey and ErrDeadEntity are the errors.Is-compatible sentinels for
// InvalidKey and DeadEntity. Bind's return value already satisfies
// errors.Is(err, InvalidKey)/errors.Is(err, DeadEntity) directly, since
// BindError is comparable; these exist for callers that prefer matching
// against a plain error value rather than the enum type.
var (
	ErrInvalidKey error = InvalidKey
	ErrDeadEntity error = DeadEntity
)
