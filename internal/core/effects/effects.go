// Package effects defines effect types as data structures representing I/O operations.
// Planners in the functional core return effects; the app layer executes them.
package effects

// Effect is the base interface for all effects.
type Effect interface {
	// EffectType returns a string identifier for the effect type.
	EffectType() string
}

// Snapshot keys, one per persisted collection.
const (
	CollectionWorkers     = "workers"
	CollectionJobs        = "jobs"
	CollectionBookings    = "bookings"
	CollectionCurrentUser = "currentUser"
)

// PersistEffect writes a whole-collection snapshot.
type PersistEffect struct {
	Collection string // one of the Collection* keys
	Data       any    // the full collection value to encode
}

func (e PersistEffect) EffectType() string { return "persist" }

// ClearEffect removes a persisted snapshot.
type ClearEffect struct {
	Collection string
}

func (e ClearEffect) EffectType() string { return "clear" }

// NotifyEffect emits a transient user-facing notification.
type NotifyEffect struct {
	Level   string // "success" or "error"
	Message string
}

func (e NotifyEffect) EffectType() string { return "notify" }

// LogEffect represents a logging operation.
type LogEffect struct {
	Level   string
	Message string
	Fields  map[string]any
}

func (e LogEffect) EffectType() string { return "log" }

// CompositeEffect holds multiple effects to be executed in sequence.
type CompositeEffect struct {
	Effects []Effect
}

func (e CompositeEffect) EffectType() string { return "composite" }

// NoEffect represents an operation that produces no side effects.
type NoEffect struct{}

func (e NoEffect) EffectType() string { return "none" }
