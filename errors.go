package dnd

import (
	"errors"
	"fmt"
)

// Sentinel errors. Configuration errors are returned from Scene.NewInstance
// and Instance.Reconfigure wrapped with context.
var (
	// ErrNilContainer is returned when an instance is created without a container.
	ErrNilContainer = errors.New("dnd: container is nil")

	// ErrEmptySelector is returned when a required selector is blank.
	ErrEmptySelector = errors.New("dnd: empty selector")

	// ErrInvalidSelector is returned when a selector does not parse.
	ErrInvalidSelector = errors.New("dnd: invalid selector")

	// ErrUnknownBackend is returned for a Backend value with no adapter.
	ErrUnknownBackend = errors.New("dnd: unknown backend")

	// ErrDisposed is returned when a disposed instance is reconfigured.
	ErrDisposed = errors.New("dnd: instance disposed")

	// ErrListenerPanic marks a ListenerError caused by a recovered panic.
	ErrListenerPanic = errors.New("dnd: listener panicked")
)

// ListenerError wraps the failure of a single listener during an emission
// pass. One ListenerError is produced per failing listener per pass.
type ListenerError struct {
	// Event is the name of the event being emitted.
	Event string

	// Handle identifies the failing listener.
	Handle Handle

	// Err is the returned error, or ErrListenerPanic wrapped with the
	// recovered value.
	Err error

	// Recovered is the recovered panic value, nil for returned errors.
	Recovered any
}

// Error implements the error interface.
func (e *ListenerError) Error() string {
	return fmt.Sprintf("dnd: listener %d for %q: %v", e.Handle, e.Event, e.Err)
}

// Unwrap returns the underlying error.
func (e *ListenerError) Unwrap() error {
	return e.Err
}
