package fsm

import (
	"errors"
	"fmt"
)

// ErrConfigMissing is returned when an FSM is constructed without a configuration.
var ErrConfigMissing = errors.New("fsm: missing configuration")

// ErrCallback is returned when a transition hook returns an error or panics.
// It wraps the original error, allowing it to be inspected using functions
// like errors.Is and errors.As.
type ErrCallback struct {
	// HookType is the type of hook where the error occurred (e.g., "OnTransition").
	HookType string
	// State is the destination of the aborted transition.
	State State
	// Err is the original error returned by the hook or the error created after recovering from a panic.
	Err error
}

func (e *ErrCallback) Error() string {
	if e.State != "" {
		return fmt.Sprintf("fsm: error in %s hook for state %q: %v", e.HookType, e.State, e.Err)
	}

	return fmt.Sprintf("fsm: error in %s hook: %v", e.HookType, e.Err)
}

// Unwrap provides compatibility with the standard library's errors package,
// allowing the use of errors.Is and errors.As to inspect the wrapped error.
func (e *ErrCallback) Unwrap() error { return e.Err }

// ErrUndefinedEvent is returned when the current state has no transition
// registered for the given event.
type ErrUndefinedEvent struct {
	From  State
	Event Event
}

func (e *ErrUndefinedEvent) Error() string {
	return fmt.Sprintf("fsm: event %q is not defined for state %q", e.Event, e.From)
}

// ErrUnknownState is returned when a state is not declared in the FSM's
// configuration, either as a ChangeState target or inside a restored snapshot.
type ErrUnknownState struct {
	State State
}

func (e *ErrUnknownState) Error() string {
	return fmt.Sprintf("fsm: unknown state %q", e.State)
}

// ErrConfigInvalid reports a reference to an undeclared state found by
// Config.Validate. An empty Event means the initial state is undeclared.
type ErrConfigInvalid struct {
	State  State
	Event  Event
	Target State
}

func (e *ErrConfigInvalid) Error() string {
	if e.Event == "" {
		return fmt.Sprintf("fsm: initial state %q is not declared", e.Target)
	}

	return fmt.Sprintf("fsm: transition %q from state %q targets undeclared state %q", e.Event, e.State, e.Target)
}

// IsUnknownState reports whether err is or wraps an *ErrUnknownState.
func IsUnknownState(err error) bool {
	var e *ErrUnknownState
	return errors.As(err, &e)
}

// IsUndefinedEvent reports whether err is or wraps an *ErrUndefinedEvent.
func IsUndefinedEvent(err error) bool {
	var e *ErrUndefinedEvent
	return errors.As(err, &e)
}

// IsConfigInvalid reports whether err is or wraps an *ErrConfigInvalid.
func IsConfigInvalid(err error) bool {
	var e *ErrConfigInvalid
	return errors.As(err, &e)
}
