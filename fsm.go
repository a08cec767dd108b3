// Package fsm provides a generic finite state machine (FSM) driven by a
// declarative configuration of states and their event transitions, with
// manual jumps, reset and single-level undo/redo of state changes.
// It is built with types and utilities from the github.com/enetx/g library.
//
// Two construction modes exist. New is lenient: the initial state and the
// transition destinations are not checked against the declared states.
// NewStrict validates the configuration first and fails with
// *ErrConfigInvalid errors.
//
// History is kept in two slots, previous and next, rather than a stack.
// Undo moves current into next and previous into current; Redo mirrors it.
// ChangeState and Trigger set previous but leave a pending next in place, so
// after Undo followed by a transition both slots may be populated.
package fsm

import (
	"fmt"

	"github.com/enetx/g"
)

// New creates a new FSM from config without validating it.
// It returns ErrConfigMissing if config is nil.
// The configuration is copied; later changes to config do not affect the FSM.
func New(config *Config) (*FSM, error) {
	if config == nil {
		return nil, ErrConfigMissing
	}

	config = config.clone()

	return &FSM{
		config:       config,
		current:      config.initial,
		previous:     g.None[State](),
		next:         g.None[State](),
		onTransition: g.NewSlice[TransitionHook](),
	}, nil
}

// NewStrict creates a new FSM like New but validates config first.
func NewStrict(config *Config) (*FSM, error) {
	if config == nil {
		return nil, ErrConfigMissing
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return New(config)
}

// MustNew is like New but panics if config is nil.
func MustNew(config *Config) *FSM {
	f, err := New(config)
	if err != nil {
		panic(err)
	}

	return f
}

// Clone creates a new FSM instance with the same configuration and hooks but a fresh state.
func (f *FSM) Clone() *FSM {
	return &FSM{
		config:       f.config,
		current:      f.config.initial,
		previous:     g.None[State](),
		next:         g.None[State](),
		onTransition: f.onTransition.Clone(),
	}
}

// Config returns a copy of the FSM's configuration.
func (f *FSM) Config() *Config { return f.config.clone() }

// Initial returns the configured initial state.
func (f *FSM) Initial() State { return f.config.initial }

// Current returns the FSM's current state.
func (f *FSM) Current() State { return f.current }

// Previous returns the state Undo would return to, if any.
func (f *FSM) Previous() g.Option[State] { return f.previous }

// Next returns the state Redo would return to, if any.
func (f *FSM) Next() g.Option[State] { return f.next }

// CanUndo reports whether Undo would succeed.
func (f *FSM) CanUndo() bool { return f.previous.IsSome() }

// CanRedo reports whether Redo would succeed.
func (f *FSM) CanRedo() bool { return f.next.IsSome() }

// States returns all declared states in declaration order.
func (f *FSM) States() g.Slice[State] { return f.config.States() }

// StatesOn returns the declared states that have a transition for event,
// in declaration order.
func (f *FSM) StatesOn(event Event) g.Slice[State] {
	return f.config.order.Iter().
		Filter(func(s State) bool { return f.config.states.Get(s).Some().Transitions.Contains(event) }).
		Collect()
}

// OnTransition registers a global transition hook.
func (f *FSM) OnTransition(hook TransitionHook) *FSM {
	f.onTransition.Push(hook)
	return f
}

// ChangeState jumps to state without consulting the transition table.
// It returns *ErrUnknownState if state is not declared.
// A pending redo is kept.
func (f *FSM) ChangeState(state State) error {
	if !f.config.Has(state) {
		return &ErrUnknownState{State: state}
	}

	return f.transition(state, "")
}

// Trigger moves to the destination registered for event in the current state.
// It returns *ErrUndefinedEvent if there is none. The empty event is reserved
// for manual jumps and always fails.
// The destination is not checked against the declared states. A pending redo is kept.
func (f *FSM) Trigger(event Event) error {
	to := g.None[State]()
	if def := f.config.states.Get(f.current); def.IsSome() && event != "" {
		to = def.Some().Transitions.Get(event)
	}

	if to.IsNone() {
		return &ErrUndefinedEvent{From: f.current, Event: event}
	}

	return f.transition(to.Some(), event)
}

// transition runs the hooks and, if all of them succeed, commits the move.
func (f *FSM) transition(to State, event Event) error {
	from := f.current

	for hook := range f.onTransition.Iter() {
		if err := f.executeHook(hook, from, to, event); err != nil {
			return err
		}
	}

	f.previous = g.Some(from)
	f.current = to

	return nil
}

// executeHook safely executes a hook, recovering from panics.
func (f *FSM) executeHook(hook TransitionHook, from, to State, event Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &ErrCallback{HookType: "OnTransition", State: to, Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	if hookErr := hook(from, to, event); hookErr != nil {
		err = &ErrCallback{HookType: "OnTransition", State: to, Err: hookErr}
	}

	return err
}

// Reset returns the FSM to its initial state. History is left intact.
func (f *FSM) Reset() { f.current = f.config.initial }

// Undo returns to the previous state and makes the current one available to Redo.
// It returns false, changing nothing, if there is no previous state.
func (f *FSM) Undo() bool {
	if f.previous.IsNone() {
		return false
	}

	f.next = g.Some(f.current)
	f.current = f.previous.Some()
	f.previous = g.None[State]()

	return true
}

// Redo returns to the state left by the last Undo.
// It returns false, changing nothing, if there is no such state.
func (f *FSM) Redo() bool {
	if f.next.IsNone() {
		return false
	}

	f.previous = g.Some(f.current)
	f.current = f.next.Some()
	f.next = g.None[State]()

	return true
}

// ClearHistory forgets both the previous and the next state.
func (f *FSM) ClearHistory() {
	f.previous = g.None[State]()
	f.next = g.None[State]()
}
