package fsm

import (
	"sync"

	"github.com/enetx/g"
)

type (
	// State represents a finite state in the FSM.
	State g.String
	// Event represents an event that triggers a transition.
	Event g.String

	// TransitionHook is a global callback called before a transition is committed.
	// A non-nil error aborts the transition and leaves the FSM untouched.
	// ChangeState invokes hooks with an empty event; the empty event is
	// reserved for manual jumps and never matches a transition.
	TransitionHook func(from, to State, event Event) error

	// StateDef describes the outgoing transitions of a single state.
	StateDef struct {
		Transitions g.Map[Event, State]
	}

	// Config is the declarative description of an FSM: the initial state and
	// the declared states in declaration order.
	Config struct {
		initial State
		states  g.Map[State, StateDef]
		order   g.Slice[State]
	}

	// FSM is the main state machine struct.
	// It is not safe for concurrent use; see SyncFSM.
	FSM struct {
		config       *Config
		current      State
		previous     g.Option[State]
		next         g.Option[State]
		onTransition g.Slice[TransitionHook]
	}

	// SyncFSM is a thread-safe wrapper around an FSM.
	// It protects all state-mutating and state-reading operations with a sync.RWMutex,
	// making it safe for use across multiple goroutines.
	// All methods on SyncFSM are the thread-safe counterparts to the methods on the base FSM.
	SyncFSM struct {
		fsm *FSM
		mu  sync.RWMutex
	}
)
