package fsm

import (
	"encoding/json"
	"fmt"

	"github.com/enetx/g"
)

// FSMState is a serializable representation of the FSM's runtime register.
// The configuration itself is not part of it.
type FSMState struct {
	Current  State  `json:"current"`
	Previous *State `json:"previous,omitempty"`
	Next     *State `json:"next,omitempty"`
}

// MarshalJSON implements the json.Marshaler interface.
func (f *FSM) MarshalJSON() ([]byte, error) {
	state := FSMState{
		Current:  f.current,
		Previous: optionPtr(f.previous),
		Next:     optionPtr(f.next),
	}

	return json.Marshal(state)
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// Every state in the snapshot must be one the FSM's configuration can reach:
// a declared state, the initial state or a transition destination.
func (f *FSM) UnmarshalJSON(data []byte) error {
	var state FSMState
	if err := json.Unmarshal(data, &state); err != nil {
		return fmt.Errorf("failed to unmarshal fsm state: %w", err)
	}

	for _, s := range []*State{&state.Current, state.Previous, state.Next} {
		if s != nil && !f.config.known(*s) {
			return &ErrUnknownState{State: *s}
		}
	}

	f.current = state.Current
	f.previous = ptrOption(state.Previous)
	f.next = ptrOption(state.Next)

	return nil
}

func optionPtr(o g.Option[State]) *State {
	if o.IsNone() {
		return nil
	}

	s := o.Some()

	return &s
}

func ptrOption(p *State) g.Option[State] {
	if p == nil {
		return g.None[State]()
	}

	return g.Some(*p)
}
