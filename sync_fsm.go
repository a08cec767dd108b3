package fsm

import "github.com/enetx/g"

// Interface compliance check.
var _ StateMachine = (*SyncFSM)(nil)

// Sync wraps the FSM in a SyncFSM. The FSM must not be used directly afterwards.
func (f *FSM) Sync() *SyncFSM { return &SyncFSM{fsm: f} }

// Current is the thread-safe version of FSM.Current.
func (sf *SyncFSM) Current() State {
	sf.mu.RLock()
	defer sf.mu.RUnlock()

	return sf.fsm.Current()
}

// Previous is the thread-safe version of FSM.Previous.
func (sf *SyncFSM) Previous() g.Option[State] {
	sf.mu.RLock()
	defer sf.mu.RUnlock()

	return sf.fsm.Previous()
}

// Next is the thread-safe version of FSM.Next.
func (sf *SyncFSM) Next() g.Option[State] {
	sf.mu.RLock()
	defer sf.mu.RUnlock()

	return sf.fsm.Next()
}

// ChangeState is the thread-safe version of FSM.ChangeState.
// It atomically jumps to a declared state, bypassing the transition table.
func (sf *SyncFSM) ChangeState(s State) error {
	sf.mu.Lock()
	defer sf.mu.Unlock()

	return sf.fsm.ChangeState(s)
}

// Trigger is the thread-safe version of FSM.Trigger.
// It atomically executes a state transition in response to an event.
func (sf *SyncFSM) Trigger(event Event) error {
	sf.mu.Lock()
	defer sf.mu.Unlock()

	return sf.fsm.Trigger(event)
}

// Reset is the thread-safe version of FSM.Reset.
func (sf *SyncFSM) Reset() {
	sf.mu.Lock()
	defer sf.mu.Unlock()

	sf.fsm.Reset()
}

// States is the thread-safe version of FSM.States.
func (sf *SyncFSM) States() g.Slice[State] {
	sf.mu.RLock()
	defer sf.mu.RUnlock()

	return sf.fsm.States()
}

// StatesOn is the thread-safe version of FSM.StatesOn.
func (sf *SyncFSM) StatesOn(event Event) g.Slice[State] {
	sf.mu.RLock()
	defer sf.mu.RUnlock()

	return sf.fsm.StatesOn(event)
}

// Undo is the thread-safe version of FSM.Undo.
func (sf *SyncFSM) Undo() bool {
	sf.mu.Lock()
	defer sf.mu.Unlock()

	return sf.fsm.Undo()
}

// Redo is the thread-safe version of FSM.Redo.
func (sf *SyncFSM) Redo() bool {
	sf.mu.Lock()
	defer sf.mu.Unlock()

	return sf.fsm.Redo()
}

// ClearHistory is the thread-safe version of FSM.ClearHistory.
func (sf *SyncFSM) ClearHistory() {
	sf.mu.Lock()
	defer sf.mu.Unlock()

	sf.fsm.ClearHistory()
}

// MarshalJSON implements the json.Marshaler interface for thread-safe
// serialization of the FSM's state to JSON.
func (sf *SyncFSM) MarshalJSON() ([]byte, error) {
	sf.mu.RLock()
	defer sf.mu.RUnlock()

	return sf.fsm.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for thread-safe
// deserialization of the FSM's state from JSON.
func (sf *SyncFSM) UnmarshalJSON(data []byte) error {
	sf.mu.Lock()
	defer sf.mu.Unlock()

	return sf.fsm.UnmarshalJSON(data)
}
