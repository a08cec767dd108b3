package fsm

import "github.com/enetx/g"

type StateMachine interface {
	Current() State
	Previous() g.Option[State]
	Next() g.Option[State]
	ChangeState(State) error
	Trigger(Event) error
	Reset()
	States() g.Slice[State]
	StatesOn(Event) g.Slice[State]
	Undo() bool
	Redo() bool
	ClearHistory()
	MarshalJSON() ([]byte, error)
	UnmarshalJSON(data []byte) error
}

// Interface compliance check.
var _ StateMachine = (*FSM)(nil)
