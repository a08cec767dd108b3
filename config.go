package fsm

import (
	"errors"

	"github.com/enetx/g"
	"github.com/enetx/g/cmp"
)

// NewConfig creates an empty configuration starting in the given state.
// The initial state still has to be declared with State or Transition.
func NewConfig(initial State) *Config {
	return &Config{
		initial: initial,
		states:  g.NewMap[State, StateDef](),
		order:   g.NewSlice[State](),
	}
}

// State declares a state with the given transitions (event -> destination).
// Declaring an existing state replaces its transitions but keeps its position.
func (c *Config) State(state State, transitions g.Map[Event, State]) *Config {
	def := StateDef{Transitions: g.NewMap[Event, State]()}
	for event, to := range transitions {
		def.Transitions.Set(event, to)
	}

	c.declare(state, def)

	return c
}

// Transition adds a single event transition, declaring from if needed.
// The destination is not declared implicitly.
func (c *Config) Transition(from State, event Event, to State) *Config {
	def := c.states.Get(from).UnwrapOr(StateDef{Transitions: g.NewMap[Event, State]()})
	def.Transitions.Set(event, to)

	c.declare(from, def)

	return c
}

func (c *Config) declare(state State, def StateDef) {
	if c.states == nil {
		c.states = g.NewMap[State, StateDef]()
	}

	if !c.states.Contains(state) {
		c.order.Push(state)
	}

	c.states.Set(state, def)
}

// Initial returns the configured initial state.
func (c *Config) Initial() State { return c.initial }

// States returns the declared states in declaration order.
func (c *Config) States() g.Slice[State] { return c.order.Clone() }

// Has reports whether state is declared.
func (c *Config) Has(state State) bool { return c.states.Contains(state) }

// known reports whether state can be occupied: it is declared, initial, or
// the destination of some transition.
func (c *Config) known(state State) bool {
	if state == c.initial || c.Has(state) {
		return true
	}

	for _, def := range c.states {
		for _, to := range def.Transitions {
			if to == state {
				return true
			}
		}
	}

	return false
}

// Lookup returns the definition of a declared state.
func (c *Config) Lookup(state State) g.Option[StateDef] { return c.states.Get(state) }

// Validate checks that the initial state and every transition destination are
// declared states. All problems are reported, joined with errors.Join; each of
// them is an *ErrConfigInvalid.
func (c *Config) Validate() error {
	var errs []error

	if !c.Has(c.initial) {
		errs = append(errs, &ErrConfigInvalid{Target: c.initial})
	}

	for _, from := range c.order {
		def := c.states.Get(from).Some()
		for _, event := range sortedEvents(def.Transitions) {
			to := def.Transitions.Get(event).Some()
			if !c.Has(to) {
				errs = append(errs, &ErrConfigInvalid{State: from, Event: event, Target: to})
			}
		}
	}

	return errors.Join(errs...)
}

// clone returns a deep copy so later builder calls cannot reach a running FSM.
func (c *Config) clone() *Config {
	cp := NewConfig(c.initial)
	for _, state := range c.order {
		cp.State(state, c.states.Get(state).Some().Transitions)
	}

	return cp
}

// sortedEvents returns the events of a transition table in a stable order.
func sortedEvents(transitions g.Map[Event, State]) g.Slice[Event] {
	events := g.NewSlice[Event]()
	for event := range transitions {
		events.Push(event)
	}

	events.SortBy(cmp.Cmp)

	return events
}
