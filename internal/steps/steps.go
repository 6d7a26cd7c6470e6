// Package steps holds the card's cyclic state machine.
package steps

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// State is one of the card's discrete layout states, numbered 1..Count.
type State int

const (
	Compact State = iota + 1
	Wide
	Expanded
)

// Count is the number of states in the cycle.
const Count = 3

// First is the initial state.
const First = Compact

// Valid reports whether s belongs to the state set.
func (s State) Valid() bool {
	return s >= 1 && s <= Count
}

func (s State) String() string {
	switch s {
	case Compact:
		return "compact"
	case Wide:
		return "wide"
	case Expanded:
		return "expanded"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// All returns every state in cycle order.
func All() []State {
	out := make([]State, 0, Count)
	for s := State(1); s <= Count; s++ {
		out = append(out, s)
	}
	return out
}

// Advance returns the state after s, wrapping past the last back to the first.
// An invalid s is a programming error and panics.
func Advance(s State) State {
	if !s.Valid() {
		panic(fmt.Sprintf("steps: advance from invalid state %d", int(s)))
	}
	return State(int(s)%Count + 1)
}

// TransitionRequest describes one trigger. It is consumed by the caller and
// not retained by the machine.
type TransitionRequest struct {
	ID          uuid.UUID
	From        State
	To          State
	TriggeredAt time.Time
}

// Machine owns the current state.
type Machine struct {
	current State
	log     *slog.Logger
}

// NewMachine returns a machine in the first state.
func NewMachine(log *slog.Logger) *Machine {
	if log == nil {
		log = slog.Default()
	}
	return &Machine{current: First, log: log}
}

// Current returns the current state.
func (m *Machine) Current() State {
	return m.current
}

// Trigger advances the machine and returns the request describing the move.
func (m *Machine) Trigger(now time.Time) TransitionRequest {
	req := TransitionRequest{
		ID:          uuid.New(),
		From:        m.current,
		To:          Advance(m.current),
		TriggeredAt: now,
	}
	m.current = req.To
	m.log.Debug("state advanced", "transition", req.ID, "from", req.From, "to", req.To)
	return req
}
