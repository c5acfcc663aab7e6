// Package guard coordinates section and page transitions against unsaved
// profile changes. A transition requested while changes exist is suspended
// until the user saves, discards, or cancels.
package guard

import "fmt"

// State is the guard's current state.
type State int

// Guard states.
const (
	// Idle means no transition is waiting on a decision.
	Idle State = iota
	// PendingConfirmation means a transition is suspended behind the
	// save/discard/cancel prompt.
	PendingConfirmation
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case PendingConfirmation:
		return "PendingConfirmation"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Store is the slice of the profile store the guard needs.
type Store interface {
	ChangedSections() []string
	Save() error
	Discard()
}

// NavigateFunc performs the actual transition to a destination. Destinations
// are opaque to the guard; a named page and a named tab are treated alike.
type NavigateFunc func(destination string) error

// StateError represents a confirm/cancel call made outside
// PendingConfirmation.
type StateError struct {
	Op    string
	State State
}

func (e *StateError) Error() string {
	return fmt.Sprintf("guard error: %s is only valid from PendingConfirmation, current state is %s", e.Op, e.State)
}

// Guard is the navigation state machine. It is driven from a single
// interaction loop; it is not safe for concurrent use.
type Guard struct {
	store    Store
	navigate NavigateFunc
	state    State
	pending  string
}

// New returns a guard in the Idle state.
func New(store Store, navigate NavigateFunc) *Guard {
	return &Guard{store: store, navigate: navigate, state: Idle}
}

// State returns the current state.
func (g *Guard) State() State {
	return g.state
}

// PendingDestination returns the suspended destination, or "" when Idle.
func (g *Guard) PendingDestination() string {
	return g.pending
}

// RequestTransition asks to move to destination. With no unsaved changes the
// transition happens immediately and the guard stays Idle. Otherwise the
// transition is suspended, the guard moves to PendingConfirmation, and the
// changed section list is returned for display in the confirmation prompt.
//
// A request made while another is already pending replaces the pending
// destination; the prompt is re-shown for the new target.
func (g *Guard) RequestTransition(destination string) ([]string, error) {
	changed := g.store.ChangedSections()
	if len(changed) == 0 {
		g.state = Idle
		g.pending = ""
		return nil, g.navigate(destination)
	}
	g.state = PendingConfirmation
	g.pending = destination
	return changed, nil
}

// ConfirmSave saves the profile and then performs the pending transition.
// When the save fails the guard stays in PendingConfirmation so the caller
// can retry; the error is the store's PersistenceError.
func (g *Guard) ConfirmSave() error {
	if g.state != PendingConfirmation {
		return &StateError{Op: "ConfirmSave", State: g.state}
	}
	if err := g.store.Save(); err != nil {
		return err
	}
	return g.finish()
}

// ConfirmDiscard reverts the working snapshot and then performs the pending
// transition.
func (g *Guard) ConfirmDiscard() error {
	if g.state != PendingConfirmation {
		return &StateError{Op: "ConfirmDiscard", State: g.state}
	}
	g.store.Discard()
	return g.finish()
}

// Cancel clears the pending destination without transitioning. The working
// snapshot keeps its unsaved changes.
func (g *Guard) Cancel() error {
	if g.state != PendingConfirmation {
		return &StateError{Op: "Cancel", State: g.state}
	}
	g.state = Idle
	g.pending = ""
	return nil
}

func (g *Guard) finish() error {
	destination := g.pending
	g.state = Idle
	g.pending = ""
	return g.navigate(destination)
}
