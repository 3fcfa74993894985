package styles

import "fmt"

// State identifies the widget state a style value applies to.
type State uint8

const (
	StateDefault State = iota
	StateDisabled
	StateInvalid
	StateActive    // only used by button, radio, and menu elements
	StateHighlight // only used by button, radio, and multiline elements

	numStates
)

var stateNames = [numStates]string{"default", "disabled", "invalid", "active", "highlight"}

func (s State) String() string {
	if s < numStates {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// States lists all defined states in slot order.
func States() [numStates]State {
	return [numStates]State{StateDefault, StateDisabled, StateInvalid, StateActive, StateHighlight}
}

// ParseState converts a state name to its State value.
func ParseState(name string) (State, error) {
	for i, n := range stateNames {
		if n == name {
			return State(i), nil
		}
	}
	return StateDefault, fmt.Errorf("unknown style state: %q", name)
}

// StateValues holds one visual attribute's value across the five widget
// states. Lookups are total: a state whose slot holds the zero value falls
// back to the default slot, so callers never need to handle a miss.
//
// StateValues is an immutable value type. With returns a new instance; a
// previously handed out copy never observes later writes.
type StateValues[T comparable] struct {
	values [numStates]T
}

// NewStateValues creates StateValues with only the default slot populated.
func NewStateValues[T comparable](defaultValue T) StateValues[T] {
	var sv StateValues[T]
	sv.values[StateDefault] = defaultValue
	return sv
}

// StateValuesOf creates StateValues from values in slot order
// (default, disabled, invalid, active, highlight). Missing trailing slots
// stay zero.
func StateValuesOf[T comparable](values ...T) StateValues[T] {
	var sv StateValues[T]
	for i, v := range values {
		if i >= int(numStates) {
			break
		}
		sv.values[i] = v
	}
	return sv
}

// Get returns the value for state, falling back to the default slot when the
// requested slot holds the zero value and state is not StateDefault.
func (sv StateValues[T]) Get(state State) T {
	if state >= numStates {
		state = StateDefault
	}
	v := sv.values[state]
	var zero T
	if v == zero && state != StateDefault {
		return sv.values[StateDefault]
	}
	return v
}

// With returns a new StateValues with only the given slot replaced.
func (sv StateValues[T]) With(state State, value T) StateValues[T] {
	if state >= numStates {
		return sv
	}
	out := sv
	out.values[state] = value
	return out
}

// IsEmpty reports whether every slot holds the zero value.
func (sv StateValues[T]) IsEmpty() bool {
	var zero T
	for _, v := range sv.values {
		if v != zero {
			return false
		}
	}
	return true
}
