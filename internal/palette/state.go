package palette

import (
	"fmt"
	"strings"
)

// State identifies the visual state a value applies to.
type State int

const (
	// StateCommon is the shared parent every concrete state of a storage
	// falls back to before the redirect is consulted. It is never rendered.
	StateCommon State = iota
	StateNormal
	StateTracking
	StatePressed
	StateCheckedNormal
	StateCheckedTracking
	StateCheckedPressed
	StateDisabled
	StateContextNormal
	StateContextTracking
	StateContextCheckedNormal
	StateContextCheckedTracking
	StateContextCheckedPressed
)

const stateCount = int(StateContextCheckedPressed) + 1

var stateNames = [stateCount]string{
	StateCommon:                 "common",
	StateNormal:                 "normal",
	StateTracking:               "tracking",
	StatePressed:                "pressed",
	StateCheckedNormal:          "checked_normal",
	StateCheckedTracking:        "checked_tracking",
	StateCheckedPressed:         "checked_pressed",
	StateDisabled:               "disabled",
	StateContextNormal:          "context_normal",
	StateContextTracking:        "context_tracking",
	StateContextCheckedNormal:   "context_checked_normal",
	StateContextCheckedTracking: "context_checked_tracking",
	StateContextCheckedPressed:  "context_checked_pressed",
}

// Valid reports whether s is one of the declared states.
func (s State) Valid() bool {
	return s >= 0 && int(s) < stateCount
}

func (s State) String() string {
	if !s.Valid() {
		return fmt.Sprintf("state(%d)", int(s))
	}
	return stateNames[s]
}

// ParseState accepts the snake_case name of a state. Dashes and the
// CamelCase spelling (ContextTracking) are accepted as well.
func ParseState(name string) (State, error) {
	key := normalizeName(name)
	for i, candidate := range stateNames {
		if normalizeName(candidate) == key {
			return State(i), nil
		}
	}
	return 0, fmt.Errorf("unknown palette state %q", name)
}

// ConcreteStates lists every renderable state, i.e. all states but Common.
func ConcreteStates() []State {
	states := make([]State, 0, stateCount-1)
	for i := 1; i < stateCount; i++ {
		states = append(states, State(i))
	}
	return states
}

func normalizeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.NewReplacer("_", "", "-", "", " ", "").Replace(name)
}
