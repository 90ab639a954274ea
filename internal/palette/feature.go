package palette

import (
	"fmt"

	pkgerrors "github.com/alexisbeaulieu97/palettekit/pkg/errors"
)

// Feature declares the shape of one themeable element: the concrete states
// it has visuals for and the attribute kinds it exposes. Every Storage is
// built from a Feature; the Common state is always implied.
type Feature struct {
	Name   string
	States []State
	Kinds  []Kind
	// Layout marks features whose every change affects layout, whatever
	// the kind. The flag is ORed into each notification they forward.
	Layout bool
}

// Validate checks the declaration for mistakes a storage cannot recover
// from at runtime.
func (f *Feature) Validate() error {
	if f == nil {
		return pkgerrors.NewConfigurationError("", "feature is nil", nil)
	}
	if f.Name == "" {
		return pkgerrors.NewConfigurationError("", "feature name is required", nil)
	}
	if len(f.Kinds) == 0 {
		return pkgerrors.NewConfigurationError(f.Name, "feature declares no attribute kinds", nil)
	}

	seenStates := make(map[State]bool, len(f.States))
	for _, s := range f.States {
		switch {
		case !s.Valid():
			return pkgerrors.NewConfigurationError(f.Name, fmt.Sprintf("invalid state %s", s), nil)
		case s == StateCommon:
			return pkgerrors.NewConfigurationError(f.Name, "the common state is implicit and must not be listed", nil)
		case seenStates[s]:
			return pkgerrors.NewConfigurationError(f.Name, fmt.Sprintf("state %s listed twice", s), nil)
		}
		seenStates[s] = true
	}

	seenKinds := make(map[Kind]bool, len(f.Kinds))
	for _, k := range f.Kinds {
		if !k.Valid() {
			return pkgerrors.NewConfigurationError(f.Name, fmt.Sprintf("invalid attribute kind %s", k), nil)
		}
		if seenKinds[k] {
			return pkgerrors.NewConfigurationError(f.Name, fmt.Sprintf("attribute kind %s listed twice", k), nil)
		}
		seenKinds[k] = true
	}
	return nil
}

// Declares reports whether the feature has a bucket for s.
func (f *Feature) Declares(s State) bool {
	if s == StateCommon {
		return true
	}
	for _, declared := range f.States {
		if declared == s {
			return true
		}
	}
	return false
}

// HasKind reports whether the feature exposes k.
func (f *Feature) HasKind(k Kind) bool {
	for _, declared := range f.Kinds {
		if declared == k {
			return true
		}
	}
	return false
}

// AllStates returns Common followed by the declared states.
func (f *Feature) AllStates() []State {
	return append([]State{StateCommon}, f.States...)
}
