package palette

import (
	"fmt"

	pkgerrors "github.com/alexisbeaulieu97/palettekit/pkg/errors"
)

// walk records the sources visited by one resolution call. The walk never
// branches, so the visited set is also the path.
type walk struct {
	kind  Kind
	state State
	seen  map[Source]struct{}
	path  []string
}

func newWalk(k Kind, state State) *walk {
	return &walk{kind: k, state: state, seen: make(map[Source]struct{}, 4)}
}

func (w *walk) enter(src Source) error {
	w.path = append(w.path, src.label())
	if _, again := w.seen[src]; again {
		return pkgerrors.NewCyclicRedirectionError(w.path, w.kind.String(), w.state.String())
	}
	w.seen[src] = struct{}{}
	return nil
}

// Resolve returns the effective value of attr for state on s, walking the
// state bucket, the Common bucket and then the redirect chain. It never
// returns a zero value in place of a missing one: a chain that fails to
// terminate yields a ConfigurationError, DanglingRedirectError or
// CyclicRedirectionError.
func Resolve[T comparable](s *Storage, attr Attribute[T], state State) (T, error) {
	var zero T
	v, err := s.ResolveValue(attr.kind, state)
	if err != nil {
		return zero, err
	}
	typed, ok := v.(T)
	if !ok {
		return zero, pkgerrors.NewConfigurationError(s.label(), fmt.Sprintf("%s resolved to %T, want %T", attr.kind, v, zero), nil)
	}
	return typed, nil
}

// ResolveValue is the untyped form of Resolve.
func (s *Storage) ResolveValue(k Kind, state State) (any, error) {
	if err := checkRequest(s.label(), k, state); err != nil {
		return nil, err
	}
	return s.resolve(k, state, newWalk(k, state))
}

func (s *Storage) resolve(k Kind, state State, w *walk) (any, error) {
	if err := w.enter(s); err != nil {
		return nil, err
	}
	if v, ok := s.lookup(k, state); ok {
		return v, nil
	}
	if s.redirect == nil {
		return nil, pkgerrors.NewConfigurationError(s.label(), fmt.Sprintf("no value for %s in state %s and nothing to fall back to", k, state), nil)
	}
	return s.redirect.resolve(k, state, w)
}

// lookup checks the state bucket first and then Common.
func (s *Storage) lookup(k Kind, state State) (any, bool) {
	if state != StateCommon {
		if b, ok := s.buckets[state]; ok {
			if v, ok := b.load(k); ok {
				return v, true
			}
		}
	}
	return s.buckets[StateCommon].load(k)
}

func checkRequest(subject string, k Kind, state State) error {
	if !k.Valid() {
		return pkgerrors.NewConfigurationError(subject, fmt.Sprintf("invalid attribute kind %d", int(k)), nil)
	}
	if !state.Valid() {
		return pkgerrors.NewConfigurationError(subject, fmt.Sprintf("invalid state %d", int(state)), nil)
	}
	return nil
}
