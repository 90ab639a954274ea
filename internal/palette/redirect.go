package palette

import (
	pkgerrors "github.com/alexisbeaulieu97/palettekit/pkg/errors"
)

// Source is anything resolution can fall back to: a Storage or another
// Redirector. The interface is sealed to this package.
type Source interface {
	resolve(k Kind, state State, w *walk) (any, error)
	label() string
}

// Redirector is a re-pointable reference to a Source. It does not own its
// target; a shared base storage typically outlives every redirector aimed
// at it.
//
// An inherit redirector carries a fixed state tag and always asks its target
// for that state, whatever state the caller is resolving.
type Redirector struct {
	name    string
	target  Source
	inherit bool
	tag     State
}

// NewRedirector returns a redirector that passes the requested state through.
func NewRedirector(name string, target Source) *Redirector {
	return &Redirector{name: name, target: normalizeSource(target)}
}

// NewInheritRedirector returns a redirector pinned to tag.
func NewInheritRedirector(name string, target Source, tag State) *Redirector {
	return &Redirector{name: name, target: normalizeSource(target), inherit: true, tag: tag}
}

// Name returns the label used in error messages.
func (r *Redirector) Name() string { return r.name }

// Target returns the current target, or nil.
func (r *Redirector) Target() Source { return r.target }

// SetTarget re-points the redirector. Passing nil leaves it dangling, which
// resolution reports as a DanglingRedirectError.
func (r *Redirector) SetTarget(target Source) {
	r.target = normalizeSource(target)
}

// Tag returns the pinned state of an inherit redirector.
func (r *Redirector) Tag() (State, bool) {
	return r.tag, r.inherit
}

// ResolveValue resolves k through the redirector as a fresh resolution.
func (r *Redirector) ResolveValue(k Kind, state State) (any, error) {
	if err := checkRequest(r.name, k, state); err != nil {
		return nil, err
	}
	return r.resolve(k, state, newWalk(k, state))
}

func (r *Redirector) resolve(k Kind, state State, w *walk) (any, error) {
	if err := w.enter(r); err != nil {
		return nil, err
	}
	if r.target == nil {
		return nil, pkgerrors.NewDanglingRedirectError(r.name, k.String(), state.String())
	}
	if r.inherit {
		state = r.tag
	}
	return r.target.resolve(k, state, w)
}

func (r *Redirector) label() string { return r.name }

// normalizeSource turns typed nil pointers into a nil interface so the
// dangling check cannot be fooled.
func normalizeSource(src Source) Source {
	switch v := src.(type) {
	case nil:
		return nil
	case *Storage:
		if v == nil {
			return nil
		}
	case *Redirector:
		if v == nil {
			return nil
		}
	}
	return src
}
