package palette

import (
	"fmt"

	pkgerrors "github.com/alexisbeaulieu97/palettekit/pkg/errors"
)

// NeedPaintHandler receives change notifications. needLayout is true when
// the change can alter size as well as appearance.
type NeedPaintHandler func(needLayout bool)

// Storage is the per-feature container of state buckets. Lookups that miss
// every bucket fall back through the storage's own redirector; mutations are
// reported to the single sink supplied at construction.
type Storage struct {
	name      string
	feature   *Feature
	buckets   map[State]*Bucket
	redirect  *Redirector
	needPaint NeedPaintHandler
}

// BaseValues seeds a base storage: state, then kind, then value.
type BaseValues map[State]map[Kind]any

// NewStorage builds an override storage that falls back to redirect.
// needPaint may be nil for detached storages.
func NewStorage(name string, feature *Feature, redirect Source, needPaint NeedPaintHandler) (*Storage, error) {
	if err := feature.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		name = feature.Name
	}
	redirect = normalizeSource(redirect)
	if redirect == nil {
		return nil, pkgerrors.NewConfigurationError(name, "storage requires a redirect that terminates at a base palette", nil)
	}

	s := newStorage(name, feature, needPaint)
	s.redirect = NewRedirector(name+"/redirect", redirect)
	return s, nil
}

// NewBaseStorage builds a terminal storage. Every kind of the feature must
// have a value in the Common state, so resolution against it always
// succeeds. Values for other declared states are optional.
func NewBaseStorage(name string, feature *Feature, values BaseValues) (*Storage, error) {
	if err := feature.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		name = feature.Name
	}

	s := newStorage(name, feature, nil)
	for state, byKind := range values {
		b, ok := s.buckets[state]
		if !ok {
			return nil, pkgerrors.NewConfigurationError(name, fmt.Sprintf("base values given for undeclared state %s", state), nil)
		}
		for k, v := range byKind {
			slot, ok := b.slots[k]
			if !ok {
				return nil, pkgerrors.NewConfigurationError(name, fmt.Sprintf("base values given for undeclared kind %s", k), nil)
			}
			if _, err := slot.store(v); err != nil {
				return nil, pkgerrors.NewConfigurationError(name, fmt.Sprintf("base value for %s in state %s", k, state), err)
			}
		}
	}

	common := s.buckets[StateCommon]
	for _, k := range feature.Kinds {
		if !common.slots[k].IsSet() {
			return nil, pkgerrors.NewConfigurationError(name, fmt.Sprintf("base palette has no common value for %s", k), nil)
		}
	}
	return s, nil
}

func newStorage(name string, feature *Feature, needPaint NeedPaintHandler) *Storage {
	s := &Storage{
		name:      name,
		feature:   feature,
		buckets:   make(map[State]*Bucket, len(feature.States)+1),
		needPaint: needPaint,
	}
	for _, state := range feature.AllStates() {
		s.buckets[state] = newBucket(state, feature.Kinds)
	}
	return s
}

// Name returns the storage label used in errors.
func (s *Storage) Name() string { return s.name }

// Feature returns the declaration the storage was built from.
func (s *Storage) Feature() *Feature { return s.feature }

// IsBase reports whether the storage is terminal.
func (s *Storage) IsBase() bool { return s.redirect == nil }

// Redirector returns the storage's own redirector, nil for base storages.
func (s *Storage) Redirector() *Redirector { return s.redirect }

// Bucket returns the bucket for state.
func (s *Storage) Bucket(state State) (*Bucket, bool) {
	b, ok := s.buckets[state]
	return b, ok
}

// SetRedirector re-points the storage's fallback. It does not notify; the
// caller triggers one repaint after a theme swap.
func (s *Storage) SetRedirector(target Source) error {
	if s.redirect == nil {
		return pkgerrors.NewConfigurationError(s.name, "base storages have no redirector", nil)
	}
	s.redirect.SetTarget(target)
	return nil
}

// IsDefault reports whether nothing has been overridden. It is recomputed on
// every call.
func (s *Storage) IsDefault() bool {
	for _, b := range s.buckets {
		if !b.IsDefault() {
			return false
		}
	}
	return true
}

// PerformNeedPaint forwards a change notification to the sink.
func (s *Storage) PerformNeedPaint(needLayout bool) {
	if s.needPaint == nil {
		return
	}
	s.needPaint(needLayout || s.feature.Layout)
}

// Get reads the raw slot for attr in state without resolution.
func Get[T comparable](s *Storage, attr Attribute[T], state State) (T, bool) {
	slot, ok := SlotOf(s.buckets[state], attr)
	if !ok {
		var zero T
		return zero, false
	}
	return slot.Get()
}

// Set stores v and notifies once when the value changed. Setting an
// undeclared state or attribute is a programming error and panics with a
// *errors.ConfigurationError.
func Set[T comparable](s *Storage, attr Attribute[T], state State, v T) bool {
	if !mustSlot(s, attr, state).Set(v) {
		return false
	}
	s.PerformNeedPaint(attr.kind.NeedsLayout())
	return true
}

// Unset clears attr in state, notifying when a value was removed.
func Unset[T comparable](s *Storage, attr Attribute[T], state State) bool {
	if !mustSlot(s, attr, state).Reset() {
		return false
	}
	s.PerformNeedPaint(attr.kind.NeedsLayout())
	return true
}

func mustSlot[T comparable](s *Storage, attr Attribute[T], state State) *Slot[T] {
	b, ok := s.buckets[state]
	if !ok {
		panic(pkgerrors.NewConfigurationError(s.name, fmt.Sprintf("state %s is not declared", state), nil))
	}
	slot, ok := SlotOf(b, attr)
	if !ok {
		panic(pkgerrors.NewConfigurationError(s.name, fmt.Sprintf("attribute %s is not declared", attr.kind), nil))
	}
	return slot
}

// Value reads a raw slot by kind.
func (s *Storage) Value(k Kind, state State) (any, bool) {
	b, ok := s.buckets[state]
	if !ok {
		return nil, false
	}
	return b.load(k)
}

// SetValue is the untyped setter used by theme files. The caller supplies
// the layout flag. Undeclared targets and mistyped values are reported as
// errors rather than panics.
func (s *Storage) SetValue(k Kind, state State, v any, needLayout bool) (bool, error) {
	slot, err := s.slot(k, state)
	if err != nil {
		return false, err
	}
	changed, err := slot.store(v)
	if err != nil {
		return false, pkgerrors.NewConfigurationError(s.name, fmt.Sprintf("setting %s in state %s", k, state), err)
	}
	if changed {
		s.PerformNeedPaint(needLayout)
	}
	return changed, nil
}

// ResetValue is the untyped form of Unset.
func (s *Storage) ResetValue(k Kind, state State) (bool, error) {
	slot, err := s.slot(k, state)
	if err != nil {
		return false, err
	}
	if !slot.Reset() {
		return false, nil
	}
	s.PerformNeedPaint(k.NeedsLayout())
	return true, nil
}

func (s *Storage) slot(k Kind, state State) (anySlot, error) {
	b, ok := s.buckets[state]
	if !ok {
		return nil, pkgerrors.NewConfigurationError(s.name, fmt.Sprintf("state %s is not declared", state), nil)
	}
	slot, ok := b.slots[k]
	if !ok {
		return nil, pkgerrors.NewConfigurationError(s.name, fmt.Sprintf("attribute %s is not declared", k), nil)
	}
	return slot, nil
}

// Reset clears every slot in every bucket with a single notification.
func (s *Storage) Reset() bool {
	var changed, layout bool
	for _, state := range s.feature.AllStates() {
		c, l := s.buckets[state].reset()
		changed = changed || c
		layout = layout || l
	}
	if changed {
		s.PerformNeedPaint(layout)
	}
	return changed
}

// PopulateFromBase copies, for each slot of state that is still unset, the
// value the storage would inherit for state into the bucket, turning an
// inherited value into an explicit one. Slots already set are left alone,
// so a second call is a no-op. On error nothing is written.
func (s *Storage) PopulateFromBase(state State) (bool, error) {
	changed, layout, err := s.populate(state)
	if err != nil {
		return false, err
	}
	if changed {
		s.PerformNeedPaint(layout)
	}
	return changed, nil
}

// PopulateAll populates every declared concrete state, notifying once.
func (s *Storage) PopulateAll() (bool, error) {
	var changed, layout bool
	for _, state := range s.feature.States {
		c, l, err := s.populate(state)
		if err != nil {
			if changed {
				s.PerformNeedPaint(layout)
			}
			return changed, err
		}
		changed = changed || c
		layout = layout || l
	}
	if changed {
		s.PerformNeedPaint(layout)
	}
	return changed, nil
}

func (s *Storage) populate(state State) (changed, layout bool, err error) {
	b, ok := s.buckets[state]
	if !ok {
		return false, false, pkgerrors.NewConfigurationError(s.name, fmt.Sprintf("state %s is not declared", state), nil)
	}

	pending := make(map[Kind]any, len(b.kinds))
	for _, k := range b.kinds {
		if b.slots[k].IsSet() {
			continue
		}
		v, err := s.inherited(k, state)
		if err != nil {
			return false, false, err
		}
		pending[k] = v
	}

	for _, k := range b.kinds {
		v, ok := pending[k]
		if !ok {
			continue
		}
		if c, _ := b.slots[k].store(v); c {
			changed = true
			layout = layout || k.NeedsLayout()
		}
	}
	return changed, layout, nil
}

// inherited resolves k as if state's own bucket were empty: Common first,
// then the storage's redirect.
func (s *Storage) inherited(k Kind, state State) (any, error) {
	if state != StateCommon {
		if v, ok := s.buckets[StateCommon].load(k); ok {
			return v, nil
		}
	}
	if s.redirect == nil {
		return nil, pkgerrors.NewConfigurationError(s.name, fmt.Sprintf("no inherited value for %s in state %s", k, state), nil)
	}
	w := newWalk(k, state)
	if err := w.enter(s); err != nil {
		return nil, err
	}
	return s.redirect.resolve(k, state, w)
}

func (s *Storage) label() string { return s.name }
