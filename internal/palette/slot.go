package palette

import "fmt"

// Slot holds one overridable value. Unset is tracked separately from the
// value, so an explicitly stored zero value still counts as set.
type Slot[T comparable] struct {
	value T
	set   bool
}

// Get returns the stored value and whether one is set.
func (s *Slot[T]) Get() (T, bool) {
	return s.value, s.set
}

// IsSet reports whether a value is stored.
func (s *Slot[T]) IsSet() bool {
	return s.set
}

// Set stores v and reports whether the slot changed.
func (s *Slot[T]) Set(v T) bool {
	if s.set && s.value == v {
		return false
	}
	s.value = v
	s.set = true
	return true
}

// Reset returns the slot to unset and reports whether it changed.
func (s *Slot[T]) Reset() bool {
	if !s.set {
		return false
	}
	var zero T
	s.value = zero
	s.set = false
	return true
}

// anySlot lets buckets hold slots of different value types.
type anySlot interface {
	IsSet() bool
	Reset() bool
	load() (any, bool)
	store(v any) (bool, error)
}

func (s *Slot[T]) load() (any, bool) {
	if !s.set {
		return nil, false
	}
	return s.value, true
}

func (s *Slot[T]) store(v any) (bool, error) {
	typed, ok := v.(T)
	if !ok {
		var want T
		return false, fmt.Errorf("value of type %T cannot be stored in a %T slot", v, want)
	}
	return s.Set(typed), nil
}
