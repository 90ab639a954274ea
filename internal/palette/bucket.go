package palette

// Bucket holds the slots of one state. The set of kinds is fixed when the
// owning storage is built.
type Bucket struct {
	state State
	kinds []Kind
	slots map[Kind]anySlot
}

func newBucket(state State, declared []Kind) *Bucket {
	b := &Bucket{
		state: state,
		kinds: append([]Kind(nil), declared...),
		slots: make(map[Kind]anySlot, len(declared)),
	}
	for _, k := range declared {
		b.slots[k] = kinds[k].newSlot()
	}
	return b
}

// State returns the state this bucket applies to.
func (b *Bucket) State() State { return b.state }

// Kinds returns the kinds this bucket carries, in feature order.
func (b *Bucket) Kinds() []Kind { return append([]Kind(nil), b.kinds...) }

// IsDefault reports whether every slot is unset.
func (b *Bucket) IsDefault() bool {
	for _, s := range b.slots {
		if s.IsSet() {
			return false
		}
	}
	return true
}

func (b *Bucket) load(k Kind) (any, bool) {
	s, ok := b.slots[k]
	if !ok {
		return nil, false
	}
	return s.load()
}

// reset clears every slot and reports whether any changed and whether any
// changed slot needs layout.
func (b *Bucket) reset() (changed, layout bool) {
	for _, k := range b.kinds {
		if b.slots[k].Reset() {
			changed = true
			layout = layout || k.NeedsLayout()
		}
	}
	return changed, layout
}

// SlotOf returns the typed slot for attr, or false when the bucket does not
// carry that kind.
func SlotOf[T comparable](b *Bucket, attr Attribute[T]) (*Slot[T], bool) {
	if b == nil {
		return nil, false
	}
	s, ok := b.slots[attr.kind]
	if !ok {
		return nil, false
	}
	typed, ok := s.(*Slot[T])
	return typed, ok
}
