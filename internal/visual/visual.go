// Package visual hosts palette storages the way a control does: it owns the
// storages it renders from, acts as the root of their notification tree and
// re-points their redirects when it moves to another palette.
package visual

// Visual is the root sink of a notification tree. It records invalidations
// instead of painting.
type Visual struct {
	name         string
	paints       int
	layouts      int
	onInvalidate func(needLayout bool)
}

// NewVisual returns a visual with no pending invalidations.
func NewVisual(name string) *Visual {
	return &Visual{name: name}
}

// Name returns the visual name.
func (v *Visual) Name() string { return v.name }

// PerformNeedPaint schedules a repaint, and a layout pass when needLayout is
// set. It is the sink handed to the visual's top-level storages.
func (v *Visual) PerformNeedPaint(needLayout bool) {
	v.paints++
	if needLayout {
		v.layouts++
	}
	if v.onInvalidate != nil {
		v.onInvalidate(needLayout)
	}
}

// OnInvalidate installs a hook called after every invalidation.
func (v *Visual) OnInvalidate(fn func(needLayout bool)) {
	v.onInvalidate = fn
}

// Paints returns how many repaints were requested.
func (v *Visual) Paints() int { return v.paints }

// Layouts returns how many of those repaints also asked for layout.
func (v *Visual) Layouts() int { return v.layouts }
