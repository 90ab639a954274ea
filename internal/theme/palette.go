package theme

import (
	"fmt"
	"sort"

	"github.com/alexisbeaulieu97/palettekit/internal/logger"
	"github.com/alexisbeaulieu97/palettekit/internal/palette"
	pkgerrors "github.com/alexisbeaulieu97/palettekit/pkg/errors"
)

// Palette is a custom palette: one override storage per registered feature.
// Each override storage falls back through a shared per-feature redirector to
// the active base, so switching the base re-points every feature at once.
//
// The palette is the root sink of its storages. Notifications are fanned out
// to subscribers, and can be coalesced with Batch.
type Palette struct {
	name      string
	registry  *Registry
	base      *Base
	baseLinks map[string]*palette.Redirector
	storages  map[string]*palette.Storage
	links     map[string]string

	subscribers map[int]palette.NeedPaintHandler
	nextSub     int

	batchDepth    int
	pending       bool
	pendingLayout bool

	log *logger.Logger
}

// NewPalette builds an empty custom palette over base.
func NewPalette(name string, registry *Registry, base *Base) (*Palette, error) {
	if registry == nil {
		registry = DefaultRegistry()
	}
	if base == nil {
		return nil, pkgerrors.NewConfigurationError("palette:"+name, "a base palette is required", nil)
	}

	p := &Palette{
		name:        name,
		registry:    registry,
		base:        base,
		baseLinks:   make(map[string]*palette.Redirector, len(registry.names)),
		storages:    make(map[string]*palette.Storage, len(registry.names)),
		links:       make(map[string]string),
		subscribers: make(map[int]palette.NeedPaintHandler),
	}

	for _, f := range registry.Features() {
		bs, ok := base.Storage(f.Name)
		if !ok {
			return nil, pkgerrors.NewConfigurationError("palette:"+name, fmt.Sprintf("base %s has no storage for %s", base.Name(), f.Name), nil)
		}
		link := palette.NewRedirector(fmt.Sprintf("palette:%s/base/%s", name, f.Name), bs)
		s, err := palette.NewStorage(fmt.Sprintf("palette:%s/%s", name, f.Name), f, link, p.notify)
		if err != nil {
			return nil, err
		}
		p.baseLinks[f.Name] = link
		p.storages[f.Name] = s
	}
	return p, nil
}

// SetLogger attaches a logger used for base switches and redirects.
func (p *Palette) SetLogger(l *logger.Logger) {
	p.log = l.With("palette", p.name)
}

// Name returns the palette name.
func (p *Palette) Name() string { return p.name }

// Registry returns the feature table the palette was built from.
func (p *Palette) Registry() *Registry { return p.registry }

// Base returns the active base palette.
func (p *Palette) Base() *Base { return p.base }

// Storage returns the override storage for a feature.
func (p *Palette) Storage(feature string) (*palette.Storage, bool) {
	s, ok := p.storages[feature]
	return s, ok
}

// BaseRedirector returns the shared redirector that links a feature to the
// active base.
func (p *Palette) BaseRedirector(feature string) (*palette.Redirector, bool) {
	r, ok := p.baseLinks[feature]
	return r, ok
}

func (p *Palette) storage(feature string) (*palette.Storage, error) {
	s, ok := p.storages[feature]
	if !ok {
		return nil, pkgerrors.NewConfigurationError("palette:"+p.name, fmt.Sprintf("unknown feature %q", feature), nil)
	}
	return s, nil
}

// Subscribe registers a handler for coalesced change notifications. The
// returned function removes it.
func (p *Palette) Subscribe(h palette.NeedPaintHandler) func() {
	id := p.nextSub
	p.nextSub++
	p.subscribers[id] = h
	return func() { delete(p.subscribers, id) }
}

func (p *Palette) notify(needLayout bool) {
	if p.batchDepth > 0 {
		p.pending = true
		p.pendingLayout = p.pendingLayout || needLayout
		return
	}
	p.deliver(needLayout)
}

func (p *Palette) deliver(needLayout bool) {
	ids := make([]int, 0, len(p.subscribers))
	for id := range p.subscribers {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		p.subscribers[id](needLayout)
	}
}

// Batch runs fn with notification delivery suspended. Afterwards, if any
// storage notified inside fn, subscribers receive exactly one notification
// carrying the OR of the layout flags. Batches nest; only the outermost one
// delivers. Notifications raised before an error are still delivered.
func (p *Palette) Batch(fn func() error) error {
	p.batchDepth++
	defer func() {
		p.batchDepth--
		if p.batchDepth > 0 || !p.pending {
			return
		}
		layout := p.pendingLayout
		p.pending, p.pendingLayout = false, false
		p.deliver(layout)
	}()
	return fn()
}

// SetBase re-points every feature at base and notifies once with layout.
func (p *Palette) SetBase(base *Base) error {
	if base == nil {
		return pkgerrors.NewConfigurationError("palette:"+p.name, "a base palette is required", nil)
	}
	targets := make(map[string]*palette.Storage, len(p.baseLinks))
	for name := range p.baseLinks {
		bs, ok := base.Storage(name)
		if !ok {
			return pkgerrors.NewConfigurationError("palette:"+p.name, fmt.Sprintf("base %s has no storage for %s", base.Name(), name), nil)
		}
		targets[name] = bs
	}

	return p.Batch(func() error {
		for name, link := range p.baseLinks {
			link.SetTarget(targets[name])
		}
		p.log.Debug(fmt.Sprintf("base switched from %s to %s", p.base.Name(), base.Name()))
		p.base = base
		p.notify(true)
		return nil
	})
}

// RedirectFeature makes feature fall back to the override storage of target
// instead of the base. An empty target restores the base link. target must
// declare every kind of feature.
func (p *Palette) RedirectFeature(feature, target string) error {
	s, err := p.storage(feature)
	if err != nil {
		return err
	}

	if target == "" {
		if err := s.SetRedirector(p.baseLinks[feature]); err != nil {
			return err
		}
		delete(p.links, feature)
		p.notify(true)
		return nil
	}

	ts, err := p.storage(target)
	if err != nil {
		return err
	}
	for _, k := range s.Feature().Kinds {
		if !ts.Feature().HasKind(k) {
			return pkgerrors.NewConfigurationError("palette:"+p.name, fmt.Sprintf("%s cannot redirect to %s: %s is not declared there", feature, target, k), nil)
		}
	}
	if err := s.SetRedirector(ts); err != nil {
		return err
	}
	p.links[feature] = target
	p.log.ForFeature(feature).Debug("redirected to " + target)
	p.notify(true)
	return nil
}

// Redirect returns the feature a feature has been redirected to, if any.
func (p *Palette) Redirect(feature string) (string, bool) {
	t, ok := p.links[feature]
	return t, ok
}

// IsDefault reports whether no feature carries an override or a redirect.
func (p *Palette) IsDefault() bool {
	if len(p.links) > 0 {
		return false
	}
	for _, s := range p.storages {
		if !s.IsDefault() {
			return false
		}
	}
	return true
}

// ResolveValue resolves kind for state on a feature.
func (p *Palette) ResolveValue(feature string, k palette.Kind, state palette.State) (any, error) {
	s, err := p.storage(feature)
	if err != nil {
		return nil, err
	}
	return s.ResolveValue(k, state)
}

// ResolveAs is the typed form of (*Palette).ResolveValue.
func ResolveAs[T comparable](p *Palette, feature string, attr palette.Attribute[T], state palette.State) (T, error) {
	s, err := p.storage(feature)
	if err != nil {
		var zero T
		return zero, err
	}
	return palette.Resolve(s, attr, state)
}

// SetValue writes one override with the kind's own layout flag.
func (p *Palette) SetValue(feature string, k palette.Kind, state palette.State, v any) (bool, error) {
	s, err := p.storage(feature)
	if err != nil {
		return false, err
	}
	return s.SetValue(k, state, v, k.NeedsLayout())
}

// PopulateFromBase materializes every designated state of one feature, or of
// all features when feature is empty, with a single notification.
func (p *Palette) PopulateFromBase(feature string) (bool, error) {
	targets := p.storages
	if feature != "" {
		s, err := p.storage(feature)
		if err != nil {
			return false, err
		}
		targets = map[string]*palette.Storage{feature: s}
	}

	var changed bool
	err := p.Batch(func() error {
		for _, name := range p.sortedNames(targets) {
			c, err := targets[name].PopulateAll()
			changed = changed || c
			if err != nil {
				return err
			}
		}
		return nil
	})
	return changed, err
}

// Reset clears every override and redirect with a single notification. It
// stops at the first feature whose base link cannot be restored; features
// reset before that stay reset.
func (p *Palette) Reset() (bool, error) {
	var changed bool
	err := p.Batch(func() error {
		for _, name := range p.registry.names {
			if _, linked := p.links[name]; linked {
				if err := p.RedirectFeature(name, ""); err != nil {
					return err
				}
				changed = true
			}
			if p.storages[name].Reset() {
				changed = true
			}
		}
		return nil
	})
	return changed, err
}

func (p *Palette) sortedNames(m map[string]*palette.Storage) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
