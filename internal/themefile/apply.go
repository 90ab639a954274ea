package themefile

import (
	"github.com/alexisbeaulieu97/palettekit/internal/palette"
	"github.com/alexisbeaulieu97/palettekit/internal/theme"
)

// Apply replaces the contents of p with doc: overrides and redirects are
// cleared, the base is switched when it differs, and the document's values
// are written. Subscribers of p see a single notification. The document is
// validated first, so an invalid document leaves p untouched.
func Apply(doc *Document, p *theme.Palette) error {
	pl, err := compile(doc, p.Registry())
	if err != nil {
		return err
	}

	var base *theme.Base
	if pl.base != p.Base().Name() {
		if base, err = theme.BaseByName(pl.base); err != nil {
			return err
		}
	}

	return p.Batch(func() error {
		if _, err := p.Reset(); err != nil {
			return err
		}
		if base != nil {
			if err := p.SetBase(base); err != nil {
				return err
			}
		}
		for _, f := range pl.features {
			if f.redirect != "" {
				if err := p.RedirectFeature(f.name, f.redirect); err != nil {
					return err
				}
			}
			for _, o := range f.overrides {
				if _, err := p.SetValue(f.name, o.kind, o.state, o.value); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// Build creates a palette named after doc, over doc's base, with doc
// applied.
func Build(doc *Document, registry *theme.Registry) (*theme.Palette, error) {
	pl, err := compile(doc, registry)
	if err != nil {
		return nil, err
	}
	base, err := theme.BaseByName(pl.base)
	if err != nil {
		return nil, err
	}
	p, err := theme.NewPalette(doc.Name, registry, base)
	if err != nil {
		return nil, err
	}
	if err := Apply(doc, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Snapshot describes p as a document. Only features that carry an override
// or a redirect are listed, and only the states that were set.
func Snapshot(p *theme.Palette) *Document {
	doc := &Document{
		Version: CurrentVersion,
		Name:    p.Name(),
		Base:    p.Base().Name(),
	}

	for _, f := range p.Registry().Features() {
		s, _ := p.Storage(f.Name)
		redirect, _ := p.Redirect(f.Name)
		if s.IsDefault() && redirect == "" {
			continue
		}

		entry := Feature{Name: f.Name, Redirect: redirect}
		for _, state := range f.AllStates() {
			b, _ := s.Bucket(state)
			if b.IsDefault() {
				continue
			}
			values := make(map[string]string, len(f.Kinds))
			for _, k := range b.Kinds() {
				if v, ok := s.Value(k, state); ok {
					values[k.String()] = palette.FormatValue(k, v)
				}
			}
			if entry.States == nil {
				entry.States = make(map[string]map[string]string)
			}
			entry.States[state.String()] = values
		}
		doc.Features = append(doc.Features, entry)
	}
	return doc
}
