package themefile

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/palettekit/internal/palette"
	"github.com/alexisbeaulieu97/palettekit/internal/theme"
	pkgerrors "github.com/alexisbeaulieu97/palettekit/pkg/errors"
)

type override struct {
	state palette.State
	kind  palette.Kind
	value any
}

// plan is a validated document with every raw value already parsed, so
// applying it cannot fail half way through.
type plan struct {
	base     string
	features []featurePlan
}

type featurePlan struct {
	name      string
	redirect  string
	overrides []override
}

// Validate performs schema and cross-field validation of doc against the
// features in registry.
func Validate(doc *Document, registry *theme.Registry) error {
	_, err := compile(doc, registry)
	return err
}

func compile(doc *Document, registry *theme.Registry) (*plan, error) {
	if doc == nil {
		return nil, pkgerrors.NewValidationError("theme", "document is nil", nil)
	}
	if registry == nil {
		registry = theme.DefaultRegistry()
	}

	if err := validatorInstance().Struct(doc); err != nil {
		return nil, convertValidationError(err)
	}

	p := &plan{base: strings.ToLower(strings.TrimSpace(doc.BaseName()))}
	seen := make(map[string]int, len(doc.Features))

	for i, f := range doc.Features {
		if prev, dup := seen[f.Name]; dup {
			return nil, pkgerrors.NewValidationError(fieldForFeature(i, "name"), fmt.Sprintf("feature %q already configured at features[%d]", f.Name, prev), nil)
		}
		seen[f.Name] = i

		decl, ok := registry.Lookup(f.Name)
		if !ok {
			return nil, pkgerrors.NewValidationError(fieldForFeature(i, "name"), fmt.Sprintf("unknown feature %q", f.Name), nil)
		}

		fp := featurePlan{name: f.Name, redirect: f.Redirect}
		if f.Redirect != "" {
			target, ok := registry.Lookup(f.Redirect)
			if !ok {
				return nil, pkgerrors.NewValidationError(fieldForFeature(i, "redirect"), fmt.Sprintf("references unknown feature %q", f.Redirect), nil)
			}
			for _, k := range decl.Kinds {
				if !target.HasKind(k) {
					return nil, pkgerrors.NewValidationError(fieldForFeature(i, "redirect"), fmt.Sprintf("%s does not declare %s", f.Redirect, k), nil)
				}
			}
		}

		overrides, err := compileStates(i, decl, f.States)
		if err != nil {
			return nil, err
		}
		fp.overrides = overrides
		p.features = append(p.features, fp)
	}

	if cycle := detectCycle(doc.Features); len(cycle) > 0 {
		return nil, pkgerrors.NewValidationError("features", fmt.Sprintf("redirect cycle detected: %s", strings.Join(cycle, " -> ")), nil)
	}

	return p, nil
}

func compileStates(index int, decl *palette.Feature, states map[string]map[string]string) ([]override, error) {
	stateNames := make([]string, 0, len(states))
	for name := range states {
		stateNames = append(stateNames, name)
	}
	sort.Strings(stateNames)

	var out []override
	for _, stateName := range stateNames {
		field := fieldForFeature(index, "states."+stateName)
		state, err := palette.ParseState(stateName)
		if err != nil {
			return nil, pkgerrors.NewValidationError(field, err.Error(), err)
		}
		if !decl.Declares(state) {
			return nil, pkgerrors.NewValidationError(field, fmt.Sprintf("state %s is not declared by %s", state, decl.Name), nil)
		}

		kindNames := make([]string, 0, len(states[stateName]))
		for name := range states[stateName] {
			kindNames = append(kindNames, name)
		}
		sort.Strings(kindNames)

		for _, kindName := range kindNames {
			kfield := field + "." + kindName
			k, err := palette.ParseKind(kindName)
			if err != nil {
				return nil, pkgerrors.NewValidationError(kfield, err.Error(), err)
			}
			if !decl.HasKind(k) {
				return nil, pkgerrors.NewValidationError(kfield, fmt.Sprintf("attribute %s is not declared by %s", k, decl.Name), nil)
			}
			v, err := palette.ParseValue(k, states[stateName][kindName])
			if err != nil {
				return nil, pkgerrors.NewValidationError(kfield, err.Error(), err)
			}
			out = append(out, override{state: state, kind: k, value: v})
		}
	}
	return out, nil
}

// convertValidationError normalizes validator errors into validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return pkgerrors.NewValidationError(field, msg, err)
	}

	return pkgerrors.NewValidationError("theme", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	lowered := make([]string, 0, len(parts))
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}

func fieldForFeature(index int, field string) string {
	return fmt.Sprintf("features[%d].%s", index, field)
}
