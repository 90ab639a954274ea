package themefile

// CurrentVersion is written by Encode.
const CurrentVersion = "1.0.0"

// Document is a theme file: a base palette plus per-feature overrides.
//
//	version: "1.0.0"
//	name: ocean
//	base: dark
//	features:
//	  - name: ribbon.group.collapsed.text
//	    states:
//	      tracking:
//	        text_color: "#ff0000"
//	  - name: ribbon.group.normal.text
//	    redirect: ribbon.group.collapsed.text
type Document struct {
	Version     string    `yaml:"version" validate:"required,semver"`
	Name        string    `yaml:"name" validate:"required,min=1,max=100"`
	Description string    `yaml:"description,omitempty"`
	Base        string    `yaml:"base,omitempty" validate:"omitempty,base_palette"`
	Features    []Feature `yaml:"features,omitempty" validate:"omitempty,dive"`
}

// Feature holds the overrides for one feature of the palette.
type Feature struct {
	Name     string `yaml:"name" validate:"required,feature_name"`
	Redirect string `yaml:"redirect,omitempty" validate:"omitempty,feature_name"`

	// States maps a state name to kind names to raw values, e.g.
	// tracking -> text_color -> "#ff0000".
	States map[string]map[string]string `yaml:"states,omitempty" validate:"omitempty,dive,keys,palette_state,endkeys"`
}

// BaseName returns the base palette name, defaulting to the light base.
func (d *Document) BaseName() string {
	if d.Base == "" {
		return "default"
	}
	return d.Base
}
