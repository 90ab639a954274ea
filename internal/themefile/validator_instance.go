package themefile

import (
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/palettekit/internal/palette"
	"github.com/alexisbeaulieu97/palettekit/internal/theme"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern      = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	featureNamePattern = regexp.MustCompile(`^[a-z][a-z0-9_]*(?:\.[a-z][a-z0-9_]*)*$`)
)

// validatorInstance configures and returns the shared validator instance used across the package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("feature_name", func(fl validator.FieldLevel) bool {
			return featureNamePattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("palette_state", func(fl validator.FieldLevel) bool {
			_, err := palette.ParseState(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("base_palette", func(fl validator.FieldLevel) bool {
			name := strings.ToLower(strings.TrimSpace(fl.Field().String()))
			for _, known := range theme.BaseNames() {
				if name == known {
					return true
				}
			}
			return false
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns the configured validator for use outside the package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}
