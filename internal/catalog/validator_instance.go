package catalog

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/playground/internal/codegen"
	"github.com/alexisbeaulieu97/playground/internal/styling"
	"github.com/alexisbeaulieu97/playground/internal/tokens"
	"github.com/alexisbeaulieu97/playground/internal/ui/components"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator instance used across the catalog package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" || name == "" {
				return field.Name
			}
			return name
		})

		_ = v.RegisterValidation("palette_color", func(fl validator.FieldLevel) bool {
			return tokens.ValidColor(fl.Field().String())
		})

		_ = v.RegisterValidation("approach_kind", func(fl validator.FieldLevel) bool {
			_, ok := styling.ParseApproach(fl.Field().String())
			return ok
		})

		_ = v.RegisterValidation("component_name", func(fl validator.FieldLevel) bool {
			return components.Known(fl.Field().String())
		})

		_ = v.RegisterValidation("code_template", func(fl validator.FieldLevel) bool {
			_, err := codegen.Parse("validate", fl.Field().String())
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns a configured validator instance for use outside the catalog package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}
