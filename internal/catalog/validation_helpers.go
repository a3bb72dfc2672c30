package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	playerrors "github.com/alexisbeaulieu97/playground/pkg/errors"
)

// Validate checks a catalog document against its schema.
func Validate(doc *Document) error {
	if doc == nil {
		return playerrors.NewValidationError("catalog", "catalog document is nil", nil)
	}
	return convertValidationError(validatorInstance().Struct(doc))
}

// convertValidationError normalizes validator errors into playground validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return playerrors.NewValidationError(field, msg, err)
	}

	return playerrors.NewValidationError("catalog", err.Error(), err)
}

// yamlishFieldName drops the root struct from the namespace. Segments
// already carry their yaml names.
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.Namespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	return strings.Join(parts, ".")
}

func fieldForSlot(demo, approach, slot int) string {
	return fmt.Sprintf("demos[%d].approaches[%d].slots[%d].name", demo, approach, slot)
}
