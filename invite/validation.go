package invite

import (
	"fmt"
	"strconv"
	"strings"
)

// ValidateRecord checks a submitted record against the definition's field
// schema. Every declared field must be present and non-empty; the wizard
// enforces this client-side but the server validates again because the
// client is untrusted. Kind-specific encoding is checked where it matters
// for rendering: image values must be data URIs and integer values must be
// numeric strings.
func ValidateRecord(def TemplateDefinition, record Record) error {
	for _, field := range def.Fields {
		value, ok := record[field.Name]
		if !ok || strings.TrimSpace(value) == "" {
			return NewError(KindMissingField, fmt.Sprintf("field %q is required", field.Name), nil)
		}

		switch field.Kind {
		case FieldImage:
			if !strings.HasPrefix(value, "data:") {
				return NewError(KindValidation, fmt.Sprintf("field %q must be a data URI", field.Name), nil)
			}
		case FieldInteger:
			if _, err := strconv.Atoi(strings.TrimSpace(value)); err != nil {
				return NewError(KindValidation, fmt.Sprintf("field %q must be numeric", field.Name), nil)
			}
		}
	}
	return nil
}
