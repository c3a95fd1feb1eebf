// Validation of email confirmation requests. Presence only, the values themselves are not checked.

package email

import (
	"Callboard/internal/entity"
	"Callboard/internal/errors"
	"Callboard/pkg/validation"
)

// Message returned to the caller when any required field is absent.
const missingFieldsMessage = "missing fields"

// validateConfirmation returns the absent fields and a validation error when there are any.
func validateConfirmation(req entity.EmailConfirmation) ([]string, error) {
	if missing := validation.Missing(req); len(missing) > 0 {
		return missing, errors.Validation(missingFieldsMessage)
	}
	return nil, nil
}
