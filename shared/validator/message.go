package validator

import (
	"errors"
	"fmt"

	val "github.com/go-playground/validator/v10"
)

// message maps the first violated rule to a human-readable string.
// Unknown tags fall back to the library's own message.
func message(err error) string {
	var valErrors val.ValidationErrors

	if !errors.As(err, &valErrors) {
		return err.Error()
	}

	for _, valErr := range valErrors {
		field := valErr.Field()
		param := valErr.Param()

		switch valErr.Tag() {
		case "required":
			return fmt.Sprintf("%s is required", field)
		case "gt":
			return fmt.Sprintf("%s must be greater than %s", field, param)
		case "gte", "min":
			return fmt.Sprintf("%s must be greater than or equal to %s", field, param)
		case "lte", "max":
			return fmt.Sprintf("%s must be less than or equal to %s", field, param)
		case "oneof":
			return fmt.Sprintf("%s must be one of %s", field, param)
		case "email":
			return fmt.Sprintf("%s must be a valid email address", field)
		}
	}

	return valErrors.Error()
}
