// Package forms validates CRUD form parameters via struct tags.
package forms

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Check validates a params struct and reports the first violated rule.
func Check(params any) error {
	err := validate.Struct(params)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Errorf("field %s failed %q validation", fe.Field(), fe.Tag())
	}
	return fmt.Errorf("validating form: %w", err)
}
