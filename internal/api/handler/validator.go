package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
func NewValidator() *echoValidator {
	return &echoValidator{v: validator.New()}
}

// Validate satisfies the echo.Validator interface. Only the first violation
// is reported, with presence checked across all fields before any range or
// length rule, matching the order the API contract promises.
func (ev *echoValidator) Validate(i any) error {
	err := ev.v.Struct(i)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}

	for _, fe := range ve {
		if fe.Tag() == "required" {
			return errors.New("All fields are required")
		}
	}
	return errors.New(fieldError(ve[0]))
}

// fieldError maps a single violation to its user-facing message.
func fieldError(fe validator.FieldError) string {
	switch strings.ToLower(fe.Field()) {
	case "name":
		return "Hero name must be 50 characters or less"
	case "style":
		return "Hero style must be 255 characters or less"
	case "health":
		return "Hero health must be at least 1000"
	case "damage":
		return "Hero damage must be 100 or less"
	case "resistance":
		return "Hero resistance must be between 0.0 and 10.0"
	case "username", "email", "password":
		return fmt.Sprintf("%s is invalid", strings.ToLower(fe.Field()))
	}
	return fmt.Sprintf("%s failed validation (%s)", strings.ToLower(fe.Field()), fe.Tag())
}
