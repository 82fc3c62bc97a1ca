package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// echoValidator adapts go-playground/validator to echo's Validator
// interface. Failures are reported under the field's json name, so the
// messages line up with the payload the client actually sent
// ("return_mode", not "ReturnMode").
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns the validator assigned to echo.Echo.Validator.
func NewValidator() *echoValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return &echoValidator{v: v}
}

// Validate satisfies the echo.Validator interface.
func (ev *echoValidator) Validate(i any) error {
	err := ev.v.Struct(i)
	if err == nil {
		return nil
	}

	var fields validator.ValidationErrors
	if !errors.As(err, &fields) {
		return err
	}

	msgs := make([]string, 0, len(fields))
	for _, fe := range fields {
		msgs = append(msgs, describeFieldError(fe))
	}
	return errors.New(strings.Join(msgs, "; "))
}

// describeFieldError renders one failure for the tags this API uses:
// required, email, oneof (reasons, modes, statuses, roles) and min/max
// (password length, satisfaction score).
func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return fe.Field() + " must be a valid email address"
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid (%s)", fe.Field(), fe.Tag())
	}
}
