package domain

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is shared by every filter; validator.Validate caches struct
// metadata and is safe for concurrent use.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report query parameter names instead of Go field names.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("query"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	return v
}

// FieldError describes one rejected query parameter.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// String renders the error as "<field>: <message>".
func (e FieldError) String() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors lists every rejected parameter of a request.
// It matches ErrInvalidFilter with errors.Is.
type ValidationErrors []FieldError

// Error implements error.
func (v ValidationErrors) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidFilter, strings.Join(v.Messages(), "; "))
}

// Is reports whether target is ErrInvalidFilter.
func (v ValidationErrors) Is(target error) bool {
	return target == ErrInvalidFilter
}

// Messages returns one human-readable line per field error.
func (v ValidationErrors) Messages() []string {
	messages := make([]string, 0, len(v))
	for _, fe := range v {
		messages = append(messages, fe.String())
	}
	return messages
}

// AsValidationErrors extracts ValidationErrors from err, if present.
func AsValidationErrors(err error) (ValidationErrors, bool) {
	var verrs ValidationErrors
	if errors.As(err, &verrs) {
		return verrs, true
	}
	return nil, false
}

// checkStruct runs the struct tag rules and appends their failures to errs.
func checkStruct(input interface{}, errs ValidationErrors) error {
	if err := validate.Struct(input); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return fmt.Errorf("failed to validate filter: %w", err)
		}
		for _, fe := range fieldErrs {
			errs = append(errs, FieldError{Field: fe.Field(), Message: ruleMessage(fe)})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "gte":
		return "must be ≥ " + fe.Param()
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "oneof":
		return "must be one of: " + strings.Join(strings.Fields(fe.Param()), ", ")
	default:
		return "is invalid"
	}
}
