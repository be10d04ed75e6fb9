package types

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate holds the cached struct metadata for entity validation.
// A single instance is safe for concurrent use.
var validate = validator.New()

// ValidationError reports the first constraint violated while constructing
// an entity. Message is suitable for showing to the user as is.
type ValidationError struct {
	Entity  string // "book" or "rectangle".
	Field   string // Lower-case field name, e.g. "title".
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is reports ErrInvalidData as a match so callers can test for any
// validation failure without a type assertion.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidData
}

// fieldMessages maps entity struct fields to the message reported when the
// field fails validation.
var fieldMessages = map[string]string{
	"Title":  "Title cannot be empty",
	"Author": "Author cannot be empty",
	"Year":   "Invalid year",
	"Width":  "Width must be greater than 0",
	"Height": "Height must be greater than 0",
}

// checkFields runs struct-tag validation over v and converts the first
// failing field into a *ValidationError. Fields are checked in declaration
// order.
func checkFields(entity string, v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("validating %s: %w", entity, err)
	}

	fe := fieldErrs[0]
	msg, ok := fieldMessages[fe.StructField()]
	if !ok {
		msg = fmt.Sprintf("Invalid %s", strings.ToLower(fe.Field()))
	}
	return &ValidationError{
		Entity:  entity,
		Field:   strings.ToLower(fe.Field()),
		Message: msg,
	}
}
