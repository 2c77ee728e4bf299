// Package validation contains the logic for validating request data.
//
// It uses the validator library to enforce rules defined in struct tags and
// converts failures into the field-error format clients understand.
package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/lightbnb/lightbnb/internal/errs"
)

var validate = validator.New()

// Struct validates s against its `validate` struct tags. On failure it
// returns a 400 *errs.HTTPError carrying one FieldError per failed field.
func Struct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errs.NewBadRequestError("Validation failed: "+err.Error(), false, nil, nil)
	}

	fieldErrors := make([]errs.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: strings.ToLower(fe.Field()),
			Error: messageForTag(fe),
		})
	}

	return errs.NewBadRequestError("Validation failed", false, nil, fieldErrors)
}

// messageForTag phrases a single rule failure for clients.
func messageForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "gte":
		return fmt.Sprintf("must be %s or more", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "url":
		return "must be a valid URL"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
