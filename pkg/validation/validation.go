// Package validation is the shared request-validation pipeline. Resource
// models declare their constraints as struct tags; every handler path goes
// through Check and gets back a uniform per-field error list.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	apperrors "tripora/pkg/errors"
	"tripora/pkg/logger"
)

type Validator struct {
	validate *validator.Validate
	log      *logger.Logger
}

func New(log *logger.Logger) *Validator {
	v := validator.New()

	if err := v.RegisterValidation("future", validateFuture); err != nil {
		log.Fatal("Failed to register 'future' validator", "error", err)
	}

	// Report json field names so validation errors match the wire format
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	return &Validator{
		validate: v,
		log:      log,
	}
}

// validateFuture requires a time.Time strictly after now.
func validateFuture(fl validator.FieldLevel) bool {
	t, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return false
	}
	return t.After(time.Now())
}

// Check validates v against its struct tags and returns a
// VALIDATION_FAILED AppError naming each offending field, or nil.
func (vd *Validator) Check(v any) error {
	err := vd.validate.Struct(v)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return apperrors.Internal("Validation engine failure", err)
	}

	fields := translate(validationErrs)
	vd.log.Warn("Validation failed", "errors", len(fields))
	return apperrors.ValidationFailed(fields)
}

func translate(errs validator.ValidationErrors) []apperrors.FieldError {
	fields := make([]apperrors.FieldError, 0, len(errs))

	for _, err := range errs {
		message := err.Error()

		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", err.Field())
		case "min":
			message = fmt.Sprintf("%s must be at least %s", err.Field(), err.Param())
		case "max":
			message = fmt.Sprintf("%s must be at most %s", err.Field(), err.Param())
		case "gte":
			message = fmt.Sprintf("%s must be at least %s", err.Field(), err.Param())
		case "email":
			message = fmt.Sprintf("%s must be a valid email address", err.Field())
		case "oneof":
			message = fmt.Sprintf("%s must be one of: %s", err.Field(), err.Param())
		case "future":
			message = fmt.Sprintf("%s must be in the future", err.Field())
		}

		fields = append(fields, apperrors.FieldError{
			Field:   err.Field(),
			Message: message,
		})
	}

	return fields
}
