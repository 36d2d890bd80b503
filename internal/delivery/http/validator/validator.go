// Package validator adapts go-playground/validator to echo.
package validator

import (
	"time"

	domainerrors "nutrisheet/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validator *validator.Validate
}

// New creates the validator with the project tags registered:
// isodate accepts YYYY-MM-DD strings.
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("isodate", isoDate)

	return &CustomValidator{validator: v}
}

// Validate reports the first failing fields as a validation error.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validator.Struct(i); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(err.Error()))
	}

	return nil
}

func isoDate(fl validator.FieldLevel) bool {
	_, err := time.Parse(time.DateOnly, fl.Field().String())

	return err == nil
}
