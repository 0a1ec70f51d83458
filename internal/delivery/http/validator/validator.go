// Package validator wires go-playground/validator into Echo's request
// validation hook.
package validator

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CustomValidator wraps the go-playground validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// New creates a validator instance usable as echo.Validator.
func New() echo.Validator {
	return &CustomValidator{
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate validates the given struct against its validate tags.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validator.Struct(i); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
