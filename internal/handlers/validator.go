package handlers

import (
	"ledger-copilot/internal/errors"
	"ledger-copilot/internal/validation"

	"github.com/labstack/echo/v4"
)

// CustomValidator implements echo.Validator interface
type CustomValidator struct {
	validator *validation.Validator
}

// NewValidator creates a validator carrying the application's custom rules
func NewValidator() echo.Validator {
	return &CustomValidator{validator: validation.GetValidator()}
}

// Validate implements the echo.Validator interface
func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		return err
	}
	return nil
}

// bindAndValidate decodes the request body into req and validates it. It
// writes the VALIDATION_001 response itself and reports whether the handler
// should continue.
func bindAndValidate(c echo.Context, req interface{}) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return false, SendError(c, errors.ValidationGeneral, errors.WithDetails(validation.FormatErrors(err)...))
	}
	return true, nil
}
