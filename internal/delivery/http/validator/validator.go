// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	playground "github.com/go-playground/validator/v10"
)

// CustomValidator wraps the validator instance registered on the Echo server.
type CustomValidator struct {
	validator *playground.Validate
}

// New creates the validator used for request struct tags.
func New() *CustomValidator {
	return &CustomValidator{validator: playground.New()}
}

// Validate implements echo.Validator.
func (cv *CustomValidator) Validate(i any) error {
	return cv.validator.Struct(i)
}
