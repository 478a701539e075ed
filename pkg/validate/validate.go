// Package validate plugs go-playground/validator into echo's Validator hook
// so request DTOs can carry `validate` tags.
package validate

import (
	"github.com/go-playground/validator/v10"
)

type EchoValidator struct {
	v *validator.Validate
}

func New() *EchoValidator {
	return &EchoValidator{v: validator.New(validator.WithRequiredStructEnabled())}
}

func (ev *EchoValidator) Validate(i any) error {
	return ev.v.Struct(i)
}
