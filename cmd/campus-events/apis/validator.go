package apis

import (
	"github.com/go-playground/validator/v10"
)

// RequestValidator plugs go-playground/validator into echo's c.Validate.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator(validate *validator.Validate) *RequestValidator {
	return &RequestValidator{
		validate: validate,
	}
}

func (v *RequestValidator) Validate(i any) error {
	return v.validate.Struct(i)
}
