package util

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ValidateDTO runs struct validation; the raw validator error is returned
// so the response layer can map it to a bad-request code.
func ValidateDTO(dto any) error {
	return validate.Struct(dto)
}
