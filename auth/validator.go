package auth

import (
	"call-lab/domain"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateTokenRequest checks the request against the provider's identifier
// grammar: the user id must already be normalized.
func ValidateTokenRequest(req domain.TokenRequest) error {
	return validate.Struct(req)
}

// ValidateStruct exposes the shared validator for configuration structs.
func ValidateStruct(s any) error {
	return validate.Struct(s)
}
