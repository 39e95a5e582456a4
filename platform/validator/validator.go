// Package validator provides validation infrastructure for the application.
// This is part of the platform layer and contains no business logic.
package validator

import (
	"github.com/go-playground/validator/v10"
)

// supportedLanguages is the fixed set of response languages the scan and
// voice modules localize for. Unknown codes are still forwarded to the
// vision model verbatim, so this is only used where strictness is wanted.
var supportedLanguages = map[string]bool{
	"en": true, "nl": true, "fr": true, "de": true, "es": true, "it": true, "pt": true,
}

// Validator wraps the go-playground validator for structured validation.
// Using a struct allows for dependency injection and easier testing.
type Validator struct {
	v *validator.Validate
}

// New creates a new Validator instance with domain-specific rules registered.
func New() *Validator {
	v := validator.New()

	// "supported_language" passes only for the enumerated localization set.
	_ = v.RegisterValidation("supported_language", func(fl validator.FieldLevel) bool {
		return supportedLanguages[fl.Field().String()]
	})

	return &Validator{v: v}
}

// Struct validates a struct based on validation tags.
func (val *Validator) Struct(s interface{}) error {
	return val.v.Struct(s)
}

// Var validates a single variable against a tag.
func (val *Validator) Var(field interface{}, tag string) error {
	return val.v.Var(field, tag)
}

// RegisterValidation registers a custom validation function.
func (val *Validator) RegisterValidation(tag string, fn validator.Func) error {
	return val.v.RegisterValidation(tag, fn)
}

// IsSupportedLanguage reports whether code is in the localization set.
func IsSupportedLanguage(code string) bool {
	return supportedLanguages[code]
}
