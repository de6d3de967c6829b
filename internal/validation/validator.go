package validation

import (
	"reflect"
	"strings"
	"time"

	"invoice-status-api/internal/models"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("dateformat", validateDateFormat)
	_ = v.RegisterValidation("output_format", validateOutputFormat)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

// validateDateFormat validates that a date string parses as YYYY-MM-DD
func validateDateFormat(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return false
	}

	_, err := time.Parse(models.DateLayout, value)
	return err == nil
}

// validateOutputFormat validates that the requested response format is
// supported. The match is exact: "MD" is not "md".
func validateOutputFormat(fl validator.FieldLevel) bool {
	validFormats := map[string]bool{
		"json": true,
		"md":   true,
	}
	return validFormats[fl.Field().String()]
}
