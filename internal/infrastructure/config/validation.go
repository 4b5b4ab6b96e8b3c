package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator checks a loaded Config against its struct tags plus the
// restaurant rules that span more than one field
type Validator struct {
	validate *validator.Validate
}

// NewValidator builds a validator with the service seating rule registered
func NewValidator() *Validator {
	v := validator.New()
	v.RegisterStructValidation(validateSeating, ServiceConfig{})

	return &Validator{
		validate: v,
	}
}

// validateSeating rejects more active seats than the bar physically has
func validateSeating(sl validator.StructLevel) {
	svc := sl.Current().Interface().(ServiceConfig)
	if svc.MaxActiveSeats > svc.SeatCount {
		sl.ReportError(svc.MaxActiveSeats, "MaxActiveSeats", "MaxActiveSeats", "ltefield", "SeatCount")
	}
}

// Validate checks a struct using its validation tags and registered rules
func (v *Validator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return v.formatValidationError(err)
	}
	return nil
}

func (v *Validator) formatValidationError(err error) error {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	messages := make([]string, 0, len(validationErrs))
	for _, e := range validationErrs {
		msg := fmt.Sprintf("%s: failed %s (value: '%v')", e.Namespace(), e.Tag(), e.Value())
		if e.Param() != "" {
			msg = fmt.Sprintf("%s: failed %s=%s (value: '%v')", e.Namespace(), e.Tag(), e.Param(), e.Value())
		}
		messages = append(messages, msg)
	}
	return fmt.Errorf("%d rule(s) broken:\n  %s", len(messages), strings.Join(messages, "\n  "))
}

// ValidateConfig checks the whole configuration after defaults are applied
func ValidateConfig(cfg *Config) error {
	return NewValidator().Validate(cfg)
}
