package handler

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/DruxAMB/AroundTheWorld-sub001/internal/domain"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance
var validate *Validator

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New()

	_ = v.RegisterValidation("timeframe", validateTimeframe)
	_ = v.RegisterValidation("triggertype", validateTriggerType)

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

func validateTimeframe(fl validator.FieldLevel) bool {
	return domain.Timeframe(strings.ToLower(fl.Field().String())).Valid()
}

func validateTriggerType(fl validator.FieldLevel) bool {
	return domain.TriggerType(strings.ToLower(fl.Field().String())).Valid()
}
