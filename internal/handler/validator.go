package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/famplan/famplan-server/internal/domain"
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

	// Register custom validations for the closed domain enums
	_ = v.RegisterValidation("mealtype", validateMealType)
	_ = v.RegisterValidation("audience", validateAudience)
	_ = v.RegisterValidation("dietarytag", validateDietaryTag)

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

func validateMealType(fl validator.FieldLevel) bool {
	return domain.MealType(fl.Field().String()).Valid()
}

func validateAudience(fl validator.FieldLevel) bool {
	return domain.Audience(fl.Field().String()).Valid()
}

func validateDietaryTag(fl validator.FieldLevel) bool {
	return domain.DietaryTag(fl.Field().String()).Valid()
}

// FormatValidationError formats validation errors into a user-friendly map
// This prevents leaking internal struct names and provides cleaner error messages
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "mealtype":
			errs[field] = "Invalid meal type"
		case "audience":
			errs[field] = "Invalid audience"
		case "dietarytag":
			errs[field] = "Invalid dietary tag"
		case "uuid":
			errs[field] = "Must be a valid UUID"
		case "datetime":
			errs[field] = "Must be a date in YYYY-MM-DD format"
		case "gt":
			errs[field] = fmt.Sprintf("Must be greater than %s", e.Param())
		case "gte":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s characters", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s characters", e.Param())
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}
