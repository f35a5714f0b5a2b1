package services

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"glossary-backend/internal/models"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	_ = v.RegisterValidation("part_of_speech", func(fl validator.FieldLevel) bool {
		return slices.Contains(models.PartsOfSpeech, fl.Field().String())
	})
	return v
}

// ValidateStruct checks the validate tags of s and reports violations as ErrValidation.
func ValidateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		messages = append(messages, describeFieldError(fe))
	}
	return fmt.Errorf("%w: %s", ErrValidation, strings.Join(messages, "; "))
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "part_of_speech":
		return fmt.Sprintf("%s must be one of %s", fe.Field(), strings.Join(models.PartsOfSpeech, ", "))
	default:
		return fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag())
	}
}

// ValidateGlossary rejects a glossary that is not attached to a translation set.
func ValidateGlossary(glossary *models.Glossary) error {
	if glossary == nil {
		return fmt.Errorf("%w: glossary is required", ErrValidation)
	}
	return ValidateStruct(glossary)
}

func ValidateGlossaryEntry(entry *models.GlossaryEntry) error {
	if entry == nil {
		return fmt.Errorf("%w: glossary entry is required", ErrValidation)
	}
	return ValidateStruct(entry)
}
