package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/example/workerhub/internal/models"
)

// ErrInvalidInput marks a request rejected by validation.
var ErrInvalidInput = errors.New("invalid input")

// newValidator returns a validator that also understands the "skill" tag.
// It panics if the tag cannot be registered.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("skill", validSkill); err != nil {
		panic(fmt.Sprintf("failed to register skill validation: %v", err))
	}
	return v
}

func validSkill(fl validator.FieldLevel) bool {
	return models.Skill(fl.Field().String()).IsValid()
}

// validateRequest validates req and converts failures into ErrInvalidInput.
func validateRequest(v *validator.Validate, req any) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describeFieldError(fe))
	}
	return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(msgs, "; "))
}

func describeFieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return field + " must not be empty"
	case "email":
		return field + " must be a valid email address"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "skill":
		return fmt.Sprintf("%s must be one of: %s", field, joinSkills())
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}

func joinSkills() string {
	skills := models.Skills()
	names := make([]string, len(skills))
	for i, s := range skills {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}
