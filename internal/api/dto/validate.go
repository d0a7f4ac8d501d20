package dto

import (
	"errors"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/spec-kit/careerhub/pkg/util"
)

var validate = validator.New()

// Validate runs struct-tag validation and converts failures into the
// domain error taxonomy.
func Validate(payload any) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	details := map[string]any{}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, ve := range verrs {
			details[ve.Field()] = ve.Tag()
		}
	}
	return apperrors.NewValidationError("invalid payload", details)
}
