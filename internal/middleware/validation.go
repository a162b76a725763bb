package middleware

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/maithili/projectvault/internal/app/models"
)

// RegisterValidators installs the custom binding rules on gin's
// validator engine. Called once during router setup.
func RegisterValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	v.RegisterValidation("projecttype", func(fl validator.FieldLevel) bool {
		return models.IsValidProjectType(fl.Field().String())
	})
}

// FormatValidationError creates a human-readable message for the first
// failed rule of a binding error.
func FormatValidationError(err error) string {
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return "Invalid request format"
	}

	e := errs[0]
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param() + " characters"
	case "email":
		return e.Field() + " must be a valid email address"
	case "projecttype":
		return e.Field() + " must be one of mini-I, mini-II, major"
	default:
		return e.Field() + " is invalid"
	}
}
