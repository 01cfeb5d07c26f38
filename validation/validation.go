package validation

import (
	"fmt"
	"strings"

	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/sreekar7586/Croxora-Full-Stack-Web-Platform/responses"
)

// New returns the configured validator shared by all controllers.
func New() *validatorv10.Validate {
	return validatorv10.New()
}

// FieldError is one field-level validation failure in a 400 response.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// BindAndValidate parses the JSON body into out and validates it. On failure
// it writes the 400 response itself and reports ok=false so the handler can
// short-circuit with the returned error.
func BindAndValidate(c *fiber.Ctx, v *validatorv10.Validate, out interface{}) (bool, error) {
	if err := c.BodyParser(out); err != nil {
		return false, responses.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := v.Struct(out); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(responses.APIResponse{
			Success: false,
			Message: "Validation failed",
			Errors:  Describe(err),
		})
	}

	return true, nil
}

// Describe flattens validator errors into field/message pairs.
func Describe(err error) []FieldError {
	ve, ok := err.(validatorv10.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "request", Message: err.Error()}}
	}

	out := make([]FieldError, 0, len(ve))
	for _, fe := range ve {
		out = append(out, FieldError{
			Field:   strings.ToLower(fe.Field()[:1]) + fe.Field()[1:],
			Message: describeTag(fe),
		})
	}
	return out
}

func describeTag(fe validatorv10.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of %s", fe.Param())
	case "url":
		return "must be a valid URL"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
