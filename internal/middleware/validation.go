package middleware

import (
	"edugenie/internal/domain"
	"edugenie/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ValidatedBodyKey is the fiber.Ctx locals key holding the parsed request body.
const ValidatedBodyKey = "validated_body"

// ValidationMiddleware parses and validates JSON request bodies
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(),
	}
}

func (vm *ValidationMiddleware) ValidateAsk() fiber.Handler {
	return bindAndValidate(vm.validator.ValidateAskRequest)
}

func (vm *ValidationMiddleware) ValidateExplain() fiber.Handler {
	return bindAndValidate(vm.validator.ValidateExplainRequest)
}

func (vm *ValidationMiddleware) ValidateQuiz() fiber.Handler {
	return bindAndValidate(vm.validator.ValidateQuizRequest)
}

func (vm *ValidationMiddleware) ValidateSummarize() fiber.Handler {
	return bindAndValidate(vm.validator.ValidateSummarizeRequest)
}

// bindAndValidate decodes the body into T, runs validate and stores *T under
// ValidatedBodyKey for the next handler.
func bindAndValidate[T any](validate func(*T) domain.ValidationErrors) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := new(T)
		if err := c.BodyParser(req); err != nil {
			return fiber.NewError(fiber.StatusUnprocessableEntity, "Invalid JSON body: "+err.Error())
		}

		if errors := validate(req); len(errors) > 0 {
			return errors // This will be handled by ErrorHandler middleware
		}

		c.Locals(ValidatedBodyKey, req)
		return c.Next()
	}
}
