package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/surveyx/surveyx-api/internal/application/usecases"
)

var validate = validator.New()

// errorResponse maps use case errors onto HTTP statuses. Anything outside the
// known taxonomy is a 500.
func errorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecases.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
	case errors.Is(err, usecases.ErrUsernameTaken),
		errors.Is(err, usecases.ErrEmailTaken),
		errors.Is(err, usecases.ErrBadCredentials):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}
