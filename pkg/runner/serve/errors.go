package serve

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"tableflip.dev/jadwal/pkg/app"
	"tableflip.dev/jadwal/pkg/store"
)

// statusFor maps service errors onto HTTP status codes.
func statusFor(err error) int {
	var ve validator.ValidationErrors
	var fe *fiber.Error
	switch {
	case errors.As(err, &ve), errors.Is(err, app.ErrInvalidQuery):
		return fiber.StatusBadRequest
	case errors.Is(err, app.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, store.ErrNotLoaded):
		return fiber.StatusServiceUnavailable
	case errors.As(err, &fe):
		return fe.Code
	}
	return fiber.StatusInternalServerError
}

func message(err error) string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err.Error()
	}
	parts := make([]string, 0, len(ve))
	for _, fe := range ve {
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s must satisfy %s=%s", fe.Field(), fe.Tag(), fe.Param()))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s is %s", fe.Field(), fe.Tag()))
	}
	return "invalid query: " + strings.Join(parts, ", ")
}

// errorHandler renders every error as {"error": "..."}.
func errorHandler(c *fiber.Ctx, err error) error {
	return c.Status(statusFor(err)).JSON(fiber.Map{"error": message(err)})
}
