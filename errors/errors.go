package errors

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// RaiseError writes {"message": message} and adds "error" when data is set.
func RaiseError(context *fiber.Ctx, status int, message string, data string) error {
	body := fiber.Map{"message": message}
	if data != "" {
		body["error"] = data
	}
	return context.Status(status).JSON(body)
}

func RaiseInternalServerError(context *fiber.Ctx, data string) error {
	return RaiseError(context, fiber.StatusInternalServerError, "internal error", data)
}

func RaiseBadRequestError(context *fiber.Ctx, data string) error {
	return RaiseError(context, fiber.StatusBadRequest, "invalid request body", data)
}

func RaiseNotFoundError(context *fiber.Ctx, message string) error {
	return RaiseError(context, fiber.StatusNotFound, message, "")
}

// Handler is the app-wide fiber.ErrorHandler. Unmatched routes, wrong
// methods and recovered panics all leave in the same JSON shape.
func Handler(context *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := "internal error"

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		status = fiberErr.Code
		message = fiberErr.Message
	}

	return RaiseError(context, status, message, "")
}
