package response

import "github.com/gofiber/fiber/v2"

// Message sends a bare {message} body with the given status. Every
// non-entity outcome of the API renders through this shape.
func Message(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"message": message,
	})
}

// OK sends a 200 message response
func OK(c *fiber.Ctx, message string) error {
	return Message(c, fiber.StatusOK, message)
}

// Created sends a 201 message response
func Created(c *fiber.Ctx, message string) error {
	return Message(c, fiber.StatusCreated, message)
}

// BadRequest sends a 400 message response
func BadRequest(c *fiber.Ctx, message string) error {
	return Message(c, fiber.StatusBadRequest, message)
}

// Unauthorized sends a 401 message response
func Unauthorized(c *fiber.Ctx, message string) error {
	return Message(c, fiber.StatusUnauthorized, message)
}

// NotFound sends a 404 message response
func NotFound(c *fiber.Ctx, message string) error {
	return Message(c, fiber.StatusNotFound, message)
}

// InternalServerError sends a 500 message response
func InternalServerError(c *fiber.Ctx, message string) error {
	return Message(c, fiber.StatusInternalServerError, message)
}
