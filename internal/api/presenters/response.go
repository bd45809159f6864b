package presenters

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// ErrorResponse writes the `{"error": message}` body every failure shares.
// The underlying error goes to the log, never to the client.
func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	if err != nil {
		log.Errorf("%s %s: %s: %v", c.Method(), c.Path(), message, err)
	}
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// JSONResponse writes a success body as-is; the REST contract fixes the
// payload shapes, so there is no envelope.
func JSONResponse(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(data)
}
