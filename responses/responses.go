package responses

import "github.com/gofiber/fiber/v2"

// APIResponse is the uniform envelope every handler returns.
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Count   *int64      `json:"count,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
}

// OK writes a success envelope with the given status and payload.
func OK(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(APIResponse{
		Success: true,
		Data:    data,
	})
}

// Message writes a success envelope carrying only a message.
func Message(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(APIResponse{
		Success: true,
		Message: message,
	})
}

// List writes a success envelope with a result count alongside the payload.
func List(c *fiber.Ctx, count int64, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(APIResponse{
		Success: true,
		Count:   &count,
		Data:    data,
	})
}

// Error writes a failure envelope with the given status and message.
func Error(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(APIResponse{
		Success: false,
		Message: message,
	})
}
