package utils

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/reviewdb/internal/types"
)

// ResultResponse sends a domain result envelope. Domain outcomes, success or
// not, travel as 200 with the envelope carrying the verdict; non-200 statuses
// are reserved for transport-level faults.
func ResultResponse(c *fiber.Ctx, result types.Result) error {
	return c.Status(fiber.StatusOK).JSON(result)
}

// ErrorResponse sends a standard error response matching Node.js format
func ErrorResponse(c *fiber.Ctx, message string, status int, errorType string) error {
	return c.Status(status).JSON(fiber.Map{
		"status":    status,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
		"type":      errorType,
	})
}

// ValidationErrorResponse sends a 422 carrying the aggregated field errors in
// the domain envelope, so clients read one failure shape everywhere.
func ValidationErrorResponse(c *fiber.Ctx, errs []string) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(
		types.Failure(strings.Join(errs, "; "), types.LevelError, nil),
	)
}

// NotFoundResponse sends a 404 carrying the domain envelope.
func NotFoundResponse(c *fiber.Ctx, result types.Result) error {
	return c.Status(fiber.StatusNotFound).JSON(result)
}

// ErrorResponseStruct defines the schema for error responses
type ErrorResponseStruct struct {
	Status    int    `json:"status"`
	Message   string `json:"message"`
	Ok        bool   `json:"ok"`
	Timestamp string `json:"timestamp"`
	URL       string `json:"url"`
	Type      string `json:"type,omitempty"`
}
