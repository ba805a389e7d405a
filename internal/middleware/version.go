package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// apiVersion is the current full API version.
const apiVersion = "1.0.0"

// VersionMiddleware normalizes the X-Api-Version request header, stores the
// result in the request context and echoes it on the response.
func VersionMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		version := c.Get("X-Api-Version", apiVersion)

		switch version {
		case "1", "1.0":
			version = apiVersion
		}

		c.Locals("apiVersion", version)
		c.Set("X-Api-Version", version)

		return c.Next()
	}
}
