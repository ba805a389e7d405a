package middleware_test

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/reviewdb/internal/middleware"
)

// TestVersionMiddleware tests header normalization and the response echo
func TestVersionMiddleware(t *testing.T) {
	app := fiber.New()
	app.Use(middleware.VersionMiddleware())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("apiVersion").(string))
	})

	cases := []struct {
		header string
		want   string
	}{
		{"", "1.0.0"},
		{"1", "1.0.0"},
		{"1.0", "1.0.0"},
		{"2.1.0", "2.1.0"},
	}
	for _, tc := range cases {
		req := httptest.NewRequest("GET", "/", nil)
		if tc.header != "" {
			req.Header.Set("X-Api-Version", tc.header)
		}
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("Failed to execute request for %q: %v", tc.header, err)
		}
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		if string(body) != tc.want {
			t.Errorf("Header %q: expected context version %q, got %q", tc.header, tc.want, body)
		}
		if got := resp.Header.Get("X-Api-Version"); got != tc.want {
			t.Errorf("Header %q: expected echo %q, got %q", tc.header, tc.want, got)
		}
	}
}
