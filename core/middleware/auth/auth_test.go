package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"kitinventory/core/middleware/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(apiKey string) *fiber.App {
	app := fiber.New()
	app.Use(auth.New(auth.Config{ApiKey: apiKey}))
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func TestAuth(t *testing.T) {
	tests := []struct {
		name       string
		apiKey     string
		header     string
		wantStatus int
	}{
		{"ValidKey", "secret", "secret", http.StatusOK},
		{"WrongKey", "secret", "nope", http.StatusUnauthorized},
		{"MissingKey", "secret", "", http.StatusUnauthorized},
		{"DisabledPassesThrough", "", "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newApp(tt.apiKey)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(auth.HeaderName, tt.header)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}
