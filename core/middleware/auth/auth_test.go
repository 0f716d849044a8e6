package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupApp(cfg Config) *fiber.App {
	app := fiber.New()
	app.Use(New(cfg))
	app.Get("/metrics", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	app.Get("/orthology/runs", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	return app
}

func TestNew(t *testing.T) {
	tests := []struct {
		name   string
		cfg    Config
		path   string
		header string
		query  string
		want   int
	}{
		{"Disabled", Config{}, "/orthology/runs", "", "", fiber.StatusOK},
		{"MissingKey", Config{ApiKey: "secret"}, "/orthology/runs", "", "", fiber.StatusUnauthorized},
		{"WrongKey", Config{ApiKey: "secret"}, "/orthology/runs", "nope", "", fiber.StatusUnauthorized},
		{"HeaderKey", Config{ApiKey: "secret"}, "/orthology/runs", "secret", "", fiber.StatusOK},
		{"QueryKey", Config{ApiKey: "secret"}, "/orthology/runs", "", "secret", fiber.StatusOK},
		{"SkippedPath", Config{ApiKey: "secret", Skip: []string{"/metrics"}}, "/metrics", "", "", fiber.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := tt.path
			if tt.query != "" {
				target += "?api_key=" + tt.query
			}
			req := httptest.NewRequest("GET", target, nil)
			if tt.header != "" {
				req.Header.Set(Header, tt.header)
			}

			resp, err := setupApp(tt.cfg).Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}
