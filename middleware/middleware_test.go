package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessLog(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	app := fiber.New()
	app.Use(RequestID())
	app.Use(AccessLog(log))
	app.Use(recover.New())
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/fail", func(c *fiber.Ctx) error { return errors.New("boom") })
	app.Get("/panic", func(c *fiber.Ctx) error { panic("unexpected") })

	tests := []struct {
		description   string
		route         string
		expectedCode  int
		expectedLevel string
	}{
		{"success", "/ok", 200, "info"},
		{"handler error", "/fail", 500, "error"},
		{"recovered panic", "/panic", 500, "error"},
		{"unknown route", "/missing", 404, "warn"},
	}

	for _, test := range tests {
		buf.Reset()

		res, err := app.Test(httptest.NewRequest("GET", test.route, nil), -1)
		require.NoError(t, err, test.description)
		assert.Equalf(t, test.expectedCode, res.StatusCode, test.description)

		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &entry), test.description)
		assert.Equalf(t, test.expectedLevel, entry["level"], test.description)
		assert.Equalf(t, float64(test.expectedCode), entry["status"], test.description)
		assert.Equalf(t, test.route, entry["path"], test.description)
		assert.Equalf(t, res.Header.Get(fiber.HeaderXRequestID), entry["request_id"], test.description)
		assert.NotEmptyf(t, entry["request_id"], test.description)
	}
}

func TestRequestIDKeepsIncomingHeader(t *testing.T) {
	app := fiber.New()
	app.Use(RequestID())
	app.Get("/", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(fiber.HeaderXRequestID, "abc-123")
	res, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, "abc-123", res.Header.Get(fiber.HeaderXRequestID))
}

func TestCORSPreflight(t *testing.T) {
	app := fiber.New()
	app.Use("/api", CORS())
	app.Post("/api/bookings", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusCreated) })

	req := httptest.NewRequest("OPTIONS", "/api/bookings", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "POST")
	res, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusNoContent, res.StatusCode)
	assert.Equal(t, "*", res.Header.Get("Access-Control-Allow-Origin"))
	assert.Contains(t, res.Header.Get("Access-Control-Allow-Methods"), "POST")
}
