package errors

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: Handler})
	app.Get("/teapot", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusTeapot, "short and stout")
	})
	app.Get("/plain", func(c *fiber.Ctx) error {
		return errors.New("disk full")
	})
	app.Get("/missing", func(c *fiber.Ctx) error {
		return RaiseNotFoundError(c, "Package not found")
	})
	app.Get("/bad", func(c *fiber.Ctx) error {
		return RaiseBadRequestError(c, "name is required")
	})

	tests := []struct {
		description  string
		route        string
		expectedCode int
		expectedBody string
	}{
		{"fiber error keeps its code", "/teapot", fiber.StatusTeapot, `{"message":"short and stout"}`},
		{"plain error is internal", "/plain", fiber.StatusInternalServerError, `{"message":"internal error"}`},
		{"unknown route", "/nowhere", fiber.StatusNotFound, `{"message":"Cannot GET /nowhere"}`},
		{"not found helper", "/missing", fiber.StatusNotFound, `{"message":"Package not found"}`},
		{"bad request helper", "/bad", fiber.StatusBadRequest, `{"message":"invalid request body","error":"name is required"}`},
	}

	for _, test := range tests {
		res, err := app.Test(httptest.NewRequest("GET", test.route, nil), -1)
		require.NoError(t, err, test.description)

		body, err := io.ReadAll(res.Body)
		require.NoError(t, err, test.description)

		assert.Equalf(t, test.expectedCode, res.StatusCode, test.description)
		assert.JSONEqf(t, test.expectedBody, string(body), test.description)
	}
}
