package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"withbliss-api/metrics"
)

// AccessLog writes one line per request. Errors from the chain are passed to
// the app error handler first so the logged status is the one sent.
func AccessLog(logger zerolog.Logger) fiber.Handler {
	logger = logger.With().Str("component", "http").Logger()

	return func(c *fiber.Ctx) error {
		start := time.Now()

		if chainErr := c.Next(); chainErr != nil {
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		event := logger.Info()
		switch {
		case status >= fiber.StatusInternalServerError:
			event = logger.Error()
		case status >= fiber.StatusBadRequest:
			event = logger.Warn()
		}

		event.
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("request_id", c.GetRespHeader(fiber.HeaderXRequestID)).
			Str("ip", c.IP()).
			Msg("request")

		return nil
	}
}

// Metrics counts requests by route pattern. It must sit outside AccessLog so
// it sees the final status.
func Metrics() fiber.Handler {
	metrics.Register()

	return func(c *fiber.Ctx) error {
		err := c.Next()
		metrics.ObserveRequest(c.Method(), c.Route().Path, c.Response().StatusCode())
		return err
	}
}
