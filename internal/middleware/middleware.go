// Package middleware holds the fiber middleware shared by every route.
package middleware

import (
	"time"

	"catalog/internal/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// RequestIDKey is the fiber.Ctx local the requestid middleware stores the
// request id under.
const RequestIDKey = "requestid"

// RequestLogger logs one line per request and records it in m, which may
// be nil. Errors from the chain are written with errHandler first so the
// logged status is the one the client receives.
func RequestLogger(log zerolog.Logger, m *metrics.Metrics, errHandler fiber.ErrorHandler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		chainErr := c.Next()
		if chainErr != nil {
			if err := errHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		elapsed := time.Since(start)
		route := c.Route().Path

		if m != nil {
			m.Observe(c.Method(), route, status, elapsed)
		}

		var event *zerolog.Event
		switch {
		case status >= fiber.StatusInternalServerError:
			event = log.Error().Err(chainErr)
		case status >= fiber.StatusBadRequest:
			event = log.Warn()
		default:
			event = log.Info()
		}

		if id, ok := c.Locals(RequestIDKey).(string); ok && id != "" {
			event = event.Str("request_id", id)
		}

		event.
			Str("method", c.Method()).
			Str("path", c.Path()).
			Str("route", route).
			Int("status", status).
			Dur("latency", elapsed).
			Msg("API")

		return nil
	}
}
