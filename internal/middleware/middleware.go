package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/rs/zerolog"
)

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		RequestLogger() fiber.Handler
	}

	middleware struct {
		log zerolog.Logger
	}
)

func NewMiddleware(log zerolog.Logger) Middleware {
	return &middleware{log: log}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	})
}

// RequestLogger writes one structured line per request.
func (m *middleware) RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		event := m.log.Info()
		if status := c.Response().StatusCode(); status >= fiber.StatusInternalServerError {
			event = m.log.Error()
		}
		event.
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("latency", time.Since(start)).
			Msg("request")

		return err
	}
}
