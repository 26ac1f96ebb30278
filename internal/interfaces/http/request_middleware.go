package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/hareware-api/pkg/logger"
)

// RequestObserver registra cada petición y alimenta las métricas (m puede ser nil).
// Resuelve aquí el error del handler para conocer el estado final; aguas arriba no queda error.
func RequestObserver(log *logger.Logger, m *Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if m != nil {
			m.inFlight.Inc()
			defer m.inFlight.Dec()
		}
		start := time.Now()

		if err := c.Next(); err != nil {
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		elapsed := time.Since(start)
		status := c.Response().StatusCode()
		route := c.Route().Path
		if m != nil {
			m.observe(c.Method(), route, status, elapsed)
		}

		ev := log.Info()
		if status >= fiber.StatusInternalServerError {
			ev = log.Warn()
		}
		ev.Str("request_id", requestID(c)).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Str("route", route).
			Int("status", status).
			Dur("elapsed", elapsed).
			Str("ip", c.IP()).
			Msg("http")
		return nil
	}
}

func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return c.GetRespHeader(fiber.HeaderXRequestID)
}
