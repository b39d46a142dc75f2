package middleware

import (
	"time"

	"github.com/code19m/errx"
	"github.com/gofiber/fiber/v2"
	"github.com/marcosmapl/studium-backend-sub000/http/server"
	"github.com/marcosmapl/studium-backend-sub000/logger"
)

// maxLogAllowedSize caps how much of a request body is included in log entries.
const maxLogAllowedSize = 8 << 10 // 8KB

// NewLoggerMW creates a middleware that logs every request with method, path,
// status code and duration. The logging level follows the HTTP status code
// (info for 2xx/3xx, warn for 4xx, error for 5xx). Request bodies are logged
// only up to a size cap; sensitive fields must already be masked by the
// handlers that attach them.
func NewLoggerMW(log logger.Logger) server.Middleware {
	return server.Middleware{
		Priority: 500,
		Handler: func(c *fiber.Ctx) error {
			requestLog := log.Named("middleware.logger")

			start := time.Now()
			err := c.Next()
			statusCode := c.Response().StatusCode()

			requestLog = requestLog.
				With("http_status_code", statusCode).
				With("http_method", c.Method()).
				With("http_path", c.Path()).
				With("http_route", c.Route().Path).
				With("duration", time.Since(start).String()).
				With("request_size", len(c.Body())).
				With("request_user_id", c.Locals(LocalUserID))

			if err != nil {
				e := errx.AsErrorX(err)
				requestLog = requestLog.With("error", map[string]any{
					"code":    e.Code(),
					"message": e.Error(),
					"type":    e.Type().String(),
					"details": e.Details(),
				})
			}

			switch {
			case statusCode >= fiber.StatusInternalServerError:
				requestLog.Error("request failed")
			case statusCode >= fiber.StatusBadRequest:
				requestLog.Warn("request rejected")
			default:
				requestLog.Info("request processed")
			}

			return err
		},
	}
}
