// Package middleware provides the Fiber middleware components used by the
// HTTP server: panic recovery, request logging and bearer-token
// authentication. Middlewares declare a priority; higher values run earlier
// in the request pipeline.
package middleware

import (
	"runtime"

	"github.com/code19m/errx"
	"github.com/gofiber/fiber/v2"
	"github.com/marcosmapl/studium-backend-sub000/http/server"
	"github.com/marcosmapl/studium-backend-sub000/logger"
)

// NewRecoveryMW creates a middleware that recovers from panics in the request
// handling chain and converts them to structured errors.
func NewRecoveryMW(log logger.Logger) server.Middleware {
	return server.Middleware{
		Priority: 1000,
		Handler: func(c *fiber.Ctx) (err error) {
			recoveryLog := log.Named("middleware.recovery")

			defer func() {
				if r := recover(); r != nil {
					stackTrace := make([]byte, 4096)
					stackTrace = stackTrace[:runtime.Stack(stackTrace, false)]

					recoveryLog.
						With("stack_trace", string(stackTrace)).
						With("panic_message", r).
						Error("recovered from panic")

					err = errx.New("panic recovered", errx.WithDetails(errx.D{
						"panic_message": r,
					}))
				}
			}()

			return c.Next()
		},
	}
}
