package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/marcosmapl/studium-backend-sub000/http/server"
	"github.com/marcosmapl/studium-backend-sub000/token"
)

// LocalUserID is the fiber locals key under which the authenticated user's
// id (the token subject) is stored.
const LocalUserID = "usuario_id"

const bearerPrefix = "Bearer "

// PublicRouteFunc reports whether a request may proceed without a bearer
// token.
type PublicRouteFunc func(method, path string) bool

// NewAuthMW creates a middleware that validates the Authorization bearer
// token on every route not marked public. Requests without a valid token are
// answered 401 before any handler runs.
func NewAuthMW(maker *token.JWTMaker, isPublic PublicRouteFunc) server.Middleware {
	return server.Middleware{
		Priority: 400,
		Handler: func(c *fiber.Ctx) error {
			if isPublic != nil && isPublic(c.Method(), c.Path()) {
				return c.Next()
			}

			header := c.Get(fiber.HeaderAuthorization)
			if !strings.HasPrefix(header, bearerPrefix) {
				return server.WriteError(c, fiber.StatusUnauthorized, "token de autenticação inválido ou ausente")
			}

			payload, err := maker.VerifyToken(strings.TrimPrefix(header, bearerPrefix))
			if err != nil {
				return server.WriteError(c, fiber.StatusUnauthorized, "token de autenticação inválido ou ausente")
			}

			c.Locals(LocalUserID, payload.Subject)
			return c.Next()
		},
	}
}
