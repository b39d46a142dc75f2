// Package router wires the handlers onto the fiber application and defines
// which routes skip authentication.
package router

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/marcosmapl/studium-backend-sub000/internal/handler"
)

// Deps collects every handler mounted by Register.
type Deps struct {
	Auth         *handler.Auth
	Usuario      *handler.Usuario
	Escolaridade *handler.Escolaridade
	Prioridade   *handler.Prioridade
	PlanoEstudo  *handler.PlanoEstudo
	Disciplina   *handler.Disciplina
	Topico       *handler.Topico
	BlocoEstudo  *handler.BlocoEstudo
	SessaoEstudo *handler.SessaoEstudo
	Revisao      *handler.Revisao
}

// Register mounts every route under /api plus the health probe.
func Register(deps Deps) func(r fiber.Router) {
	return func(r fiber.Router) {
		r.Get("/health", func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"status": "ok"})
		})

		api := r.Group("/api")
		deps.Auth.Register(api)
		deps.Usuario.Register(api)
		deps.Escolaridade.Register(api)
		deps.Prioridade.Register(api)
		deps.PlanoEstudo.Register(api)
		deps.Disciplina.Register(api)
		deps.Topico.Register(api)
		deps.BlocoEstudo.Register(api)
		deps.SessaoEstudo.Register(api)
		deps.Revisao.Register(api)
	}
}

// IsPublic reports whether a route is reachable without a token:
// registration, login, the health probe and lookup-table reads.
func IsPublic(method, path string) bool {
	switch {
	case method == fiber.MethodGet && path == "/health":
		return true
	case method == fiber.MethodPost && strings.TrimSuffix(path, "/") == "/api/usuario":
		return true
	case method == fiber.MethodPost && strings.TrimSuffix(path, "/") == "/api/auth/login":
		return true
	case method == fiber.MethodGet && strings.HasPrefix(path, "/api/escolaridade"):
		return true
	case method == fiber.MethodGet && strings.HasPrefix(path, "/api/prioridade"):
		return true
	}
	return false
}
