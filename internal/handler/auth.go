package handler

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/marcosmapl/studium-backend-sub000/hasher"
	"github.com/marcosmapl/studium-backend-sub000/http/server"
	"github.com/marcosmapl/studium-backend-sub000/internal/repository"
	"github.com/marcosmapl/studium-backend-sub000/token"
	"github.com/marcosmapl/studium-backend-sub000/val"
)

// Auth exposes the login endpoint. A successful login answers with a signed
// JWT whose subject is the user id.
type Auth struct {
	usuarios *repository.Usuario
	maker    *token.JWTMaker
	tokenTTL time.Duration
}

func NewAuth(usuarios *repository.Usuario, maker *token.JWTMaker, tokenTTL time.Duration) *Auth {
	return &Auth{usuarios: usuarios, maker: maker, tokenTTL: tokenTTL}
}

// Register mounts the auth routes under api.
func (h *Auth) Register(api fiber.Router) {
	g := api.Group("/auth")
	g.Post("/login", h.Login)
}

type loginRequest struct {
	Email string `json:"email" validate:"required,email"`
	Senha string `json:"senha" validate:"required"`
}

type loginResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expiresAt"`
	Usuario   any    `json:"usuario"`
}

// Login handles POST /auth/login. Invalid credentials always answer 401
// with the same message, never revealing whether the email exists.
func (h *Auth) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return server.WriteError(c, fiber.StatusBadRequest, "corpo da requisição inválido")
	}
	if err := val.ValidateSchema(req); err != nil {
		if missing := missingLoginFields(req); len(missing) > 0 {
			return server.WriteMissingFields(c, missing)
		}
		return server.WriteError(c, fiber.StatusBadRequest, "email inválido")
	}

	usuario, err := h.usuarios.FindByEmail(c.Context(), req.Email)
	if err != nil {
		return err
	}
	if usuario == nil || !hasher.Compare(req.Senha, usuario.Senha) {
		return server.WriteError(c, fiber.StatusUnauthorized, "email ou senha inválidos")
	}

	signed, payload, err := h.maker.CreateToken(strconv.FormatInt(usuario.ID, 10), h.tokenTTL)
	if err != nil {
		return err
	}

	return c.JSON(loginResponse{
		Token:     signed,
		ExpiresAt: payload.ExpiresAt.Time.Format(time.RFC3339),
		Usuario:   sanitizeUsuario(usuario),
	})
}

func missingLoginFields(req loginRequest) []string {
	var missing []string
	if req.Email == "" {
		missing = append(missing, "email")
	}
	if req.Senha == "" {
		missing = append(missing, "senha")
	}
	return missing
}
