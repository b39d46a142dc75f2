package router

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/marcosmapl/studium-backend-sub000/http/server"
	"github.com/marcosmapl/studium-backend-sub000/http/server/middleware"
	"github.com/marcosmapl/studium-backend-sub000/internal/handler"
	"github.com/marcosmapl/studium-backend-sub000/internal/repository"
	"github.com/marcosmapl/studium-backend-sub000/logger"
	"github.com/marcosmapl/studium-backend-sub000/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsPublic(t *testing.T) {
	tests := []struct {
		method string
		path   string
		want   bool
	}{
		{fiber.MethodGet, "/health", true},
		{fiber.MethodPost, "/api/usuario", true},
		{fiber.MethodPost, "/api/usuario/", true},
		{fiber.MethodPost, "/api/auth/login", true},
		{fiber.MethodGet, "/api/escolaridade", true},
		{fiber.MethodGet, "/api/escolaridade/1", true},
		{fiber.MethodGet, "/api/prioridade/descricao/exact/Alta", true},

		{fiber.MethodGet, "/api/usuario", false},
		{fiber.MethodGet, "/api/usuario/1", false},
		{fiber.MethodPost, "/api/escolaridade", false},
		{fiber.MethodPut, "/api/prioridade/1", false},
		{fiber.MethodDelete, "/api/escolaridade/1", false},
		{fiber.MethodPost, "/api/planoestudo", false},
		{fiber.MethodGet, "/api/disciplina", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsPublic(tt.method, tt.path), "%s %s", tt.method, tt.path)
	}
}

// newTestApp wires the full router with the auth middleware over
// repositories that have no database. Only routes rejected before any
// query runs can be exercised.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	maker, err := token.NewJWTMaker("test-secret-key-0123456789")
	require.NoError(t, err)

	log := logger.Nop()
	usuarios := repository.NewUsuario(nil, log)

	deps := Deps{
		Auth:         handler.NewAuth(usuarios, maker, 0),
		Usuario:      handler.NewUsuario(usuarios),
		Escolaridade: handler.NewEscolaridade(repository.NewEscolaridade(nil, log)),
		Prioridade:   handler.NewPrioridade(repository.NewPrioridade(nil, log)),
		PlanoEstudo:  handler.NewPlanoEstudo(repository.NewPlanoEstudo(nil, log)),
		Disciplina:   handler.NewDisciplina(repository.NewDisciplina(nil, log)),
		Topico:       handler.NewTopico(repository.NewTopico(nil, log)),
		BlocoEstudo:  handler.NewBlocoEstudo(repository.NewBlocoEstudo(nil, log)),
		SessaoEstudo: handler.NewSessaoEstudo(repository.NewSessaoEstudo(nil, log)),
		Revisao:      handler.NewRevisao(repository.NewRevisao(nil, log)),
	}

	app := fiber.New(fiber.Config{ErrorHandler: server.ErrorHandler()})
	authMW := middleware.NewAuthMW(maker, IsPublic)
	app.Use(authMW.Handler)
	Register(deps)(app)

	return app
}

func TestProtectedRouteWithoutToken(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/planoestudo/1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestProtectedRouteWithMalformedToken(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(fiber.MethodDelete, "/api/topico/1", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer not-a-jwt")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestHealthIsPublic(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
