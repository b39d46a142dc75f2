package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/code19m/errx"
	"github.com/gofiber/fiber/v2"
	"github.com/marcosmapl/studium-backend-sub000/http/server"
	"github.com/marcosmapl/studium-backend-sub000/internal/model"
	"github.com/marcosmapl/studium-backend-sub000/internal/repository"
	"github.com/marcosmapl/studium-backend-sub000/pagination"
	"github.com/marcosmapl/studium-backend-sub000/sorter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRepo[E any] struct {
	entity     *E
	list       []E
	err        error
	lastFields map[string]any
	deleted    []int64
}

func (s *stubRepo[E]) Create(_ context.Context, entity *E) (*E, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.entity != nil {
		return s.entity, nil
	}
	return entity, nil
}

func (s *stubRepo[E]) FindAll(_ context.Context, _ pagination.Params, _ sorter.SortOpts) ([]E, error) {
	return s.list, s.err
}

func (s *stubRepo[E]) FindByID(_ context.Context, _ int64) (*E, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.entity, nil
}

func (s *stubRepo[E]) Update(_ context.Context, _ int64, fields map[string]any) (*E, error) {
	s.lastFields = fields
	if s.err != nil {
		return nil, s.err
	}
	return s.entity, nil
}

func (s *stubRepo[E]) Delete(_ context.Context, id int64) error {
	if s.err != nil {
		return s.err
	}
	s.deleted = append(s.deleted, id)
	return nil
}

func newTestApp(res *Resource[model.Disciplina]) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: server.ErrorHandler()})
	g := app.Group("/api/disciplina")
	g.Post("/", res.Create)
	g.Get("/", res.FindAll)
	g.Get("/descricao/exact/:descricao", res.FindByDescricao)
	g.Get("/descricao/search/:descricao", res.SearchByDescricao)
	g.Get("/:id", res.FindByID)
	g.Put("/:id", res.Update)
	g.Delete("/:id", res.Delete)
	return app
}

func disciplinaResource(repo Repository[model.Disciplina]) *Resource[model.Disciplina] {
	return NewResource[model.Disciplina](repo, Options[model.Disciplina]{
		Label:                "disciplina",
		RequiredFields:       []string{"planoEstudoId", "titulo"},
		UpdateRequiredFields: []string{"titulo"},
		NotFoundMessage:      "disciplina não encontrada",
		SortFields:           []string{"titulo"},
	})
}

func decodeBody(t *testing.T, body io.Reader) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&out))
	return out
}

func TestCreate_MissingFields(t *testing.T) {
	app := newTestApp(disciplinaResource(&stubRepo[model.Disciplina]{}))

	req := httptest.NewRequest(fiber.MethodPost, "/api/disciplina/",
		strings.NewReader(`{"titulo": ""}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	assert.Contains(t, body["error"], "campos obrigatórios ausentes")
	assert.ElementsMatch(t, []any{"planoEstudoId", "titulo"}, body["missingFields"])
}

func TestCreate_Conflict(t *testing.T) {
	repo := &stubRepo[model.Disciplina]{
		err: errx.New("duplicate",
			errx.WithType(errx.T_Conflict),
			errx.WithCode(repository.CodeUniqueViolation),
			errx.WithDetails(errx.D{"field": "titulo"}),
		),
	}
	app := newTestApp(disciplinaResource(repo))

	req := httptest.NewRequest(fiber.MethodPost, "/api/disciplina/",
		strings.NewReader(`{"planoEstudoId": 1, "titulo": "Matemática"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	assert.Equal(t, "já existe disciplina com o mesmo valor de titulo", body["error"])
}

func TestCreate_DanglingReference(t *testing.T) {
	repo := &stubRepo[model.Disciplina]{
		err: errx.New("dangling",
			errx.WithType(errx.T_Validation),
			errx.WithCode(repository.CodeForeignKeyViolation),
			errx.WithDetails(errx.D{"relation_message": "plano de estudo não encontrado"}),
		),
	}
	app := newTestApp(disciplinaResource(repo))

	req := httptest.NewRequest(fiber.MethodPost, "/api/disciplina/",
		strings.NewReader(`{"planoEstudoId": 999, "titulo": "Matemática"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	assert.Equal(t, "plano de estudo não encontrado", body["error"])
}

func TestCreate_Success(t *testing.T) {
	app := newTestApp(disciplinaResource(&stubRepo[model.Disciplina]{}))

	req := httptest.NewRequest(fiber.MethodPost, "/api/disciplina/",
		strings.NewReader(`{"planoEstudoId": 1, "titulo": "Matemática"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	assert.Equal(t, "Matemática", body["titulo"])
}

func TestCreate_BeforeWriteValidationMessageEchoed(t *testing.T) {
	res := NewResource[model.Disciplina](&stubRepo[model.Disciplina]{}, Options[model.Disciplina]{
		Label:           "disciplina",
		RequiredFields:  []string{"titulo"},
		NotFoundMessage: "disciplina não encontrada",
		BeforeWrite: func(map[string]any) error {
			return errx.New("titulo inválido", errx.WithType(errx.T_Validation))
		},
	})
	app := newTestApp(res)

	req := httptest.NewRequest(fiber.MethodPost, "/api/disciplina/",
		strings.NewReader(`{"titulo": "x"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	assert.Equal(t, "titulo inválido", body["error"])
}

func TestCreate_BeforeWriteInternalErrorNotEchoed(t *testing.T) {
	res := NewResource[model.Disciplina](&stubRepo[model.Disciplina]{}, Options[model.Disciplina]{
		Label:           "disciplina",
		RequiredFields:  []string{"titulo"},
		NotFoundMessage: "disciplina não encontrada",
		BeforeWrite: func(map[string]any) error {
			return errx.New("bcrypt: password length exceeds 72 bytes")
		},
	})
	app := newTestApp(res)

	req := httptest.NewRequest(fiber.MethodPost, "/api/disciplina/",
		strings.NewReader(`{"titulo": "x"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	assert.Equal(t, "erro interno do servidor", body["error"])
	assert.NotContains(t, body["error"], "bcrypt")
}

func TestFindByID_InvalidID(t *testing.T) {
	app := newTestApp(disciplinaResource(&stubRepo[model.Disciplina]{}))

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/disciplina/abc", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	assert.Equal(t, "id inválido", body["error"])
}

func TestFindByID_NotFound(t *testing.T) {
	repo := &stubRepo[model.Disciplina]{
		err: errx.New("missing",
			errx.WithType(errx.T_NotFound),
			errx.WithCode(repository.CodeNotFound),
		),
	}
	app := newTestApp(disciplinaResource(repo))

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/disciplina/42", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	assert.Equal(t, "disciplina não encontrada", body["error"])
}

func TestUpdate_OnlySentFieldsReachRepository(t *testing.T) {
	repo := &stubRepo[model.Disciplina]{entity: &model.Disciplina{ID: 7, Titulo: "Física"}}
	app := newTestApp(disciplinaResource(repo))

	req := httptest.NewRequest(fiber.MethodPut, "/api/disciplina/7",
		strings.NewReader(`{"titulo": "Física"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, map[string]any{"titulo": "Física"}, repo.lastFields)
}

func TestDelete_Success(t *testing.T) {
	repo := &stubRepo[model.Disciplina]{}
	app := newTestApp(disciplinaResource(repo))

	resp, err := app.Test(httptest.NewRequest(fiber.MethodDelete, "/api/disciplina/7", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.Equal(t, []int64{7}, repo.deleted)
}

func TestDelete_ReferentialBlock(t *testing.T) {
	repo := &stubRepo[model.Disciplina]{
		err: errx.New("blocked",
			errx.WithType(errx.T_Validation),
			errx.WithCode(repository.CodeReferentialBlock),
		),
	}
	app := newTestApp(disciplinaResource(repo))

	resp, err := app.Test(httptest.NewRequest(fiber.MethodDelete, "/api/disciplina/7", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	assert.Equal(t, "registro possui dependências e não pode ser removido", body["error"])
}

func TestFindByDescricao_NotSupported(t *testing.T) {
	// stubRepo does not implement DescricaoFinder.
	app := newTestApp(disciplinaResource(&stubRepo[model.Disciplina]{}))

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/disciplina/descricao/exact/algo", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotImplemented, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	assert.Equal(t, "busca por descrição não suportada", body["error"])
}

type finderStub struct {
	stubRepo[model.Disciplina]
	found *model.Disciplina
}

func (s *finderStub) FindByDescricao(_ context.Context, _ string) (*model.Disciplina, error) {
	return s.found, nil
}

func TestFindByDescricao_Found(t *testing.T) {
	repo := &finderStub{found: &model.Disciplina{ID: 3, Titulo: "Química", Descricao: "exatas"}}
	app := newTestApp(disciplinaResource(repo))

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/disciplina/descricao/exact/exatas", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	assert.Equal(t, float64(3), body["id"])
}

func TestFindByDescricao_NoMatch(t *testing.T) {
	app := newTestApp(disciplinaResource(&finderStub{}))

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/disciplina/descricao/exact/nada", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

type searcherStub struct {
	stubRepo[model.Disciplina]
	matches []model.Disciplina
}

func (s *searcherStub) SearchByDescricao(_ context.Context, _ string) ([]model.Disciplina, error) {
	return s.matches, nil
}

func TestSearchByDescricao_ReturnsMatches(t *testing.T) {
	repo := &searcherStub{matches: []model.Disciplina{{ID: 1}, {ID: 2}}}
	app := newTestApp(disciplinaResource(repo))

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/disciplina/descricao/search/exa", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Len(t, out, 2)
}

func TestSearchByDescricao_NotSupported(t *testing.T) {
	app := newTestApp(disciplinaResource(&stubRepo[model.Disciplina]{}))

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/disciplina/descricao/search/exa", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotImplemented, resp.StatusCode)
}
