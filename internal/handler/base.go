// Package handler exposes the REST surface over fiber. A generic Resource
// implements the uniform CRUD endpoints of one entity; per-entity
// constructors configure it with validation rules and Portuguese
// user-facing messages, and add entity-specific routes.
package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/code19m/errx"
	"github.com/gofiber/fiber/v2"
	"github.com/marcosmapl/studium-backend-sub000/http/server"
	"github.com/marcosmapl/studium-backend-sub000/internal/repository"
	"github.com/marcosmapl/studium-backend-sub000/pagination"
	"github.com/marcosmapl/studium-backend-sub000/sorter"
	"github.com/samber/lo"
)

// Repository is the persistence contract a Resource drives. Every
// repository in internal/repository satisfies it through its embedded base.
type Repository[E any] interface {
	Create(ctx context.Context, entity *E) (*E, error)
	FindAll(ctx context.Context, p pagination.Params, sort sorter.SortOpts) ([]E, error)
	FindByID(ctx context.Context, id int64) (*E, error)
	Update(ctx context.Context, id int64, fields map[string]any) (*E, error)
	Delete(ctx context.Context, id int64) error
}

// DescricaoFinder is the optional exact-lookup capability. Repositories
// that implement it get a working description endpoint; the others answer
// 501.
type DescricaoFinder[E any] interface {
	FindByDescricao(ctx context.Context, descricao string) (*E, error)
}

// DescricaoSearcher is the optional substring-lookup capability.
type DescricaoSearcher[E any] interface {
	SearchByDescricao(ctx context.Context, fragment string) ([]E, error)
}

// Options configures a Resource.
type Options[E any] struct {
	// Label is the entity name used in conflict messages, e.g. "disciplina".
	Label string

	// RequiredFields must be present and non-empty in a create payload.
	RequiredFields []string

	// UpdateRequiredFields must be present and non-empty in an update
	// payload. Usually a subset of RequiredFields.
	UpdateRequiredFields []string

	// NotFoundMessage is the Portuguese message for a missing record.
	NotFoundMessage string

	// SortFields is the allow-list for the orderBy query parameter.
	SortFields []string

	// BeforeWrite runs after the required-field check on create and update.
	// It may coerce or reject field values; a returned error aborts the
	// request with its mapped status.
	BeforeWrite func(fields map[string]any) error

	// Sanitize maps an entity to its response shape. Nil means the entity
	// is returned as is.
	Sanitize func(entity *E) any
}

// Resource implements the uniform CRUD endpoints of one entity.
type Resource[E any] struct {
	repo     Repository[E]
	finder   DescricaoFinder[E]
	searcher DescricaoSearcher[E]
	opts     Options[E]
}

// NewResource builds a Resource over repo. The description endpoints are
// enabled automatically when the repository implements the corresponding
// capability.
func NewResource[E any](repo Repository[E], opts Options[E]) *Resource[E] {
	r := &Resource[E]{repo: repo, opts: opts}
	if finder, ok := repo.(DescricaoFinder[E]); ok {
		r.finder = finder
	}
	if searcher, ok := repo.(DescricaoSearcher[E]); ok {
		r.searcher = searcher
	}
	return r
}

// Create handles POST /. Responds 201 with the stored record.
func (r *Resource[E]) Create(c *fiber.Ctx) error {
	fields, err := r.parseBody(c, r.opts.RequiredFields)
	if err != nil || fields == nil {
		return err
	}

	entity := new(E)
	if err := remarshal(fields, entity); err != nil {
		return server.WriteError(c, fiber.StatusBadRequest, "requisição inválida")
	}

	created, err := r.repo.Create(c.Context(), entity)
	if err != nil {
		return r.writeRepoError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(r.present(created))
}

// FindAll handles GET /. Supports limit, offset and orderBy query parameters.
func (r *Resource[E]) FindAll(c *fiber.Ctx) error {
	var p pagination.Params
	if err := c.QueryParser(&p); err != nil {
		return server.WriteError(c, fiber.StatusBadRequest, "parâmetros de paginação inválidos")
	}
	p.Normalize()

	sort := sorter.MakeFromStr(c.Query("orderBy"), r.opts.SortFields...)

	entities, err := r.repo.FindAll(c.Context(), p, sort)
	if err != nil {
		return r.writeRepoError(c, err)
	}

	return c.JSON(r.presentAll(entities))
}

// FindByID handles GET /:id.
func (r *Resource[E]) FindByID(c *fiber.Ctx) error {
	id, ok := r.parseID(c)
	if !ok {
		return nil
	}

	entity, err := r.repo.FindByID(c.Context(), id)
	if err != nil {
		return r.writeRepoError(c, err)
	}

	return c.JSON(r.present(entity))
}

// FindByDescricao handles GET /descricao/exact/:descricao. Entities
// without a description lookup answer 501.
func (r *Resource[E]) FindByDescricao(c *fiber.Ctx) error {
	if r.finder == nil {
		return server.WriteError(c, fiber.StatusNotImplemented, "busca por descrição não suportada")
	}

	descricao, ok := r.parseDescricao(c)
	if !ok {
		return nil
	}

	entity, err := r.finder.FindByDescricao(c.Context(), descricao)
	if err != nil {
		return r.writeRepoError(c, err)
	}
	if entity == nil {
		return server.WriteError(c, fiber.StatusNotFound, r.notFoundMessage())
	}

	return c.JSON(r.present(entity))
}

// SearchByDescricao handles GET /descricao/search/:descricao. Responds 200
// with the (possibly empty) list of substring matches.
func (r *Resource[E]) SearchByDescricao(c *fiber.Ctx) error {
	if r.searcher == nil {
		return server.WriteError(c, fiber.StatusNotImplemented, "busca por descrição não suportada")
	}

	fragment, ok := r.parseDescricao(c)
	if !ok {
		return nil
	}

	entities, err := r.searcher.SearchByDescricao(c.Context(), fragment)
	if err != nil {
		return r.writeRepoError(c, err)
	}

	return c.JSON(r.presentAll(entities))
}

// parseDescricao reads the :descricao route parameter, writing a 400
// response when it is blank or malformed.
func (r *Resource[E]) parseDescricao(c *fiber.Ctx) (string, bool) {
	descricao, err := url.QueryUnescape(c.Params("descricao"))
	if err != nil || strings.TrimSpace(descricao) == "" {
		_ = server.WriteError(c, fiber.StatusBadRequest, "descrição inválida")
		return "", false
	}
	return descricao, true
}

// Update handles PUT /:id. Only the fields present in the payload change.
func (r *Resource[E]) Update(c *fiber.Ctx) error {
	id, ok := r.parseID(c)
	if !ok {
		return nil
	}

	fields, err := r.parseBody(c, r.opts.UpdateRequiredFields)
	if err != nil || fields == nil {
		return err
	}

	updated, err := r.repo.Update(c.Context(), id, fields)
	if err != nil {
		return r.writeRepoError(c, err)
	}

	return c.JSON(r.present(updated))
}

// Delete handles DELETE /:id. Responds 204 on success.
func (r *Resource[E]) Delete(c *fiber.Ctx) error {
	id, ok := r.parseID(c)
	if !ok {
		return nil
	}

	if err := r.repo.Delete(c.Context(), id); err != nil {
		return r.writeRepoError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// parseBody decodes the JSON payload and enforces the required fields.
// On a validation failure it writes the response and returns (nil, nil);
// callers must treat a nil map as request-already-answered.
func (r *Resource[E]) parseBody(c *fiber.Ctx, required []string) (map[string]any, error) {
	fields := make(map[string]any)
	if err := json.Unmarshal(c.Body(), &fields); err != nil {
		return nil, server.WriteError(c, fiber.StatusBadRequest, "corpo da requisição inválido")
	}

	var missing []string
	for _, name := range required {
		value, present := fields[name]
		if !present || value == nil || value == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, server.WriteMissingFields(c, missing)
	}

	if r.opts.BeforeWrite != nil {
		if err := r.opts.BeforeWrite(fields); err != nil {
			e := errx.AsErrorX(err)
			if e.Type() == errx.T_Validation {
				return nil, server.WriteError(c, fiber.StatusBadRequest, e.Error())
			}
			// Non-validation failures carry internal detail and go through
			// the generic error handler instead of the response body.
			return nil, err
		}
	}

	return fields, nil
}

// parseID reads the :id route parameter. On failure it writes a 400
// response and reports false.
func (r *Resource[E]) parseID(c *fiber.Ctx) (int64, bool) {
	return parseRouteID(c, "id")
}

// parseRouteID reads a positive integer route parameter, writing a 400
// response when it is absent or malformed.
func parseRouteID(c *fiber.Ctx, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		_ = server.WriteError(c, fiber.StatusBadRequest, "id inválido")
		return 0, false
	}
	return id, true
}

// writeRepoError maps typed repository errors to their HTTP responses.
// Anything unrecognized propagates to the server error handler.
func (r *Resource[E]) writeRepoError(c *fiber.Ctx, err error) error {
	e := errx.AsErrorX(err)
	switch e.Code() {
	case repository.CodeUniqueViolation:
		field, _ := e.Details()["field"].(string)
		if field == "" {
			field = "valor"
		}
		message := fmt.Sprintf("já existe %s com o mesmo valor de %s", r.opts.Label, field)
		return server.WriteError(c, fiber.StatusConflict, message)

	case repository.CodeForeignKeyViolation:
		message, _ := e.Details()["relation_message"].(string)
		if message == "" {
			message = "registro relacionado não encontrado"
		}
		return server.WriteError(c, fiber.StatusBadRequest, message)

	case repository.CodeReferentialBlock:
		return server.WriteError(c, fiber.StatusBadRequest,
			"registro possui dependências e não pode ser removido")

	case repository.CodeNotFound:
		return server.WriteError(c, fiber.StatusNotFound, r.notFoundMessage())

	default:
		return err
	}
}

func (r *Resource[E]) notFoundMessage() string {
	if r.opts.NotFoundMessage != "" {
		return r.opts.NotFoundMessage
	}
	return "registro não encontrado"
}

func (r *Resource[E]) present(entity *E) any {
	if r.opts.Sanitize != nil {
		return r.opts.Sanitize(entity)
	}
	return entity
}

func (r *Resource[E]) presentAll(entities []E) []any {
	return lo.Map(entities, func(entity E, _ int) any {
		return r.present(&entity)
	})
}

// remarshal converts the validated field map into the entity struct,
// rejecting payload values whose type does not fit the target field.
func remarshal(fields map[string]any, target any) error {
	raw, err := json.Marshal(fields)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, target)
}
