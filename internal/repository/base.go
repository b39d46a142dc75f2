// Package repository implements the data-access layer. A generic Base
// provides the uniform CRUD contract over one bun model; per-entity
// repositories are built through factory functions that configure the base
// with the entity's constraints and add entity-specific finders.
//
// Constraint violations never surface as raw database errors: the base
// translates them into errx errors with stable codes (see codes.go) so the
// handlers can map them to HTTP responses without inspecting driver
// internals.
package repository

import (
	"context"
	"fmt"
	"reflect"

	"github.com/code19m/errx"
	"github.com/marcosmapl/studium-backend-sub000/logger"
	"github.com/marcosmapl/studium-backend-sub000/pagination"
	"github.com/marcosmapl/studium-backend-sub000/pg"
	"github.com/marcosmapl/studium-backend-sub000/sorter"
	"github.com/uptrace/bun"
)

// QueryFunc customizes a select query. It is the building block for
// entity-specific finders.
type QueryFunc func(q *bun.SelectQuery) *bun.SelectQuery

// Options configures a Base repository.
type Options struct {
	// DefaultOrder is the order clause applied when the caller does not
	// supply one, e.g. "titulo asc".
	DefaultOrder string

	// Relations are eagerly included on every read and on the records
	// returned by Create and Update.
	Relations []string

	// ConflictFields maps unique-constraint names to the JSON field they
	// protect, used to name the conflicting field in error details.
	ConflictFields map[string]string

	// FKMessages maps foreign-key-constraint names to the user-facing
	// message for a dangling reference (e.g. "plano de estudo não
	// encontrado").
	FKMessages map[string]string

	// Columns maps JSON field names to database columns for partial
	// updates. Fields not present in the map are ignored by Update.
	Columns map[string]string
}

// Base provides the uniform data-access contract over one bun model.
// It is always embedded in a per-entity repository; the per-entity factory
// is the only construction path.
type Base[E any] struct {
	db    *bun.DB
	log   logger.Logger
	label string
	opts  Options
}

// NewBase creates the shared repository core for one model. Called only by
// the per-entity factories in this package.
func NewBase[E any](db *bun.DB, log logger.Logger, label string, opts Options) *Base[E] {
	return &Base[E]{
		db:    db,
		log:   log.Named("repository." + label),
		label: label,
		opts:  opts,
	}
}

// Create inserts one record. The returned record carries the configured
// relations populated. Unique and foreign-key violations are returned as
// typed errors; anything else is logged with the failing payload and
// propagated.
func (r *Base[E]) Create(ctx context.Context, entity *E) (*E, error) {
	q := r.db.NewInsert().Model(entity).Returning("*")
	if _, err := q.Exec(ctx); err != nil {
		return nil, r.translateWriteError(ctx, "create", err, q, entity)
	}

	if len(r.opts.Relations) == 0 {
		return entity, nil
	}
	return r.FindByID(ctx, r.idOf(entity))
}

// FindAll returns records ordered by the configured default clause unless
// sort overrides it. A zero limit means all matching records.
func (r *Base[E]) FindAll(ctx context.Context, p pagination.Params, sort sorter.SortOpts) ([]E, error) {
	entities := make([]E, 0)
	q := r.selectQuery(r.db.NewSelect().Model(&entities))

	if len(sort) > 0 {
		for _, opt := range sort {
			q = q.OrderExpr("? ?", bun.Ident(opt.F), bun.Safe(opt.D))
		}
	} else if r.opts.DefaultOrder != "" {
		q = q.OrderExpr("?", bun.Safe(r.opts.DefaultOrder))
	}
	if !p.Unlimited() {
		q = q.Limit(p.Limit).Offset(p.Offset)
	}

	if err := q.Scan(ctx); err != nil {
		return nil, r.unexpected(ctx, "findAll", err, q, nil)
	}

	return entities, nil
}

// FindByID returns the record with the given identity, relations included.
// Absence is a typed not-found error.
func (r *Base[E]) FindByID(ctx context.Context, id int64) (*E, error) {
	entity := new(E)
	q := r.selectQuery(r.db.NewSelect().Model(entity)).Where("?TableAlias.id = ?", id)

	err := q.Scan(ctx)
	if err != nil {
		if pg.IsNotFound(err) {
			return nil, r.notFound()
		}
		return nil, r.unexpected(ctx, "findById", err, q, id)
	}

	return entity, nil
}

// FindByUniqueField returns at most one record whose column matches value,
// or nil when none does. The column name comes from code, never from user
// input.
func (r *Base[E]) FindByUniqueField(ctx context.Context, column string, value any) (*E, error) {
	var entities []E
	q := r.selectQuery(r.db.NewSelect().Model(&entities)).
		Where("?TableAlias.? = ?", bun.Ident(column), value).
		Limit(1)

	if err := q.Scan(ctx); err != nil {
		return nil, r.unexpected(ctx, "findByUniqueField", err, q, value)
	}

	if len(entities) == 0 {
		return nil, nil
	}
	return &entities[0], nil
}

// FindMany runs a filtered list query. The apply function receives a query
// preconfigured with relations and the default order.
func (r *Base[E]) FindMany(ctx context.Context, apply QueryFunc) ([]E, error) {
	entities := make([]E, 0)
	q := r.selectQuery(r.db.NewSelect().Model(&entities))
	if r.opts.DefaultOrder != "" {
		q = q.OrderExpr("?", bun.Safe(r.opts.DefaultOrder))
	}
	if apply != nil {
		q = apply(q)
	}

	if err := q.Scan(ctx); err != nil {
		return nil, r.unexpected(ctx, "findMany", err, q, nil)
	}

	return entities, nil
}

// Update applies a partial update: only the JSON fields present in fields
// change, everything else is left untouched. Returns the updated record with
// relations included. Zero affected rows is the typed not-found error.
func (r *Base[E]) Update(ctx context.Context, id int64, fields map[string]any) (*E, error) {
	q := r.db.NewUpdate().Model((*E)(nil)).Where("id = ?", id)

	touched := 0
	for field, value := range fields {
		column, ok := r.opts.Columns[field]
		if !ok {
			continue
		}
		q = q.Set("? = ?", bun.Ident(column), value)
		touched++
	}
	if touched == 0 {
		// Nothing to change; behave like a no-op update on an existing row.
		return r.FindByID(ctx, id)
	}

	result, err := q.Exec(ctx)
	if err != nil {
		return nil, r.translateWriteError(ctx, "update", err, q, fields)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, r.unexpected(ctx, "update", err, q, fields)
	}
	if affected == 0 {
		return nil, r.notFound()
	}

	return r.FindByID(ctx, id)
}

// Delete removes the record with the given identity. Absence is the typed
// not-found error; a foreign-key violation means dependent records still
// reference the target and is returned as a referential block.
func (r *Base[E]) Delete(ctx context.Context, id int64) error {
	q := r.db.NewDelete().Model((*E)(nil)).Where("id = ?", id)

	result, err := q.Exec(ctx)
	if err != nil {
		if pg.IsForeignKeyViolation(err) {
			return errx.New(
				fmt.Sprintf("delete of %s blocked by dependent records", r.label),
				errx.WithType(errx.T_Validation),
				errx.WithCode(CodeReferentialBlock),
				errx.WithDetails(errx.D{"entity": r.label}),
			)
		}
		return r.unexpected(ctx, "delete", err, q, id)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return r.unexpected(ctx, "delete", err, q, id)
	}
	if affected == 0 {
		return r.notFound()
	}

	return nil
}

// Count returns the number of records matching the filter.
func (r *Base[E]) Count(ctx context.Context, apply QueryFunc) (int, error) {
	q := r.db.NewSelect().Model((*E)(nil))
	if apply != nil {
		q = apply(q)
	}

	count, err := q.Count(ctx)
	if err != nil {
		return 0, r.unexpected(ctx, "count", err, q, nil)
	}

	return count, nil
}

// selectQuery preconfigures a select with the eager relations.
func (r *Base[E]) selectQuery(q *bun.SelectQuery) *bun.SelectQuery {
	for _, rel := range r.opts.Relations {
		q = q.Relation(rel)
	}
	return q
}

// translateWriteError turns constraint violations of create/update into
// typed errors and routes everything else through unexpected.
func (r *Base[E]) translateWriteError(ctx context.Context, op string, err error, q fmt.Stringer, input any) error {
	switch {
	case pg.IsUniqueViolation(err):
		field, ok := r.opts.ConflictFields[pg.ConstraintName(err)]
		if !ok {
			field = "valor"
		}
		return errx.New(
			fmt.Sprintf("unique constraint violated on %s", r.label),
			errx.WithType(errx.T_Conflict),
			errx.WithCode(CodeUniqueViolation),
			errx.WithDetails(errx.D{"entity": r.label, "field": field}),
		)

	case pg.IsForeignKeyViolation(err):
		message, ok := r.opts.FKMessages[pg.ConstraintName(err)]
		if !ok {
			message = "registro relacionado não encontrado"
		}
		return errx.New(
			fmt.Sprintf("dangling reference on %s", r.label),
			errx.WithType(errx.T_Validation),
			errx.WithCode(CodeForeignKeyViolation),
			errx.WithDetails(errx.D{"entity": r.label, "relation_message": message}),
		)

	default:
		return r.unexpected(ctx, op, err, q, input)
	}
}

// unexpected logs the operation, model and failing input, then wraps the
// error with the pg diagnostics without changing its propagation path.
func (r *Base[E]) unexpected(_ context.Context, op string, err error, q fmt.Stringer, input any) error {
	wrapped := errx.Wrap(err, errx.WithDetails(pg.GetPgErrorDetails(err, q)))

	r.log.
		With("operation", op).
		With("model", r.label).
		With("input", fmt.Sprintf("%+v", input)).
		Errorx(wrapped)

	return wrapped
}

func (r *Base[E]) notFound() error {
	return errx.New(
		fmt.Sprintf("no %s found", r.label),
		errx.WithType(errx.T_NotFound),
		errx.WithCode(CodeNotFound),
		errx.WithDetails(errx.D{"entity": r.label}),
	)
}

// idOf reads the identity assigned by the insert. Every model in this
// package exposes its primary key as an int64 field named ID.
func (r *Base[E]) idOf(entity *E) int64 {
	v := reflect.ValueOf(entity).Elem().FieldByName("ID")
	if !v.IsValid() || v.Kind() != reflect.Int64 {
		return 0
	}
	return v.Int()
}
