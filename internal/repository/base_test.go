package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/code19m/errx"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/marcosmapl/studium-backend-sub000/internal/model"
	"github.com/marcosmapl/studium-backend-sub000/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBase(t *testing.T) *Base[model.Usuario] {
	t.Helper()
	return NewBase[model.Usuario](nil, logger.Nop(), "usuario", Options{
		ConflictFields: map[string]string{
			"uq_usuario_email": "email",
		},
		FKMessages: map[string]string{
			"fk_usuario_escolaridade": "escolaridade não encontrada",
		},
	})
}

func TestTranslateWriteError_UniqueViolation(t *testing.T) {
	base := testBase(t)

	err := base.translateWriteError(context.Background(), "create", &pgconn.PgError{
		Code:           "23505",
		ConstraintName: "uq_usuario_email",
	}, nil, nil)

	e := errx.AsErrorX(err)
	assert.Equal(t, errx.T_Conflict, e.Type())
	assert.Equal(t, CodeUniqueViolation, e.Code())
	assert.Equal(t, "email", e.Details()["field"])
}

func TestTranslateWriteError_UnknownConstraintFallsBack(t *testing.T) {
	base := testBase(t)

	err := base.translateWriteError(context.Background(), "create", &pgconn.PgError{
		Code:           "23505",
		ConstraintName: "uq_something_else",
	}, nil, nil)

	e := errx.AsErrorX(err)
	assert.Equal(t, CodeUniqueViolation, e.Code())
	assert.Equal(t, "valor", e.Details()["field"])
}

func TestTranslateWriteError_ForeignKeyViolation(t *testing.T) {
	base := testBase(t)

	err := base.translateWriteError(context.Background(), "create", &pgconn.PgError{
		Code:           "23503",
		ConstraintName: "fk_usuario_escolaridade",
	}, nil, nil)

	e := errx.AsErrorX(err)
	assert.Equal(t, errx.T_Validation, e.Type())
	assert.Equal(t, CodeForeignKeyViolation, e.Code())
	assert.Equal(t, "escolaridade não encontrada", e.Details()["relation_message"])
}

func TestTranslateWriteError_UnexpectedErrorKeepsInternalType(t *testing.T) {
	base := testBase(t)

	cause := errors.New("connection reset by peer")
	err := base.translateWriteError(context.Background(), "create", cause, nil, nil)

	require.Error(t, err)
	e := errx.AsErrorX(err)
	assert.Equal(t, errx.T_Internal, e.Type())
	assert.NotEqual(t, CodeUniqueViolation, e.Code())
	assert.NotEqual(t, CodeForeignKeyViolation, e.Code())
}

func TestNotFoundError(t *testing.T) {
	base := testBase(t)

	err := base.notFound()

	e := errx.AsErrorX(err)
	assert.Equal(t, errx.T_NotFound, e.Type())
	assert.Equal(t, CodeNotFound, e.Code())
	assert.Equal(t, "usuario", e.Details()["entity"])
}
