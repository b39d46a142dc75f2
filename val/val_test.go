package val_test

import (
	"testing"

	"github.com/code19m/errx"
	"github.com/marcosmapl/studium-backend-sub000/val"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loginSchema struct {
	Email string `json:"email" validate:"required,email"`
	Senha string `json:"senha" validate:"required,min=6"`
}

func TestValidateSchema_Valid(t *testing.T) {
	err := val.ValidateSchema(loginSchema{Email: "a@b.com", Senha: "123456"})
	assert.NoError(t, err)
}

func TestValidateSchema_Invalid(t *testing.T) {
	err := val.ValidateSchema(loginSchema{Email: "nope", Senha: "123"})
	require.Error(t, err)

	e := errx.AsErrorX(err)
	assert.Equal(t, val.CodeValidationFailed, e.Code())
	assert.Equal(t, errx.T_Validation, e.Type())

	fields := e.Fields()
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "senha")
	assert.Equal(t, "Invalid email format", fields["email"])
	assert.Equal(t, "Must be at least 6 characters", fields["senha"])
}

func TestValidateSchema_FieldNamesFromJSONTags(t *testing.T) {
	err := val.ValidateSchema(loginSchema{})
	require.Error(t, err)

	fields := errx.AsErrorX(err).Fields()
	assert.Contains(t, fields, "email")
	assert.NotContains(t, fields, "Email")
}
