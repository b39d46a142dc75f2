package handler

import (
	"strings"
	"testing"

	"github.com/code19m/errx"
	"github.com/marcosmapl/studium-backend-sub000/hasher"
	"github.com/marcosmapl/studium-backend-sub000/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateUsuario_HashesPassword(t *testing.T) {
	fields := map[string]any{
		"nome":  "Maria",
		"email": "maria@example.com",
		"senha": "segredo123",
	}

	require.NoError(t, validateUsuario(fields))

	hash, ok := fields["senha"].(string)
	require.True(t, ok)
	assert.NotEqual(t, "segredo123", hash)
	assert.True(t, hasher.Compare("segredo123", hash))
}

func TestValidateUsuario_RejectsShortPassword(t *testing.T) {
	err := validateUsuario(map[string]any{"senha": "abc"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "senha")
}

func TestValidateUsuario_RejectsLongPassword(t *testing.T) {
	err := validateUsuario(map[string]any{"senha": strings.Repeat("x", 73)})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no máximo 72 caracteres")
	assert.Equal(t, errx.T_Validation, errx.AsErrorX(err).Type())
}

func TestValidateUsuario_RejectsInvalidEmail(t *testing.T) {
	err := validateUsuario(map[string]any{"email": "not-an-email"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "email inválido")
}

func TestValidateUsuario_IgnoresAbsentFields(t *testing.T) {
	assert.NoError(t, validateUsuario(map[string]any{"nome": "Maria"}))
}

func TestSanitizeUsuario_StripsPassword(t *testing.T) {
	u := &model.Usuario{ID: 1, Nome: "Maria", Email: "maria@example.com", Senha: "hash"}

	out := sanitizeUsuario(u)

	clone, ok := out.(*model.Usuario)
	require.True(t, ok)
	assert.Empty(t, clone.Senha)
	assert.Equal(t, "hash", u.Senha, "original must stay untouched")
}
