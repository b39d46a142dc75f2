package mask_test

import (
	"encoding/json"
	"testing"

	"github.com/marcosmapl/studium-backend-sub000/mask"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

type credentials struct {
	Email string `json:"email"`
	Senha string `json:"senha" mask:"true"`
}

type account struct {
	Nome        string       `json:"nome"`
	Credentials *credentials `json:"credentials"`
	Tags        []string     `json:"tags"`
	hidden      string       //nolint:unused // verifies unexported fields are skipped
}

func get(t *testing.T, om *orderedmap.OrderedMap[string, any], key string) any {
	t.Helper()
	v, ok := om.Get(key)
	require.True(t, ok, "key %q not found", key)
	return v
}

func TestStruct_MasksTaggedFields(t *testing.T) {
	out := mask.Struct(credentials{Email: "a@b.com", Senha: "s3cret"})

	om, ok := out.(*orderedmap.OrderedMap[string, any])
	require.True(t, ok)
	assert.Equal(t, "a@b.com", get(t, om, "email"))
	assert.Equal(t, "*****", get(t, om, "senha"))
}

func TestStruct_KeepsDeclarationOrder(t *testing.T) {
	in := struct {
		Zeta  string `json:"zeta"`
		Alpha string `json:"alpha"`
		Senha string `json:"senha" mask:"true"`
	}{Zeta: "z", Alpha: "a", Senha: "supersecret"}

	raw, err := json.Marshal(mask.Struct(in))
	require.NoError(t, err)
	assert.Equal(t, `{"zeta":"z","alpha":"a","senha":"*****"}`, string(raw))
}

func TestStruct_Nested(t *testing.T) {
	out := mask.Struct(account{
		Nome:        "Maria",
		Credentials: &credentials{Email: "m@x.com", Senha: "abc"},
		Tags:        []string{"x"},
	})

	om, ok := out.(*orderedmap.OrderedMap[string, any])
	require.True(t, ok)
	assert.Equal(t, "Maria", get(t, om, "nome"))

	inner, ok := get(t, om, "credentials").(*orderedmap.OrderedMap[string, any])
	require.True(t, ok)
	assert.Equal(t, "*****", get(t, inner, "senha"))

	assert.Equal(t, []any{"x"}, get(t, om, "tags"))
}

func TestStruct_YamlTagFallback(t *testing.T) {
	in := struct {
		Host   string `yaml:"host"`
		Secret string `yaml:"secret" mask:"true"`
	}{Host: "localhost", Secret: "k"}

	om, ok := mask.Struct(in).(*orderedmap.OrderedMap[string, any])
	require.True(t, ok)
	assert.Equal(t, "localhost", get(t, om, "host"))
	assert.Equal(t, "*****", get(t, om, "secret"))
}

func TestStruct_NilPointer(t *testing.T) {
	om, ok := mask.Struct(account{Nome: "n"}).(*orderedmap.OrderedMap[string, any])
	require.True(t, ok)
	assert.Nil(t, get(t, om, "credentials"))
}

func TestStruct_NonStructPassthrough(t *testing.T) {
	assert.Equal(t, 42, mask.Struct(42))
	assert.Equal(t, "plain", mask.Struct("plain"))
}
