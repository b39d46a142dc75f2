package repository

import (
	"context"

	"github.com/marcosmapl/studium-backend-sub000/internal/model"
	"github.com/marcosmapl/studium-backend-sub000/logger"
	"github.com/uptrace/bun"
)

// Usuario persists registered users.
type Usuario struct {
	*Base[model.Usuario]
}

func NewUsuario(db *bun.DB, log logger.Logger) *Usuario {
	return &Usuario{
		Base: NewBase[model.Usuario](db, log, "usuario", Options{
			DefaultOrder: "usr.nome ASC",
			Relations:    []string{"Escolaridade"},
			ConflictFields: map[string]string{
				"uq_usuario_email": "email",
			},
			FKMessages: map[string]string{
				"fk_usuario_escolaridade": "escolaridade não encontrada",
			},
			Columns: map[string]string{
				"nome":           "nome",
				"email":          "email",
				"senha":          "senha",
				"escolaridadeId": "escolaridade_id",
			},
		}),
	}
}

// FindByEmail returns the user with the given email, or nil when none
// exists. Used by login and by registration pre-checks.
func (r *Usuario) FindByEmail(ctx context.Context, email string) (*model.Usuario, error) {
	return r.FindByUniqueField(ctx, "email", email)
}
