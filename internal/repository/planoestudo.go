package repository

import (
	"context"

	"github.com/marcosmapl/studium-backend-sub000/internal/model"
	"github.com/marcosmapl/studium-backend-sub000/logger"
	"github.com/uptrace/bun"
)

// PlanoEstudo persists study plans.
type PlanoEstudo struct {
	*Base[model.PlanoEstudo]
}

func NewPlanoEstudo(db *bun.DB, log logger.Logger) *PlanoEstudo {
	return &PlanoEstudo{
		Base: NewBase[model.PlanoEstudo](db, log, "planoEstudo", Options{
			DefaultOrder: "pln.titulo ASC",
			ConflictFields: map[string]string{
				"uq_plano_usuario_titulo": "titulo",
			},
			FKMessages: map[string]string{
				"fk_plano_usuario": "usuário não encontrado",
			},
			Columns: map[string]string{
				"usuarioId":  "usuario_id",
				"titulo":     "titulo",
				"descricao":  "descricao",
				"dataInicio": "data_inicio",
				"dataFim":    "data_fim",
			},
		}),
	}
}

// FindByUsuario lists every plan owned by the given user.
func (r *PlanoEstudo) FindByUsuario(ctx context.Context, usuarioID int64) ([]model.PlanoEstudo, error) {
	return r.FindMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("pln.usuario_id = ?", usuarioID)
	})
}
