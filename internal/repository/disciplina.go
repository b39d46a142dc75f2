package repository

import (
	"context"

	"github.com/marcosmapl/studium-backend-sub000/internal/model"
	"github.com/marcosmapl/studium-backend-sub000/logger"
	"github.com/uptrace/bun"
)

// Disciplina persists the subjects of a study plan.
type Disciplina struct {
	*Base[model.Disciplina]
}

func NewDisciplina(db *bun.DB, log logger.Logger) *Disciplina {
	return &Disciplina{
		Base: NewBase[model.Disciplina](db, log, "disciplina", Options{
			DefaultOrder: "dis.titulo ASC",
			ConflictFields: map[string]string{
				"uq_disciplina_plano_titulo": "titulo",
			},
			FKMessages: map[string]string{
				"fk_disciplina_plano": "plano de estudo não encontrado",
			},
			Columns: map[string]string{
				"planoEstudoId": "plano_estudo_id",
				"titulo":        "titulo",
				"descricao":     "descricao",
			},
		}),
	}
}

// FindByPlanoEstudo lists the disciplines of a plan.
func (r *Disciplina) FindByPlanoEstudo(ctx context.Context, planoID int64) ([]model.Disciplina, error) {
	return r.FindMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("dis.plano_estudo_id = ?", planoID)
	})
}
