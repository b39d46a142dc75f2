package repository

import (
	"context"

	"github.com/marcosmapl/studium-backend-sub000/internal/model"
	"github.com/marcosmapl/studium-backend-sub000/logger"
	"github.com/uptrace/bun"
)

// Topico persists the study topics of a discipline.
type Topico struct {
	*Base[model.Topico]
}

func NewTopico(db *bun.DB, log logger.Logger) *Topico {
	return &Topico{
		Base: NewBase[model.Topico](db, log, "topico", Options{
			DefaultOrder: "top.ordem ASC",
			Relations:    []string{"Prioridade"},
			ConflictFields: map[string]string{
				"uq_topico_disciplina_ordem": "ordem",
			},
			FKMessages: map[string]string{
				"fk_topico_disciplina": "disciplina não encontrada",
				"fk_topico_prioridade": "prioridade não encontrada",
			},
			Columns: map[string]string{
				"disciplinaId": "disciplina_id",
				"titulo":       "titulo",
				"ordem":        "ordem",
				"prioridadeId": "prioridade_id",
				"concluido":    "concluido",
			},
		}),
	}
}

// FindByDisciplina lists the topics of a discipline in study order.
func (r *Topico) FindByDisciplina(ctx context.Context, disciplinaID int64) ([]model.Topico, error) {
	return r.FindMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("top.disciplina_id = ?", disciplinaID)
	})
}
