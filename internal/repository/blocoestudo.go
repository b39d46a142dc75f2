package repository

import (
	"context"

	"github.com/marcosmapl/studium-backend-sub000/internal/model"
	"github.com/marcosmapl/studium-backend-sub000/logger"
	"github.com/uptrace/bun"
)

// BlocoEstudo persists the weekly study slots of a plan.
type BlocoEstudo struct {
	*Base[model.BlocoEstudo]
}

func NewBlocoEstudo(db *bun.DB, log logger.Logger) *BlocoEstudo {
	return &BlocoEstudo{
		Base: NewBase[model.BlocoEstudo](db, log, "blocoEstudo", Options{
			DefaultOrder: "blo.dia_semana ASC, blo.ordem ASC",
			ConflictFields: map[string]string{
				"uq_bloco_plano_dia_ordem": "ordem",
			},
			FKMessages: map[string]string{
				"fk_bloco_plano": "plano de estudo não encontrado",
			},
			Columns: map[string]string{
				"planoEstudoId":  "plano_estudo_id",
				"diaSemana":      "dia_semana",
				"horaInicio":     "hora_inicio",
				"duracaoMinutos": "duracao_minutos",
				"ordem":          "ordem",
			},
		}),
	}
}

// FindByPlanoEstudo lists the weekly blocks of a plan ordered by weekday
// and position.
func (r *BlocoEstudo) FindByPlanoEstudo(ctx context.Context, planoID int64) ([]model.BlocoEstudo, error) {
	return r.FindMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("blo.plano_estudo_id = ?", planoID)
	})
}
