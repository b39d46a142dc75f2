package repository

import (
	"context"

	"github.com/marcosmapl/studium-backend-sub000/internal/model"
	"github.com/marcosmapl/studium-backend-sub000/logger"
	"github.com/uptrace/bun"
)

// Revisao persists scheduled topic reviews.
type Revisao struct {
	*Base[model.Revisao]
}

func NewRevisao(db *bun.DB, log logger.Logger) *Revisao {
	return &Revisao{
		Base: NewBase[model.Revisao](db, log, "revisao", Options{
			DefaultOrder: "rev.data_prevista ASC",
			FKMessages: map[string]string{
				"fk_revisao_topico": "tópico não encontrado",
			},
			Columns: map[string]string{
				"topicoId":      "topico_id",
				"dataPrevista":  "data_prevista",
				"dataRealizada": "data_realizada",
				"concluida":     "concluida",
			},
		}),
	}
}

// FindByTopico lists the reviews scheduled for a topic, soonest first.
func (r *Revisao) FindByTopico(ctx context.Context, topicoID int64) ([]model.Revisao, error) {
	return r.FindMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("rev.topico_id = ?", topicoID)
	})
}
