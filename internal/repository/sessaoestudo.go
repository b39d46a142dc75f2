package repository

import (
	"context"

	"github.com/marcosmapl/studium-backend-sub000/internal/model"
	"github.com/marcosmapl/studium-backend-sub000/logger"
	"github.com/uptrace/bun"
)

// SessaoEstudo persists performed study sessions.
type SessaoEstudo struct {
	*Base[model.SessaoEstudo]
}

func NewSessaoEstudo(db *bun.DB, log logger.Logger) *SessaoEstudo {
	return &SessaoEstudo{
		Base: NewBase[model.SessaoEstudo](db, log, "sessaoEstudo", Options{
			DefaultOrder: "ses.data DESC",
			FKMessages: map[string]string{
				"fk_sessao_topico": "tópico não encontrado",
				"fk_sessao_bloco":  "bloco de estudo não encontrado",
			},
			Columns: map[string]string{
				"topicoId":       "topico_id",
				"blocoEstudoId":  "bloco_estudo_id",
				"data":           "data",
				"duracaoMinutos": "duracao_minutos",
				"anotacoes":      "anotacoes",
			},
		}),
	}
}

// FindByTopico lists the sessions recorded for a topic, newest first.
func (r *SessaoEstudo) FindByTopico(ctx context.Context, topicoID int64) ([]model.SessaoEstudo, error) {
	return r.FindMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("ses.topico_id = ?", topicoID)
	})
}
