package repository

import (
	"context"

	"github.com/marcosmapl/studium-backend-sub000/internal/model"
	"github.com/marcosmapl/studium-backend-sub000/logger"
	"github.com/uptrace/bun"
)

// Escolaridade persists the education-level lookup table.
type Escolaridade struct {
	*Base[model.Escolaridade]
}

func NewEscolaridade(db *bun.DB, log logger.Logger) *Escolaridade {
	return &Escolaridade{
		Base: NewBase[model.Escolaridade](db, log, "escolaridade", Options{
			DefaultOrder: "esc.id ASC",
			ConflictFields: map[string]string{
				"uq_escolaridade_descricao": "descricao",
			},
			Columns: map[string]string{
				"descricao": "descricao",
			},
		}),
	}
}

// FindByDescricao returns the education level with the exact description,
// or nil when none matches.
func (r *Escolaridade) FindByDescricao(ctx context.Context, descricao string) (*model.Escolaridade, error) {
	return r.FindByUniqueField(ctx, "descricao", descricao)
}

// SearchByDescricao lists education levels whose description contains the
// given fragment, case-insensitively.
func (r *Escolaridade) SearchByDescricao(ctx context.Context, fragment string) ([]model.Escolaridade, error) {
	return r.FindMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("esc.descricao ILIKE ?", "%"+fragment+"%")
	})
}

// Prioridade persists the topic-priority lookup table.
type Prioridade struct {
	*Base[model.Prioridade]
}

func NewPrioridade(db *bun.DB, log logger.Logger) *Prioridade {
	return &Prioridade{
		Base: NewBase[model.Prioridade](db, log, "prioridade", Options{
			DefaultOrder: "pri.peso ASC",
			ConflictFields: map[string]string{
				"uq_prioridade_descricao": "descricao",
			},
			Columns: map[string]string{
				"descricao": "descricao",
				"peso":      "peso",
			},
		}),
	}
}

// FindByDescricao returns the priority with the exact description, or nil
// when none matches.
func (r *Prioridade) FindByDescricao(ctx context.Context, descricao string) (*model.Prioridade, error) {
	return r.FindByUniqueField(ctx, "descricao", descricao)
}

// SearchByDescricao lists priorities whose description contains the given
// fragment, case-insensitively.
func (r *Prioridade) SearchByDescricao(ctx context.Context, fragment string) ([]model.Prioridade, error) {
	return r.FindMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("pri.descricao ILIKE ?", "%"+fragment+"%")
	})
}
