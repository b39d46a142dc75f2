package pg

import (
	"context"
	"time"

	"github.com/uptrace/bun"
)

// Timestamps provides common timestamp fields that can be embedded in other models.
type Timestamps struct {
	// CreatedAt stores the timestamp when the record was created.
	CreatedAt time.Time `bun:"criado_em,nullzero"     json:"criadoEm"`
	// UpdatedAt stores the timestamp when the record was last updated.
	UpdatedAt time.Time `bun:"atualizado_em,nullzero" json:"atualizadoEm"`
}

// Verify that Timestamps implements bun.BeforeAppendModelHook.
var _ bun.BeforeAppendModelHook = (*Timestamps)(nil)

// BeforeAppendModel updates the timestamp fields before insert and update queries.
func (m *Timestamps) BeforeAppendModel(_ context.Context, query bun.Query) error {
	switch query.(type) {
	case *bun.InsertQuery:
		m.CreatedAt = time.Now()
		m.UpdatedAt = time.Now()
	case *bun.UpdateQuery:
		m.UpdatedAt = time.Now()
	}
	return nil
}
