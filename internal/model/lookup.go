// Package model declares the bun models for every table of the studium
// schema. Field names follow the API's JSON convention (camelCase, in
// Portuguese) and columns use snake_case.
package model

import (
	"github.com/marcosmapl/studium-backend-sub000/pg"
	"github.com/uptrace/bun"
)

// Escolaridade is the education-level lookup table shown on the
// registration form. Publicly readable.
type Escolaridade struct {
	bun.BaseModel `bun:"table:escolaridade,alias:esc"`

	ID        int64  `bun:"id,pk,autoincrement" json:"id"`
	Descricao string `bun:"descricao,notnull"   json:"descricao"`

	pg.Timestamps
}

// Prioridade is the topic-priority lookup table. Publicly readable.
type Prioridade struct {
	bun.BaseModel `bun:"table:prioridade,alias:pri"`

	ID        int64  `bun:"id,pk,autoincrement" json:"id"`
	Descricao string `bun:"descricao,notnull"   json:"descricao"`
	Peso      int    `bun:"peso,notnull"        json:"peso"`

	pg.Timestamps
}
