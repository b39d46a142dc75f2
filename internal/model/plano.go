package model

import (
	"time"

	"github.com/marcosmapl/studium-backend-sub000/pg"
	"github.com/uptrace/bun"
)

// PlanoEstudo is a user's study plan. The titulo is unique within the
// owning user.
type PlanoEstudo struct {
	bun.BaseModel `bun:"table:plano_estudo,alias:pln"`

	ID         int64      `bun:"id,pk,autoincrement" json:"id"`
	UsuarioID  int64      `bun:"usuario_id,notnull"  json:"usuarioId"`
	Titulo     string     `bun:"titulo,notnull"      json:"titulo"`
	Descricao  string     `bun:"descricao"           json:"descricao"`
	DataInicio *time.Time `bun:"data_inicio"         json:"dataInicio"`
	DataFim    *time.Time `bun:"data_fim"            json:"dataFim"`

	Usuario *Usuario `bun:"rel:belongs-to,join:usuario_id=id" json:"usuario,omitempty"`

	pg.Timestamps
}

// Disciplina is a subject inside a study plan. The titulo is unique within
// the plan.
type Disciplina struct {
	bun.BaseModel `bun:"table:disciplina,alias:dis"`

	ID            int64  `bun:"id,pk,autoincrement"     json:"id"`
	PlanoEstudoID int64  `bun:"plano_estudo_id,notnull" json:"planoEstudoId"`
	Titulo        string `bun:"titulo,notnull"          json:"titulo"`
	Descricao     string `bun:"descricao"               json:"descricao"`

	PlanoEstudo *PlanoEstudo `bun:"rel:belongs-to,join:plano_estudo_id=id" json:"planoEstudo,omitempty"`

	pg.Timestamps
}

// Topico is a study topic inside a discipline. The ordem is unique within
// the discipline.
type Topico struct {
	bun.BaseModel `bun:"table:topico,alias:top"`

	ID           int64  `bun:"id,pk,autoincrement"   json:"id"`
	DisciplinaID int64  `bun:"disciplina_id,notnull" json:"disciplinaId"`
	Titulo       string `bun:"titulo,notnull"        json:"titulo"`
	Ordem        int    `bun:"ordem,notnull"         json:"ordem"`
	PrioridadeID *int64 `bun:"prioridade_id"         json:"prioridadeId"`
	Concluido    bool   `bun:"concluido,notnull,default:false" json:"concluido"`

	Disciplina *Disciplina `bun:"rel:belongs-to,join:disciplina_id=id"  json:"disciplina,omitempty"`
	Prioridade *Prioridade `bun:"rel:belongs-to,join:prioridade_id=id"  json:"prioridade,omitempty"`

	pg.Timestamps
}
