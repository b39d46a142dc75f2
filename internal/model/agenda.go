package model

import (
	"time"

	"github.com/marcosmapl/studium-backend-sub000/pg"
	"github.com/uptrace/bun"
)

// BlocoEstudo is a recurring weekly study slot of a plan. The combination
// (planoEstudoId, diaSemana, ordem) is unique: a plan cannot schedule two
// blocks in the same position of the same weekday.
type BlocoEstudo struct {
	bun.BaseModel `bun:"table:bloco_estudo,alias:blo"`

	ID             int64  `bun:"id,pk,autoincrement"     json:"id"`
	PlanoEstudoID  int64  `bun:"plano_estudo_id,notnull" json:"planoEstudoId"`
	DiaSemana      int    `bun:"dia_semana,notnull"      json:"diaSemana"`
	HoraInicio     string `bun:"hora_inicio,notnull"     json:"horaInicio"`
	DuracaoMinutos int    `bun:"duracao_minutos,notnull" json:"duracaoMinutos"`
	Ordem          int    `bun:"ordem,notnull"           json:"ordem"`

	PlanoEstudo *PlanoEstudo `bun:"rel:belongs-to,join:plano_estudo_id=id" json:"planoEstudo,omitempty"`

	pg.Timestamps
}

// SessaoEstudo is a study session actually performed for a topic,
// optionally linked to the weekly block it fulfilled.
type SessaoEstudo struct {
	bun.BaseModel `bun:"table:sessao_estudo,alias:ses"`

	ID             int64     `bun:"id,pk,autoincrement"     json:"id"`
	TopicoID       int64     `bun:"topico_id,notnull"       json:"topicoId"`
	BlocoEstudoID  *int64    `bun:"bloco_estudo_id"         json:"blocoEstudoId"`
	Data           time.Time `bun:"data,notnull"            json:"data"`
	DuracaoMinutos int       `bun:"duracao_minutos,notnull" json:"duracaoMinutos"`
	Anotacoes      string    `bun:"anotacoes"               json:"anotacoes"`

	Topico      *Topico      `bun:"rel:belongs-to,join:topico_id=id"       json:"topico,omitempty"`
	BlocoEstudo *BlocoEstudo `bun:"rel:belongs-to,join:bloco_estudo_id=id" json:"blocoEstudo,omitempty"`

	pg.Timestamps
}

// Revisao is a scheduled review of a topic.
type Revisao struct {
	bun.BaseModel `bun:"table:revisao,alias:rev"`

	ID            int64      `bun:"id,pk,autoincrement" json:"id"`
	TopicoID      int64      `bun:"topico_id,notnull"   json:"topicoId"`
	DataPrevista  time.Time  `bun:"data_prevista,notnull" json:"dataPrevista"`
	DataRealizada *time.Time `bun:"data_realizada"        json:"dataRealizada"`
	Concluida     bool       `bun:"concluida,notnull,default:false" json:"concluida"`

	Topico *Topico `bun:"rel:belongs-to,join:topico_id=id" json:"topico,omitempty"`

	pg.Timestamps
}
