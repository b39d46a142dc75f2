package model

import (
	"github.com/marcosmapl/studium-backend-sub000/pg"
	"github.com/uptrace/bun"
)

// Usuario is a registered user. Senha holds the bcrypt hash, never the
// plain password; it is masked in logs and stripped from every response.
type Usuario struct {
	bun.BaseModel `bun:"table:usuario,alias:usr"`

	ID             int64  `bun:"id,pk,autoincrement"     json:"id"`
	Nome           string `bun:"nome,notnull"            json:"nome"`
	Email          string `bun:"email,notnull"           json:"email"`
	Senha          string `bun:"senha,notnull"           json:"senha,omitempty" mask:"true"`
	EscolaridadeID *int64 `bun:"escolaridade_id"         json:"escolaridadeId"`

	Escolaridade *Escolaridade `bun:"rel:belongs-to,join:escolaridade_id=id" json:"escolaridade,omitempty"`

	pg.Timestamps
}
