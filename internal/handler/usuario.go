package handler

import (
	"github.com/code19m/errx"
	"github.com/gofiber/fiber/v2"
	"github.com/marcosmapl/studium-backend-sub000/hasher"
	"github.com/marcosmapl/studium-backend-sub000/internal/model"
	"github.com/marcosmapl/studium-backend-sub000/internal/repository"
	"github.com/marcosmapl/studium-backend-sub000/val"
)

const (
	minPasswordLength = 6
	// bcrypt rejects inputs longer than 72 bytes.
	maxPasswordLength = 72
)

// Usuario exposes the user endpoints. Passwords are bcrypt-hashed before
// persistence and stripped from every response.
type Usuario struct {
	*Resource[model.Usuario]
}

func NewUsuario(repo *repository.Usuario) *Usuario {
	return &Usuario{
		Resource: NewResource[model.Usuario](repo, Options[model.Usuario]{
			Label:                "usuário",
			RequiredFields:       []string{"nome", "email", "senha"},
			UpdateRequiredFields: []string{"nome", "email"},
			NotFoundMessage:      "usuário não encontrado",
			SortFields:           []string{"nome", "email", "criado_em"},
			BeforeWrite:          validateUsuario,
			Sanitize:             sanitizeUsuario,
		}),
	}
}

// Register mounts the user routes under api.
func (h *Usuario) Register(api fiber.Router) {
	g := api.Group("/usuario")
	g.Post("/", h.Create)
	g.Get("/", h.FindAll)
	g.Get("/descricao/exact/:descricao", h.FindByDescricao)
	g.Get("/descricao/search/:descricao", h.SearchByDescricao)
	g.Get("/:id", h.FindByID)
	g.Put("/:id", h.Update)
	g.Delete("/:id", h.Delete)
}

func validateUsuario(fields map[string]any) error {
	if raw, ok := fields["email"]; ok {
		email, _ := raw.(string)
		schema := struct {
			Email string `json:"email" validate:"required,email"`
		}{Email: email}
		if err := val.ValidateSchema(schema); err != nil {
			return errx.New("email inválido", errx.WithType(errx.T_Validation))
		}
	}

	if raw, ok := fields["senha"]; ok {
		senha, _ := raw.(string)
		if len(senha) < minPasswordLength {
			return errx.New("senha deve ter no mínimo 6 caracteres", errx.WithType(errx.T_Validation))
		}
		if len(senha) > maxPasswordLength {
			return errx.New("senha deve ter no máximo 72 caracteres", errx.WithType(errx.T_Validation))
		}
		hash, err := hasher.Hash(senha)
		if err != nil {
			return err
		}
		fields["senha"] = hash
	}

	return nil
}

// sanitizeUsuario strips the password hash from the response.
func sanitizeUsuario(u *model.Usuario) any {
	clone := *u
	clone.Senha = ""
	return &clone
}
