package handler

import (
	"github.com/code19m/errx"
	"github.com/gofiber/fiber/v2"
	"github.com/marcosmapl/studium-backend-sub000/internal/model"
	"github.com/marcosmapl/studium-backend-sub000/internal/repository"
	"github.com/spf13/cast"
)

// Topico exposes the study-topic endpoints.
type Topico struct {
	*Resource[model.Topico]
	repo *repository.Topico
}

func NewTopico(repo *repository.Topico) *Topico {
	return &Topico{
		repo: repo,
		Resource: NewResource[model.Topico](repo, Options[model.Topico]{
			Label:                "tópico",
			RequiredFields:       []string{"disciplinaId", "titulo", "ordem"},
			UpdateRequiredFields: []string{"titulo"},
			NotFoundMessage:      "tópico não encontrado",
			SortFields:           []string{"ordem", "titulo", "criado_em"},
			BeforeWrite:          validateTopico,
		}),
	}
}

// Register mounts the topic routes under api.
func (h *Topico) Register(api fiber.Router) {
	g := api.Group("/topico")
	g.Post("/", h.Create)
	g.Get("/", h.FindAll)
	g.Get("/descricao/exact/:descricao", h.FindByDescricao)
	g.Get("/descricao/search/:descricao", h.SearchByDescricao)
	g.Get("/disciplina/:disciplinaId", h.FindByDisciplina)
	g.Get("/:id", h.FindByID)
	g.Put("/:id", h.Update)
	g.Delete("/:id", h.Delete)
}

// FindByDisciplina lists the topics of one discipline in study order.
func (h *Topico) FindByDisciplina(c *fiber.Ctx) error {
	disciplinaID, ok := parseRouteID(c, "disciplinaId")
	if !ok {
		return nil
	}

	topicos, err := h.repo.FindByDisciplina(c.Context(), disciplinaID)
	if err != nil {
		return h.writeRepoError(c, err)
	}

	return c.JSON(h.presentAll(topicos))
}

func validateTopico(fields map[string]any) error {
	if raw, ok := fields["ordem"]; ok {
		ordem, err := cast.ToIntE(raw)
		if err != nil || ordem < 1 {
			return errx.New("ordem deve ser um número inteiro maior que zero",
				errx.WithType(errx.T_Validation))
		}
		fields["ordem"] = ordem
	}
	return nil
}
