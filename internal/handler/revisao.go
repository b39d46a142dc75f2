package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/marcosmapl/studium-backend-sub000/internal/model"
	"github.com/marcosmapl/studium-backend-sub000/internal/repository"
)

// Revisao exposes the scheduled topic-review endpoints.
type Revisao struct {
	*Resource[model.Revisao]
	repo *repository.Revisao
}

func NewRevisao(repo *repository.Revisao) *Revisao {
	return &Revisao{
		repo: repo,
		Resource: NewResource[model.Revisao](repo, Options[model.Revisao]{
			Label:                "revisão",
			RequiredFields:       []string{"topicoId", "dataPrevista"},
			UpdateRequiredFields: nil,
			NotFoundMessage:      "revisão não encontrada",
			SortFields:           []string{"data_prevista", "criado_em"},
		}),
	}
}

// Register mounts the review routes under api.
func (h *Revisao) Register(api fiber.Router) {
	g := api.Group("/revisao")
	g.Post("/", h.Create)
	g.Get("/", h.FindAll)
	g.Get("/descricao/exact/:descricao", h.FindByDescricao)
	g.Get("/descricao/search/:descricao", h.SearchByDescricao)
	g.Get("/topico/:topicoId", h.FindByTopico)
	g.Get("/:id", h.FindByID)
	g.Put("/:id", h.Update)
	g.Delete("/:id", h.Delete)
}

// FindByTopico lists the reviews scheduled for one topic, soonest first.
func (h *Revisao) FindByTopico(c *fiber.Ctx) error {
	topicoID, ok := parseRouteID(c, "topicoId")
	if !ok {
		return nil
	}

	revisoes, err := h.repo.FindByTopico(c.Context(), topicoID)
	if err != nil {
		return h.writeRepoError(c, err)
	}

	return c.JSON(h.presentAll(revisoes))
}
