package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/marcosmapl/studium-backend-sub000/internal/model"
	"github.com/marcosmapl/studium-backend-sub000/internal/repository"
)

// PlanoEstudo exposes the study-plan endpoints.
type PlanoEstudo struct {
	*Resource[model.PlanoEstudo]
	repo *repository.PlanoEstudo
}

func NewPlanoEstudo(repo *repository.PlanoEstudo) *PlanoEstudo {
	return &PlanoEstudo{
		repo: repo,
		Resource: NewResource[model.PlanoEstudo](repo, Options[model.PlanoEstudo]{
			Label:                "plano de estudo",
			RequiredFields:       []string{"usuarioId", "titulo"},
			UpdateRequiredFields: []string{"titulo"},
			NotFoundMessage:      "plano de estudo não encontrado",
			SortFields:           []string{"titulo", "data_inicio", "criado_em"},
		}),
	}
}

// Register mounts the study-plan routes under api.
func (h *PlanoEstudo) Register(api fiber.Router) {
	g := api.Group("/planoestudo")
	g.Post("/", h.Create)
	g.Get("/", h.FindAll)
	g.Get("/descricao/exact/:descricao", h.FindByDescricao)
	g.Get("/descricao/search/:descricao", h.SearchByDescricao)
	g.Get("/usuario/:usuarioId", h.FindByUsuario)
	g.Get("/:id", h.FindByID)
	g.Put("/:id", h.Update)
	g.Delete("/:id", h.Delete)
}

// FindByUsuario lists the plans owned by one user.
func (h *PlanoEstudo) FindByUsuario(c *fiber.Ctx) error {
	usuarioID, ok := parseRouteID(c, "usuarioId")
	if !ok {
		return nil
	}

	planos, err := h.repo.FindByUsuario(c.Context(), usuarioID)
	if err != nil {
		return h.writeRepoError(c, err)
	}

	return c.JSON(h.presentAll(planos))
}
