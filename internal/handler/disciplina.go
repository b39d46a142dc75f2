package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/marcosmapl/studium-backend-sub000/internal/model"
	"github.com/marcosmapl/studium-backend-sub000/internal/repository"
)

// Disciplina exposes the discipline endpoints.
type Disciplina struct {
	*Resource[model.Disciplina]
	repo *repository.Disciplina
}

func NewDisciplina(repo *repository.Disciplina) *Disciplina {
	return &Disciplina{
		repo: repo,
		Resource: NewResource[model.Disciplina](repo, Options[model.Disciplina]{
			Label:                "disciplina",
			RequiredFields:       []string{"planoEstudoId", "titulo"},
			UpdateRequiredFields: []string{"titulo"},
			NotFoundMessage:      "disciplina não encontrada",
			SortFields:           []string{"titulo", "criado_em"},
		}),
	}
}

// Register mounts the discipline routes under api.
func (h *Disciplina) Register(api fiber.Router) {
	g := api.Group("/disciplina")
	g.Post("/", h.Create)
	g.Get("/", h.FindAll)
	g.Get("/descricao/exact/:descricao", h.FindByDescricao)
	g.Get("/descricao/search/:descricao", h.SearchByDescricao)
	g.Get("/planoestudo/:planoId", h.FindByPlanoEstudo)
	g.Get("/:id", h.FindByID)
	g.Put("/:id", h.Update)
	g.Delete("/:id", h.Delete)
}

// FindByPlanoEstudo lists the disciplines of one plan.
func (h *Disciplina) FindByPlanoEstudo(c *fiber.Ctx) error {
	planoID, ok := parseRouteID(c, "planoId")
	if !ok {
		return nil
	}

	disciplinas, err := h.repo.FindByPlanoEstudo(c.Context(), planoID)
	if err != nil {
		return h.writeRepoError(c, err)
	}

	return c.JSON(h.presentAll(disciplinas))
}
