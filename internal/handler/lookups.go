package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/marcosmapl/studium-backend-sub000/internal/model"
	"github.com/marcosmapl/studium-backend-sub000/internal/repository"
)

// Escolaridade exposes the education-level lookup endpoints. Reads are
// public; writes require authentication.
type Escolaridade struct {
	*Resource[model.Escolaridade]
}

func NewEscolaridade(repo *repository.Escolaridade) *Escolaridade {
	return &Escolaridade{
		Resource: NewResource[model.Escolaridade](repo, Options[model.Escolaridade]{
			Label:                "escolaridade",
			RequiredFields:       []string{"descricao"},
			UpdateRequiredFields: []string{"descricao"},
			NotFoundMessage:      "escolaridade não encontrada",
			SortFields:           []string{"descricao", "criado_em"},
		}),
	}
}

// Register mounts the education-level routes under api.
func (h *Escolaridade) Register(api fiber.Router) {
	g := api.Group("/escolaridade")
	g.Post("/", h.Create)
	g.Get("/", h.FindAll)
	g.Get("/descricao/exact/:descricao", h.FindByDescricao)
	g.Get("/descricao/search/:descricao", h.SearchByDescricao)
	g.Get("/:id", h.FindByID)
	g.Put("/:id", h.Update)
	g.Delete("/:id", h.Delete)
}

// Prioridade exposes the topic-priority lookup endpoints. Reads are public;
// writes require authentication.
type Prioridade struct {
	*Resource[model.Prioridade]
}

func NewPrioridade(repo *repository.Prioridade) *Prioridade {
	return &Prioridade{
		Resource: NewResource[model.Prioridade](repo, Options[model.Prioridade]{
			Label:                "prioridade",
			RequiredFields:       []string{"descricao", "peso"},
			UpdateRequiredFields: []string{"descricao"},
			NotFoundMessage:      "prioridade não encontrada",
			SortFields:           []string{"peso", "descricao", "criado_em"},
		}),
	}
}

// Register mounts the topic-priority routes under api.
func (h *Prioridade) Register(api fiber.Router) {
	g := api.Group("/prioridade")
	g.Post("/", h.Create)
	g.Get("/", h.FindAll)
	g.Get("/descricao/exact/:descricao", h.FindByDescricao)
	g.Get("/descricao/search/:descricao", h.SearchByDescricao)
	g.Get("/:id", h.FindByID)
	g.Put("/:id", h.Update)
	g.Delete("/:id", h.Delete)
}
