package handler

import (
	"github.com/code19m/errx"
	"github.com/gofiber/fiber/v2"
	"github.com/marcosmapl/studium-backend-sub000/internal/model"
	"github.com/marcosmapl/studium-backend-sub000/internal/repository"
	"github.com/spf13/cast"
)

// SessaoEstudo exposes the performed study-session endpoints.
type SessaoEstudo struct {
	*Resource[model.SessaoEstudo]
	repo *repository.SessaoEstudo
}

func NewSessaoEstudo(repo *repository.SessaoEstudo) *SessaoEstudo {
	return &SessaoEstudo{
		repo: repo,
		Resource: NewResource[model.SessaoEstudo](repo, Options[model.SessaoEstudo]{
			Label:                "sessão de estudo",
			RequiredFields:       []string{"topicoId", "data", "duracaoMinutos"},
			UpdateRequiredFields: nil,
			NotFoundMessage:      "sessão de estudo não encontrada",
			SortFields:           []string{"data", "duracao_minutos", "criado_em"},
			BeforeWrite:          validateSessaoEstudo,
		}),
	}
}

// Register mounts the study-session routes under api.
func (h *SessaoEstudo) Register(api fiber.Router) {
	g := api.Group("/sessaoestudo")
	g.Post("/", h.Create)
	g.Get("/", h.FindAll)
	g.Get("/descricao/exact/:descricao", h.FindByDescricao)
	g.Get("/descricao/search/:descricao", h.SearchByDescricao)
	g.Get("/topico/:topicoId", h.FindByTopico)
	g.Get("/:id", h.FindByID)
	g.Put("/:id", h.Update)
	g.Delete("/:id", h.Delete)
}

// FindByTopico lists the sessions recorded for one topic, newest first.
func (h *SessaoEstudo) FindByTopico(c *fiber.Ctx) error {
	topicoID, ok := parseRouteID(c, "topicoId")
	if !ok {
		return nil
	}

	sessoes, err := h.repo.FindByTopico(c.Context(), topicoID)
	if err != nil {
		return h.writeRepoError(c, err)
	}

	return c.JSON(h.presentAll(sessoes))
}

func validateSessaoEstudo(fields map[string]any) error {
	if raw, ok := fields["duracaoMinutos"]; ok {
		minutos, err := cast.ToIntE(raw)
		if err != nil || minutos < 1 {
			return errx.New("duracaoMinutos deve ser um número inteiro maior que zero",
				errx.WithType(errx.T_Validation))
		}
		fields["duracaoMinutos"] = minutos
	}
	return nil
}
