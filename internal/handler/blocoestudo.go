package handler

import (
	"fmt"
	"regexp"

	"github.com/code19m/errx"
	"github.com/gofiber/fiber/v2"
	"github.com/marcosmapl/studium-backend-sub000/internal/model"
	"github.com/marcosmapl/studium-backend-sub000/internal/repository"
	"github.com/spf13/cast"
)

// diasSemana maps the numeric weekday (0 = domingo) to its name for
// validation messages.
var diasSemana = []string{
	"domingo", "segunda-feira", "terça-feira", "quarta-feira",
	"quinta-feira", "sexta-feira", "sábado",
}

var horaRx = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// BlocoEstudo exposes the weekly study-block endpoints.
type BlocoEstudo struct {
	*Resource[model.BlocoEstudo]
	repo *repository.BlocoEstudo
}

func NewBlocoEstudo(repo *repository.BlocoEstudo) *BlocoEstudo {
	return &BlocoEstudo{
		repo: repo,
		Resource: NewResource[model.BlocoEstudo](repo, Options[model.BlocoEstudo]{
			Label:                "bloco de estudo",
			RequiredFields:       []string{"planoEstudoId", "diaSemana", "horaInicio", "duracaoMinutos", "ordem"},
			UpdateRequiredFields: nil,
			NotFoundMessage:      "bloco de estudo não encontrado",
			SortFields:           []string{"dia_semana", "ordem", "criado_em"},
			BeforeWrite:          validateBlocoEstudo,
		}),
	}
}

// Register mounts the study-block routes under api.
func (h *BlocoEstudo) Register(api fiber.Router) {
	g := api.Group("/blocoestudo")
	g.Post("/", h.Create)
	g.Get("/", h.FindAll)
	g.Get("/descricao/exact/:descricao", h.FindByDescricao)
	g.Get("/descricao/search/:descricao", h.SearchByDescricao)
	g.Get("/planoestudo/:planoId", h.FindByPlanoEstudo)
	g.Get("/:id", h.FindByID)
	g.Put("/:id", h.Update)
	g.Delete("/:id", h.Delete)
}

// FindByPlanoEstudo lists the weekly blocks of one plan.
func (h *BlocoEstudo) FindByPlanoEstudo(c *fiber.Ctx) error {
	planoID, ok := parseRouteID(c, "planoId")
	if !ok {
		return nil
	}

	blocos, err := h.repo.FindByPlanoEstudo(c.Context(), planoID)
	if err != nil {
		return h.writeRepoError(c, err)
	}

	return c.JSON(h.presentAll(blocos))
}

func validateBlocoEstudo(fields map[string]any) error {
	if raw, ok := fields["diaSemana"]; ok {
		dia, err := cast.ToIntE(raw)
		if err != nil || dia < 0 || dia > 6 {
			return errx.New(
				fmt.Sprintf("diaSemana inválido: use 0 (%s) a 6 (%s)", diasSemana[0], diasSemana[6]),
				errx.WithType(errx.T_Validation))
		}
		fields["diaSemana"] = dia
	}

	if raw, ok := fields["horaInicio"]; ok {
		hora, _ := raw.(string)
		if !horaRx.MatchString(hora) {
			return errx.New("horaInicio inválida: use o formato HH:MM",
				errx.WithType(errx.T_Validation))
		}
	}

	if raw, ok := fields["duracaoMinutos"]; ok {
		minutos, err := cast.ToIntE(raw)
		if err != nil || minutos < 1 {
			return errx.New("duracaoMinutos deve ser um número inteiro maior que zero",
				errx.WithType(errx.T_Validation))
		}
		fields["duracaoMinutos"] = minutos
	}

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
