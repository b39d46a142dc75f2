package server

import (
	"errors"

	"github.com/code19m/errx"
	"github.com/gofiber/fiber/v2"
)

// errorSchema is the failure envelope returned to clients. Success responses
// carry the raw record or array with no wrapping.
type errorSchema struct {
	Error         string   `json:"error"`
	MissingFields []string `json:"missingFields,omitempty"`
}

// WriteError writes the failure envelope with the given status and message.
func WriteError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(errorSchema{Error: message})
}

// WriteMissingFields writes the create-time validation failure envelope,
// listing the required fields absent from the payload.
func WriteMissingFields(c *fiber.Ctx, fields []string) error {
	return c.Status(fiber.StatusBadRequest).JSON(errorSchema{
		Error:         "campos obrigatórios ausentes",
		MissingFields: fields,
	})
}

// ErrorHandler returns the Fiber error handler used as the generic failure
// channel. Errors that reach it were not translated by a handler; they are
// mapped to a status by their errx type and answered with a generic message
// so no internal detail leaks to clients.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		// If a handler already wrote an error response, keep it.
		if r := c.Response(); r != nil && r.StatusCode() >= fiber.StatusBadRequest {
			return nil
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return WriteError(c, fiberErr.Code, genericMessage(statusToType(fiberErr.Code)))
		}

		t := errx.AsErrorX(err).Type()
		return WriteError(c, typeToStatus(t), genericMessage(t))
	}
}

func typeToStatus(t errx.Type) int {
	switch t {
	case errx.T_Authentication:
		return fiber.StatusUnauthorized
	case errx.T_Forbidden:
		return fiber.StatusForbidden
	case errx.T_NotFound:
		return fiber.StatusNotFound
	case errx.T_Validation:
		return fiber.StatusBadRequest
	case errx.T_Conflict:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

func statusToType(status int) errx.Type {
	switch status {
	case fiber.StatusUnauthorized:
		return errx.T_Authentication
	case fiber.StatusForbidden:
		return errx.T_Forbidden
	case fiber.StatusNotFound:
		return errx.T_NotFound
	case fiber.StatusConflict:
		return errx.T_Conflict
	default:
		if status >= fiber.StatusBadRequest && status < fiber.StatusInternalServerError {
			return errx.T_Validation
		}
		return errx.T_Internal
	}
}

func genericMessage(t errx.Type) string {
	switch t {
	case errx.T_Authentication:
		return "token de autenticação inválido ou ausente"
	case errx.T_Forbidden:
		return "acesso negado"
	case errx.T_NotFound:
		return "registro não encontrado"
	case errx.T_Validation:
		return "requisição inválida"
	case errx.T_Conflict:
		return "registro já existe"
	default:
		return "erro interno do servidor"
	}
}
