package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/suite-pro/internal/application/dto"
	"github.com/tu-usuario/suite-pro/internal/domain"
	domforms "github.com/tu-usuario/suite-pro/internal/domain/forms"
)

// respondError mapea los errores de dominio a respuestas HTTP. Los errores de
// validación de formulario llevan el detalle de campos ausentes y reglas.
func respondError(c *fiber.Ctx, err error) error {
	var verr *domforms.ValidationError
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ValidationErrorResponse{
			Code:       "VALIDATION",
			Message:    "el formulario tiene campos inválidos",
			Missing:    verr.Missing,
			Violations: verr.Violations,
		})
	}

	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return status(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "credenciales inválidas")
	case errors.Is(err, domain.ErrNotAuthenticated):
		return status(c, fiber.StatusUnauthorized, "NOT_AUTHENTICATED", "no hay sesión activa")
	case errors.Is(err, domain.ErrForbidden):
		return status(c, fiber.StatusForbidden, "FORBIDDEN", "el rol actual no tiene acceso")
	case errors.Is(err, domain.ErrInvalidRole):
		return status(c, fiber.StatusBadRequest, "INVALID_ROLE", "rol fuera de la enumeración")
	case errors.Is(err, domain.ErrNotFound):
		return status(c, fiber.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, domain.ErrUnknownField):
		return status(c, fiber.StatusBadRequest, "UNKNOWN_FIELD", err.Error())
	case errors.Is(err, domain.ErrNoItems):
		return status(c, fiber.StatusUnprocessableEntity, "NO_ITEMS", "la orden no tiene ítems calificados")
	case errors.Is(err, domain.ErrSubmitInFlight):
		return status(c, fiber.StatusConflict, "SUBMIT_IN_FLIGHT", "ya hay un envío en curso")
	case errors.Is(err, domain.ErrNoModuleSelected):
		return status(c, fiber.StatusConflict, "NO_MODULE", "no hay módulo seleccionado")
	case errors.Is(err, domain.ErrSubmitFailed):
		return status(c, fiber.StatusBadGateway, "SUBMIT_FAILED", err.Error())
	default:
		return status(c, fiber.StatusInternalServerError, "INTERNAL", err.Error())
	}
}

func status(c *fiber.Ctx, code int, errCode, msg string) error {
	return c.Status(code).JSON(dto.ErrorResponse{Code: errCode, Message: msg})
}

func invalidBody(c *fiber.Ctx) error {
	return status(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
}
