package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/rrcaps-api/internal/application/dto"
	"github.com/jhoicas/rrcaps-api/internal/domain"
)

// NewErrorHandler traduce los errores de dominio que devuelven los handlers a
// estatus HTTP + ErrorResponse. El detalle interno del error solo se incluye
// fuera de producción.
//
// Mapeo: validación 400, no encontrado 404, no autorizado 401, prohibido 403,
// duplicado 400, conflicto de integridad 400, resto 500.
func NewErrorHandler(production bool) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code:    "VALIDATION",
				Message: "error de validación",
				Fields:  vErr.Fields,
			})
		}

		var cErr *domain.ConflictError
		if errors.As(err, &cErr) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code:    "CONFLICT",
				Message: cErr.Error(),
			})
		}

		switch {
		case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Code:    "NOT_FOUND",
				Message: "recurso no encontrado",
			})
		case errors.Is(err, domain.ErrUnauthorized):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "credenciales inválidas",
			})
		case errors.Is(err, domain.ErrForbidden):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "acceso denegado",
			})
		case errors.Is(err, domain.ErrDuplicate):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code:    "DUPLICATE",
				Message: "ya existe un registro con ese valor",
			})
		case errors.Is(err, domain.ErrWrongPassword):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code:    "WRONG_PASSWORD",
				Message: "la contraseña actual es incorrecta",
			})
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(dto.ErrorResponse{
				Code:    "ERROR",
				Message: fiberErr.Message,
			})
		}

		out := dto.ErrorResponse{
			Code:    "INTERNAL",
			Message: "error interno del servidor",
		}
		if !production {
			out.Detail = err.Error()
		}
		return c.Status(fiber.StatusInternalServerError).JSON(out)
	}
}
