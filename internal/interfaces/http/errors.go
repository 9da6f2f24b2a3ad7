package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Empleos-api/internal/application/dto"
	"github.com/jhoicas/Empleos-api/internal/domain"
)

// writeError traduce errores de dominio a dto.ErrorResponse. Lo no reconocido es 500 INTERNAL.
func writeError(c *fiber.Ctx, err error) error {
	status, code := fiber.StatusInternalServerError, "INTERNAL"
	message := "error interno"
	switch {
	case errors.Is(err, domain.ErrJobNotFound):
		status, code, message = fiber.StatusNotFound, "JOB_NOT_FOUND", err.Error()
	case errors.Is(err, domain.ErrUserNotFound):
		status, code, message = fiber.StatusNotFound, "USER_NOT_FOUND", err.Error()
	case errors.Is(err, domain.ErrNotFound):
		status, code, message = fiber.StatusNotFound, "NOT_FOUND", err.Error()
	case errors.Is(err, domain.ErrAlreadyApplied):
		status, code, message = fiber.StatusConflict, "ALREADY_APPLIED", err.Error()
	case errors.Is(err, domain.ErrUsernameTaken):
		status, code, message = fiber.StatusConflict, "USERNAME_TAKEN", err.Error()
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		status, code, message = fiber.StatusConflict, "EMAIL_EXISTS", err.Error()
	case errors.Is(err, domain.ErrDuplicate):
		status, code, message = fiber.StatusConflict, "DUPLICATE", err.Error()
	case errors.Is(err, domain.ErrInvalidInput):
		status, code, message = fiber.StatusBadRequest, "VALIDATION", err.Error()
	case errors.Is(err, domain.ErrUnauthorized):
		status, code, message = fiber.StatusUnauthorized, "UNAUTHORIZED", "credenciales inválidas"
	case errors.Is(err, domain.ErrForbidden):
		status, code, message = fiber.StatusForbidden, "FORBIDDEN", err.Error()
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: message})
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}
