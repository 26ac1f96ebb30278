package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/hareware-api/internal/application/dto"
	"github.com/jhoicas/hareware-api/internal/domain"
	"github.com/jhoicas/hareware-api/pkg/logger"
)

// apiError error HTTP con código explícito (cuerpo inválido, id inválido, recurso inexistente).
type apiError struct {
	Status  int
	Code    string
	Message string
}

func (e *apiError) Error() string { return fmt.Sprintf("%d %s: %s", e.Status, e.Code, e.Message) }

func badRequest(code, message string) error {
	return &apiError{Status: fiber.StatusBadRequest, Code: code, Message: message}
}

func notFound(what string) error {
	return &apiError{Status: fiber.StatusNotFound, Code: "NOT_FOUND", Message: what + " no encontrado"}
}

// errorMapping estado y código para cada error de dominio. El orden importa: se usa el primero que coincide.
var errorMapping = []struct {
	target error
	status int
	code   string
}{
	{domain.ErrInvalidCNPJ, fiber.StatusBadRequest, "INVALID_CNPJ"},
	{domain.ErrInvalidInput, fiber.StatusBadRequest, "VALIDATION"},
	{domain.ErrInvalidCredentials, fiber.StatusUnauthorized, "INVALID_CREDENTIALS"},
	{domain.ErrUnauthorized, fiber.StatusUnauthorized, "UNAUTHORIZED"},
	{domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN"},
	{domain.ErrUserNotFound, fiber.StatusNotFound, "USER_NOT_FOUND"},
	{domain.ErrCompanyNotFound, fiber.StatusNotFound, "COMPANY_NOT_FOUND"},
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{domain.ErrUsernameTaken, fiber.StatusConflict, "USERNAME_TAKEN"},
	{domain.ErrDuplicate, fiber.StatusConflict, "DUPLICATE"},
	{domain.ErrSeatLimitReached, fiber.StatusConflict, "SEAT_LIMIT_REACHED"},
	{domain.ErrNoActiveContract, fiber.StatusConflict, "NO_ACTIVE_CONTRACT"},
	{domain.ErrConflict, fiber.StatusConflict, "CONFLICT"},
	{domain.ErrUnknownTenant, fiber.StatusInternalServerError, "TENANT_NOT_CONFIGURED"},
	{domain.ErrUpstream, fiber.StatusBadGateway, "UPSTREAM_ERROR"},
}

// classify traduce err a estado HTTP y cuerpo de error.
func classify(err error) (int, dto.ErrorResponse) {
	var apiErr *apiError
	if errors.As(err, &apiErr) {
		return apiErr.Status, dto.ErrorResponse{Code: apiErr.Code, Message: apiErr.Message}
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code, dto.ErrorResponse{Code: fmt.Sprintf("HTTP_%d", fe.Code), Message: fe.Message}
	}
	for _, m := range errorMapping {
		if errors.Is(err, m.target) {
			msg := err.Error()
			if m.status == fiber.StatusInternalServerError {
				msg = m.target.Error()
			}
			return m.status, dto.ErrorResponse{Code: m.code, Message: msg}
		}
	}
	return fiber.StatusInternalServerError, dto.ErrorResponse{Code: "INTERNAL", Message: "error interno del servidor"}
}

// NewErrorHandler ErrorHandler de Fiber: los handlers devuelven errores de dominio y aquí se responde.
// Los 5xx se registran con el detalle completo; al cliente solo llega el mensaje genérico.
func NewErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status, body := classify(err)
		if status >= fiber.StatusInternalServerError {
			log.Error().Err(err).
				Str("method", c.Method()).
				Str("path", c.Path()).
				Int("status", status).
				Msg("error en la petición")
		}
		return c.Status(status).JSON(body)
	}
}
