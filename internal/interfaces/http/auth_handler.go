package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/hareware-api/internal/application/auth"
	"github.com/jhoicas/hareware-api/internal/application/dto"
	"github.com/jhoicas/hareware-api/internal/application/ports"
	"github.com/jhoicas/hareware-api/pkg/logger"
)

type loginService interface {
	Login(ctx context.Context, in dto.LoginRequest) (*dto.TokenResponse, error)
}

var _ loginService = (*auth.AuthUseCase)(nil)

// AuthHandler maneja /token (público).
type AuthHandler struct {
	uc      loginService
	limiter ports.LoginRateLimiter
	log     *logger.Logger
}

// NewAuthHandler construye el handler. limiter puede ser nil (sin límite de intentos).
func NewAuthHandler(uc loginService, limiter ports.LoginRateLimiter, log *logger.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, limiter: limiter, log: log}
}

// Login godoc
// @Summary      Obtener token
// @Description  Acepta formulario OAuth2 (username, password) o JSON.
// @Tags         auth
// @Accept       x-www-form-urlencoded,json
// @Produce      json
// @Param        username  formData  string  true  "Usuario"
// @Param        password  formData  string  true  "Contraseña"
// @Success      200  {object}  dto.TokenResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      429  {object}  dto.ErrorResponse
// @Router       /token [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := bindJSON(c, &in); err != nil {
		return err
	}
	in.Username = strings.TrimSpace(in.Username)

	if h.limiter != nil {
		allowed, err := h.limiter.Allow(c.UserContext(), in.Username+"|"+c.IP())
		if err != nil {
			h.log.Warn().Err(err).Msg("limitador de login no disponible")
		}
		if !allowed {
			return &apiError{Status: fiber.StatusTooManyRequests, Code: "TOO_MANY_ATTEMPTS", Message: "demasiados intentos, intente más tarde"}
		}
	}

	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderCacheControl, "no-store")
	return c.JSON(out)
}
