package http

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/hareware-api/internal/application/auth"
	"github.com/jhoicas/hareware-api/internal/domain"
)

// Locals keys cargadas por los middlewares de auth y tenant.
const (
	LocalIdentity = "identity"
	LocalTenant   = "tenant_cnpj"
)

// tokenVerifier lo implementa *auth.AuthUseCase.
type tokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (*auth.Identity, error)
}

// tenantResolver lo implementa *auth.TenantResolver.
type tenantResolver interface {
	Resolve(ctx context.Context, username string) (string, error)
}

func unauthorized(code, message string) error {
	return &apiError{Status: fiber.StatusUnauthorized, Code: code, Message: message}
}

// AuthMiddleware valida el Bearer Token, recarga el usuario y lo deja en c.Locals.
// Usuario inexistente o inactivo responde 401 aunque la firma sea válida.
func AuthMiddleware(verifier tokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return unauthorized("MISSING_TOKEN", "Authorization header requerido")
		}
		scheme, token, ok := strings.Cut(authHeader, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") {
			return unauthorized("INVALID_TOKEN", "formato: Bearer <token>")
		}
		token = strings.TrimSpace(token)
		if token == "" {
			return unauthorized("MISSING_TOKEN", "token vacío")
		}
		id, err := verifier.VerifyToken(c.UserContext(), token)
		if err != nil {
			if errors.Is(err, domain.ErrUnauthorized) {
				return unauthorized("INVALID_TOKEN", "token inválido o expirado")
			}
			return err
		}
		c.Locals(LocalIdentity, id)
		return c.Next()
	}
}

// RequireAccessLevel exige nivel de acceso >= min. Debe usarse DESPUÉS de AuthMiddleware.
func RequireAccessLevel(min int) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := GetIdentity(c)
		if id == nil {
			return unauthorized("UNAUTHORIZED", "usuario no autenticado")
		}
		if id.AccessLevel < min {
			return &apiError{Status: fiber.StatusForbidden, Code: "FORBIDDEN", Message: "nivel de acceso insuficiente"}
		}
		return c.Next()
	}
}

// RequireTenant resuelve el CNPJ de la empresa del usuario autenticado; es el selector de la base del tenant.
func RequireTenant(resolver tenantResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := GetIdentity(c)
		if id == nil {
			return unauthorized("UNAUTHORIZED", "usuario no autenticado")
		}
		taxID, err := resolver.Resolve(c.UserContext(), id.Username)
		if err != nil {
			return err
		}
		c.Locals(LocalTenant, taxID)
		return c.Next()
	}
}

// GetIdentity devuelve el usuario autenticado (nil antes de AuthMiddleware).
func GetIdentity(c *fiber.Ctx) *auth.Identity {
	id, _ := c.Locals(LocalIdentity).(*auth.Identity)
	return id
}

// GetTenant devuelve el CNPJ del tenant (vacío antes de RequireTenant).
func GetTenant(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalTenant).(string)
	return s
}
