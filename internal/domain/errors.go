package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrCompanyNotFound    = errors.New("empresa no encontrada")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidCNPJ        = errors.New("CNPJ inválido")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUsernameTaken      = errors.New("el nombre de usuario ya está registrado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrSeatLimitReached   = errors.New("la empresa alcanzó el límite de usuarios de su plan")
	ErrNoActiveContract   = errors.New("la empresa no tiene contrato activo")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrInvalidCredentials = errors.New("usuario o contraseña incorrectos")
	ErrForbidden          = errors.New("acceso denegado")
	ErrUnknownTenant      = errors.New("tenant no configurado")
	ErrUpstream           = errors.New("fallo en servicio externo")
)

// UnknownTenantError indica que el selector no existe en la tabla estática de bases.
type UnknownTenantError struct {
	Selector string
}

func (e *UnknownTenantError) Error() string {
	return fmt.Sprintf("tenant %q no reconocido", e.Selector)
}

// Is permite errors.Is(err, ErrUnknownTenant).
func (e *UnknownTenantError) Is(target error) bool { return target == ErrUnknownTenant }

// UpstreamError envuelve una respuesta fallida de una API de terceros.
type UpstreamError struct {
	Service    string
	StatusCode int // 0 si no hubo respuesta HTTP
	Message    string
	Err        error
}

func (e *UpstreamError) Error() string {
	switch {
	case e.StatusCode != 0:
		return fmt.Sprintf("%s: HTTP %d: %s", e.Service, e.StatusCode, e.Message)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Service, e.Err)
	default:
		return fmt.Sprintf("%s: %s", e.Service, e.Message)
	}
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// Is permite errors.Is(err, ErrUpstream).
func (e *UpstreamError) Is(target error) bool { return target == ErrUpstream }
