package entity

import "time"

// Niveles de acceso. Un número mayor concede más privilegios.
const (
	AccessLevelOperator = 1
	AccessLevelManager  = 2
	AccessLevelAdmin    = 3
)

// User representa un usuario del sistema (pertenece a exactamente una Company).
type User struct {
	ID           int64
	Name         string
	Username     string // único en el plano de control
	Email        string
	Phone        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	AccessLevel  int
	LastAccess   *time.Time
	RegisteredAt time.Time
	Active       bool
	CompanyID    int64
}
