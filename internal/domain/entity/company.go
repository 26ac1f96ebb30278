package entity

import "time"

// Company representa una empresa cliente (tenant). Vive en la base del plano de control;
// su CNPJ (solo dígitos) selecciona la base aislada del tenant.
type Company struct {
	ID           int64
	TradeName    string // nome fantasia
	LegalName    string // razão social
	CNPJ         string // 14 dígitos, sin máscara
	Address      string
	Phone        string
	Email        string
	RegisteredAt time.Time
	Active       bool
}
