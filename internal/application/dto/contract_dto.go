package dto

// CreateContractRequest entrada para registrar un contrato. Inicio = hoy, término = hoy + vigencia.
type CreateContractRequest struct {
	CompanyID int64 `json:"empresa_id" validate:"required,min=1"`
	Plan      int   `json:"plano" validate:"required,min=1"`
	TermDays  int   `json:"tempo_vigencia" validate:"required,min=1,max=3650"`
}

// UpdateContractRequest entrada para actualizar un contrato (campos opcionales).
type UpdateContractRequest struct {
	Plan     *int  `json:"plano" validate:"omitempty,min=1"`
	TermDays *int  `json:"tempo_vigencia" validate:"omitempty,min=1,max=3650"`
	Paid     *bool `json:"pago"`
	Status   *bool `json:"status"`
}

// IsEmpty indica que no se envió ningún campo.
func (r UpdateContractRequest) IsEmpty() bool {
	return r.Plan == nil && r.TermDays == nil && r.Paid == nil && r.Status == nil
}

// ContractResponse salida de un contrato.
type ContractResponse struct {
	ID              int64 `json:"id"`
	CompanyID       int64 `json:"empresa_id"`
	Plan            int   `json:"plano"`
	TermDays        int   `json:"tempo_vigencia"`
	StartDate       Date  `json:"inicio_contrato"`
	EndDate         Date  `json:"termino_contrato"`
	LastPaymentDate *Date `json:"data_ultimo_pagamento"`
	Paid            bool  `json:"pago"`
	Status          bool  `json:"status"`
}
