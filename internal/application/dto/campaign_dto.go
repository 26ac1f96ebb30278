package dto

import "github.com/shopspring/decimal"

// CreateCampaignRequest entrada para crear una campaña.
type CreateCampaignRequest struct {
	Name      string `json:"nome" validate:"required,min=1,max=200"`
	StartDate Date   `json:"inicio_campanha"`
	EndDate   Date   `json:"fim_campanha"`
}

// UpdateCampaignRequest entrada para actualizar una campaña.
type UpdateCampaignRequest struct {
	Name      *string `json:"nome" validate:"omitempty,min=1,max=200"`
	StartDate *Date   `json:"inicio_campanha"`
	EndDate   *Date   `json:"fim_campanha"`
}

// IsEmpty indica que no se envió ningún campo.
func (r UpdateCampaignRequest) IsEmpty() bool {
	return r.Name == nil && r.StartDate == nil && r.EndDate == nil
}

// CampaignResponse salida de una campaña.
type CampaignResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"nome"`
	StartDate Date   `json:"inicio_campanha"`
	EndDate   Date   `json:"fim_campanha"`
}

// CreateCampaignProductRequest asocia un producto a una campaña.
type CreateCampaignProductRequest struct {
	CampaignID       int64           `json:"campanha_id" validate:"required,min=1"`
	ProductID        int64           `json:"produto_id" validate:"required,min=1"`
	PromoPrice       decimal.Decimal `json:"valor_promocional"`
	DisplayFrequency int             `json:"frequencia_exibicao" validate:"required,min=1"`
}

// UpdateCampaignProductRequest actualiza una asociación campaña-producto.
type UpdateCampaignProductRequest struct {
	CampaignID       *int64           `json:"campanha_id" validate:"omitempty,min=1"`
	ProductID        *int64           `json:"produto_id" validate:"omitempty,min=1"`
	PromoPrice       *decimal.Decimal `json:"valor_promocional"`
	DisplayFrequency *int             `json:"frequencia_exibicao" validate:"omitempty,min=1"`
}

// IsEmpty indica que no se envió ningún campo.
func (r UpdateCampaignProductRequest) IsEmpty() bool {
	return r.CampaignID == nil && r.ProductID == nil && r.PromoPrice == nil && r.DisplayFrequency == nil
}

// CampaignProductResponse salida de una asociación campaña-producto.
type CampaignProductResponse struct {
	ID               int64           `json:"id"`
	CampaignID       int64           `json:"campanha_id"`
	ProductID        int64           `json:"produto_id"`
	PromoPrice       decimal.Decimal `json:"valor_promocional"`
	DisplayFrequency int             `json:"frequencia_exibicao"`
}

// CreateScheduleRequest agenda una exhibición. Hora en HH:MM o HH:MM:SS.
type CreateScheduleRequest struct {
	CampaignProductID int64  `json:"campanha_produto_id" validate:"required,min=1"`
	Date              Date   `json:"data"`
	Time              string `json:"hora" validate:"required"`
}

// ScheduleResponse salida de un agendamiento.
type ScheduleResponse struct {
	ID                int64  `json:"id"`
	CampaignProductID int64  `json:"campanha_produto_id"`
	Date              Date   `json:"data"`
	Time              string `json:"hora"`
}
