package dto

import (
	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name        string          `json:"nome" validate:"required,min=1,max=200"`
	Description string          `json:"descricao" validate:"max=2000"`
	Code        string          `json:"codigo_produto" validate:"required,min=1,max=100"`
	UnitMeasure string          `json:"unidade_medida" validate:"required"`
	Price       decimal.Decimal `json:"preco_venda"`
	Stock       int             `json:"qtd_estoque" validate:"min=0"`
	Link        string          `json:"link" validate:"omitempty,url"`
}

// UpdateProductRequest entrada para actualizar un producto (campos opcionales).
type UpdateProductRequest struct {
	Name        *string          `json:"nome" validate:"omitempty,min=1,max=200"`
	Description *string          `json:"descricao" validate:"omitempty,max=2000"`
	Code        *string          `json:"codigo_produto" validate:"omitempty,min=1,max=100"`
	UnitMeasure *string          `json:"unidade_medida"`
	Price       *decimal.Decimal `json:"preco_venda"`
	Stock       *int             `json:"qtd_estoque" validate:"omitempty,min=0"`
	Link        *string          `json:"link" validate:"omitempty,url"`
}

// IsEmpty indica que no se envió ningún campo.
func (r UpdateProductRequest) IsEmpty() bool {
	return r.Name == nil && r.Description == nil && r.Code == nil && r.UnitMeasure == nil &&
		r.Price == nil && r.Stock == nil && r.Link == nil
}

// ProductImageRequest imagen del producto en base64 (con o sin prefijo data URL).
type ProductImageRequest struct {
	ImageBase64 string `json:"imagem_base64" validate:"required"`
	ContentType string `json:"content_type" validate:"omitempty,oneof=image/jpeg image/png image/webp"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"nome"`
	Description string          `json:"descricao"`
	Code        string          `json:"codigo_produto"`
	UnitMeasure string          `json:"unidade_medida"`
	Price       decimal.Decimal `json:"preco_venda"`
	Stock       int             `json:"qtd_estoque"`
	Link        string          `json:"link"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
