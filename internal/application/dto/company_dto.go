package dto

// CreateCompanyRequest entrada para registrar una empresa.
type CreateCompanyRequest struct {
	TradeName string `json:"nome_fantasia" validate:"required,min=1,max=200"`
	LegalName string `json:"razao_social" validate:"required,min=1,max=200"`
	CNPJ      string `json:"cnpj" validate:"required,min=14,max=18"`
	Address   string `json:"endereco" validate:"required"`
	Phone     string `json:"telefone" validate:"required,max=30"`
	Email     string `json:"email" validate:"required,email"`
}

// UpdateCompanyRequest entrada para actualizar una empresa (campos opcionales). El CNPJ no se edita.
type UpdateCompanyRequest struct {
	TradeName *string `json:"nome_fantasia" validate:"omitempty,min=1,max=200"`
	LegalName *string `json:"razao_social" validate:"omitempty,min=1,max=200"`
	Address   *string `json:"endereco"`
	Phone     *string `json:"telefone" validate:"omitempty,max=30"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Status    *bool   `json:"status"`
}

// IsEmpty indica que no se envió ningún campo.
func (r UpdateCompanyRequest) IsEmpty() bool {
	return r.TradeName == nil && r.LegalName == nil && r.Address == nil &&
		r.Phone == nil && r.Email == nil && r.Status == nil
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	ID           int64  `json:"id"`
	TradeName    string `json:"nome_fantasia"`
	LegalName    string `json:"razao_social"`
	CNPJ         string `json:"cnpj"`
	Address      string `json:"endereco"`
	Phone        string `json:"telefone"`
	Email        string `json:"email"`
	RegisteredAt Date   `json:"data_cadastro"`
	Status       bool   `json:"status"`
}

// CompanyListResponse lista paginada de empresas.
type CompanyListResponse struct {
	Items []CompanyResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
