package dto

// CreateUserRequest entrada para crear un usuario (password en texto, se hashea en use case).
type CreateUserRequest struct {
	Name        string `json:"nome" validate:"required,min=1,max=200"`
	Username    string `json:"username" validate:"required,min=3,max=80"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"telefone" validate:"required,max=30"`
	Password    string `json:"senha" validate:"required,min=6,max=72"`
	AccessLevel int    `json:"nivel_acesso" validate:"required,min=1,max=3"`
	CompanyID   int64  `json:"codigo_empresa" validate:"required,min=1"`
}

// UpdateUserRequest entrada para actualizar un usuario (campos opcionales).
type UpdateUserRequest struct {
	Name        *string `json:"nome" validate:"omitempty,min=1,max=200"`
	Username    *string `json:"username" validate:"omitempty,min=3,max=80"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Phone       *string `json:"telefone" validate:"omitempty,max=30"`
	Password    *string `json:"senha" validate:"omitempty,min=6,max=72"`
	AccessLevel *int    `json:"nivel_acesso" validate:"omitempty,min=1,max=3"`
	Status      *bool   `json:"status"`
}

// IsEmpty indica que no se envió ningún campo.
func (r UpdateUserRequest) IsEmpty() bool {
	return r.Name == nil && r.Username == nil && r.Email == nil && r.Phone == nil &&
		r.Password == nil && r.AccessLevel == nil && r.Status == nil
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"nome"`
	Username     string `json:"usuario"`
	Email        string `json:"email"`
	Phone        string `json:"telefone"`
	AccessLevel  int    `json:"nivel_acesso"`
	LastAccess   *Date  `json:"ultimo_acesso"`
	RegisteredAt Date   `json:"data_cadastro"`
	Status       bool   `json:"status"`
	CompanyID    int64  `json:"id_empresa"`
}

// LoginRequest credenciales de /token (formulario OAuth2 o JSON).
type LoginRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// TokenResponse token emitido por /token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"` // segundos
}
