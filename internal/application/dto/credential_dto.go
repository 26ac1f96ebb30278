package dto

// CreateCredentialRequest registra la credencial de una API externa.
type CreateCredentialRequest struct {
	Identifier  string `json:"identificador_textual" validate:"required,min=1,max=100"`
	APIURL      string `json:"url_api" validate:"omitempty,url"`
	APIToken    string `json:"token_api"`
	Instance    string `json:"instancia"`
	AssistantID string `json:"assistant_id"`
}

// UpdateCredentialRequest actualiza una credencial (campos opcionales).
type UpdateCredentialRequest struct {
	Identifier  *string `json:"identificador_textual" validate:"omitempty,min=1,max=100"`
	APIURL      *string `json:"url_api" validate:"omitempty,url"`
	APIToken    *string `json:"token_api"`
	Instance    *string `json:"instancia"`
	AssistantID *string `json:"assistant_id"`
}

// IsEmpty indica que no se envió ningún campo.
func (r UpdateCredentialRequest) IsEmpty() bool {
	return r.Identifier == nil && r.APIURL == nil && r.APIToken == nil &&
		r.Instance == nil && r.AssistantID == nil
}

// CredentialResponse salida de una credencial; el token va enmascarado.
type CredentialResponse struct {
	ID          int64  `json:"id"`
	Identifier  string `json:"identificador_textual"`
	APIURL      string `json:"url_api"`
	APIToken    string `json:"token_api"`
	Instance    string `json:"instancia"`
	AssistantID string `json:"assistant_id"`
}
