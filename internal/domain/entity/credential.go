package entity

// Credential credencial nombrada de una API externa (plano de control).
type Credential struct {
	ID          int64
	Identifier  string // identificador textual único, ej. "openaiHW"
	APIURL      string
	APIToken    string
	Instance    string // instancia o thread según el proveedor
	AssistantID string
}
