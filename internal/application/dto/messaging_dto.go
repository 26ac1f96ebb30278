package dto

import "encoding/json"

// SendTextRequest mensaje de texto por WhatsApp.
type SendTextRequest struct {
	Number   string `json:"numero" validate:"required,min=8,max=20"`
	Message  string `json:"mensagem" validate:"required"`
	DelayMs  int    `json:"delay_ms" validate:"min=0,max=60000"`
	Presence string `json:"presence" validate:"omitempty,oneof=composing recording available unavailable paused"`
}

// SendImageRequest imagen por WhatsApp.
type SendImageRequest struct {
	Number      string `json:"numero" validate:"required,min=8,max=20"`
	MediaBase64 string `json:"media_base64" validate:"required"`
	FileName    string `json:"nome_arquivo" validate:"required"`
	Caption     string `json:"legenda"`
	DelayMs     int    `json:"delay_ms" validate:"min=0,max=60000"`
	Presence    string `json:"presence" validate:"omitempty,oneof=composing recording available unavailable paused"`
}

// WebhookRequest URL del webhook; vacío usa la configurada en el servidor.
type WebhookRequest struct {
	URL string `json:"url" validate:"omitempty,url"`
}

// GatewayResponse respuesta del gateway de mensajería tal como llega.
type GatewayResponse struct {
	Instance string          `json:"instancia"`
	Result   json.RawMessage `json:"resultado" swaggertype:"object"`
}

// AskRequest pregunta al asistente.
type AskRequest struct {
	Question string `json:"pergunta" validate:"required,max=4000"`
	ThreadID string `json:"thread_id" validate:"omitempty,max=100"`
}

// AskResponse respuesta del asistente.
type AskResponse struct {
	Answer   string `json:"resposta"`
	ThreadID string `json:"thread_id"`
	Status   string `json:"status"`
}
