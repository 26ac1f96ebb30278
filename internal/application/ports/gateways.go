package ports

import (
	"context"
	"encoding/json"
	"time"
)

// WhatsAppGateway puerto de salida hacia el gateway de mensajería.
// La instancia es el nombre con el que el gateway identifica la sesión de la empresa.
// Las respuestas se devuelven tal como las entrega el proveedor.
type WhatsAppGateway interface {
	CreateInstance(ctx context.Context, instance string) (json.RawMessage, error)
	ConfigureWebhook(ctx context.Context, instance, webhookURL string) (json.RawMessage, error)
	InstanceStatus(ctx context.Context, instance string) (json.RawMessage, error)
	Logout(ctx context.Context, instance string) (json.RawMessage, error)
	SendText(ctx context.Context, instance string, msg TextMessage) (json.RawMessage, error)
	SendImage(ctx context.Context, instance string, msg ImageMessage) (json.RawMessage, error)
}

// TextMessage mensaje de texto saliente.
type TextMessage struct {
	Number   string
	Text     string
	Delay    time.Duration
	Presence string
}

// ImageMessage imagen saliente en base64.
type ImageMessage struct {
	Number      string
	MediaBase64 string
	FileName    string
	Caption     string
	Delay       time.Duration
	Presence    string
}

// AssistantCredential datos de acceso al asistente, leídos de la tabla de credenciales.
type AssistantCredential struct {
	APIURL      string
	APIKey      string
	AssistantID string
	ThreadID    string // vacío = crear un hilo nuevo
}

// AssistantReply respuesta del asistente y el hilo usado.
type AssistantReply struct {
	Answer   string
	ThreadID string
	Status   string
}

// Assistant puerto de salida hacia el asistente conversacional basado en hilos.
type Assistant interface {
	Ask(ctx context.Context, cred AssistantCredential, question string) (*AssistantReply, error)
}

// StoredObject resultado de subir un archivo.
type StoredObject struct {
	Path      string
	PublicURL string
}

// ObjectStorage puerto de salida al almacenamiento de archivos.
type ObjectStorage interface {
	// UploadBase64 acepta el contenido con o sin prefijo "data:...;base64,".
	// overwrite=true reemplaza un objeto existente.
	UploadBase64(ctx context.Context, path, contentBase64, contentType string, overwrite bool) (*StoredObject, error)
	Delete(ctx context.Context, paths ...string) error
	PublicURL(path string) string
}

// LoginRateLimiter limita intentos de login por clave (ej. username + IP).
type LoginRateLimiter interface {
	// Allow registra un intento y devuelve false si se excedió el límite de la ventana.
	Allow(ctx context.Context, key string) (bool, error)
}
