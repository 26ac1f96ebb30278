package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jhoicas/hareware-api/internal/application/ports"
	"github.com/jhoicas/hareware-api/internal/domain"
)

var _ ports.WhatsAppGateway = (*JoinClient)(nil)

const serviceName = "join"

// JoinClient adaptador del gateway Join Developer. Autentica con el header tokenCliente
// y selecciona la sesión con el header instancia.
type JoinClient struct {
	baseURL     string
	clientToken string
	httpClient  *http.Client
}

// NewJoinClient construye el adaptador. timeout <= 0 usa 30 s.
func NewJoinClient(baseURL, clientToken string, timeout time.Duration) *JoinClient {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &JoinClient{
		baseURL:     strings.TrimRight(baseURL, "/"),
		clientToken: clientToken,
		httpClient:  &http.Client{Timeout: timeout},
	}
}

type messageOptions struct {
	Delay    int64  `json:"delay"`
	Presence string `json:"presence"`
}

type textPayload struct {
	Number      string         `json:"number"`
	Options     messageOptions `json:"options"`
	TextMessage struct {
		Text string `json:"text"`
	} `json:"textMessage"`
}

type mediaMessage struct {
	MediaType string `json:"mediatype"`
	FileName  string `json:"fileName"`
	Caption   string `json:"caption"`
	Media     string `json:"media"`
}

type imagePayload struct {
	Number       string         `json:"number"`
	Options      messageOptions `json:"options"`
	MediaMessage mediaMessage   `json:"mediaMessage"`
}

// CreateInstance crea la instancia; la respuesta trae el QR de conexión.
func (c *JoinClient) CreateInstance(ctx context.Context, instance string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, "/instancias/criarinstancia", "", map[string]string{"instancia": instance})
}

// ConfigureWebhook apunta los eventos de la instancia a webhookURL.
func (c *JoinClient) ConfigureWebhook(ctx context.Context, instance, webhookURL string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, "/webhook/configurarinstancia", instance, map[string]string{"url": webhookURL})
}

// InstanceStatus consulta el estado de conexión.
func (c *JoinClient) InstanceStatus(ctx context.Context, instance string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, "/instancias/statusconexao", instance, nil)
}

// Logout desconecta la sesión de WhatsApp de la instancia.
func (c *JoinClient) Logout(ctx context.Context, instance string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodDelete, "/instancias/deslogar", instance, nil)
}

// SendText envía un mensaje de texto.
func (c *JoinClient) SendText(ctx context.Context, instance string, msg ports.TextMessage) (json.RawMessage, error) {
	payload := textPayload{
		Number:  msg.Number,
		Options: messageOptions{Delay: msg.Delay.Milliseconds(), Presence: msg.Presence},
	}
	payload.TextMessage.Text = msg.Text
	return c.do(ctx, http.MethodPost, "/mensagens/enviartexto", instance, payload)
}

// SendImage envía una imagen en base64 con leyenda opcional.
func (c *JoinClient) SendImage(ctx context.Context, instance string, msg ports.ImageMessage) (json.RawMessage, error) {
	payload := imagePayload{
		Number:  msg.Number,
		Options: messageOptions{Delay: msg.Delay.Milliseconds(), Presence: msg.Presence},
		MediaMessage: mediaMessage{
			MediaType: "image",
			FileName:  msg.FileName,
			Caption:   msg.Caption,
			Media:     msg.MediaBase64,
		},
	}
	return c.do(ctx, http.MethodPost, "/mensagens/enviarimagem", instance, payload)
}

func (c *JoinClient) do(ctx context.Context, method, path, instance string, payload any) (json.RawMessage, error) {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("join: serializar request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("join: crear HTTP request: %w", err)
	}
	req.Header.Set("tokenCliente", c.clientToken)
	if instance != "" {
		req.Header.Set("instancia", instance)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			err = ctx.Err()
		}
		return nil, &domain.UpstreamError{Service: serviceName, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, &domain.UpstreamError{Service: serviceName, Err: fmt.Errorf("leer respuesta: %w", err)}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &domain.UpstreamError{
			Service:    serviceName,
			StatusCode: resp.StatusCode,
			Message:    snippet(raw),
		}
	}
	return asJSON(raw), nil
}

// asJSON devuelve el cuerpo tal cual si es JSON; si no, lo envuelve como string JSON.
func asJSON(raw []byte) json.RawMessage {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return json.RawMessage(`{}`)
	}
	if json.Valid(trimmed) {
		return json.RawMessage(trimmed)
	}
	quoted, _ := json.Marshal(string(trimmed))
	return quoted
}

func snippet(raw []byte) string {
	const limit = 512
	s := strings.TrimSpace(string(raw))
	if len(s) > limit {
		s = s[:limit] + "..."
	}
	return s
}
