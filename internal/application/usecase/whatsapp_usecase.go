package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jhoicas/hareware-api/internal/application/dto"
	"github.com/jhoicas/hareware-api/internal/application/ports"
	"github.com/jhoicas/hareware-api/internal/domain"
)

const defaultPresence = "composing"

// WhatsAppUseCase opera la instancia de WhatsApp de la empresa. La instancia se llama como su CNPJ.
type WhatsAppUseCase struct {
	gateway    ports.WhatsAppGateway
	webhookURL string
}

// NewWhatsAppUseCase construye el caso de uso. webhookURL es la URL por defecto del webhook.
func NewWhatsAppUseCase(gateway ports.WhatsAppGateway, webhookURL string) *WhatsAppUseCase {
	return &WhatsAppUseCase{gateway: gateway, webhookURL: webhookURL}
}

func (uc *WhatsAppUseCase) ready() error {
	if uc.gateway == nil {
		return &domain.UpstreamError{Service: "whatsapp", Message: "gateway no configurado"}
	}
	return nil
}

func wrap(taxID string, raw json.RawMessage, err error) (*dto.GatewayResponse, error) {
	if err != nil {
		return nil, err
	}
	return &dto.GatewayResponse{Instance: taxID, Result: raw}, nil
}

// CreateInstance crea la instancia; el proveedor devuelve el QR de conexión.
func (uc *WhatsAppUseCase) CreateInstance(ctx context.Context, taxID string) (*dto.GatewayResponse, error) {
	if err := uc.ready(); err != nil {
		return nil, err
	}
	raw, err := uc.gateway.CreateInstance(ctx, taxID)
	return wrap(taxID, raw, err)
}

// ConfigureWebhook apunta el webhook de la instancia a url (o a la configurada si está vacía).
func (uc *WhatsAppUseCase) ConfigureWebhook(ctx context.Context, taxID, url string) (*dto.GatewayResponse, error) {
	if err := uc.ready(); err != nil {
		return nil, err
	}
	if url == "" {
		url = uc.webhookURL
	}
	if url == "" {
		return nil, invalid("url del webhook no informada")
	}
	raw, err := uc.gateway.ConfigureWebhook(ctx, taxID, url)
	return wrap(taxID, raw, err)
}

// Status consulta el estado de conexión.
func (uc *WhatsAppUseCase) Status(ctx context.Context, taxID string) (*dto.GatewayResponse, error) {
	if err := uc.ready(); err != nil {
		return nil, err
	}
	raw, err := uc.gateway.InstanceStatus(ctx, taxID)
	return wrap(taxID, raw, err)
}

// Logout desconecta la instancia.
func (uc *WhatsAppUseCase) Logout(ctx context.Context, taxID string) (*dto.GatewayResponse, error) {
	if err := uc.ready(); err != nil {
		return nil, err
	}
	raw, err := uc.gateway.Logout(ctx, taxID)
	return wrap(taxID, raw, err)
}

// SendText envía un mensaje de texto.
func (uc *WhatsAppUseCase) SendText(ctx context.Context, taxID string, in dto.SendTextRequest) (*dto.GatewayResponse, error) {
	if err := uc.ready(); err != nil {
		return nil, err
	}
	raw, err := uc.gateway.SendText(ctx, taxID, ports.TextMessage{
		Number:   in.Number,
		Text:     in.Message,
		Delay:    time.Duration(in.DelayMs) * time.Millisecond,
		Presence: presenceOr(in.Presence),
	})
	return wrap(taxID, raw, err)
}

// SendImage envía una imagen en base64.
func (uc *WhatsAppUseCase) SendImage(ctx context.Context, taxID string, in dto.SendImageRequest) (*dto.GatewayResponse, error) {
	if err := uc.ready(); err != nil {
		return nil, err
	}
	raw, err := uc.gateway.SendImage(ctx, taxID, ports.ImageMessage{
		Number:      in.Number,
		MediaBase64: in.MediaBase64,
		FileName:    in.FileName,
		Caption:     in.Caption,
		Delay:       time.Duration(in.DelayMs) * time.Millisecond,
		Presence:    presenceOr(in.Presence),
	})
	return wrap(taxID, raw, err)
}

func presenceOr(p string) string {
	if p == "" {
		return defaultPresence
	}
	return p
}
