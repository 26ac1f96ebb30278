package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/hareware-api/internal/application/dto"
	"github.com/jhoicas/hareware-api/internal/application/usecase"
)

// WhatsAppHandler instancia de WhatsApp del tenant; el nombre de la instancia es el CNPJ.
type WhatsAppHandler struct {
	uc *usecase.WhatsAppUseCase
}

// NewWhatsAppHandler construye el handler.
func NewWhatsAppHandler(uc *usecase.WhatsAppUseCase) *WhatsAppHandler {
	return &WhatsAppHandler{uc: uc}
}

// CreateInstance godoc
// @Summary      Crear instancia de WhatsApp
// @Tags         join_wpp
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.GatewayResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /join_wpp/criar-instancia [post]
func (h *WhatsAppHandler) CreateInstance(c *fiber.Ctx) error {
	out, err := h.uc.CreateInstance(c.UserContext(), GetTenant(c))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// ConfigureWebhook godoc
// @Summary      Configurar webhook de la instancia
// @Tags         join_wpp
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.WebhookRequest  false  "URL; vacío usa la del servidor"
// @Success      200  {object}  dto.GatewayResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /join_wpp/configurar-webhook [post]
func (h *WhatsAppHandler) ConfigureWebhook(c *fiber.Ctx) error {
	var in dto.WebhookRequest
	if len(c.Body()) > 0 {
		if err := bindJSON(c, &in); err != nil {
			return err
		}
	}
	out, err := h.uc.ConfigureWebhook(c.UserContext(), GetTenant(c), in.URL)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Status godoc
// @Summary      Estado de conexión de la instancia
// @Tags         join_wpp
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.GatewayResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /join_wpp/verificar-status-instancia [get]
func (h *WhatsAppHandler) Status(c *fiber.Ctx) error {
	out, err := h.uc.Status(c.UserContext(), GetTenant(c))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Logout godoc
// @Summary      Desconectar la instancia
// @Tags         join_wpp
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.GatewayResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /join_wpp/deslogar-instancia [delete]
func (h *WhatsAppHandler) Logout(c *fiber.Ctx) error {
	out, err := h.uc.Logout(c.UserContext(), GetTenant(c))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// SendText godoc
// @Summary      Enviar texto
// @Tags         join_wpp
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SendTextRequest  true  "Mensaje"
// @Success      200  {object}  dto.GatewayResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /join_wpp/enviar-texto [post]
func (h *WhatsAppHandler) SendText(c *fiber.Ctx) error {
	var in dto.SendTextRequest
	if err := bindJSON(c, &in); err != nil {
		return err
	}
	out, err := h.uc.SendText(c.UserContext(), GetTenant(c), in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// SendImage godoc
// @Summary      Enviar imagen
// @Tags         join_wpp
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SendImageRequest  true  "Imagen en base64"
// @Success      200  {object}  dto.GatewayResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /join_wpp/enviar-imagem [post]
func (h *WhatsAppHandler) SendImage(c *fiber.Ctx) error {
	var in dto.SendImageRequest
	if err := bindJSON(c, &in); err != nil {
		return err
	}
	out, err := h.uc.SendImage(c.UserContext(), GetTenant(c), in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// AssistantHandler preguntas al asistente de IA.
type AssistantHandler struct {
	uc *usecase.AssistantUseCase
}

// NewAssistantHandler construye el handler.
func NewAssistantHandler(uc *usecase.AssistantUseCase) *AssistantHandler {
	return &AssistantHandler{uc: uc}
}

// Ask godoc
// @Summary      Preguntar al asistente
// @Description  Sin thread_id se abre una conversación nueva.
// @Tags         assistente
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AskRequest  true  "Pregunta"
// @Success      200  {object}  dto.AskResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /assistente/perguntar [post]
func (h *AssistantHandler) Ask(c *fiber.Ctx) error {
	var in dto.AskRequest
	if err := bindJSON(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Ask(c.UserContext(), in.Question, in.ThreadID)
	if err != nil {
		return err
	}
	return c.JSON(out)
}
