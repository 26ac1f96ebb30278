package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/hareware-api/internal/application/dto"
	"github.com/jhoicas/hareware-api/internal/application/usecase"
)

// ScheduleHandler agendamientos de exhibición.
type ScheduleHandler struct {
	uc *usecase.ScheduleUseCase
}

// NewScheduleHandler construye el handler.
func NewScheduleHandler(uc *usecase.ScheduleUseCase) *ScheduleHandler {
	return &ScheduleHandler{uc: uc}
}

// Create godoc
// @Summary      Agendar exhibición
// @Tags         agendamento
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateScheduleRequest  true  "Agendamiento"
// @Success      201  {object}  dto.ScheduleResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /agendamento/cadastrar-agendamento [post]
func (h *ScheduleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateScheduleRequest
	if err := bindJSON(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), GetTenant(c), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Delete godoc
// @Summary      Eliminar agendamiento
// @Tags         agendamento
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID"
// @Success      200  {object}  dto.DeleteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /agendamento/deletar-agendamento/{id} [delete]
func (h *ScheduleHandler) Delete(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	deleted, err := h.uc.Delete(c.UserContext(), GetTenant(c), id)
	if err != nil {
		return err
	}
	if !deleted {
		return notFound("agendamiento")
	}
	return c.JSON(dto.DeleteResponse{Deleted: true})
}

// List godoc
// @Summary      Listar agendamientos
// @Tags         agendamento
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ScheduleResponse
// @Router       /agendamento/visualizar-agendamentos [get]
func (h *ScheduleHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), GetTenant(c))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// ListByCampaignProduct godoc
// @Summary      Agendamientos de un producto en campaña
// @Tags         agendamento
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID de la asociación campaña-producto"
// @Success      200  {array}  dto.ScheduleResponse
// @Router       /agendamento/visualizar-agendamentos-produto-campanha/{id} [get]
func (h *ScheduleHandler) ListByCampaignProduct(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	out, err := h.uc.ListByCampaignProduct(c.UserContext(), GetTenant(c), id)
	if err != nil {
		return err
	}
	return c.JSON(out)
}
