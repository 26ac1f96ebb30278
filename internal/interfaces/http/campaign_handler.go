package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/hareware-api/internal/application/dto"
	"github.com/jhoicas/hareware-api/internal/application/usecase"
)

// CampaignHandler campañas del tenant.
type CampaignHandler struct {
	uc *usecase.CampaignUseCase
}

// NewCampaignHandler construye el handler.
func NewCampaignHandler(uc *usecase.CampaignUseCase) *CampaignHandler {
	return &CampaignHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar campaña
// @Tags         campanha
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCampaignRequest  true  "Campaña"
// @Success      201  {object}  dto.CampaignResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /campanha/cadastrar-campanha [post]
func (h *CampaignHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCampaignRequest
	if err := bindJSON(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), GetTenant(c), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Get godoc
// @Summary      Buscar campaña
// @Tags         campanha
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID de la campaña"
// @Success      200  {object}  dto.CampaignResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /campanha/pesquisar-campanha/{id} [get]
func (h *CampaignHandler) Get(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	out, err := h.uc.Get(c.UserContext(), GetTenant(c), id)
	if err != nil {
		return err
	}
	if out == nil {
		return notFound("campaña")
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar campaña
// @Tags         campanha
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la campaña"
// @Param        body  body  dto.UpdateCampaignRequest  true  "Campos a cambiar"
// @Success      200  {object}  dto.CampaignResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /campanha/atualizar-campanha/{id} [put]
func (h *CampaignHandler) Update(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	var in dto.UpdateCampaignRequest
	if err := bindJSON(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), GetTenant(c), id, in)
	if err != nil {
		return err
	}
	if out == nil {
		return notFound("campaña")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar campaña
// @Description  Elimina también sus productos asociados.
// @Tags         campanha
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID de la campaña"
// @Success      200  {object}  dto.DeleteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /campanha/deletar-campanha/{id} [delete]
func (h *CampaignHandler) Delete(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	deleted, err := h.uc.Delete(c.UserContext(), GetTenant(c), id)
	if err != nil {
		return err
	}
	if !deleted {
		return notFound("campaña")
	}
	return c.JSON(dto.DeleteResponse{Deleted: true})
}

// List godoc
// @Summary      Listar campañas
// @Tags         campanha
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CampaignResponse
// @Router       /campanha/visualizar-campanhas [get]
func (h *CampaignHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), GetTenant(c))
	if err != nil {
		return err
	}
	return c.JSON(out)
}
