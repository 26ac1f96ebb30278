package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/hareware-api/internal/application/dto"
	"github.com/jhoicas/hareware-api/internal/application/usecase"
)

// CampaignProductHandler productos en campaña.
type CampaignProductHandler struct {
	uc *usecase.CampaignProductUseCase
}

// NewCampaignProductHandler construye el handler.
func NewCampaignProductHandler(uc *usecase.CampaignProductUseCase) *CampaignProductHandler {
	return &CampaignProductHandler{uc: uc}
}

// Create godoc
// @Summary      Incluir producto en campaña
// @Tags         campanha-produto
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCampaignProductRequest  true  "Asociación"
// @Success      201  {object}  dto.CampaignProductResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /campanha-produto/incluir-produto-campanha [post]
func (h *CampaignProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCampaignProductRequest
	if err := bindJSON(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), GetTenant(c), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar producto en campaña
// @Tags         campanha-produto
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la asociación"
// @Param        body  body  dto.UpdateCampaignProductRequest  true  "Campos a cambiar"
// @Success      200  {object}  dto.CampaignProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /campanha-produto/atualizar-produto-campanha/{id} [put]
func (h *CampaignProductHandler) Update(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	var in dto.UpdateCampaignProductRequest
	if err := bindJSON(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), GetTenant(c), id, in)
	if err != nil {
		return err
	}
	if out == nil {
		return notFound("producto en campaña")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Quitar producto de campaña
// @Description  409 si la asociación tiene agendamientos.
// @Tags         campanha-produto
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID de la asociación"
// @Success      200  {object}  dto.DeleteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /campanha-produto/deletar-produto-campanha/{id} [delete]
func (h *CampaignProductHandler) Delete(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	deleted, err := h.uc.Delete(c.UserContext(), GetTenant(c), id)
	if err != nil {
		return err
	}
	if !deleted {
		return notFound("producto en campaña")
	}
	return c.JSON(dto.DeleteResponse{Deleted: true})
}

// List godoc
// @Summary      Listar productos en campaña
// @Tags         campanha-produto
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CampaignProductResponse
// @Router       /campanha-produto/visualizar-campanhas-produtos [get]
func (h *CampaignProductHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), GetTenant(c))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// ListByCampaign godoc
// @Summary      Productos de una campaña
// @Tags         campanha-produto
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID de la campaña"
// @Success      200  {array}  dto.CampaignProductResponse
// @Router       /campanha-produto/visualizar-produtos-campanha/{id} [get]
func (h *CampaignProductHandler) ListByCampaign(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	out, err := h.uc.ListByCampaign(c.UserContext(), GetTenant(c), id)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// ListByProduct godoc
// @Summary      Campañas de un producto
// @Tags         campanha-produto
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del producto"
// @Success      200  {array}  dto.CampaignProductResponse
// @Router       /campanha-produto/visualizar-campanhas-produto/{id} [get]
func (h *CampaignProductHandler) ListByProduct(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	out, err := h.uc.ListByProduct(c.UserContext(), GetTenant(c), id)
	if err != nil {
		return err
	}
	return c.JSON(out)
}
