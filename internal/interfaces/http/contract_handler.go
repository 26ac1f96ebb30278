package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/hareware-api/internal/application/dto"
	"github.com/jhoicas/hareware-api/internal/application/usecase"
)

// ContractHandler administración de contratos.
type ContractHandler struct {
	uc *usecase.ContractUseCase
}

// NewContractHandler construye el handler.
func NewContractHandler(uc *usecase.ContractUseCase) *ContractHandler {
	return &ContractHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar contrato
// @Description  La vigencia empieza hoy y termina hoy + tempo_vigencia días.
// @Tags         contrato
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateContractRequest  true  "Datos del contrato"
// @Success      201  {object}  dto.ContractResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /contrato/cadastrar-contrato [post]
func (h *ContractHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateContractRequest
	if err := bindJSON(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Get godoc
// @Summary      Buscar contrato
// @Tags         contrato
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del contrato"
// @Success      200  {object}  dto.ContractResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /contrato/pesquisar-contrato/{id} [get]
func (h *ContractHandler) Get(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	out, err := h.uc.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	if out == nil {
		return notFound("contrato")
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar contrato
// @Tags         contrato
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del contrato"
// @Param        body  body  dto.UpdateContractRequest  true  "Campos a cambiar"
// @Success      200  {object}  dto.ContractResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /contrato/atualizar-contrato/{id} [put]
func (h *ContractHandler) Update(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	var in dto.UpdateContractRequest
	if err := bindJSON(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return err
	}
	if out == nil {
		return notFound("contrato")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar contrato
// @Tags         contrato
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del contrato"
// @Success      200  {object}  dto.DeleteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /contrato/deletar-contrato/{id} [delete]
func (h *ContractHandler) Delete(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	deleted, err := h.uc.Delete(c.UserContext(), id)
	if err != nil {
		return err
	}
	if !deleted {
		return notFound("contrato")
	}
	return c.JSON(dto.DeleteResponse{Deleted: true})
}

// List godoc
// @Summary      Listar contratos
// @Tags         contrato
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ContractResponse
// @Router       /contrato/visualizar-contratos [get]
func (h *ContractHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// ListByCompany godoc
// @Summary      Contratos de una empresa
// @Tags         contrato
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID de la empresa"
// @Success      200  {array}  dto.ContractResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /contrato/pesquisar-contratos-empresa/{id} [get]
func (h *ContractHandler) ListByCompany(c *fiber.Ctx) error {
	companyID, err := idParam(c, "id")
	if err != nil {
		return err
	}
	out, err := h.uc.ListByCompany(c.UserContext(), companyID)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// ExportPDF godoc
// @Summary      Exportar contrato en PDF
// @Tags         contrato
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  int  true  "ID del contrato"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /contrato/exportar-pdf/{id} [get]
func (h *ContractHandler) ExportPDF(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	pdf, err := h.uc.ExportPDF(c.UserContext(), id)
	if err != nil {
		return err
	}
	if pdf == nil {
		return notFound("contrato")
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="contrato-`+strconv.FormatInt(id, 10)+`.pdf"`)
	return c.Send(pdf)
}
