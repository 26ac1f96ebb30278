package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/hareware-api/internal/application/dto"
	"github.com/jhoicas/hareware-api/internal/application/usecase"
)

// CompanyHandler administración de empresas (base central).
type CompanyHandler struct {
	uc *usecase.CompanyUseCase
}

// NewCompanyHandler construye el handler.
func NewCompanyHandler(uc *usecase.CompanyUseCase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar empresa
// @Tags         empresa
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCompanyRequest  true  "Datos de la empresa"
// @Success      201   {object}  dto.CompanyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /empresa/cadastrar-empresa [post]
func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCompanyRequest
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
// @Summary      Buscar empresa por CNPJ
// @Tags         empresa
// @Security     Bearer
// @Produce      json
// @Param        cnpj  path  string  true  "CNPJ con o sin máscara"
// @Success      200  {object}  dto.CompanyResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /empresa/pesquisar-empresa/{cnpj} [get]
func (h *CompanyHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.GetByCNPJ(c.UserContext(), c.Params("cnpj"))
	if err != nil {
		return err
	}
	if out == nil {
		return notFound("empresa")
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar empresa
// @Tags         empresa
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        cnpj  path  string  true  "CNPJ"
// @Param        body  body  dto.UpdateCompanyRequest  true  "Campos a cambiar"
// @Success      200  {object}  dto.CompanyResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /empresa/atualizar-empresa/{cnpj} [put]
func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCompanyRequest
	if err := bindJSON(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("cnpj"), in)
	if err != nil {
		return err
	}
	if out == nil {
		return notFound("empresa")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar empresa
// @Tags         empresa
// @Security     Bearer
// @Produce      json
// @Param        cnpj  path  string  true  "CNPJ"
// @Success      200  {object}  dto.DeleteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /empresa/deletar-empresa/{cnpj} [delete]
func (h *CompanyHandler) Delete(c *fiber.Ctx) error {
	deleted, err := h.uc.Delete(c.UserContext(), c.Params("cnpj"))
	if err != nil {
		return err
	}
	if !deleted {
		return notFound("empresa")
	}
	return c.JSON(dto.DeleteResponse{Deleted: true})
}

// List godoc
// @Summary      Listar empresas
// @Tags         empresa
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {object}  dto.CompanyListResponse
// @Router       /empresa/listar [get]
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	page, err := pageQuery(c)
	if err != nil {
		return err
	}
	out, err := h.uc.List(c.UserContext(), page)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

func pageQuery(c *fiber.Ctx) (dto.PageRequest, error) {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return page, badRequest("INVALID_QUERY", "limit y offset deben ser enteros")
	}
	if err := validateStruct(&page); err != nil {
		return page, err
	}
	page.DefaultPage()
	return page, nil
}
