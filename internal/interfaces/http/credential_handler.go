package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/hareware-api/internal/application/dto"
	"github.com/jhoicas/hareware-api/internal/application/usecase"
)

// CredentialHandler credenciales de APIs externas. El token nunca se devuelve completo.
type CredentialHandler struct {
	uc *usecase.CredentialUseCase
}

// NewCredentialHandler construye el handler.
func NewCredentialHandler(uc *usecase.CredentialUseCase) *CredentialHandler {
	return &CredentialHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar credencial
// @Tags         credencial
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCredentialRequest  true  "Credencial"
// @Success      201  {object}  dto.CredentialResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /credencial/cadastrar-credencial [post]
func (h *CredentialHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCredentialRequest
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
// @Summary      Buscar credencial por identificador
// @Tags         credencial
// @Security     Bearer
// @Produce      json
// @Param        identificador  path  string  true  "Identificador textual"
// @Success      200  {object}  dto.CredentialResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /credencial/pesquisar-credencial/{identificador} [get]
func (h *CredentialHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.GetByIdentifier(c.UserContext(), c.Params("identificador"))
	if err != nil {
		return err
	}
	if out == nil {
		return notFound("credencial")
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar credencial
// @Tags         credencial
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID"
// @Param        body  body  dto.UpdateCredentialRequest  true  "Campos a cambiar"
// @Success      200  {object}  dto.CredentialResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /credencial/atualizar-credencial/{id} [put]
func (h *CredentialHandler) Update(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	var in dto.UpdateCredentialRequest
	if err := bindJSON(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return err
	}
	if out == nil {
		return notFound("credencial")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar credencial
// @Tags         credencial
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID"
// @Success      200  {object}  dto.DeleteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /credencial/deletar-credencial/{id} [delete]
func (h *CredentialHandler) Delete(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	deleted, err := h.uc.Delete(c.UserContext(), id)
	if err != nil {
		return err
	}
	if !deleted {
		return notFound("credencial")
	}
	return c.JSON(dto.DeleteResponse{Deleted: true})
}

// List godoc
// @Summary      Listar credenciales
// @Tags         credencial
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CredentialResponse
// @Router       /credencial/listar [get]
func (h *CredentialHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(out)
}
