package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/hareware-api/internal/application/dto"
	"github.com/jhoicas/hareware-api/internal/application/usecase"
)

// UserHandler administración de usuarios.
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar usuario
// @Description  Exige contrato activo y lugar libre en el plan de la empresa.
// @Tags         usuario
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUserRequest  true  "Datos del usuario"
// @Success      201  {object}  dto.UserResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /usuario/cadastrar-usuario [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
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
// @Summary      Buscar usuario
// @Tags         usuario
// @Security     Bearer
// @Produce      json
// @Param        username  path  string  true  "Usuario"
// @Success      200  {object}  dto.UserResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /usuario/pesquisar-usuario/{username} [get]
func (h *UserHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.GetByUsername(c.UserContext(), c.Params("username"))
	if err != nil {
		return err
	}
	if out == nil {
		return notFound("usuario")
	}
	return c.JSON(out)
}

// Me godoc
// @Summary      Usuario autenticado
// @Tags         usuario
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.UserResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /usuario/me [get]
func (h *UserHandler) Me(c *fiber.Ctx) error {
	id := GetIdentity(c)
	if id == nil {
		return unauthorized("UNAUTHORIZED", "usuario no autenticado")
	}
	out, err := h.uc.GetByUsername(c.UserContext(), id.Username)
	if err != nil {
		return err
	}
	if out == nil {
		return notFound("usuario")
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar usuario
// @Tags         usuario
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        username  path  string  true  "Usuario"
// @Param        body  body  dto.UpdateUserRequest  true  "Campos a cambiar"
// @Success      200  {object}  dto.UserResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /usuario/atualizar-usuario/{username} [put]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateUserRequest
	if err := bindJSON(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("username"), in)
	if err != nil {
		return err
	}
	if out == nil {
		return notFound("usuario")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar usuario
// @Tags         usuario
// @Security     Bearer
// @Produce      json
// @Param        username  path  string  true  "Usuario"
// @Success      200  {object}  dto.DeleteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /usuario/deletar-usuario/{username} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	deleted, err := h.uc.Delete(c.UserContext(), c.Params("username"))
	if err != nil {
		return err
	}
	if !deleted {
		return notFound("usuario")
	}
	return c.JSON(dto.DeleteResponse{Deleted: true})
}

// ListByCompany godoc
// @Summary      Usuarios de una empresa
// @Tags         usuario
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID de la empresa"
// @Success      200  {array}  dto.UserResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /usuarios/listar_usuarios_empresa/{id} [get]
func (h *UserHandler) ListByCompany(c *fiber.Ctx) error {
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
