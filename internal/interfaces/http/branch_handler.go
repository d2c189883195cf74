package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/redeacolher/estoque-api/internal/application/dto"
	"github.com/redeacolher/estoque-api/internal/application/usecase"
)

// BranchHandler trata o CRUD de acolhimentos (somente admin, exceto listagem).
type BranchHandler struct {
	uc *usecase.BranchUseCase
}

// NewBranchHandler constrói o handler.
func NewBranchHandler(uc *usecase.BranchUseCase) *BranchHandler {
	return &BranchHandler{uc: uc}
}

// Create godoc
// @Summary      Criar acolhimento
// @Tags         branches
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBranchRequest  true  "name, location"
// @Success      201   {object}  entity.Branch
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/branches [post]
func (h *BranchHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBranchRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	branch, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(branch)
}

// List godoc
// @Summary      Listar acolhimentos
// @Tags         branches
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.Branch
// @Router       /api/branches [get]
func (h *BranchHandler) List(c *fiber.Ctx) error {
	branches, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(branches)
}

// GetByID godoc
// @Summary      Buscar acolhimento por id
// @Tags         branches
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "id do acolhimento"
// @Success      200  {object}  entity.Branch
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/branches/{id} [get]
func (h *BranchHandler) GetByID(c *fiber.Ctx) error {
	branch, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(branch)
}

// Update godoc
// @Summary      Atualizar acolhimento
// @Tags         branches
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "id do acolhimento"
// @Param        body  body  dto.UpdateBranchRequest  true  "campos a alterar"
// @Success      200   {object}  entity.Branch
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/branches/{id} [put]
func (h *BranchHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateBranchRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	branch, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(branch)
}

// Delete godoc
// @Summary      Remover acolhimento
// @Description  Não faz cascade: usuários e itens que apontam para o id
//               removido ficam com a referência pendente.
// @Tags         branches
// @Security     Bearer
// @Param        id  path  string  true  "id do acolhimento"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/branches/{id} [delete]
func (h *BranchHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
