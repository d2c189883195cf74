package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/redeacolher/estoque-api/internal/application/dto"
	"github.com/redeacolher/estoque-api/internal/application/inventory"
	"github.com/redeacolher/estoque-api/internal/domain/entity"
)

// ItemHandler trata o CRUD de itens e o caminho legado de retiradas.
type ItemHandler struct {
	items       *inventory.ItemUseCase
	withdrawals *inventory.WithdrawalUseCase
}

// NewItemHandler constrói o handler.
func NewItemHandler(items *inventory.ItemUseCase, withdrawals *inventory.WithdrawalUseCase) *ItemHandler {
	return &ItemHandler{items: items, withdrawals: withdrawals}
}

// scopedBranchID devolve o filtro de acolhimento efetivo: role=user fica
// preso ao próprio acolhimento; admin usa o query param (vazio = todos).
func scopedBranchID(c *fiber.Ctx) string {
	if GetRole(c) == entity.RoleUser {
		return GetBranchID(c)
	}
	return c.Query("branchId")
}

// Create godoc
// @Summary      Criar item de inventário
// @Tags         items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateItemRequest  true  "name, category, stock, arrived, unit, branchId"
// @Success      201   {object}  entity.InventoryItem
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/items [post]
func (h *ItemHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if GetRole(c) == entity.RoleUser {
		in.BranchID = GetBranchID(c)
	}
	item, err := h.items.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// List godoc
// @Summary      Listar itens
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Param        branchId  query  string  false  "Filtrar por acolhimento (somente admin; user fica preso ao seu)"
// @Success      200  {array}  entity.InventoryItem
// @Router       /api/items [get]
func (h *ItemHandler) List(c *fiber.Ctx) error {
	items, err := h.items.List(c.Context(), scopedBranchID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(items)
}

// GetByID godoc
// @Summary      Buscar item por id
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "id do item"
// @Success      200  {object}  entity.InventoryItem
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{id} [get]
func (h *ItemHandler) GetByID(c *fiber.Ctx) error {
	item, err := h.items.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(item)
}

// Update godoc
// @Summary      Edição completa de um item
// @Description  Stock/Arrived informados (ou mantidos) redefinem currentStock
//               para stock+arrived, descartando o efeito acumulado dos
//               movimentos.
// @Tags         items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "id do item"
// @Param        body  body  dto.UpdateItemRequest  true  "campos a alterar"
// @Success      200   {object}  entity.InventoryItem
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/items/{id} [put]
func (h *ItemHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	item, err := h.items.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(item)
}

// Delete godoc
// @Summary      Remover item
// @Tags         items
// @Security     Bearer
// @Param        id  path  string  true  "id do item"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{id} [delete]
func (h *ItemHandler) Delete(c *fiber.Ctx) error {
	if err := h.items.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// RecordWithdrawal godoc
// @Summary      Retirada diária (caminho legado)
// @Description  Decrementa currentStock travando no zero e anexa o registro a
//               dailyWithdrawals. Não gera lançamento no livro de movimentos.
//               role=user só retira de itens do próprio acolhimento.
// @Tags         items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "id do item"
// @Param        body  body  dto.WithdrawalRequest  true  "quantity, date"
// @Success      200   {object}  entity.InventoryItem
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/items/{id}/withdrawals [post]
func (h *ItemHandler) RecordWithdrawal(c *fiber.Ctx) error {
	var in dto.WithdrawalRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if GetRole(c) == entity.RoleUser {
		target, err := h.items.GetByID(c.Context(), c.Params("id"))
		if err == nil && target.BranchID != GetBranchID(c) {
			return forbiddenBranch(c)
		}
	}
	item, err := h.withdrawals.Record(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(item)
}
