package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/redeacolher/estoque-api/internal/application/dto"
	"github.com/redeacolher/estoque-api/internal/application/inventory"
	"github.com/redeacolher/estoque-api/internal/domain/entity"
)

// MovementHandler trata o registro e a consulta de movimentos de estoque.
// role=user fica preso ao livro do próprio acolhimento; admin enxerga tudo.
type MovementHandler struct {
	movements *inventory.MovementUseCase
	items     *inventory.ItemUseCase
}

// NewMovementHandler constrói o handler.
func NewMovementHandler(movements *inventory.MovementUseCase, items *inventory.ItemUseCase) *MovementHandler {
	return &MovementHandler{movements: movements, items: items}
}

// movementResponse resposta do registro: lançamento criado + snapshot do item.
type movementResponse struct {
	Movement any `json:"movement"`
	Item     any `json:"item"`
}

// Record godoc
// @Summary      Registrar movimento de estoque
// @Description  entrada soma em currentStock e arrived; saida subtrai de
//               currentStock após checar disponibilidade. Validações na
//               ordem: quantidade, item, saldo, motivo, descrição (Outros).
//               role=user só movimenta itens do próprio acolhimento.
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordMovementRequest  true  "itemId, type, quantity, reason, description, date"
// @Success      201   {object}  movementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *MovementHandler) Record(c *fiber.Ctx) error {
	var in dto.RecordMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	// Escopo de acolhimento: item existente de outro acolhimento é 403.
	// Item inexistente segue para o caso de uso, que reporta na ordem de
	// validação correta (quantidade antes de item).
	if GetRole(c) == entity.RoleUser {
		item, err := h.items.GetByID(c.Context(), in.ItemID)
		if err == nil && item.BranchID != GetBranchID(c) {
			return forbiddenBranch(c)
		}
	}
	movement, item, err := h.movements.Record(c.Context(), in, GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(movementResponse{Movement: movement, Item: item})
}

// List godoc
// @Summary      Listar movimentos
// @Description  role=user recebe apenas os lançamentos do seu acolhimento,
//               qualquer que seja o filtro pedido; admin filtra livremente.
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        itemId    query  string  false  "Filtrar por item"
// @Param        branchId  query  string  false  "Filtrar por acolhimento (somente admin)"
// @Success      200  {array}  entity.StockMovement
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	if GetRole(c) == entity.RoleUser {
		movements, err := h.movements.ListByBranch(c.Context(), GetBranchID(c))
		if err != nil {
			return respondError(c, err)
		}
		if itemID := c.Query("itemId"); itemID != "" {
			scoped := make([]entity.StockMovement, 0, len(movements))
			for _, m := range movements {
				if m.ItemID == itemID {
					scoped = append(scoped, m)
				}
			}
			movements = scoped
		}
		return c.JSON(movements)
	}

	if branchID := c.Query("branchId"); branchID != "" {
		movements, err := h.movements.ListByBranch(c.Context(), branchID)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(movements)
	}
	movements, err := h.movements.ListByItem(c.Context(), c.Query("itemId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(movements)
}
