package inventory

import (
	"context"
	"sort"
	"strings"

	"github.com/redeacolher/estoque-api/internal/application/dto"
	"github.com/redeacolher/estoque-api/internal/application/ports"
	"github.com/redeacolher/estoque-api/internal/domain"
	"github.com/redeacolher/estoque-api/internal/domain/entity"
	"github.com/redeacolher/estoque-api/internal/domain/repository"
)

// MovementUseCase registra movimentos tipados (entrada/saida) contra um item
// e mantém o livro de movimentos. Todo lançamento gravado é imutável.
type MovementUseCase struct {
	items     repository.ItemRepository
	movements repository.MovementRepository
	ids       ports.IDGenerator
	clock     ports.Clock
}

// NewMovementUseCase constrói o caso de uso.
func NewMovementUseCase(
	items repository.ItemRepository,
	movements repository.MovementRepository,
	ids ports.IDGenerator,
	clock ports.Clock,
) *MovementUseCase {
	return &MovementUseCase{items: items, movements: movements, ids: ids, clock: clock}
}

// Record valida e aplica um movimento. As validações correm nesta ordem e a
// primeira falha vence:
//
//  1. quantidade inteira positiva          -> ErrInvalidQuantity
//  2. item existe                          -> ErrItemNotFound
//  3. saida: quantidade <= CurrentStock    -> ErrInsufficientStock
//  4. motivo informado                     -> ErrMissingReason
//  5. motivo "Outros" exige descrição      -> ErrMissingDescription
//
// A checagem de disponibilidade usa CurrentStock, nunca Stock+Arrived.
// Em caso de sucesso, a mutação do item e o append no livro são observados
// juntos por qualquer leitura subsequente (escritor único por processo).
func (uc *MovementUseCase) Record(
	ctx context.Context,
	in dto.RecordMovementRequest,
	userID string,
) (*entity.StockMovement, *entity.InventoryItem, error) {
	if in.Quantity <= 0 {
		return nil, nil, domain.ErrInvalidQuantity
	}
	item, err := uc.items.GetByID(ctx, in.ItemID)
	if err != nil {
		return nil, nil, err
	}
	if item == nil {
		return nil, nil, domain.ErrItemNotFound
	}
	if in.Type == entity.MovementTypeSaida && in.Quantity > item.CurrentStock {
		return nil, nil, domain.ErrInsufficientStock
	}
	if in.Reason == "" {
		return nil, nil, domain.ErrMissingReason
	}
	if in.Reason == entity.ReasonOutros && strings.TrimSpace(in.Description) == "" {
		return nil, nil, domain.ErrMissingDescription
	}

	// Efeito no item: entrada conta como chegada nova (ajusta os dois
	// acumulados); saida consome apenas o disponível.
	switch in.Type {
	case entity.MovementTypeEntrada:
		item.CurrentStock += in.Quantity
		item.Arrived += in.Quantity
	case entity.MovementTypeSaida:
		item.CurrentStock -= in.Quantity
	default:
		return nil, nil, domain.ErrInvalidInput
	}
	item.UpdatedAt = uc.clock.Now()

	reason := in.Reason
	if in.Description != "" {
		reason = in.Reason + " - " + in.Description
	}
	movement := &entity.StockMovement{
		ID:        uc.ids.NewID(),
		ItemID:    in.ItemID,
		Type:      in.Type,
		Quantity:  in.Quantity,
		Reason:    reason,
		Date:      in.Date,
		UserID:    userID,
		CreatedAt: uc.clock.Now(),
	}

	if err := uc.items.Update(ctx, item); err != nil {
		return nil, nil, err
	}
	if err := uc.movements.Append(ctx, movement); err != nil {
		return nil, nil, err
	}
	return movement, item, nil
}

// ListByItem devolve os lançamentos de um item (todos, se itemID vazio),
// mais recentes primeiro.
func (uc *MovementUseCase) ListByItem(ctx context.Context, itemID string) ([]entity.StockMovement, error) {
	var movements []entity.StockMovement
	var err error
	if itemID != "" {
		movements, err = uc.movements.ListByItem(ctx, itemID)
	} else {
		movements, err = uc.movements.List(ctx)
	}
	if err != nil {
		return nil, err
	}
	return SortByDateDesc(movements), nil
}

// ListByBranch devolve os lançamentos cujos itens pertencem ao acolhimento,
// mais recentes primeiro.
func (uc *MovementUseCase) ListByBranch(ctx context.Context, branchID string) ([]entity.StockMovement, error) {
	items, err := uc.items.ListByBranch(ctx, branchID)
	if err != nil {
		return nil, err
	}
	branchItems := make(map[string]bool, len(items))
	for _, it := range items {
		branchItems[it.ID] = true
	}
	movements, err := uc.movements.List(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]entity.StockMovement, 0, len(movements))
	for _, m := range movements {
		if branchItems[m.ItemID] {
			filtered = append(filtered, m)
		}
	}
	return SortByDateDesc(filtered), nil
}

// SortByDateDesc devolve uma cópia ordenada por data descendente. Datas são
// strings ISO (YYYY-MM-DD), então a comparação lexicográfica é cronológica;
// empates preservam a ordem de gravação (sort estável). A cópia garante que
// leituras nunca mutam os registros subjacentes.
func SortByDateDesc(movements []entity.StockMovement) []entity.StockMovement {
	sorted := make([]entity.StockMovement, len(movements))
	copy(sorted, movements)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date > sorted[j].Date
	})
	return sorted
}
