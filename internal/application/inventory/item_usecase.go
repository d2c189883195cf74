// Package inventory contém o núcleo do livro de estoque: o modelo do item,
// o registrador de movimentos tipados e o registrador legado de retiradas.
// São os três caminhos de escrita concorrentes sobre CurrentStock; as regras
// que os mantêm coerentes (e as divergências preservadas de propósito) estão
// documentadas em cada caso de uso.
package inventory

import (
	"context"

	"github.com/redeacolher/estoque-api/internal/application/dto"
	"github.com/redeacolher/estoque-api/internal/application/ports"
	"github.com/redeacolher/estoque-api/internal/domain"
	"github.com/redeacolher/estoque-api/internal/domain/entity"
	"github.com/redeacolher/estoque-api/internal/domain/repository"
)

// ItemUseCase CRUD do item de inventário, dono das regras de materialização
// de CurrentStock na criação e na edição completa.
type ItemUseCase struct {
	items repository.ItemRepository
	ids   ports.IDGenerator
	clock ports.Clock
}

// NewItemUseCase constrói o caso de uso.
func NewItemUseCase(items repository.ItemRepository, ids ports.IDGenerator, clock ports.Clock) *ItemUseCase {
	return &ItemUseCase{items: items, ids: ids, clock: clock}
}

// Create materializa o item a partir da base declarada:
// CurrentStock = Stock + Arrived e lista de retiradas vazia.
func (uc *ItemUseCase) Create(ctx context.Context, in dto.CreateItemRequest) (*entity.InventoryItem, error) {
	now := uc.clock.Now()
	item := &entity.InventoryItem{
		ID:               uc.ids.NewID(),
		Name:             in.Name,
		Category:         in.Category,
		Stock:            in.Stock,
		Arrived:          in.Arrived,
		CurrentStock:     in.Stock + in.Arrived,
		Unit:             in.Unit,
		BranchID:         in.BranchID,
		DailyWithdrawals: []entity.DailyWithdrawal{},
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.items.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Update aplica a edição completa: cada campo informado sobrescreve o
// existente e CurrentStock é recalculado como (Stock novo ou antigo) +
// (Arrived novo ou antigo). A edição é um override autoritativo, não um
// delta: movimentos e retiradas aplicados desde a criação são descartados
// do saldo disponível.
func (uc *ItemUseCase) Update(ctx context.Context, id string, in dto.UpdateItemRequest) (*entity.InventoryItem, error) {
	item, err := uc.items.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrItemNotFound
	}
	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.Category != nil {
		item.Category = *in.Category
	}
	if in.Stock != nil {
		item.Stock = *in.Stock
	}
	if in.Arrived != nil {
		item.Arrived = *in.Arrived
	}
	if in.Unit != nil {
		item.Unit = *in.Unit
	}
	item.CurrentStock = item.Stock + item.Arrived
	item.UpdatedAt = uc.clock.Now()
	if err := uc.items.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// GetByID devolve o item ou domain.ErrItemNotFound.
func (uc *ItemUseCase) GetByID(ctx context.Context, id string) (*entity.InventoryItem, error) {
	item, err := uc.items.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrItemNotFound
	}
	return item, nil
}

// List devolve os itens, opcionalmente restritos a um acolhimento.
func (uc *ItemUseCase) List(ctx context.Context, branchID string) ([]entity.InventoryItem, error) {
	if branchID != "" {
		return uc.items.ListByBranch(ctx, branchID)
	}
	return uc.items.List(ctx)
}

// Delete remove o item. Lançamentos do livro que o referenciam permanecem
// como trilha de auditoria.
func (uc *ItemUseCase) Delete(ctx context.Context, id string) error {
	return uc.items.Delete(ctx, id)
}
