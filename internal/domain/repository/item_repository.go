package repository

import (
	"context"

	"github.com/redeacolher/estoque-api/internal/domain/entity"
)

// ItemRepository define o porto de persistência para InventoryItem (DIP).
// GetByID devolve (nil, nil) quando o item não existe. Update substitui o
// registro inteiro pelo snapshot recebido.
type ItemRepository interface {
	List(ctx context.Context) ([]entity.InventoryItem, error)
	ListByBranch(ctx context.Context, branchID string) ([]entity.InventoryItem, error)
	GetByID(ctx context.Context, id string) (*entity.InventoryItem, error)
	Create(ctx context.Context, item *entity.InventoryItem) error
	Update(ctx context.Context, item *entity.InventoryItem) error
	Delete(ctx context.Context, id string) error
}
