package storage

import (
	"context"

	"github.com/redeacolher/estoque-api/internal/domain"
	"github.com/redeacolher/estoque-api/internal/domain/entity"
	"github.com/redeacolher/estoque-api/internal/domain/repository"
	"github.com/redeacolher/estoque-api/internal/infrastructure/kv"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementação do porto ItemRepository sobre a coleção items.
type ItemRepo struct {
	store kv.Store
}

// NewItemRepository constrói o adaptador de persistência para itens de inventário.
func NewItemRepository(store kv.Store) *ItemRepo {
	return &ItemRepo{store: store}
}

// List devolve todos os itens na ordem de inserção.
func (r *ItemRepo) List(ctx context.Context) ([]entity.InventoryItem, error) {
	return loadCollection[entity.InventoryItem](ctx, r.store, kv.CollectionItems)
}

// ListByBranch devolve os itens de um acolhimento, preservando a ordem.
func (r *ItemRepo) ListByBranch(ctx context.Context, branchID string) ([]entity.InventoryItem, error) {
	items, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]entity.InventoryItem, 0, len(items))
	for _, it := range items {
		if it.BranchID == branchID {
			filtered = append(filtered, it)
		}
	}
	return filtered, nil
}

// GetByID devolve o item ou (nil, nil) se não existir.
func (r *ItemRepo) GetByID(ctx context.Context, id string) (*entity.InventoryItem, error) {
	items, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			it := items[i]
			return &it, nil
		}
	}
	return nil, nil
}

// Create acrescenta um novo item à coleção.
func (r *ItemRepo) Create(ctx context.Context, item *entity.InventoryItem) error {
	items, err := r.List(ctx)
	if err != nil {
		return err
	}
	items = append(items, *item)
	return saveCollection(ctx, r.store, kv.CollectionItems, items)
}

// Update substitui o registro do item pelo snapshot recebido.
func (r *ItemRepo) Update(ctx context.Context, item *entity.InventoryItem) error {
	items, err := r.List(ctx)
	if err != nil {
		return err
	}
	for i := range items {
		if items[i].ID == item.ID {
			items[i] = *item
			return saveCollection(ctx, r.store, kv.CollectionItems, items)
		}
	}
	return domain.ErrItemNotFound
}

// Delete remove o item. Os movimentos do livro que o referenciam permanecem.
func (r *ItemRepo) Delete(ctx context.Context, id string) error {
	items, err := r.List(ctx)
	if err != nil {
		return err
	}
	kept := items[:0]
	found := false
	for _, it := range items {
		if it.ID == id {
			found = true
			continue
		}
		kept = append(kept, it)
	}
	if !found {
		return domain.ErrItemNotFound
	}
	return saveCollection(ctx, r.store, kv.CollectionItems, kept)
}
