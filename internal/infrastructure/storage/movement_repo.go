package storage

import (
	"context"

	"github.com/redeacolher/estoque-api/internal/domain/entity"
	"github.com/redeacolher/estoque-api/internal/domain/repository"
	"github.com/redeacolher/estoque-api/internal/infrastructure/kv"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementação do porto MovementRepository sobre a coleção
// movements. Apenas leitura e append; lançamentos nunca são alterados.
type MovementRepo struct {
	store kv.Store
}

// NewMovementRepository constrói o adaptador de persistência do livro de movimentos.
func NewMovementRepository(store kv.Store) *MovementRepo {
	return &MovementRepo{store: store}
}

// List devolve todos os lançamentos na ordem em que foram gravados.
func (r *MovementRepo) List(ctx context.Context) ([]entity.StockMovement, error) {
	return loadCollection[entity.StockMovement](ctx, r.store, kv.CollectionMovements)
}

// ListByItem devolve os lançamentos de um item, preservando a ordem de gravação.
func (r *MovementRepo) ListByItem(ctx context.Context, itemID string) ([]entity.StockMovement, error) {
	movements, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]entity.StockMovement, 0, len(movements))
	for _, m := range movements {
		if m.ItemID == itemID {
			filtered = append(filtered, m)
		}
	}
	return filtered, nil
}

// Append acrescenta um lançamento ao fim do livro.
func (r *MovementRepo) Append(ctx context.Context, movement *entity.StockMovement) error {
	movements, err := r.List(ctx)
	if err != nil {
		return err
	}
	movements = append(movements, *movement)
	return saveCollection(ctx, r.store, kv.CollectionMovements, movements)
}
