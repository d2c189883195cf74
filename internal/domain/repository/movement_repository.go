package repository

import (
	"context"

	"github.com/redeacolher/estoque-api/internal/domain/entity"
)

// MovementRepository define o porto de persistência do livro de movimentos.
// O livro é append-only: não há Update nem Delete, de propósito.
type MovementRepository interface {
	List(ctx context.Context) ([]entity.StockMovement, error)
	ListByItem(ctx context.Context, itemID string) ([]entity.StockMovement, error)
	Append(ctx context.Context, movement *entity.StockMovement) error
}
