package repository

import (
	"context"

	"github.com/redeacolher/estoque-api/internal/domain/entity"
)

// BranchRepository define o porto de persistência para Branch (DIP).
// GetByID devolve (nil, nil) quando o acolhimento não existe.
type BranchRepository interface {
	List(ctx context.Context) ([]entity.Branch, error)
	GetByID(ctx context.Context, id string) (*entity.Branch, error)
	Create(ctx context.Context, branch *entity.Branch) error
	Update(ctx context.Context, branch *entity.Branch) error
	Delete(ctx context.Context, id string) error
}
