package repository

import (
	"context"

	"github.com/redeacolher/estoque-api/internal/domain/entity"
)

// UserRepository define o porto de persistência para User (DIP).
// GetByID e FindByUsername devolvem (nil, nil) quando o usuário não existe.
type UserRepository interface {
	List(ctx context.Context) ([]entity.User, error)
	GetByID(ctx context.Context, id string) (*entity.User, error)
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id string) error
}
