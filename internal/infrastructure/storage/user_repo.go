package storage

import (
	"context"

	"github.com/redeacolher/estoque-api/internal/domain"
	"github.com/redeacolher/estoque-api/internal/domain/entity"
	"github.com/redeacolher/estoque-api/internal/domain/repository"
	"github.com/redeacolher/estoque-api/internal/infrastructure/kv"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementação do porto UserRepository sobre a coleção users.
type UserRepo struct {
	store kv.Store
}

// NewUserRepository constrói o adaptador de persistência para usuários.
func NewUserRepository(store kv.Store) *UserRepo {
	return &UserRepo{store: store}
}

// List devolve todos os usuários na ordem de inserção.
func (r *UserRepo) List(ctx context.Context) ([]entity.User, error) {
	return loadCollection[entity.User](ctx, r.store, kv.CollectionUsers)
}

// GetByID devolve o usuário ou (nil, nil) se não existir.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			u := users[i]
			return &u, nil
		}
	}
	return nil, nil
}

// FindByUsername devolve o usuário pelo nome de login ou (nil, nil).
func (r *UserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Username == username {
			u := users[i]
			return &u, nil
		}
	}
	return nil, nil
}

// Create acrescenta um novo usuário à coleção.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	users, err := r.List(ctx)
	if err != nil {
		return err
	}
	users = append(users, *user)
	return saveCollection(ctx, r.store, kv.CollectionUsers, users)
}

// Update substitui o registro do usuário pelo snapshot recebido.
func (r *UserRepo) Update(ctx context.Context, user *entity.User) error {
	users, err := r.List(ctx)
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].ID == user.ID {
			users[i] = *user
			return saveCollection(ctx, r.store, kv.CollectionUsers, users)
		}
	}
	return domain.ErrUserNotFound
}

// Delete remove o usuário.
func (r *UserRepo) Delete(ctx context.Context, id string) error {
	users, err := r.List(ctx)
	if err != nil {
		return err
	}
	kept := users[:0]
	found := false
	for _, u := range users {
		if u.ID == id {
			found = true
			continue
		}
		kept = append(kept, u)
	}
	if !found {
		return domain.ErrUserNotFound
	}
	return saveCollection(ctx, r.store, kv.CollectionUsers, kept)
}
