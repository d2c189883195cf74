package usecase

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/redeacolher/estoque-api/internal/application/dto"
	"github.com/redeacolher/estoque-api/internal/application/ports"
	"github.com/redeacolher/estoque-api/internal/domain"
	"github.com/redeacolher/estoque-api/internal/domain/entity"
	"github.com/redeacolher/estoque-api/internal/domain/repository"
)

// UserUseCase CRUD de usuários. Senhas nunca saem daqui em claro: o hash
// bcrypt é gerado na criação e em qualquer troca de senha.
type UserUseCase struct {
	users repository.UserRepository
	ids   ports.IDGenerator
	clock ports.Clock
}

// NewUserUseCase constrói o caso de uso.
func NewUserUseCase(users repository.UserRepository, ids ports.IDGenerator, clock ports.Clock) *UserUseCase {
	return &UserUseCase{users: users, ids: ids, clock: clock}
}

// Create cadastra um usuário. Regras: username único; role=user exige
// acolhimento; role=admin ignora o acolhimento informado.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Role != entity.RoleAdmin && in.Role != entity.RoleUser {
		return nil, domain.ErrInvalidInput
	}
	if in.Role == entity.RoleUser && in.BranchID == "" {
		return nil, domain.ErrInvalidInput
	}

	existing, err := uc.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	branchID := in.BranchID
	if in.Role == entity.RoleAdmin {
		branchID = ""
	}
	user := &entity.User{
		ID:           uc.ids.NewID(),
		Username:     username,
		PasswordHash: string(hash),
		Role:         in.Role,
		BranchID:     branchID,
		CreatedAt:    uc.clock.Now(),
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// GetByID busca um usuário pelo id.
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := uc.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

// List devolve todos os usuários sem os hashes de senha.
func (uc *UserUseCase) List(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := uc.users.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, *toUserResponse(&users[i]))
	}
	return out, nil
}

// Update altera campos do usuário. Senha informada é re-hasheada; username
// novo passa pela checagem de unicidade.
func (uc *UserUseCase) Update(ctx context.Context, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	if in.Username != nil {
		username := strings.TrimSpace(*in.Username)
		if username == "" {
			return nil, domain.ErrInvalidInput
		}
		if username != user.Username {
			existing, err := uc.users.FindByUsername(ctx, username)
			if err != nil {
				return nil, err
			}
			if existing != nil {
				return nil, domain.ErrUsernameTaken
			}
		}
		user.Username = username
	}
	if in.Password != nil && *in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if in.Role != nil {
		if *in.Role != entity.RoleAdmin && *in.Role != entity.RoleUser {
			return nil, domain.ErrInvalidInput
		}
		user.Role = *in.Role
	}
	if in.BranchID != nil {
		user.BranchID = *in.BranchID
	}
	if user.Role == entity.RoleAdmin {
		user.BranchID = ""
	} else if user.BranchID == "" {
		return nil, domain.ErrInvalidInput
	}

	if err := uc.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Delete remove o usuário.
func (uc *UserUseCase) Delete(ctx context.Context, id string) error {
	return uc.users.Delete(ctx, id)
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Role:      u.Role,
		BranchID:  u.BranchID,
		CreatedAt: u.CreatedAt,
	}
}
