// Package auth autentica usuários e emite tokens de acesso.
package auth

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/redeacolher/estoque-api/internal/application/dto"
	"github.com/redeacolher/estoque-api/internal/domain"
	"github.com/redeacolher/estoque-api/internal/domain/repository"
	"github.com/redeacolher/estoque-api/pkg/config"
	"github.com/redeacolher/estoque-api/pkg/jwt"
)

// UseCase implementa o login por usuário e senha.
type UseCase struct {
	users repository.UserRepository
	cfg   config.JWTConfig
}

// NewUseCase constrói o caso de uso de autenticação.
func NewUseCase(users repository.UserRepository, cfg config.JWTConfig) *UseCase {
	return &UseCase{users: users, cfg: cfg}
}

// Login valida as credenciais e devolve o token com o usuário autenticado.
// Usuário inexistente e senha incorreta retornam o mesmo erro para não
// vazar quais logins existem.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.users.FindByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	token, err := jwt.Generate(uc.cfg.Secret, user.ID, user.BranchID, user.Role, uc.cfg.Issuer, uc.cfg.Expiration)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token: token,
		User: dto.UserResponse{
			ID:        user.ID,
			Username:  user.Username,
			Role:      user.Role,
			BranchID:  user.BranchID,
			CreatedAt: user.CreatedAt,
		},
	}, nil
}
