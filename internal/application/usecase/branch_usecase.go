// Package usecase reúne os casos de uso administrativos de acolhimentos e
// usuários.
package usecase

import (
	"context"
	"strings"

	"github.com/redeacolher/estoque-api/internal/application/dto"
	"github.com/redeacolher/estoque-api/internal/application/ports"
	"github.com/redeacolher/estoque-api/internal/domain"
	"github.com/redeacolher/estoque-api/internal/domain/entity"
	"github.com/redeacolher/estoque-api/internal/domain/repository"
)

// BranchUseCase CRUD de acolhimentos.
type BranchUseCase struct {
	branches repository.BranchRepository
	ids      ports.IDGenerator
	clock    ports.Clock
}

// NewBranchUseCase constrói o caso de uso.
func NewBranchUseCase(branches repository.BranchRepository, ids ports.IDGenerator, clock ports.Clock) *BranchUseCase {
	return &BranchUseCase{branches: branches, ids: ids, clock: clock}
}

// Create cadastra um acolhimento novo.
func (uc *BranchUseCase) Create(ctx context.Context, in dto.CreateBranchRequest) (*entity.Branch, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	branch := &entity.Branch{
		ID:        uc.ids.NewID(),
		Name:      in.Name,
		Location:  in.Location,
		CreatedAt: uc.clock.Now(),
	}
	if err := uc.branches.Create(ctx, branch); err != nil {
		return nil, err
	}
	return branch, nil
}

// GetByID busca um acolhimento pelo id.
func (uc *BranchUseCase) GetByID(ctx context.Context, id string) (*entity.Branch, error) {
	branch, err := uc.branches.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, domain.ErrBranchNotFound
	}
	return branch, nil
}

// List devolve todos os acolhimentos.
func (uc *BranchUseCase) List(ctx context.Context) ([]entity.Branch, error) {
	return uc.branches.List(ctx)
}

// Update altera nome e/ou localização.
func (uc *BranchUseCase) Update(ctx context.Context, id string, in dto.UpdateBranchRequest) (*entity.Branch, error) {
	branch, err := uc.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		branch.Name = *in.Name
	}
	if in.Location != nil {
		branch.Location = *in.Location
	}
	if err := uc.branches.Update(ctx, branch); err != nil {
		return nil, err
	}
	return branch, nil
}

// Delete remove o acolhimento. Usuários e itens que apontam para o id
// removido não são tocados; as referências ficam pendentes e as listagens
// filtradas passam a devolver vazio para eles.
func (uc *BranchUseCase) Delete(ctx context.Context, id string) error {
	return uc.branches.Delete(ctx, id)
}
