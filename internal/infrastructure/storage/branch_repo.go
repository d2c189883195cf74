package storage

import (
	"context"

	"github.com/redeacolher/estoque-api/internal/domain"
	"github.com/redeacolher/estoque-api/internal/domain/entity"
	"github.com/redeacolher/estoque-api/internal/domain/repository"
	"github.com/redeacolher/estoque-api/internal/infrastructure/kv"
)

var _ repository.BranchRepository = (*BranchRepo)(nil)

// BranchRepo implementação do porto BranchRepository sobre a coleção branches.
type BranchRepo struct {
	store kv.Store
}

// NewBranchRepository constrói o adaptador de persistência para acolhimentos.
func NewBranchRepository(store kv.Store) *BranchRepo {
	return &BranchRepo{store: store}
}

// List devolve todos os acolhimentos na ordem de inserção.
func (r *BranchRepo) List(ctx context.Context) ([]entity.Branch, error) {
	return loadCollection[entity.Branch](ctx, r.store, kv.CollectionBranches)
}

// GetByID devolve o acolhimento ou (nil, nil) se não existir.
func (r *BranchRepo) GetByID(ctx context.Context, id string) (*entity.Branch, error) {
	branches, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range branches {
		if branches[i].ID == id {
			b := branches[i]
			return &b, nil
		}
	}
	return nil, nil
}

// Create acrescenta um novo acolhimento à coleção.
func (r *BranchRepo) Create(ctx context.Context, branch *entity.Branch) error {
	branches, err := r.List(ctx)
	if err != nil {
		return err
	}
	branches = append(branches, *branch)
	return saveCollection(ctx, r.store, kv.CollectionBranches, branches)
}

// Update substitui o registro do acolhimento pelo snapshot recebido.
func (r *BranchRepo) Update(ctx context.Context, branch *entity.Branch) error {
	branches, err := r.List(ctx)
	if err != nil {
		return err
	}
	for i := range branches {
		if branches[i].ID == branch.ID {
			branches[i] = *branch
			return saveCollection(ctx, r.store, kv.CollectionBranches, branches)
		}
	}
	return domain.ErrBranchNotFound
}

// Delete remove o acolhimento. Não remove em cascata itens nem usuários que
// o referenciam; branchId pendente é comportamento aceito.
func (r *BranchRepo) Delete(ctx context.Context, id string) error {
	branches, err := r.List(ctx)
	if err != nil {
		return err
	}
	kept := branches[:0]
	found := false
	for _, b := range branches {
		if b.ID == id {
			found = true
			continue
		}
		kept = append(kept, b)
	}
	if !found {
		return domain.ErrBranchNotFound
	}
	return saveCollection(ctx, r.store, kv.CollectionBranches, kept)
}
