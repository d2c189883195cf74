// Package analytics contém a camada de consulta/agregação: dashboard,
// alerta de estoque baixo, listagens filtradas de transações e o relatório
// de movimentações. Tudo aqui é somente leitura; nenhuma função muta os
// registros subjacentes.
package analytics

import (
	"context"

	"github.com/redeacolher/estoque-api/internal/application/dto"
	"github.com/redeacolher/estoque-api/internal/domain/entity"
	"github.com/redeacolher/estoque-api/internal/domain/repository"
)

// LowStockThreshold itens com CurrentStock abaixo deste valor entram no
// alerta do dashboard.
const LowStockThreshold = 10

// DashboardUseCase monta o resumo do dashboard por papel.
type DashboardUseCase struct {
	branches repository.BranchRepository
	users    repository.UserRepository
	items    repository.ItemRepository
}

// NewDashboardUseCase constrói o caso de uso.
func NewDashboardUseCase(
	branches repository.BranchRepository,
	users repository.UserRepository,
	items repository.ItemRepository,
) *DashboardUseCase {
	return &DashboardUseCase{branches: branches, users: users, items: items}
}

// GetSummary devolve contagens de acolhimentos, usuários e itens mais a
// lista de estoque baixo. Para role=user os itens são restritos ao
// acolhimento do usuário; as demais contagens permanecem globais.
func (uc *DashboardUseCase) GetSummary(ctx context.Context, role, branchID string) (*dto.DashboardSummary, error) {
	branches, err := uc.branches.List(ctx)
	if err != nil {
		return nil, err
	}
	users, err := uc.users.List(ctx)
	if err != nil {
		return nil, err
	}
	var items []entity.InventoryItem
	if role == entity.RoleUser && branchID != "" {
		items, err = uc.items.ListByBranch(ctx, branchID)
	} else {
		items, err = uc.items.List(ctx)
	}
	if err != nil {
		return nil, err
	}

	return &dto.DashboardSummary{
		TotalBranches: len(branches),
		TotalUsers:    len(users),
		TotalItems:    len(items),
		LowStockItems: LowStock(items, LowStockThreshold),
	}, nil
}

// LowStock devolve o subconjunto com CurrentStock < threshold, na ordem
// original. A disponibilidade é sempre CurrentStock; Stock+Arrived é valor
// de exibição e não entra aqui.
func LowStock(items []entity.InventoryItem, threshold int) []entity.InventoryItem {
	low := make([]entity.InventoryItem, 0, len(items))
	for _, it := range items {
		if it.CurrentStock < threshold {
			low = append(low, it)
		}
	}
	return low
}
