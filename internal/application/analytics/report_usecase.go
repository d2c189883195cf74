package analytics

import (
	"context"

	"github.com/redeacolher/estoque-api/internal/application/inventory"
	"github.com/redeacolher/estoque-api/internal/application/ports"
	"github.com/redeacolher/estoque-api/internal/domain"
	"github.com/redeacolher/estoque-api/internal/domain/repository"
)

// MovementReportUseCase gera o relatório imprimível de movimentações de um
// acolhimento (histórico do livro, mais recentes primeiro).
type MovementReportUseCase struct {
	branches  repository.BranchRepository
	items     repository.ItemRepository
	movements *inventory.MovementUseCase
	generator MovementPDFGenerator
	clock     ports.Clock
}

// NewMovementReportUseCase constrói o caso de uso.
func NewMovementReportUseCase(
	branches repository.BranchRepository,
	items repository.ItemRepository,
	movements *inventory.MovementUseCase,
	generator MovementPDFGenerator,
	clock ports.Clock,
) *MovementReportUseCase {
	return &MovementReportUseCase{
		branches:  branches,
		items:     items,
		movements: movements,
		generator: generator,
		clock:     clock,
	}
}

// Generate devolve os bytes do PDF com o histórico do acolhimento.
func (uc *MovementReportUseCase) Generate(ctx context.Context, branchID string) ([]byte, error) {
	branch, err := uc.branches.GetByID(ctx, branchID)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, domain.ErrBranchNotFound
	}

	movements, err := uc.movements.ListByBranch(ctx, branchID)
	if err != nil {
		return nil, err
	}
	items, err := uc.items.ListByBranch(ctx, branchID)
	if err != nil {
		return nil, err
	}
	type itemInfo struct{ name, unit string }
	infoByID := make(map[string]itemInfo, len(items))
	for _, it := range items {
		infoByID[it.ID] = itemInfo{name: it.Name, unit: it.Unit}
	}

	rows := make([]MovementReportRow, 0, len(movements))
	for _, m := range movements {
		info := infoByID[m.ItemID]
		rows = append(rows, MovementReportRow{
			Movement: m,
			ItemName: info.name,
			Unit:     info.unit,
		})
	}
	return uc.generator.GenerateMovementsPDF(ctx, branch, rows, uc.clock.Now())
}
