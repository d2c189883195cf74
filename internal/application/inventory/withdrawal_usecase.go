package inventory

import (
	"context"

	"github.com/redeacolher/estoque-api/internal/application/dto"
	"github.com/redeacolher/estoque-api/internal/application/ports"
	"github.com/redeacolher/estoque-api/internal/domain"
	"github.com/redeacolher/estoque-api/internal/domain/entity"
	"github.com/redeacolher/estoque-api/internal/domain/repository"
)

// WithdrawalUseCase é o caminho legado de retirada diária, anterior ao
// registrador de movimentos. Divergências mantidas de propósito em relação
// ao MovementUseCase (unificar mudaria comportamento observável):
//
//   - não valida limite superior: o saldo é apenas travado no zero
//     (CurrentStock = max(0, CurrentStock - quantidade));
//   - não gera lançamento no livro de movimentos — a retirada é invisível
//     para a trilha de auditoria e para as listagens de transações;
//   - o registro fica somente em DailyWithdrawals do próprio item, que não
//     acompanha os decrementos feitos por movimentos tipados.
type WithdrawalUseCase struct {
	items repository.ItemRepository
	clock ports.Clock
}

// NewWithdrawalUseCase constrói o caso de uso.
func NewWithdrawalUseCase(items repository.ItemRepository, clock ports.Clock) *WithdrawalUseCase {
	return &WithdrawalUseCase{items: items, clock: clock}
}

// Record aplica a retirada avulsa e devolve o snapshot atualizado do item.
func (uc *WithdrawalUseCase) Record(ctx context.Context, itemID string, in dto.WithdrawalRequest) (*entity.InventoryItem, error) {
	item, err := uc.items.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrItemNotFound
	}

	item.DailyWithdrawals = append(item.DailyWithdrawals, entity.DailyWithdrawal{
		Date:     in.Date,
		Quantity: in.Quantity,
	})
	item.CurrentStock -= in.Quantity
	if item.CurrentStock < 0 {
		item.CurrentStock = 0
	}
	item.UpdatedAt = uc.clock.Now()

	if err := uc.items.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}
