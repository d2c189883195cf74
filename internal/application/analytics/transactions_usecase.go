package analytics

import (
	"context"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/redeacolher/estoque-api/internal/application/dto"
	"github.com/redeacolher/estoque-api/internal/application/inventory"
	"github.com/redeacolher/estoque-api/internal/domain/entity"
	"github.com/redeacolher/estoque-api/internal/domain/repository"
)

// TransactionsUseCase produz a visão de transações: lançamentos do livro com
// nome de item resolvido, filtros por tipo e busca textual, e totais.
type TransactionsUseCase struct {
	items     repository.ItemRepository
	movements *inventory.MovementUseCase
}

// NewTransactionsUseCase constrói o caso de uso.
func NewTransactionsUseCase(items repository.ItemRepository, movements *inventory.MovementUseCase) *TransactionsUseCase {
	return &TransactionsUseCase{items: items, movements: movements}
}

// List monta a listagem filtrada. role=user enxerga só os lançamentos do seu
// acolhimento; admin enxerga todos. typeFilter vazio (ou "all") não filtra;
// search casa substring sem diferenciar caixa nem acento contra o nome do
// item resolvido ou o motivo.
func (uc *TransactionsUseCase) List(ctx context.Context, role, branchID, typeFilter, search string) (*dto.TransactionsResponse, error) {
	var movements []entity.StockMovement
	var err error
	if role == entity.RoleUser && branchID != "" {
		movements, err = uc.movements.ListByBranch(ctx, branchID)
	} else {
		movements, err = uc.movements.ListByItem(ctx, "")
	}
	if err != nil {
		return nil, err
	}

	items, err := uc.items.List(ctx)
	if err != nil {
		return nil, err
	}
	nameByID := make(map[string]string, len(items))
	for _, it := range items {
		nameByID[it.ID] = it.Name
	}

	filtered := FilterTransactions(movements, nameByID, typeFilter, search)

	totals := dto.TransactionTotals{}
	list := make([]dto.TransactionDTO, 0, len(filtered))
	for _, m := range filtered {
		switch m.Type {
		case entity.MovementTypeEntrada:
			totals.Entradas += m.Quantity
		case entity.MovementTypeSaida:
			totals.Saidas += m.Quantity
		}
		list = append(list, dto.TransactionDTO{
			ID:        m.ID,
			ItemID:    m.ItemID,
			ItemName:  nameByID[m.ItemID],
			Type:      m.Type,
			Quantity:  m.Quantity,
			Reason:    m.Reason,
			Date:      m.Date,
			UserID:    m.UserID,
			CreatedAt: m.CreatedAt,
		})
	}

	return &dto.TransactionsResponse{
		Total:        len(list),
		Totals:       totals,
		Transactions: list,
	}, nil
}

// FilterTransactions aplica o filtro de tipo (igualdade exata) e depois a
// busca textual sobre nome resolvido do item ou motivo. Função pura; a fatia
// de entrada não é mutada.
func FilterTransactions(
	movements []entity.StockMovement,
	nameByID map[string]string,
	typeFilter, search string,
) []entity.StockMovement {
	filtered := make([]entity.StockMovement, 0, len(movements))
	term := Fold(search)
	for _, m := range movements {
		if typeFilter != "" && typeFilter != "all" && m.Type != typeFilter {
			continue
		}
		if term != "" {
			name := Fold(nameByID[m.ItemID])
			reason := Fold(m.Reason)
			if !strings.Contains(name, term) && !strings.Contains(reason, term) {
				continue
			}
		}
		filtered = append(filtered, m)
	}
	return filtered
}

// foldTransformer decompõe (NFD), remove marcas combinantes e recompõe
// (NFC): "Doação" -> "Doacao", "Hortifrúti" -> "Hortifruti".
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold normaliza um termo para busca: minúsculas e sem diacríticos. O
// vocabulário do domínio é português, então a busca precisa casar
// "doacao" com "Doação".
func Fold(s string) string {
	folded, _, err := transform.String(foldTransformer, strings.ToLower(s))
	if err != nil {
		return strings.ToLower(s)
	}
	return folded
}
