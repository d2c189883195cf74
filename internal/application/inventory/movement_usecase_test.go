package inventory_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redeacolher/estoque-api/internal/application/dto"
	"github.com/redeacolher/estoque-api/internal/application/inventory"
	"github.com/redeacolher/estoque-api/internal/domain"
	"github.com/redeacolher/estoque-api/internal/domain/entity"
	"github.com/redeacolher/estoque-api/internal/infrastructure/fsstore"
	"github.com/redeacolher/estoque-api/internal/infrastructure/storage"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de teste
// ──────────────────────────────────────────────────────────────────────────────

// fixedClock devolve sempre o mesmo instante.
type fixedClock struct{ now string }

func (c fixedClock) Now() string { return c.now }

// seqIDs gera ids previsíveis (id-1, id-2, ...).
type seqIDs struct{ n int }

func (g *seqIDs) NewID() string {
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

// testEnv repositórios reais sobre o armazenamento em arquivo + casos de uso.
type testEnv struct {
	items      *storage.ItemRepo
	movements  *storage.MovementRepo
	itemUC     *inventory.ItemUseCase
	movementUC *inventory.MovementUseCase
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	store, err := fsstore.New(t.TempDir())
	require.NoError(t, err)
	items := storage.NewItemRepository(store)
	movements := storage.NewMovementRepository(store)
	clock := fixedClock{now: "2025-03-10T12:00:00Z"}
	ids := &seqIDs{}
	return &testEnv{
		items:      items,
		movements:  movements,
		itemUC:     inventory.NewItemUseCase(items, ids, clock),
		movementUC: inventory.NewMovementUseCase(items, movements, ids, clock),
	}
}

// seedItem grava um item com os acumulados indicados e devolve seu id.
func (e *testEnv) seedItem(t *testing.T, stock, arrived int) string {
	t.Helper()
	item, err := e.itemUC.Create(context.Background(), dto.CreateItemRequest{
		Name:     "Arroz 5kg",
		Category: entity.CategoryMercearia,
		Stock:    stock,
		Arrived:  arrived,
		Unit:     "pacote",
		BranchID: "branch-1",
	})
	require.NoError(t, err)
	return item.ID
}

func record(e *testEnv, in dto.RecordMovementRequest) (*entity.StockMovement, *entity.InventoryItem, error) {
	return e.movementUC.Record(context.Background(), in, "user-1")
}

// ──────────────────────────────────────────────────────────────────────────────
// Efeitos de entrada e saída
// ──────────────────────────────────────────────────────────────────────────────

func TestRecord_EntradaSomaDisponivelEChegadas(t *testing.T) {
	e := newTestEnv(t)
	itemID := e.seedItem(t, 50, 20) // disponível nasce em 70

	_, item, err := record(e, dto.RecordMovementRequest{
		ItemID: itemID, Type: entity.MovementTypeEntrada,
		Quantity: 10, Reason: "Compra", Date: "2025-03-10",
	})
	require.NoError(t, err)

	assert.Equal(t, 80, item.CurrentStock, "entrada deve somar ao disponível")
	assert.Equal(t, 30, item.Arrived, "entrada conta como chegada nova")
	assert.Equal(t, 50, item.Stock, "stock base não muda com movimentos")
}

func TestRecord_SaidaConsomeApenasDisponivel(t *testing.T) {
	e := newTestEnv(t)
	itemID := e.seedItem(t, 50, 20)

	_, item, err := record(e, dto.RecordMovementRequest{
		ItemID: itemID, Type: entity.MovementTypeSaida,
		Quantity: 30, Reason: "Consumo", Date: "2025-03-10",
	})
	require.NoError(t, err)

	assert.Equal(t, 40, item.CurrentStock)
	assert.Equal(t, 20, item.Arrived, "saída não mexe nas chegadas")
	assert.Equal(t, 50, item.Stock)
}

// Cenário completo: criação, saída, entrada e saída impossível.
func TestRecord_CenarioEncadeado(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	itemID := e.seedItem(t, 50, 20)

	item, err := e.itemUC.GetByID(ctx, itemID)
	require.NoError(t, err)
	require.Equal(t, 70, item.CurrentStock)

	_, item, err = record(e, dto.RecordMovementRequest{
		ItemID: itemID, Type: entity.MovementTypeSaida,
		Quantity: 30, Reason: "Consumo", Date: "2025-03-10",
	})
	require.NoError(t, err)
	require.Equal(t, 40, item.CurrentStock)

	_, item, err = record(e, dto.RecordMovementRequest{
		ItemID: itemID, Type: entity.MovementTypeEntrada,
		Quantity: 10, Reason: "Doação", Date: "2025-03-11",
	})
	require.NoError(t, err)
	require.Equal(t, 50, item.CurrentStock)
	require.Equal(t, 30, item.Arrived)

	_, _, err = record(e, dto.RecordMovementRequest{
		ItemID: itemID, Type: entity.MovementTypeSaida,
		Quantity: 999, Reason: "Consumo", Date: "2025-03-12",
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// O livro deve ter exatamente os dois lançamentos bem-sucedidos.
	movements, err := e.movementUC.ListByItem(ctx, itemID)
	require.NoError(t, err)
	assert.Len(t, movements, 2)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ordem de validação
// ──────────────────────────────────────────────────────────────────────────────

func TestRecord_QuantidadeInvalidaVemPrimeiro(t *testing.T) {
	e := newTestEnv(t)
	// Item inexistente E quantidade inválida: a quantidade vence.
	_, _, err := record(e, dto.RecordMovementRequest{
		ItemID: "nao-existe", Type: entity.MovementTypeSaida,
		Quantity: 0, Reason: "", Date: "2025-03-10",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, _, err = record(e, dto.RecordMovementRequest{
		ItemID: "nao-existe", Type: entity.MovementTypeEntrada,
		Quantity: -5, Reason: "Compra", Date: "2025-03-10",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestRecord_ItemInexistente(t *testing.T) {
	e := newTestEnv(t)
	_, _, err := record(e, dto.RecordMovementRequest{
		ItemID: "nao-existe", Type: entity.MovementTypeEntrada,
		Quantity: 1, Reason: "Compra", Date: "2025-03-10",
	})
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestRecord_SaldoInsuficienteAntesDoMotivo(t *testing.T) {
	e := newTestEnv(t)
	itemID := e.seedItem(t, 1, 0)
	// Saída excessiva SEM motivo: o saldo é checado antes do motivo.
	_, _, err := record(e, dto.RecordMovementRequest{
		ItemID: itemID, Type: entity.MovementTypeSaida,
		Quantity: 5, Reason: "", Date: "2025-03-10",
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestRecord_MotivoObrigatorio(t *testing.T) {
	e := newTestEnv(t)
	itemID := e.seedItem(t, 10, 0)
	_, _, err := record(e, dto.RecordMovementRequest{
		ItemID: itemID, Type: entity.MovementTypeEntrada,
		Quantity: 1, Reason: "", Date: "2025-03-10",
	})
	assert.ErrorIs(t, err, domain.ErrMissingReason)
}

func TestRecord_OutrosExigeDescricao(t *testing.T) {
	e := newTestEnv(t)
	itemID := e.seedItem(t, 10, 0)

	_, _, err := record(e, dto.RecordMovementRequest{
		ItemID: itemID, Type: entity.MovementTypeEntrada,
		Quantity: 1, Reason: entity.ReasonOutros, Description: "   ", Date: "2025-03-10",
	})
	assert.ErrorIs(t, err, domain.ErrMissingDescription)

	movement, _, err := record(e, dto.RecordMovementRequest{
		ItemID: itemID, Type: entity.MovementTypeEntrada,
		Quantity: 1, Reason: entity.ReasonOutros, Description: "mutirão de arrecadação", Date: "2025-03-10",
	})
	require.NoError(t, err)
	assert.Equal(t, "Outros - mutirão de arrecadação", movement.Reason)
}

func TestRecord_TipoDesconhecido(t *testing.T) {
	e := newTestEnv(t)
	itemID := e.seedItem(t, 10, 0)
	_, _, err := record(e, dto.RecordMovementRequest{
		ItemID: itemID, Type: "transferencia",
		Quantity: 1, Reason: "Compra", Date: "2025-03-10",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Falha não deixa escrita parcial
// ──────────────────────────────────────────────────────────────────────────────

func TestRecord_FalhaNaoAlteraItemNemLivro(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	itemID := e.seedItem(t, 5, 0)

	_, _, err := record(e, dto.RecordMovementRequest{
		ItemID: itemID, Type: entity.MovementTypeSaida,
		Quantity: 50, Reason: "Consumo", Date: "2025-03-10",
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	item, err := e.itemUC.GetByID(ctx, itemID)
	require.NoError(t, err)
	assert.Equal(t, 5, item.CurrentStock, "item não pode mudar em falha")

	movements, err := e.movementUC.ListByItem(ctx, itemID)
	require.NoError(t, err)
	assert.Empty(t, movements, "falha não pode gerar lançamento")
}

// ──────────────────────────────────────────────────────────────────────────────
// Motivo composto e listagens
// ──────────────────────────────────────────────────────────────────────────────

func TestRecord_MotivoCompostoComDescricao(t *testing.T) {
	e := newTestEnv(t)
	itemID := e.seedItem(t, 10, 0)

	movement, _, err := record(e, dto.RecordMovementRequest{
		ItemID: itemID, Type: entity.MovementTypeEntrada,
		Quantity: 2, Reason: "Compra", Description: "nota fiscal 123", Date: "2025-03-10",
	})
	require.NoError(t, err)
	assert.Equal(t, "Compra - nota fiscal 123", movement.Reason)

	// Sem descrição o motivo fica só com o código.
	movement, _, err = record(e, dto.RecordMovementRequest{
		ItemID: itemID, Type: entity.MovementTypeEntrada,
		Quantity: 2, Reason: "Doação", Date: "2025-03-10",
	})
	require.NoError(t, err)
	assert.Equal(t, "Doação", movement.Reason)
}

func TestListByItem_MaisRecentesPrimeiro(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	itemID := e.seedItem(t, 100, 0)

	dates := []string{"2025-03-10", "2025-03-12", "2025-03-11"}
	for _, d := range dates {
		_, _, err := record(e, dto.RecordMovementRequest{
			ItemID: itemID, Type: entity.MovementTypeSaida,
			Quantity: 1, Reason: "Consumo", Date: d,
		})
		require.NoError(t, err)
	}

	movements, err := e.movementUC.ListByItem(ctx, itemID)
	require.NoError(t, err)
	require.Len(t, movements, 3)
	assert.Equal(t, "2025-03-12", movements[0].Date)
	assert.Equal(t, "2025-03-11", movements[1].Date)
	assert.Equal(t, "2025-03-10", movements[2].Date)
}

func TestListByBranch_FiltraPorAcolhimentoDoItem(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()

	item1, err := e.itemUC.Create(ctx, dto.CreateItemRequest{
		Name: "Feijão", Category: entity.CategoryMercearia,
		Stock: 10, Unit: "pacote", BranchID: "branch-1",
	})
	require.NoError(t, err)
	item2, err := e.itemUC.Create(ctx, dto.CreateItemRequest{
		Name: "Detergente", Category: entity.CategoryLimpeza,
		Stock: 10, Unit: "frasco", BranchID: "branch-2",
	})
	require.NoError(t, err)

	for _, id := range []string{item1.ID, item2.ID} {
		_, _, err := record(e, dto.RecordMovementRequest{
			ItemID: id, Type: entity.MovementTypeSaida,
			Quantity: 1, Reason: "Consumo", Date: "2025-03-10",
		})
		require.NoError(t, err)
	}

	movements, err := e.movementUC.ListByBranch(ctx, "branch-1")
	require.NoError(t, err)
	require.Len(t, movements, 1)
	assert.Equal(t, item1.ID, movements[0].ItemID)
}

func TestSortByDateDesc_EstavelENaoMutaOriginal(t *testing.T) {
	original := []entity.StockMovement{
		{ID: "a", Date: "2025-03-10"},
		{ID: "b", Date: "2025-03-12"},
		{ID: "c", Date: "2025-03-12"},
		{ID: "d", Date: "2025-03-11"},
	}
	sorted := inventory.SortByDateDesc(original)

	require.Len(t, sorted, 4)
	assert.Equal(t, "b", sorted[0].ID, "empate em 03-12 preserva ordem de gravação")
	assert.Equal(t, "c", sorted[1].ID)
	assert.Equal(t, "d", sorted[2].ID)
	assert.Equal(t, "a", sorted[3].ID)

	assert.Equal(t, "a", original[0].ID, "a fatia original não pode ser reordenada")
}
