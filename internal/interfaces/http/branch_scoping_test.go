package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redeacolher/estoque-api/internal/application/analytics"
	appauth "github.com/redeacolher/estoque-api/internal/application/auth"
	"github.com/redeacolher/estoque-api/internal/application/inventory"
	"github.com/redeacolher/estoque-api/internal/application/usecase"
	"github.com/redeacolher/estoque-api/internal/domain/entity"
	"github.com/redeacolher/estoque-api/internal/infrastructure/fsstore"
	"github.com/redeacolher/estoque-api/internal/infrastructure/pdf"
	"github.com/redeacolher/estoque-api/internal/infrastructure/storage"
	apphttp "github.com/redeacolher/estoque-api/internal/interfaces/http"
	"github.com/redeacolher/estoque-api/pkg/config"
	pkgjwt "github.com/redeacolher/estoque-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers: aplicação completa sobre o armazenamento em arquivo
// ──────────────────────────────────────────────────────────────────────────────

type scopeClock struct{}

func (scopeClock) Now() string { return "2025-03-10T12:00:00Z" }

type scopeIDs struct{ n int }

func (g *scopeIDs) NewID() string {
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

// newScopedApp sobe o router completo com dois acolhimentos, um item em cada
// e um lançamento por item.
func newScopedApp(t *testing.T) *fiber.App {
	t.Helper()
	store, err := fsstore.New(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	branches := storage.NewBranchRepository(store)
	users := storage.NewUserRepository(store)
	items := storage.NewItemRepository(store)
	movements := storage.NewMovementRepository(store)

	for _, b := range []entity.Branch{
		{ID: "branch-1", Name: "Acolhimento 1"},
		{ID: "branch-2", Name: "Acolhimento 2"},
	} {
		b := b
		require.NoError(t, branches.Create(ctx, &b))
	}
	for _, it := range []entity.InventoryItem{
		{ID: "item-b1", Name: "Arroz", BranchID: "branch-1", CurrentStock: 50, DailyWithdrawals: []entity.DailyWithdrawal{}},
		{ID: "item-b2", Name: "Feijão", BranchID: "branch-2", CurrentStock: 50, DailyWithdrawals: []entity.DailyWithdrawal{}},
	} {
		it := it
		require.NoError(t, items.Create(ctx, &it))
	}
	for _, m := range []entity.StockMovement{
		{ID: "mov-b1", ItemID: "item-b1", Type: "saida", Quantity: 1, Reason: "Consumo", Date: "2025-03-09"},
		{ID: "mov-b2", ItemID: "item-b2", Type: "saida", Quantity: 1, Reason: "Consumo", Date: "2025-03-09"},
	} {
		m := m
		require.NoError(t, movements.Append(ctx, &m))
	}

	clock := scopeClock{}
	ids := &scopeIDs{}
	itemUC := inventory.NewItemUseCase(items, ids, clock)
	movementUC := inventory.NewMovementUseCase(items, movements, ids, clock)
	reportUC := analytics.NewMovementReportUseCase(branches, items, movementUC, pdf.NewMarotoPDFGenerator(), clock)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:         appauth.NewUseCase(users, config.JWTConfig{Secret: testJWTSecret, Expiration: 60, Issuer: testIssuer}),
		BranchUC:       usecase.NewBranchUseCase(branches, ids, clock),
		UserUC:         usecase.NewUserUseCase(users, ids, clock),
		ItemUC:         itemUC,
		MovementUC:     movementUC,
		WithdrawalUC:   inventory.NewWithdrawalUseCase(items, clock),
		DashboardUC:    analytics.NewDashboardUseCase(branches, users, items),
		TransactionsUC: analytics.NewTransactionsUseCase(items, movementUC),
		ReportUC:       reportUC,
		JWTSecret:      testJWTSecret,
	})
	return app
}

func doScoped(t *testing.T, app *fiber.App, method, path, token string, body []byte) *http.Response {
	t.Helper()
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, path, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	req.Header.Set("Authorization", token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeMovements(t *testing.T, resp *http.Response) []entity.StockMovement {
	t.Helper()
	defer resp.Body.Close()
	var out []entity.StockMovement
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// branchToken gera um JWT com o papel e o acolhimento indicados.
func branchToken(t *testing.T, role, branchID string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, branchID, role, testIssuer, testExpMin)
	require.NoError(t, err)
	return "Bearer " + tok
}

// ──────────────────────────────────────────────────────────────────────────────
// Listagem de movimentos
// ──────────────────────────────────────────────────────────────────────────────

func TestMovementList_UserSoEnxergaSeuAcolhimento(t *testing.T) {
	app := newScopedApp(t)
	token := branchToken(t, "user", "branch-1")

	resp := doScoped(t, app, http.MethodGet, "/api/movements", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	movements := decodeMovements(t, resp)
	require.Len(t, movements, 1)
	assert.Equal(t, "item-b1", movements[0].ItemID)
}

func TestMovementList_UserNaoEscapaPorQueryParam(t *testing.T) {
	app := newScopedApp(t)
	token := branchToken(t, "user", "branch-1")

	// branchId de outro acolhimento é ignorado para role=user.
	resp := doScoped(t, app, http.MethodGet, "/api/movements?branchId=branch-2", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	movements := decodeMovements(t, resp)
	require.Len(t, movements, 1)
	assert.Equal(t, "item-b1", movements[0].ItemID)

	// itemId de outro acolhimento devolve vazio, nunca o lançamento alheio.
	resp = doScoped(t, app, http.MethodGet, "/api/movements?itemId=item-b2", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decodeMovements(t, resp))
}

func TestMovementList_AdminFiltraLivremente(t *testing.T) {
	app := newScopedApp(t)
	token := branchToken(t, "admin", "")

	resp := doScoped(t, app, http.MethodGet, "/api/movements?branchId=branch-2", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	movements := decodeMovements(t, resp)
	require.Len(t, movements, 1)
	assert.Equal(t, "item-b2", movements[0].ItemID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Registro de movimento e retirada
// ──────────────────────────────────────────────────────────────────────────────

func TestMovementRecord_UserBloqueadoEmItemDeOutroAcolhimento(t *testing.T) {
	app := newScopedApp(t)
	token := branchToken(t, "user", "branch-1")

	body := []byte(`{"itemId":"item-b2","type":"saida","quantity":1,"reason":"Consumo","date":"2025-03-10"}`)
	resp := doScoped(t, app, http.MethodPost, "/api/movements", token, body)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// No próprio acolhimento o registro segue normal.
	body = []byte(`{"itemId":"item-b1","type":"saida","quantity":1,"reason":"Consumo","date":"2025-03-10"}`)
	resp = doScoped(t, app, http.MethodPost, "/api/movements", token, body)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestMovementRecord_ItemInexistenteMantemOrdemDeValidacao(t *testing.T) {
	app := newScopedApp(t)
	token := branchToken(t, "user", "branch-1")

	// Item inexistente não vira 403: o caso de uso reporta na ordem certa.
	body := []byte(`{"itemId":"nao-existe","type":"saida","quantity":0,"reason":"","date":"2025-03-10"}`)
	resp := doScoped(t, app, http.MethodPost, "/api/movements", token, body)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "quantidade inválida vence item inexistente")

	body = []byte(`{"itemId":"nao-existe","type":"saida","quantity":1,"reason":"Consumo","date":"2025-03-10"}`)
	resp = doScoped(t, app, http.MethodPost, "/api/movements", token, body)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestWithdrawal_UserBloqueadoEmItemDeOutroAcolhimento(t *testing.T) {
	app := newScopedApp(t)
	token := branchToken(t, "user", "branch-1")

	body := []byte(`{"quantity":1,"date":"2025-03-10"}`)
	resp := doScoped(t, app, http.MethodPost, "/api/items/item-b2/withdrawals", token, body)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = doScoped(t, app, http.MethodPost, "/api/items/item-b1/withdrawals", token, body)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Relatório PDF
// ──────────────────────────────────────────────────────────────────────────────

func TestMovementReport_UserSoEmiteDoProprioAcolhimento(t *testing.T) {
	app := newScopedApp(t)
	token := branchToken(t, "user", "branch-1")

	resp := doScoped(t, app, http.MethodGet, "/api/branches/branch-2/report", token, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = doScoped(t, app, http.MethodGet, "/api/branches/branch-1/report", token, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
}
