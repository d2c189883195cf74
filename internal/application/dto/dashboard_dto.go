package dto

import "github.com/redeacolher/estoque-api/internal/domain/entity"

// DashboardSummary resposta de GET /api/dashboard/summary.
// Os itens (e a lista de estoque baixo) são restritos ao acolhimento do
// usuário quando role=user; as contagens de acolhimentos e usuários
// permanecem globais para qualquer papel (comportamento observado do
// produto original, preservado).
type DashboardSummary struct {
	TotalBranches int                    `json:"totalBranches"`
	TotalUsers    int                    `json:"totalUsers"`
	TotalItems    int                    `json:"totalItems"`
	LowStockItems []entity.InventoryItem `json:"lowStockItems"`
}
