// Package http expõe a API REST sobre Fiber: handlers, middleware de
// autenticação e o registro de rotas.
package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/redeacolher/estoque-api/internal/application/analytics"
	"github.com/redeacolher/estoque-api/internal/application/auth"
	"github.com/redeacolher/estoque-api/internal/application/inventory"
	"github.com/redeacolher/estoque-api/internal/application/usecase"
	"github.com/redeacolher/estoque-api/internal/domain/entity"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC         *auth.UseCase
	BranchUC       *usecase.BranchUseCase
	UserUC         *usecase.UserUseCase
	ItemUC         *inventory.ItemUseCase
	MovementUC     *inventory.MovementUseCase
	WithdrawalUC   *inventory.WithdrawalUseCase
	DashboardUC    *analytics.DashboardUseCase
	TransactionsUC *analytics.TransactionsUseCase
	ReportUC       *analytics.MovementReportUseCase
	JWTSecret      string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rotas protegidas (exigem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	adminOnly := RequireRole(entity.RoleAdmin)

	// Branches (listagem para qualquer papel; mutações somente admin)
	branches := protected.Group("/branches")
	branchHandler := NewBranchHandler(deps.BranchUC)
	branches.Get("/", branchHandler.List)
	branches.Get("/:id", branchHandler.GetByID)
	branches.Post("/", adminOnly, branchHandler.Create)
	branches.Put("/:id", adminOnly, branchHandler.Update)
	branches.Delete("/:id", adminOnly, branchHandler.Delete)

	// Users (somente admin)
	users := protected.Group("/users", adminOnly)
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Items + retiradas legadas
	items := protected.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC, deps.WithdrawalUC)
	items.Post("/", itemHandler.Create)
	items.Get("/", itemHandler.List)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", itemHandler.Update)
	items.Delete("/:id", itemHandler.Delete)
	items.Post("/:id/withdrawals", itemHandler.RecordWithdrawal)

	// Movimentos de estoque
	movements := protected.Group("/movements")
	movementHandler := NewMovementHandler(deps.MovementUC, deps.ItemUC)
	movements.Post("/", movementHandler.Record)
	movements.Get("/", movementHandler.List)

	// Analytics
	analyticsHandler := NewAnalyticsHandler(deps.DashboardUC, deps.TransactionsUC, deps.ReportUC)
	protected.Get("/dashboard/summary", analyticsHandler.GetDashboard)
	protected.Get("/transactions", analyticsHandler.ListTransactions)
	branches.Get("/:id/report", analyticsHandler.GetMovementReport)
}
