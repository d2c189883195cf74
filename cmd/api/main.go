package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/redeacolher/estoque-api/internal/application/analytics"
	"github.com/redeacolher/estoque-api/internal/application/auth"
	"github.com/redeacolher/estoque-api/internal/application/inventory"
	"github.com/redeacolher/estoque-api/internal/application/ports"
	"github.com/redeacolher/estoque-api/internal/application/usecase"
	"github.com/redeacolher/estoque-api/internal/bootstrap"
	"github.com/redeacolher/estoque-api/internal/infrastructure/fsstore"
	"github.com/redeacolher/estoque-api/internal/infrastructure/kv"
	infrapdf "github.com/redeacolher/estoque-api/internal/infrastructure/pdf"
	"github.com/redeacolher/estoque-api/internal/infrastructure/pgstore"
	"github.com/redeacolher/estoque-api/internal/infrastructure/storage"
	httpRouter "github.com/redeacolher/estoque-api/internal/interfaces/http"
	"github.com/redeacolher/estoque-api/pkg/config"
	"github.com/redeacolher/estoque-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicação")

	ctx := context.Background()

	var store kv.Store
	switch cfg.Store.Driver {
	case config.StoreDriverPostgres:
		pool, err := pgstore.NewPool(ctx, cfg.Store.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
		}
		defer pool.Close()
		pg := pgstore.New(pool)
		if err := pg.Init(ctx); err != nil {
			log.Fatal().Err(err).Msg("preparar tabela de coleções")
		}
		store = pg
	default:
		fs, err := fsstore.New(cfg.Store.Path)
		if err != nil {
			log.Fatal().Err(err).Msg("preparar diretório de dados")
		}
		store = fs
	}

	branchRepo := storage.NewBranchRepository(store)
	userRepo := storage.NewUserRepository(store)
	itemRepo := storage.NewItemRepository(store)
	movementRepo := storage.NewMovementRepository(store)

	clock := ports.SystemClock{}
	ids := ports.UUIDGenerator{}

	authUC := auth.NewUseCase(userRepo, cfg.JWT)
	branchUC := usecase.NewBranchUseCase(branchRepo, ids, clock)
	userUC := usecase.NewUserUseCase(userRepo, ids, clock)
	itemUC := inventory.NewItemUseCase(itemRepo, ids, clock)
	movementUC := inventory.NewMovementUseCase(itemRepo, movementRepo, ids, clock)
	withdrawalUC := inventory.NewWithdrawalUseCase(itemRepo, clock)
	dashboardUC := analytics.NewDashboardUseCase(branchRepo, userRepo, itemRepo)
	transactionsUC := analytics.NewTransactionsUseCase(itemRepo, movementUC)
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	reportUC := analytics.NewMovementReportUseCase(branchRepo, itemRepo, movementUC, pdfGenerator, clock)

	if cfg.App.SeedDemo {
		seeder := bootstrap.NewSeeder(branchRepo, userRepo, itemRepo, movementRepo, clock, log)
		if err := seeder.Run(ctx); err != nil {
			log.Fatal().Err(err).Msg("carga inicial")
		}
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Estoque Acolhimentos API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		BranchUC:       branchUC,
		UserUC:         userUC,
		ItemUC:         itemUC,
		MovementUC:     movementUC,
		WithdrawalUC:   withdrawalUC,
		DashboardUC:    dashboardUC,
		TransactionsUC: transactionsUC,
		ReportUC:       reportUC,
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
