// Package bootstrap prepara o armazenamento na subida da aplicação:
// na primeira execução (coleção de usuários vazia) carrega os dados de
// demonstração para que o sistema já suba utilizável.
package bootstrap

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/redeacolher/estoque-api/internal/application/ports"
	"github.com/redeacolher/estoque-api/internal/domain/entity"
	"github.com/redeacolher/estoque-api/internal/domain/repository"
	"github.com/redeacolher/estoque-api/pkg/logger"
)

// Seeder grava os dados de demonstração.
type Seeder struct {
	branches  repository.BranchRepository
	users     repository.UserRepository
	items     repository.ItemRepository
	movements repository.MovementRepository
	clock     ports.Clock
	log       *logger.Logger
}

// NewSeeder constrói o seeder.
func NewSeeder(
	branches repository.BranchRepository,
	users repository.UserRepository,
	items repository.ItemRepository,
	movements repository.MovementRepository,
	clock ports.Clock,
	log *logger.Logger,
) *Seeder {
	return &Seeder{
		branches:  branches,
		users:     users,
		items:     items,
		movements: movements,
		clock:     clock,
		log:       log,
	}
}

type seedUser struct {
	id       string
	username string
	password string
	role     string
	branchID string
}

type seedItem struct {
	id       string
	name     string
	category string
	stock    int
	arrived  int
	unit     string
	branchID string
}

// Run semeia branches, usuários, itens e movimentos iniciais quando a base
// está vazia. Idempotente: se já existe qualquer usuário, não faz nada.
func (s *Seeder) Run(ctx context.Context) error {
	existing, err := s.users.List(ctx)
	if err != nil {
		return fmt.Errorf("bootstrap: listar usuários: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}
	s.log.Info().Msg("base vazia, carregando dados de demonstração")

	now := s.clock.Now()

	branches := []entity.Branch{
		{ID: "branch-1", Name: "Acolhimento 1", Location: "Rua das Flores, 123 - Centro", CreatedAt: now},
		{ID: "branch-2", Name: "Acolhimento 2", Location: "Av. Brasil, 456 - Jardim América", CreatedAt: now},
		{ID: "branch-3", Name: "Acolhimento 3", Location: "Rua do Sol, 789 - Vila Nova", CreatedAt: now},
	}
	for i := range branches {
		if err := s.branches.Create(ctx, &branches[i]); err != nil {
			return fmt.Errorf("bootstrap: criar acolhimento: %w", err)
		}
	}

	seedUsers := []seedUser{
		{id: "user-1", username: "admin", password: "admin123", role: entity.RoleAdmin},
		{id: "user-2", username: "usuario", password: "usuario123", role: entity.RoleUser, branchID: "branch-1"},
		{id: "user-3", username: "gerente", password: "gerente123", role: entity.RoleUser, branchID: "branch-2"},
	}
	for _, su := range seedUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(su.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("bootstrap: gerar hash: %w", err)
		}
		user := &entity.User{
			ID:           su.id,
			Username:     su.username,
			PasswordHash: string(hash),
			Role:         su.role,
			BranchID:     su.branchID,
			CreatedAt:    now,
		}
		if err := s.users.Create(ctx, user); err != nil {
			return fmt.Errorf("bootstrap: criar usuário: %w", err)
		}
	}

	seedItems := []seedItem{
		{id: "item-1", name: "Arroz 5kg", category: entity.CategoryMercearia, stock: 40, arrived: 10, unit: "pacote", branchID: "branch-1"},
		{id: "item-2", name: "Feijão 1kg", category: entity.CategoryMercearia, stock: 30, arrived: 0, unit: "pacote", branchID: "branch-1"},
		{id: "item-3", name: "Óleo de soja", category: entity.CategoryMercearia, stock: 24, arrived: 12, unit: "garrafa", branchID: "branch-1"},
		{id: "item-4", name: "Água sanitária", category: entity.CategoryLimpeza, stock: 15, arrived: 5, unit: "litro", branchID: "branch-1"},
		{id: "item-5", name: "Sabonete", category: entity.CategoryHigienePessoal, stock: 50, arrived: 0, unit: "unidade", branchID: "branch-1"},
		{id: "item-6", name: "Papel toalha", category: entity.CategoryDescartaveis, stock: 8, arrived: 0, unit: "rolo", branchID: "branch-1"},
		{id: "item-7", name: "Frango congelado", category: entity.CategoryProteinas, stock: 12, arrived: 6, unit: "kg", branchID: "branch-2"},
		{id: "item-8", name: "Queijo mussarela", category: entity.CategoryFrios, stock: 5, arrived: 0, unit: "kg", branchID: "branch-2"},
		{id: "item-9", name: "Banana", category: entity.CategoryHortifruti, stock: 20, arrived: 10, unit: "kg", branchID: "branch-2"},
		{id: "item-10", name: "Detergente", category: entity.CategoryLimpeza, stock: 18, arrived: 0, unit: "frasco", branchID: "branch-2"},
		{id: "item-11", name: "Macarrão 500g", category: entity.CategoryMercearia, stock: 35, arrived: 0, unit: "pacote", branchID: "branch-3"},
		{id: "item-12", name: "Copo descartável", category: entity.CategoryDescartaveis, stock: 6, arrived: 2, unit: "pacote", branchID: "branch-3"},
	}
	for _, si := range seedItems {
		item := &entity.InventoryItem{
			ID:               si.id,
			Name:             si.name,
			Category:         si.category,
			Stock:            si.stock,
			Arrived:          si.arrived,
			CurrentStock:     si.stock + si.arrived,
			Unit:             si.unit,
			BranchID:         si.branchID,
			DailyWithdrawals: []entity.DailyWithdrawal{},
			CreatedAt:        now,
			UpdatedAt:        now,
		}
		if err := s.items.Create(ctx, item); err != nil {
			return fmt.Errorf("bootstrap: criar item: %w", err)
		}
	}

	// Lançamentos de chegada para os itens que subiram com Arrived > 0,
	// para o histórico de transações não nascer vazio. A data do lançamento
	// segue o formato AAAA-MM-DD usado nos registros feitos pela API.
	movementDate := now
	if len(movementDate) > 10 {
		movementDate = movementDate[:10]
	}
	seq := 0
	for _, si := range seedItems {
		if si.arrived == 0 {
			continue
		}
		seq++
		movement := &entity.StockMovement{
			ID:        fmt.Sprintf("movement-%d", seq),
			ItemID:    si.id,
			Type:      entity.MovementTypeEntrada,
			Quantity:  si.arrived,
			Reason:    "Doação",
			Date:      movementDate,
			UserID:    "user-1",
			CreatedAt: now,
		}
		if err := s.movements.Append(ctx, movement); err != nil {
			return fmt.Errorf("bootstrap: registrar movimento: %w", err)
		}
	}

	s.log.Info().
		Int("branches", len(branches)).
		Int("users", len(seedUsers)).
		Int("items", len(seedItems)).
		Msg("dados de demonstração carregados")
	return nil
}
