// Package pgstore implementa kv.Store sobre PostgreSQL: uma tabela
// collections com uma linha jsonb por coleção lógica. Backend alternativo ao
// fsstore para quem precisa de durabilidade fora do host da aplicação; o
// contrato observado pelos repositórios é idêntico.
package pgstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redeacolher/estoque-api/internal/infrastructure/kv"
)

var _ kv.Store = (*Store)(nil)

// Store persiste coleções na tabela collections (name -> jsonb).
type Store struct {
	pool *pgxpool.Pool
}

// New constrói o store sobre um pool pgx já conectado.
func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Init cria a tabela de coleções se ainda não existir.
func (s *Store) Init(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS collections (
			name       text PRIMARY KEY,
			data       jsonb NOT NULL,
			updated_at timestamptz NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return fmt.Errorf("pgstore: criar tabela collections: %w", err)
	}
	return nil
}

// GetCollection devolve o array JSON da coleção, ou (nil, nil) se não existir.
func (s *Store) GetCollection(ctx context.Context, name string) ([]byte, error) {
	var data []byte
	err := s.pool.QueryRow(ctx,
		`SELECT data FROM collections WHERE name = $1`, name,
	).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("pgstore: ler coleção %s: %w", name, err)
	}
	return data, nil
}

// SetCollection grava (upsert) a coleção inteira.
func (s *Store) SetCollection(ctx context.Context, name string, data []byte) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO collections (name, data, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (name) DO UPDATE SET data = EXCLUDED.data, updated_at = now()`,
		name, data,
	)
	if err != nil {
		return fmt.Errorf("pgstore: gravar coleção %s: %w", name, err)
	}
	return nil
}
