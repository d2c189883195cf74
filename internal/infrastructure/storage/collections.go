// Package storage implementa os portos de repositório do domínio sobre o
// armazenamento genérico de coleções (kv.Store). Cada operação de escrita é
// uma sequência ler-coleção -> mutar em memória -> gravar-coleção; dentro de
// um processo os stores serializam os acessos, entre processos vale
// last-write-wins no nível da coleção.
package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redeacolher/estoque-api/internal/infrastructure/kv"
)

// loadCollection decodifica a coleção inteira. Coleção ausente vira lista vazia.
func loadCollection[T any](ctx context.Context, store kv.Store, name string) ([]T, error) {
	data, err := store.GetCollection(ctx, name)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return []T{}, nil
	}
	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("storage: decodificar coleção %s: %w", name, err)
	}
	return records, nil
}

// saveCollection serializa e grava a coleção inteira. Lista nil é persistida
// como [] para que a forma JSON permaneça estável entre round-trips.
func saveCollection[T any](ctx context.Context, store kv.Store, name string, records []T) error {
	if records == nil {
		records = []T{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("storage: codificar coleção %s: %w", name, err)
	}
	return store.SetCollection(ctx, name, data)
}
