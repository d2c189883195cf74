// Package fsstore implementa kv.Store sobre o sistema de arquivos local:
// um arquivo JSON por coleção dentro de um diretório de dados.
package fsstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/redeacolher/estoque-api/internal/infrastructure/kv"
)

var _ kv.Store = (*Store)(nil)

// Store grava cada coleção em <dir>/<name>.json. A escrita usa arquivo
// temporário + rename para nunca deixar uma coleção truncada em disco.
//
// Um único mutex serializa todos os acessos: o modelo de uso é de um escritor
// lógico por vez (um processo, requisições sequenciais sobre o mesmo item);
// não há lock por registro.
type Store struct {
	mu  sync.Mutex
	dir string
}

// New cria o diretório de dados se necessário e devolve o store.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("fsstore: criar diretório %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// GetCollection lê o arquivo da coleção. Coleção inexistente devolve (nil, nil).
func (s *Store) GetCollection(_ context.Context, name string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("fsstore: ler coleção %s: %w", name, err)
	}
	return data, nil
}

// SetCollection substitui o arquivo da coleção de forma atômica
// (escreve em .tmp e renomeia por cima).
func (s *Store) SetCollection(_ context.Context, name string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	target := s.path(name)
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("fsstore: gravar coleção %s: %w", name, err)
	}
	if err := os.Rename(tmp, target); err != nil {
		return fmt.Errorf("fsstore: renomear coleção %s: %w", name, err)
	}
	return nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}
