// Package kv define o porto de armazenamento durável chave-valor usado por
// todos os repositórios: um mapeamento de nome de coleção lógica para a lista
// de registros serializada em JSON.
//
// O contrato é propositalmente mínimo: get/set da coleção inteira, sem regra
// de negócio. A forma dos registros atravessa a fronteira exatamente como
// serializada (datas permanecem strings ISO-8601, nunca time.Time), para que
// qualquer backend devolva byte a byte o que recebeu.
package kv

import "context"

// Nomes das coleções lógicas persistidas.
const (
	CollectionBranches  = "branches"
	CollectionUsers     = "users"
	CollectionItems     = "items"
	CollectionMovements = "movements"
)

// Store é o porto de persistência de coleções.
//
// GetCollection devolve o array JSON da coleção, ou nil se ela ainda não
// existe. SetCollection substitui a coleção inteira (last-write-wins no nível
// da coleção; ver limitações de concorrência no DESIGN.md).
type Store interface {
	GetCollection(ctx context.Context, name string) ([]byte, error)
	SetCollection(ctx context.Context, name string, data []byte) error
}
