// Package ports reúne colaboradores pequenos injetados nos casos de uso.
package ports

import (
	"time"

	"github.com/google/uuid"
)

// Clock fornece o timestamp corrente como string ISO-8601. Os registros
// persistem datas como strings; nenhum time.Time atravessa o armazenamento.
type Clock interface {
	Now() string
}

// IDGenerator fornece um identificador único por registro novo. Unicidade é
// o único contrato; não há garantia de ordem nem de formato.
type IDGenerator interface {
	NewID() string
}

// SystemClock implementação padrão de Clock (UTC, RFC 3339).
type SystemClock struct{}

// Now devolve o instante atual em UTC no formato RFC 3339.
func (SystemClock) Now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// UUIDGenerator implementação padrão de IDGenerator sobre UUIDv4.
type UUIDGenerator struct{}

// NewID devolve um UUID novo em forma textual.
func (UUIDGenerator) NewID() string {
	return uuid.New().String()
}
