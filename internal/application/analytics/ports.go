package analytics

import (
	"context"

	"github.com/redeacolher/estoque-api/internal/domain/entity"
)

// MovementReportRow uma linha do relatório: lançamento + item resolvido.
type MovementReportRow struct {
	Movement entity.StockMovement
	ItemName string
	Unit     string
}

// MovementPDFGenerator porto para a renderização do relatório de
// movimentações em PDF (implementado em infrastructure/pdf com Maroto).
type MovementPDFGenerator interface {
	GenerateMovementsPDF(ctx context.Context, branch *entity.Branch, rows []MovementReportRow, generatedAt string) ([]byte, error)
}
