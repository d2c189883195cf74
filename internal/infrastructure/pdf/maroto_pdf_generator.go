// Package pdf implementa a geração do relatório imprimível de
// movimentações de um acolhimento usando Maroto v2.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Acolhimento + localização  │  Data de emissão      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Data | Item | Tipo | Qtd | Motivo                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAIS: total de entradas / total de saídas                │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/redeacolher/estoque-api/internal/application/analytics"
	"github.com/redeacolher/estoque-api/internal/domain/entity"
)

// ── Paleta de cores ───────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 13, Green: 94, Blue: 60}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorEntrada = &props.Color{Red: 21, Green: 128, Blue: 61}
	colorSaida   = &props.Color{Red: 185, Green: 28, Blue: 28}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa analytics.MovementPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

var _ analytics.MovementPDFGenerator = (*MarotoPDFGenerator)(nil)

// NewMarotoPDFGenerator constrói o gerador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateMovementsPDF gera o PDF e devolve seus bytes.
func (g *MarotoPDFGenerator) GenerateMovementsPDF(
	_ context.Context,
	branch *entity.Branch,
	rows []analytics.MovementReportRow,
	generatedAt string,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Relatório de Movimentações", true).
		WithAuthor(branch.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(branch, generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(rows) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(rows))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Seções ────────────────────────────────────────────────────────────────────

// headerRow: acolhimento (esq) e data de emissão (dir).
func headerRow(branch *entity.Branch, generatedAt string) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(branch.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(branch.Location, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("RELATÓRIO DE MOVIMENTAÇÕES", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Emitido em: "+formatDate(generatedAt), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabeçalho da tabela de lançamentos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Data", 2, align.Left),
		h("Item", 4, align.Left),
		h("Tipo", 2, align.Center),
		h("Qtd.", 1, align.Right),
		h("Motivo", 3, align.Left),
	)
}

// tableRows: uma linha por lançamento do livro.
func tableRows(rows []analytics.MovementReportRow) []core.Row {
	result := make([]core.Row, 0, len(rows))
	for _, r := range rows {
		m := r.Movement
		tipoColor := colorEntrada
		tipo := "Entrada"
		if m.Type == entity.MovementTypeSaida {
			tipoColor = colorSaida
			tipo = "Saída"
		}
		qty := fmt.Sprintf("%d", m.Quantity)
		if r.Unit != "" {
			qty = fmt.Sprintf("%d %s", m.Quantity, r.Unit)
		}
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				formatDate(m.Date),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(4).Add(text.New(
				r.ItemName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				tipo,
				props.Text{Size: 8, Align: align.Center, Top: 1, Color: tipoColor, Style: fontstyle.Bold},
			)),
			col.New(1).Add(text.New(
				qty,
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				m.Reason,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
		))
	}
	return result
}

// totalsRow: somatórios de entradas e saídas.
func totalsRow(rows []analytics.MovementReportRow) core.Row {
	var entradas, saidas int
	for _, r := range rows {
		switch r.Movement.Type {
		case entity.MovementTypeEntrada:
			entradas += r.Movement.Quantity
		case entity.MovementTypeSaida:
			saidas += r.Movement.Quantity
		}
	}
	// Duas linhas empilhadas na mesma row de 16: Top separa os textos,
	// como no headerRow.
	label := func(s string, c *props.Color, top float64) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right,
			Color: c, Right: 2, Top: top,
		})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Top: top})
	}
	return row.New(16).Add(
		col.New(6),
		col.New(3).Add(
			label("Total de entradas:", colorEntrada, 2),
			label("Total de saídas:", colorSaida, 8),
		),
		col.New(3).Add(
			value(fmt.Sprintf("%d", entradas), 2),
			value(fmt.Sprintf("%d", saidas), 8),
		),
	)
}

// formatDate converte "2025-03-10" (ou um timestamp ISO completo) para
// "10/03/2025". Valores fora do formato esperado passam sem alteração.
func formatDate(iso string) string {
	if len(iso) < 10 {
		return iso
	}
	y, m, d := iso[0:4], iso[5:7], iso[8:10]
	if iso[4] != '-' || iso[7] != '-' {
		return iso
	}
	return d + "/" + m + "/" + y
}
