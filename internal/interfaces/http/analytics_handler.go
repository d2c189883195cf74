package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/redeacolher/estoque-api/internal/application/analytics"
	"github.com/redeacolher/estoque-api/internal/domain/entity"
)

// AnalyticsHandler trata o dashboard, a visão de transações e o relatório PDF.
type AnalyticsHandler struct {
	dashboard    *analytics.DashboardUseCase
	transactions *analytics.TransactionsUseCase
	report       *analytics.MovementReportUseCase
}

// NewAnalyticsHandler constrói o handler.
func NewAnalyticsHandler(
	dashboard *analytics.DashboardUseCase,
	transactions *analytics.TransactionsUseCase,
	report *analytics.MovementReportUseCase,
) *AnalyticsHandler {
	return &AnalyticsHandler{dashboard: dashboard, transactions: transactions, report: report}
}

// GetDashboard godoc
// @Summary      Resumo do dashboard
// @Description  Contagens globais de acolhimentos e usuários; itens e estoque
//               baixo restritos ao acolhimento do usuário quando role=user.
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardSummary
// @Router       /api/dashboard/summary [get]
func (h *AnalyticsHandler) GetDashboard(c *fiber.Ctx) error {
	summary, err := h.dashboard.GetSummary(c.Context(), GetRole(c), GetBranchID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}

// ListTransactions godoc
// @Summary      Listagem filtrada de transações
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        type    query  string  false  "entrada | saida | all"
// @Param        search  query  string  false  "busca por nome do item ou motivo (sem caixa/acento)"
// @Success      200  {object}  dto.TransactionsResponse
// @Router       /api/transactions [get]
func (h *AnalyticsHandler) ListTransactions(c *fiber.Ctx) error {
	out, err := h.transactions.List(c.Context(), GetRole(c), GetBranchID(c), c.Query("type"), c.Query("search"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetMovementReport godoc
// @Summary      Relatório de movimentações em PDF
// @Description  role=user só emite o relatório do próprio acolhimento.
// @Tags         analytics
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "id do acolhimento"
// @Success      200  {file}  binary
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/branches/{id}/report [get]
func (h *AnalyticsHandler) GetMovementReport(c *fiber.Ctx) error {
	branchID := c.Params("id")
	if GetRole(c) == entity.RoleUser && branchID != GetBranchID(c) {
		return forbiddenBranch(c)
	}
	pdfBytes, err := h.report.Generate(c.Context(), branchID)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="relatorio-movimentacoes.pdf"`)
	return c.Send(pdfBytes)
}
