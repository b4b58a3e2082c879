package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	portssvc "github.com/zenbalans/taxengine_app/internal/core/ports/services"
	"github.com/zenbalans/taxengine_app/internal/dto"
	"github.com/zenbalans/taxengine_app/internal/middleware"
)

// reportingHandler handles HTTP requests related to financial reports
type reportingHandler struct {
	reportingService portssvc.ReportingSvc
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingSvc) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers routes related to financial reports
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvc) {
	h := newReportingHandler(reportingService)

	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.POST("/income-expense", h.getIncomeExpense)
		reportingGroup.POST("/profit-and-loss", h.getProfitAndLoss)
		reportingGroup.POST("/counterparties", h.getCounterpartyDebt)
		reportingGroup.POST("/tenders", h.getTenderProfitability)
	}
}

// parsePeriod parses and validates the from/to window of a report request.
func parsePeriod(c *gin.Context, fromStr, toStr string) (time.Time, time.Time, bool) {
	from, err := time.Parse("2006-01-02", fromStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid from date format. Use YYYY-MM-DD"})
		return time.Time{}, time.Time{}, false
	}
	to, err := time.Parse("2006-01-02", toStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid to date format. Use YYYY-MM-DD"})
		return time.Time{}, time.Time{}, false
	}
	if from.After(to) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from must be before or equal to to"})
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}

// getIncomeExpense godoc
// @Summary Generate income/expense breakdown report
// @Description Partitions ledger entries by month and category over the supplied period
// @Tags reports
// @Accept json
// @Produce json
// @Param request body dto.LedgerReportRequest true "Ledger snapshot and period"
// @Success 200 {object} dto.IncomeExpenseReportResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Router /reports/income-expense [post]
func (h *reportingHandler) getIncomeExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LedgerReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid income/expense report request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	from, to, ok := parsePeriod(c, req.From, req.To)
	if !ok {
		return
	}
	entries, err := dto.ToLedgerEntries(req.Entries)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := h.reportingService.IncomeExpense(c.Request.Context(), from, to, entries)
	if err != nil {
		logger.Error("Failed to generate income/expense report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate income/expense report"})
		return
	}

	c.JSON(http.StatusOK, dto.ToIncomeExpenseReportResponse(report))
}

// getProfitAndLoss godoc
// @Summary Generate profit and loss report
// @Description Derives a P&L statement from categorized ledger entries over the supplied period
// @Tags reports
// @Accept json
// @Produce json
// @Param request body dto.LedgerReportRequest true "Ledger snapshot and period"
// @Success 200 {object} dto.ProfitAndLossReportResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Router /reports/profit-and-loss [post]
func (h *reportingHandler) getProfitAndLoss(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LedgerReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid profit and loss report request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	from, to, ok := parsePeriod(c, req.From, req.To)
	if !ok {
		return
	}
	entries, err := dto.ToLedgerEntries(req.Entries)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := h.reportingService.ProfitAndLoss(c.Request.Context(), from, to, entries)
	if err != nil {
		logger.Error("Failed to generate profit and loss report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate profit and loss report"})
		return
	}

	c.JSON(http.StatusOK, dto.ToProfitAndLossReportResponse(report))
}

// getCounterpartyDebt godoc
// @Summary Generate counterparty debt report
// @Description Computes per-counterparty invoiced vs paid positions over the supplied documents
// @Tags reports
// @Accept json
// @Produce json
// @Param request body dto.CounterpartyReportRequest true "Document snapshot and period"
// @Success 200 {object} dto.CounterpartyReportResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Router /reports/counterparties [post]
func (h *reportingHandler) getCounterpartyDebt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CounterpartyReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid counterparty report request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	from, to, ok := parsePeriod(c, req.From, req.To)
	if !ok {
		return
	}
	documents, err := dto.ToDocuments(req.Documents)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := h.reportingService.CounterpartyDebt(c.Request.Context(), from, to, documents)
	if err != nil {
		logger.Error("Failed to generate counterparty report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate counterparty report"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCounterpartyReportResponse(report))
}

// getTenderProfitability godoc
// @Summary Generate tender profitability report
// @Description Computes per-tender income minus expense and the aggregate win rate
// @Tags reports
// @Accept json
// @Produce json
// @Param request body dto.TenderReportRequest true "Tenders and linked ledger entries"
// @Success 200 {object} dto.TenderReportResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Router /reports/tenders [post]
func (h *reportingHandler) getTenderProfitability(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.TenderReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid tender report request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entries, err := dto.ToLedgerEntries(req.Entries)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := h.reportingService.TenderProfitability(c.Request.Context(), dto.ToTenders(req.Tenders), entries)
	if err != nil {
		logger.Error("Failed to generate tender report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate tender report"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTenderReportResponse(report))
}
