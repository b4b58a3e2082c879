package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zenbalans/taxengine_app/internal/apperrors"
	"github.com/zenbalans/taxengine_app/internal/core/domain"
	portssvc "github.com/zenbalans/taxengine_app/internal/core/ports/services"
	"github.com/zenbalans/taxengine_app/internal/dto"
	"github.com/zenbalans/taxengine_app/internal/middleware"
)

// taxHandler handles HTTP requests related to tax calculations
type taxHandler struct {
	taxService portssvc.TaxCalculationSvc
}

// newTaxHandler creates a new taxHandler
func newTaxHandler(ts portssvc.TaxCalculationSvc) *taxHandler {
	return &taxHandler{taxService: ts}
}

// registerTaxRoutes registers routes related to tax calculations
func registerTaxRoutes(rg *gin.RouterGroup, taxService portssvc.TaxCalculationSvc) {
	h := newTaxHandler(taxService)

	taxGroup := rg.Group("/taxes")
	{
		taxGroup.POST("/usn6", h.calculateUSN6)
		taxGroup.POST("/usn15", h.calculateUSN15)
		taxGroup.POST("/vat", h.extractVAT)
		taxGroup.GET("/params/:year", h.getTaxParams)
	}
}

// calculateUSN6 godoc
// @Summary Calculate USN 6% (revenue) tax
// @Description Computes the cumulative quarterly revenue tax with the insurance deduction cap over the supplied ledger snapshot
// @Tags taxes
// @Accept json
// @Produce json
// @Param request body dto.USN6Request true "Ledger snapshot"
// @Success 200 {object} dto.USN6Response
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 422 {object} map[string]string "No tax parameters for year"
// @Failure 500 {object} map[string]string "Calculation failed"
// @Router /taxes/usn6 [post]
func (h *taxHandler) calculateUSN6(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.USN6Request
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid USN6 request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entries, err := dto.ToLedgerEntries(req.Entries)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	payments, err := dto.ToTaxPayments(req.Payments)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.taxService.CalculateUSN6(c.Request.Context(), domain.USN6Input{
		Year:         req.Year,
		HasEmployees: req.HasEmployees,
		Entries:      entries,
		Payments:     payments,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrTaxParamsNotFound) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to calculate USN6 tax", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to calculate USN6 tax"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToUSN6Response(result))
}

// calculateUSN15 godoc
// @Summary Calculate USN 15% (revenue minus expense) tax
// @Description Computes the cumulative quarterly profit tax with the year-end minimum-tax override over the supplied ledger snapshot
// @Tags taxes
// @Accept json
// @Produce json
// @Param request body dto.USN15Request true "Ledger snapshot"
// @Success 200 {object} dto.USN15Response
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 422 {object} map[string]string "No tax parameters for year"
// @Failure 500 {object} map[string]string "Calculation failed"
// @Router /taxes/usn15 [post]
func (h *taxHandler) calculateUSN15(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.USN15Request
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid USN15 request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entries, err := dto.ToLedgerEntries(req.Entries)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	payments, err := dto.ToTaxPayments(req.Payments)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.taxService.CalculateUSN15(c.Request.Context(), domain.USN15Input{
		Year:     req.Year,
		Entries:  entries,
		Payments: payments,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrTaxParamsNotFound) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to calculate USN15 tax", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to calculate USN15 tax"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToUSN15Response(result))
}

// extractVAT godoc
// @Summary Extract VAT from accounting documents
// @Description Classifies documents into output/input VAT and nets the two over an inclusive date window
// @Tags taxes
// @Accept json
// @Produce json
// @Param request body dto.VATRequest true "Document snapshot and window"
// @Success 200 {object} dto.VATResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Extraction failed"
// @Router /taxes/vat [post]
func (h *taxHandler) extractVAT(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.VATRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid VAT request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	from, err := time.Parse("2006-01-02", req.From)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid from date format. Use YYYY-MM-DD"})
		return
	}
	to, err := time.Parse("2006-01-02", req.To)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid to date format. Use YYYY-MM-DD"})
		return
	}
	if from.After(to) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from must be before or equal to to"})
		return
	}

	documents, err := dto.ToDocuments(req.Documents)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.taxService.ExtractVAT(c.Request.Context(), domain.VATWindow{
		From:      from,
		To:        to,
		Documents: documents,
	})
	if err != nil {
		logger.Error("Failed to extract VAT", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to extract VAT"})
		return
	}

	c.JSON(http.StatusOK, dto.ToVATResponse(result))
}

// getTaxParams godoc
// @Summary Get tax parameters for a fiscal year
// @Description Returns the law-defined constant set used by the calculators for the given year
// @Tags taxes
// @Produce json
// @Param year path int true "Fiscal year"
// @Success 200 {object} dto.TaxParamsResponse
// @Failure 400 {object} map[string]string "Invalid year"
// @Failure 404 {object} map[string]string "No parameters for year"
// @Router /taxes/params/{year} [get]
func (h *taxHandler) getTaxParams(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year"})
		return
	}

	params, err := domain.TaxParamsForYear(year)
	if err != nil {
		logger.Warn("Tax parameters requested for unsupported year", slog.Int("year", year))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.ToTaxParamsResponse(params))
}
