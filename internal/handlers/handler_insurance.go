package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zenbalans/taxengine_app/internal/apperrors"
	portssvc "github.com/zenbalans/taxengine_app/internal/core/ports/services"
	"github.com/zenbalans/taxengine_app/internal/dto"
	"github.com/zenbalans/taxengine_app/internal/middleware"
)

// insuranceHandler handles HTTP requests related to insurance contributions
type insuranceHandler struct {
	insuranceService portssvc.InsuranceSvc
}

// newInsuranceHandler creates a new insuranceHandler
func newInsuranceHandler(is portssvc.InsuranceSvc) *insuranceHandler {
	return &insuranceHandler{insuranceService: is}
}

// registerInsuranceRoutes registers routes related to insurance contributions
func registerInsuranceRoutes(rg *gin.RouterGroup, insuranceService portssvc.InsuranceSvc) {
	h := newInsuranceHandler(insuranceService)

	insuranceGroup := rg.Group("/insurance")
	{
		insuranceGroup.POST("/entrepreneur", h.calculateEntrepreneur)
		insuranceGroup.POST("/employees", h.calculateEmployees)
	}
}

// calculateEntrepreneur godoc
// @Summary Calculate entrepreneur (IP) insurance contributions
// @Description Computes the fixed plus excess-income contribution with the pension cap for a fiscal year
// @Tags insurance
// @Accept json
// @Produce json
// @Param request body dto.EntrepreneurContributionsRequest true "Ledger snapshot"
// @Success 200 {object} dto.EntrepreneurContributionsResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 422 {object} map[string]string "No tax parameters for year"
// @Failure 500 {object} map[string]string "Calculation failed"
// @Router /insurance/entrepreneur [post]
func (h *insuranceHandler) calculateEntrepreneur(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.EntrepreneurContributionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid entrepreneur contributions request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entries, err := dto.ToLedgerEntries(req.Entries)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.insuranceService.CalculateEntrepreneurContributions(c.Request.Context(), req.Year, entries)
	if err != nil {
		if errors.Is(err, apperrors.ErrTaxParamsNotFound) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to calculate entrepreneur contributions", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to calculate entrepreneur contributions"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToEntrepreneurContributionsResponse(result))
}

// calculateEmployees godoc
// @Summary Calculate employer insurance contributions
// @Description Computes per-employee tiered contributions split at the wage threshold for the supplied salary list
// @Tags insurance
// @Accept json
// @Produce json
// @Param request body dto.EmployeeContributionsRequest true "Salary list"
// @Success 200 {object} dto.EmployeeContributionsResponse
// @Failure 400 {object} map[string]string "Invalid input (e.g. negative salary)"
// @Failure 422 {object} map[string]string "No tax parameters for year"
// @Failure 500 {object} map[string]string "Calculation failed"
// @Router /insurance/employees [post]
func (h *insuranceHandler) calculateEmployees(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.EmployeeContributionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid employee contributions request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.insuranceService.CalculateEmployeeContributions(c.Request.Context(), req.Year, dto.ToEmployees(req.Employees))
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrTaxParamsNotFound) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to calculate employee contributions", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to calculate employee contributions"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToEmployeeContributionsResponse(result))
}
