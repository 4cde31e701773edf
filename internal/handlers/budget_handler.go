package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "finboard/internal/errors"
	"finboard/internal/services"
)

// BudgetHandler handles budget-related requests.
type BudgetHandler struct {
	budgetService services.BudgetServicer
	reportService services.ReportServicer
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(budgetService services.BudgetServicer, reportService services.ReportServicer) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService, reportService: reportService}
}

// BudgetRequest represents the payload for setting a budget limit.
type BudgetRequest struct {
	Category string  `json:"category" binding:"required,min=1,max=100"`
	Amount   float64 `json:"amount" binding:"gte=0"`
}

// GetBudgets handles listing the user's budgets.
// @Summary     List budgets
// @Description Get every budget limit the user has set
// @Tags        budgets
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} models.Budget "Budgets"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /budgets [get]
func (h *BudgetHandler) GetBudgets(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	budgets, err := h.budgetService.GetUserBudgets(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budgets": budgets})
}

// UpsertBudget handles creating or replacing a budget limit.
// @Summary     Set budget
// @Description Create or replace the monthly limit for a category. At most one budget row exists per (user, category).
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body BudgetRequest true "Budget limit"
// @Success     200 {object} models.Budget "Budget stored"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /budgets [put]
func (h *BudgetHandler) UpsertBudget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req BudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	budget, err := h.budgetService.UpsertBudget(userID, req.Category, req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budget": budget})
}

// GetBudgetUtilization handles the current-month utilization view.
// @Summary     Budget utilization
// @Description Current-month spending against each budget limit, sorted by utilization percentage
// @Tags        budgets
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} budgeting.UtilizationRow "Utilization rows"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /budgets/utilization [get]
func (h *BudgetHandler) GetBudgetUtilization(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	rows, err := h.reportService.BudgetUtilization(userID, time.Now())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"utilization": rows})
}
