package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "finboard/internal/errors"
	"finboard/internal/recurrence"
	"finboard/internal/reports"
	"finboard/internal/services"
)

// ReportHandler serves the dashboard's read-only views.
type ReportHandler struct {
	reportService services.ReportServicer
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService services.ReportServicer) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// positiveIntQuery reads an optional positive integer query parameter,
// falling back to def when absent.
func positiveIntQuery(c *gin.Context, name string, def int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, apperrors.WithMessage(apperrors.ErrValidation, name+" must be a positive integer")
	}
	return n, nil
}

// GetSummary handles the all-time financial summary.
// @Summary     Financial summary
// @Description All-time income, expense and balance totals
// @Tags        reports
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} reports.Summary "Summary"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /reports/summary [get]
func (h *ReportHandler) GetSummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.reportService.Summary(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// GetMonthlyReport handles the current-versus-previous month report.
// @Summary     Monthly report
// @Description Current-month and previous-month totals plus the closing balance carried into the current month
// @Tags        reports
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} reports.MonthlyReport "Monthly report"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /reports/monthly [get]
func (h *ReportHandler) GetMonthlyReport(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	report, err := h.reportService.Monthly(userID, time.Now())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"report": report})
}

// GetCategoryBreakdown handles the all-time expense breakdown by category.
// @Summary     Category breakdown
// @Description Total expenses grouped by category
// @Tags        reports
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]float64 "Expense totals by category"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /reports/category-breakdown [get]
func (h *ReportHandler) GetCategoryBreakdown(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	breakdown, err := h.reportService.CategoryBreakdown(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"breakdown": breakdown})
}

// GetCategoryTrend handles the month-by-month top-category trend.
// @Summary     Category trend
// @Description Monthly expense series for the top spending categories, with the rest folded into "Other"
// @Tags        reports
// @Produce     json
// @Security    BearerAuth
// @Param       top_n query int false "Number of top categories (default 5)"
// @Success     200 {array} reports.TrendPoint "Trend points in chronological order"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /reports/category-trend [get]
func (h *ReportHandler) GetCategoryTrend(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	topN, err := positiveIntQuery(c, "top_n", reports.DefaultTrendTopN)
	if err != nil {
		respondWithError(c, err)
		return
	}

	trend, err := h.reportService.CategoryTrend(userID, topN)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"trend": trend})
}

// GetBalanceHistory handles the gap-filled running-balance series.
// @Summary     Balance history
// @Description Daily running balance over the requested window, with quiet days carried forward
// @Tags        reports
// @Produce     json
// @Security    BearerAuth
// @Param       window_days query int false "Window length in days (default 180)"
// @Success     200 {array} reports.BalancePoint "Daily balance points"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /reports/balance-history [get]
func (h *ReportHandler) GetBalanceHistory(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	windowDays, err := positiveIntQuery(c, "window_days", reports.DefaultHistoryWindowDays)
	if err != nil {
		respondWithError(c, err)
		return
	}

	history, err := h.reportService.BalanceHistory(userID, time.Now(), windowDays)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"history": history})
}

// GetExpenseHeatmap handles the calendar heatmap of daily spending.
// @Summary     Expense heatmap
// @Description Week-aligned daily expense totals with intensity relative to the busiest day
// @Tags        reports
// @Produce     json
// @Security    BearerAuth
// @Param       window_days query int false "Window length in days (default 91)"
// @Success     200 {array} reports.HeatmapCell "Heatmap cells"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /reports/expense-heatmap [get]
func (h *ReportHandler) GetExpenseHeatmap(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	windowDays, err := positiveIntQuery(c, "window_days", reports.DefaultHeatmapWindowDays)
	if err != nil {
		respondWithError(c, err)
		return
	}

	heatmap, err := h.reportService.ExpenseHeatmap(userID, time.Now(), windowDays)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"heatmap": heatmap})
}

// GetUpcomingBills handles the soonest-due recurring expenses.
// @Summary     Upcoming bills
// @Description Recurring expenses ordered by next due date
// @Tags        recurring
// @Produce     json
// @Security    BearerAuth
// @Param       limit query int false "Maximum bills to return (default 5)"
// @Success     200 {array} recurrence.Bill "Upcoming bills"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /recurring/upcoming [get]
func (h *ReportHandler) GetUpcomingBills(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	limit, err := positiveIntQuery(c, "limit", recurrence.DefaultUpcomingLimit)
	if err != nil {
		respondWithError(c, err)
		return
	}

	bills, err := h.reportService.UpcomingBills(userID, time.Now(), limit)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bills": bills})
}

// GetRecurringProjection handles the recurring-cost projection.
// @Summary     Recurring projection
// @Description Projected monthly and annual cost of active recurring expenses
// @Tags        recurring
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} recurrence.Projection "Projection"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /recurring/projection [get]
func (h *ReportHandler) GetRecurringProjection(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	projection, err := h.reportService.RecurringProjection(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"projection": projection})
}
