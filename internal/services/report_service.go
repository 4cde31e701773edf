package services

import (
	"time"

	"finboard/internal/budgeting"
	"finboard/internal/recurrence"
	"finboard/internal/reports"
)

// reportService orchestrates the pure engines: it fetches an owner-scoped
// snapshot from the record store and hands it, with a reference instant, to
// the aggregation, recurrence, and budgeting packages. No report math happens
// here.
type reportService struct {
	transactions TransactionServicer
	budgets      BudgetServicer
}

// NewReportService creates a new ReportServicer.
func NewReportService(transactions TransactionServicer, budgets BudgetServicer) ReportServicer {
	return &reportService{transactions: transactions, budgets: budgets}
}

func (s *reportService) Summary(userID string) (reports.Summary, error) {
	snapshot, err := s.transactions.GetAllTransactions(userID)
	if err != nil {
		return reports.Summary{}, err
	}
	return reports.ComputeSummary(snapshot), nil
}

func (s *reportService) Monthly(userID string, today time.Time) (reports.MonthlyReport, error) {
	snapshot, err := s.transactions.GetAllTransactions(userID)
	if err != nil {
		return reports.MonthlyReport{}, err
	}
	return reports.ComputeMonthlyReport(snapshot, today), nil
}

func (s *reportService) CategoryBreakdown(userID string) (map[string]float64, error) {
	snapshot, err := s.transactions.GetAllTransactions(userID)
	if err != nil {
		return nil, err
	}
	return reports.CategoryBreakdown(snapshot), nil
}

func (s *reportService) CategoryTrend(userID string, topN int) ([]reports.TrendPoint, error) {
	snapshot, err := s.transactions.GetAllTransactions(userID)
	if err != nil {
		return nil, err
	}
	return reports.CategoryTrend(snapshot, topN), nil
}

func (s *reportService) BalanceHistory(userID string, today time.Time, windowDays int) ([]reports.BalancePoint, error) {
	snapshot, err := s.transactions.GetAllTransactions(userID)
	if err != nil {
		return nil, err
	}
	return reports.BalanceHistory(snapshot, today, windowDays), nil
}

func (s *reportService) ExpenseHeatmap(userID string, today time.Time, windowDays int) ([]reports.HeatmapCell, error) {
	snapshot, err := s.transactions.GetAllTransactions(userID)
	if err != nil {
		return nil, err
	}
	return reports.ExpenseHeatmap(snapshot, today, windowDays), nil
}

func (s *reportService) UpcomingBills(userID string, today time.Time, limit int) ([]recurrence.Bill, error) {
	snapshot, err := s.transactions.GetAllTransactions(userID)
	if err != nil {
		return nil, err
	}
	return recurrence.UpcomingBills(snapshot, today, limit), nil
}

func (s *reportService) RecurringProjection(userID string) (recurrence.Projection, error) {
	snapshot, err := s.transactions.GetAllTransactions(userID)
	if err != nil {
		return recurrence.Projection{}, err
	}
	return recurrence.Project(snapshot), nil
}

func (s *reportService) BudgetUtilization(userID string, today time.Time) ([]budgeting.UtilizationRow, error) {
	snapshot, err := s.transactions.GetAllTransactions(userID)
	if err != nil {
		return nil, err
	}
	budgets, err := s.budgets.GetUserBudgets(userID)
	if err != nil {
		return nil, err
	}
	return budgeting.Evaluate(snapshot, budgets, today), nil
}
