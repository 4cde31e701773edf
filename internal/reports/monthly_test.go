package reports

import (
	"testing"

	"finboard/internal/models"
)

func TestComputeMonthlyReport(t *testing.T) {
	t.Run("current_month_totals", func(t *testing.T) {
		report := ComputeMonthlyReport([]models.Transaction{
			tx(models.TransactionKindIncome, 1000, "Salary", "2024-01-05"),
			tx(models.TransactionKindExpense, 200, "Food", "2024-01-10"),
		}, day("2024-01-15"))

		if report.CurrentMonth.Income != 1000 {
			t.Errorf("expected income 1000, got %f", report.CurrentMonth.Income)
		}
		if report.CurrentMonth.Expenses != 200 {
			t.Errorf("expected expenses 200, got %f", report.CurrentMonth.Expenses)
		}
		if report.CurrentMonth.Balance != 800 {
			t.Errorf("expected balance 800, got %f", report.CurrentMonth.Balance)
		}
		if report.TotalBalance != 800 {
			t.Errorf("expected total balance 800, got %f", report.TotalBalance)
		}
		if report.PreviousClosingBalance != 0 {
			t.Errorf("expected zero closing balance, got %f", report.PreviousClosingBalance)
		}
	})

	t.Run("previous_month_bucket", func(t *testing.T) {
		report := ComputeMonthlyReport([]models.Transaction{
			tx(models.TransactionKindIncome, 500, "Salary", "2024-02-20"),
			tx(models.TransactionKindExpense, 100, "Food", "2024-02-25"),
			tx(models.TransactionKindExpense, 30, "Food", "2024-03-02"),
		}, day("2024-03-15"))

		if report.PreviousMonth.Income != 500 {
			t.Errorf("expected previous income 500, got %f", report.PreviousMonth.Income)
		}
		if report.PreviousMonth.Expenses != 100 {
			t.Errorf("expected previous expenses 100, got %f", report.PreviousMonth.Expenses)
		}
		if report.CurrentMonth.Expenses != 30 {
			t.Errorf("expected current expenses 30, got %f", report.CurrentMonth.Expenses)
		}
	})

	t.Run("closing_balance_is_everything_before_month_start", func(t *testing.T) {
		// December and February both predate March; only activity strictly
		// before March 1st counts toward the carried-in balance.
		report := ComputeMonthlyReport([]models.Transaction{
			tx(models.TransactionKindIncome, 2000, "Salary", "2023-12-10"),
			tx(models.TransactionKindExpense, 300, "Housing", "2024-02-05"),
			tx(models.TransactionKindIncome, 400, "Freelance", "2024-03-01"),
		}, day("2024-03-15"))

		if report.PreviousClosingBalance != 1700 {
			t.Errorf("expected closing balance 1700, got %f", report.PreviousClosingBalance)
		}
		// Total balance always equals the carried-in balance plus the signed
		// sum of the reference month.
		if report.TotalBalance != report.PreviousClosingBalance+400 {
			t.Errorf("expected total %f, got %f", report.PreviousClosingBalance+400, report.TotalBalance)
		}
	})

	t.Run("year_boundary", func(t *testing.T) {
		report := ComputeMonthlyReport([]models.Transaction{
			tx(models.TransactionKindExpense, 75, "Entertainment", "2023-12-28"),
			tx(models.TransactionKindIncome, 150, "Salary", "2024-01-03"),
		}, day("2024-01-10"))

		if report.PreviousMonth.Expenses != 75 {
			t.Errorf("expected December expenses 75, got %f", report.PreviousMonth.Expenses)
		}
		if report.CurrentMonth.Income != 150 {
			t.Errorf("expected January income 150, got %f", report.CurrentMonth.Income)
		}
		if report.PreviousClosingBalance != -75 {
			t.Errorf("expected closing balance -75, got %f", report.PreviousClosingBalance)
		}
	})

	t.Run("empty", func(t *testing.T) {
		report := ComputeMonthlyReport(nil, day("2024-01-15"))
		if report.TotalBalance != 0 || report.CurrentMonth.Income != 0 {
			t.Errorf("expected zero report, got %+v", report)
		}
	})
}
