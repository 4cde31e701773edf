package reports

import (
	"time"

	"finboard/internal/models"
)

// MonthTotals holds income, expenses, and their difference for one calendar month.
type MonthTotals struct {
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
	Balance  float64 `json:"balance"`
}

// MonthlyReport compares the reference month with the month before it.
//
// PreviousClosingBalance is the signed sum of every transaction dated strictly
// before the first day of the reference month, the running balance carried
// into the month, not the previous month's activity alone. TotalBalance is the
// all-time signed sum, so TotalBalance always equals PreviousClosingBalance
// plus the signed sum of the reference month's transactions.
type MonthlyReport struct {
	CurrentMonth           MonthTotals `json:"current_month"`
	PreviousMonth          MonthTotals `json:"previous_month"`
	TotalBalance           float64     `json:"total_balance"`
	PreviousClosingBalance float64     `json:"previous_closing_balance"`
}

// ComputeMonthlyReport buckets the snapshot against today's calendar month.
func ComputeMonthlyReport(transactions []models.Transaction, today time.Time) MonthlyReport {
	firstOfMonth := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	prevMonthRef := firstOfMonth.AddDate(0, 0, -1)

	var report MonthlyReport
	for _, tx := range transactions {
		signed := tx.Signed()
		report.TotalBalance += signed

		day := startOfDay(tx.Date)
		if day.Before(firstOfMonth) {
			report.PreviousClosingBalance += signed
		}

		switch {
		case sameMonth(day, today):
			addToMonth(&report.CurrentMonth, tx)
		case sameMonth(day, prevMonthRef):
			addToMonth(&report.PreviousMonth, tx)
		}
	}

	report.CurrentMonth.Balance = report.CurrentMonth.Income - report.CurrentMonth.Expenses
	report.PreviousMonth.Balance = report.PreviousMonth.Income - report.PreviousMonth.Expenses
	return report
}

func addToMonth(totals *MonthTotals, tx models.Transaction) {
	if tx.Kind == models.TransactionKindIncome {
		totals.Income += tx.Amount
	} else {
		totals.Expenses += tx.Amount
	}
}
