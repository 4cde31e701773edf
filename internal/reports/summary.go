package reports

import "finboard/internal/models"

// Summary holds all-time totals across every transaction regardless of date.
type Summary struct {
	TotalIncome   float64 `json:"total_income"`
	TotalExpenses float64 `json:"total_expenses"`
	TotalBalance  float64 `json:"total_balance"`
}

// ComputeSummary totals income and expenses in a single pass.
// TotalBalance is always TotalIncome minus TotalExpenses.
func ComputeSummary(transactions []models.Transaction) Summary {
	var s Summary
	for _, tx := range transactions {
		if tx.Kind == models.TransactionKindIncome {
			s.TotalIncome += tx.Amount
		} else {
			s.TotalExpenses += tx.Amount
		}
	}
	s.TotalBalance = s.TotalIncome - s.TotalExpenses
	return s
}

// CategoryBreakdown sums expense amounts per category label. Income is
// ignored and no zero-valued entries are emitted.
func CategoryBreakdown(transactions []models.Transaction) map[string]float64 {
	breakdown := make(map[string]float64)
	for _, tx := range transactions {
		if tx.Kind != models.TransactionKindExpense {
			continue
		}
		breakdown[tx.Category] += tx.Amount
	}
	return breakdown
}
