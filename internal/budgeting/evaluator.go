// Package budgeting merges current-month category spend with configured
// budget limits into per-category utilization rows.
package budgeting

import (
	"sort"
	"time"

	"finboard/internal/models"
)

// UtilizationRow is one category's spend against its monthly limit.
type UtilizationRow struct {
	Category   string  `json:"category"`
	Spent      float64 `json:"spent"`
	Limit      float64 `json:"limit"`
	Percentage float64 `json:"percentage"`
}

// Evaluate sums expense spend per category for today's calendar month and
// joins it with the configured budgets. The category set is the union of both
// sides, so a budgeted category with no spend still appears and spend in an
// unbudgeted category appears with limit 0. A category without a positive
// limit always reports percentage 0. Rows where both spent and limit are zero
// are dropped. Rows sort descending by percentage, then by spend, then by name.
func Evaluate(transactions []models.Transaction, budgets []models.Budget, today time.Time) []UtilizationRow {
	spent := make(map[string]float64)
	for _, tx := range transactions {
		if tx.Kind != models.TransactionKindExpense {
			continue
		}
		if tx.Date.Year() != today.Year() || tx.Date.Month() != today.Month() {
			continue
		}
		spent[tx.Category] += tx.Amount
	}

	limits := make(map[string]float64, len(budgets))
	for _, b := range budgets {
		limits[b.Category] = b.Amount
	}

	categories := make(map[string]bool, len(spent)+len(limits))
	for cat := range spent {
		categories[cat] = true
	}
	for cat := range limits {
		categories[cat] = true
	}

	rows := make([]UtilizationRow, 0, len(categories))
	for cat := range categories {
		row := UtilizationRow{Category: cat, Spent: spent[cat], Limit: limits[cat]}
		if row.Spent == 0 && row.Limit == 0 {
			continue
		}
		if row.Limit > 0 {
			row.Percentage = row.Spent / row.Limit * 100
		}
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Percentage != rows[j].Percentage {
			return rows[i].Percentage > rows[j].Percentage
		}
		if rows[i].Spent != rows[j].Spent {
			return rows[i].Spent > rows[j].Spent
		}
		return rows[i].Category < rows[j].Category
	})
	return rows
}
