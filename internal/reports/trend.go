package reports

import (
	"sort"

	"finboard/internal/models"
)

// DefaultTrendTopN is the number of leading expense categories shown as their
// own trend series.
const DefaultTrendTopN = 5

// OtherSeries is the synthetic series collecting every category outside the
// top N. It only appears when at least one expense falls outside the top N.
const OtherSeries = "Other"

// TrendPoint is one month of the category trend, keyed YYYY-MM.
type TrendPoint struct {
	Month  string             `json:"month"`
	Series map[string]float64 `json:"series"`
}

// CategoryTrend returns month-by-month expense totals for the top N categories
// by all-time expense amount, with the remainder bucketed into OtherSeries.
// Ties in the top-N selection break in favor of the category encountered first
// in the input. Rows are sorted chronologically.
func CategoryTrend(transactions []models.Transaction, topN int) []TrendPoint {
	if topN <= 0 {
		topN = DefaultTrendTopN
	}

	// All-time expense total per category, remembering first-encounter order.
	totals := make(map[string]float64)
	var order []string
	for _, tx := range transactions {
		if tx.Kind != models.TransactionKindExpense {
			continue
		}
		if _, seen := totals[tx.Category]; !seen {
			order = append(order, tx.Category)
		}
		totals[tx.Category] += tx.Amount
	}
	if len(order) == 0 {
		return []TrendPoint{}
	}

	firstSeen := make(map[string]int, len(order))
	for i, cat := range order {
		firstSeen[cat] = i
	}
	ranked := append([]string(nil), order...)
	sort.SliceStable(ranked, func(i, j int) bool {
		if totals[ranked[i]] != totals[ranked[j]] {
			return totals[ranked[i]] > totals[ranked[j]]
		}
		return firstSeen[ranked[i]] < firstSeen[ranked[j]]
	})

	selected := make(map[string]bool)
	for i, cat := range ranked {
		if i >= topN {
			break
		}
		selected[cat] = true
	}

	// Bucket each expense into its month row under its own series or Other.
	months := make(map[string]map[string]float64)
	for _, tx := range transactions {
		if tx.Kind != models.TransactionKindExpense {
			continue
		}
		key := monthKey(startOfDay(tx.Date))
		row, ok := months[key]
		if !ok {
			row = make(map[string]float64)
			months[key] = row
		}
		series := tx.Category
		if !selected[series] {
			series = OtherSeries
		}
		row[series] += tx.Amount
	}

	keys := make([]string, 0, len(months))
	for key := range months {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	points := make([]TrendPoint, 0, len(keys))
	for _, key := range keys {
		points = append(points, TrendPoint{Month: key, Series: months[key]})
	}
	return points
}
