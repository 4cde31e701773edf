package reports

import (
	"time"

	"finboard/internal/models"
)

// DefaultHeatmapWindowDays is the trailing window of the expense heatmap.
const DefaultHeatmapWindowDays = 91

// HeatmapCell is one calendar day of expense activity. Intensity is the day's
// amount relative to the heaviest day in the window, in [0, 1].
type HeatmapCell struct {
	Date      string  `json:"date"`
	Amount    float64 `json:"amount"`
	Intensity float64 `json:"intensity"`
}

// ExpenseHeatmap sums expense-only amounts per day over a trailing window and
// normalizes each day against the window's maximum. The window is aligned to
// week boundaries at both ends: the start snaps back to a Sunday and the end
// extends forward to the Saturday closing today's week, matching the
// balance-history grid alignment. A window with no expenses has intensity 0
// everywhere.
func ExpenseHeatmap(transactions []models.Transaction, today time.Time, windowDays int) []HeatmapCell {
	if windowDays <= 0 {
		windowDays = DefaultHeatmapWindowDays
	}

	end := startOfDay(today)
	windowStart := startOfWeek(end.AddDate(0, 0, -windowDays))
	windowEnd := startOfWeek(end).AddDate(0, 0, 6)

	byDay := make(map[string]float64)
	var maxDaily float64
	for _, tx := range transactions {
		if tx.Kind != models.TransactionKindExpense {
			continue
		}
		day := startOfDay(tx.Date)
		if day.Before(windowStart) || day.After(windowEnd) {
			continue
		}
		key := dayKey(day)
		byDay[key] += tx.Amount
		if byDay[key] > maxDaily {
			maxDaily = byDay[key]
		}
	}

	var cells []HeatmapCell
	for day := windowStart; !day.After(windowEnd); day = day.AddDate(0, 0, 1) {
		key := dayKey(day)
		amount := byDay[key]
		var intensity float64
		if maxDaily > 0 {
			intensity = amount / maxDaily
		}
		cells = append(cells, HeatmapCell{Date: key, Amount: amount, Intensity: intensity})
	}
	return cells
}
