package reports

import (
	"sort"
	"time"

	"finboard/internal/models"
)

// DefaultHistoryWindowDays is the trailing window of the balance history view.
const DefaultHistoryWindowDays = 180

// BalancePoint is the cumulative balance at the end of one calendar day.
type BalancePoint struct {
	Date    string  `json:"date"`
	Balance float64 `json:"balance"`
}

// BalanceHistory returns a gap-filled, day-by-day cumulative balance series.
//
// Transactions are replayed in chronological order (same-day entries keep
// their input order) and each day records the cumulative balance after that
// day's movements. The window starts at the later of the earliest transaction
// date and today minus windowDays, snapped backward to the most recent Sunday
// so the grid aligns to whole weeks. Days without activity carry the prior
// day's balance forward; the balance carried into the window is the last known
// cumulative balance strictly before the window start (zero if none).
func BalanceHistory(transactions []models.Transaction, today time.Time, windowDays int) []BalancePoint {
	if len(transactions) == 0 {
		return []BalancePoint{}
	}
	if windowDays <= 0 {
		windowDays = DefaultHistoryWindowDays
	}

	sorted := append([]models.Transaction(nil), transactions...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return startOfDay(sorted[i].Date).Before(startOfDay(sorted[j].Date))
	})

	earliest := startOfDay(sorted[0].Date)
	end := startOfDay(today)

	windowStart := end.AddDate(0, 0, -windowDays)
	if earliest.After(windowStart) {
		windowStart = earliest
	}
	windowStart = startOfWeek(windowStart)

	// Replay, recording the cumulative balance at the end of each active day.
	// Later same-day entries overwrite the day's value with the newer total.
	var running, carried float64
	byDay := make(map[string]float64)
	for _, tx := range sorted {
		running += tx.Signed()
		day := startOfDay(tx.Date)
		byDay[dayKey(day)] = running
		if day.Before(windowStart) {
			carried = running
		}
	}

	var points []BalancePoint
	for day := windowStart; !day.After(end); day = day.AddDate(0, 0, 1) {
		key := dayKey(day)
		if balance, ok := byDay[key]; ok {
			carried = balance
		}
		points = append(points, BalancePoint{Date: key, Balance: carried})
	}
	return points
}
