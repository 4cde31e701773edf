// Package reports implements the aggregation engine: pure, single-pass
// functions that turn a snapshot of transactions plus a reference instant into
// read-only dashboard view-models. Nothing here touches the record store.
package reports

import "time"

// startOfDay truncates an instant to midnight UTC on its calendar day.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// startOfWeek snaps a day backward to the most recent Sunday (which may be the
// day itself), so day grids align to whole weeks.
func startOfWeek(t time.Time) time.Time {
	day := startOfDay(t)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// sameMonth reports whether two instants fall in the same calendar month.
func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// dayKey formats a calendar day as YYYY-MM-DD.
func dayKey(t time.Time) string {
	return t.Format(time.DateOnly)
}

// monthKey formats a calendar month as YYYY-MM. Lexicographic order on these
// keys is chronological order.
func monthKey(t time.Time) string {
	return t.Format("2006-01")
}
