// Package recurrence projects due dates and normalized costs for recurring
// expense transactions. All functions are pure and calendar-correct: they
// never return a past due date and never panic on short months.
package recurrence

import (
	"math"
	"sort"
	"time"

	"finboard/internal/models"
)

// DefaultUpcomingLimit caps the upcoming-bills view for display.
const DefaultUpcomingLimit = 5

// dueSoonDays is the inclusive days-until threshold for the due-soon flag.
const dueSoonDays = 3

// weeksPerMonth normalizes weekly costs to a monthly figure.
const weeksPerMonth = 4

// Bill is one recurring expense with its projected next occurrence.
type Bill struct {
	Transaction models.Transaction `json:"transaction"`
	DueDate     string             `json:"due_date"`
	DaysUntil   int                `json:"days_until"`
	DueSoon     bool               `json:"due_soon"`
}

// Projection normalizes recurring expense costs to monthly and annual figures.
type Projection struct {
	MonthlyCost float64 `json:"monthly_cost"`
	AnnualCost  float64 `json:"annual_cost"`
	ActiveCount int     `json:"active_count"`
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// NextDueDate computes the next occurrence of a recurring transaction on or
// after today. The second return is false for non-recurring transactions.
//
// Monthly entries anchor on the day-of-month of the transaction's date: still
// ahead this month means this month, otherwise next month. When the target
// month is shorter than the anchor day, the due date clamps to the month's
// last day (anchor 31 resolves to Feb 29 in a leap year).
//
// Weekly entries anchor on the weekday of the transaction's date (0=Sunday,
// cyclic): a weekday strictly after today's lands this week, anything else
// lands next week, so a bill anchored on today's weekday is due in 7 days.
func NextDueDate(tx models.Transaction, today time.Time) (time.Time, bool) {
	if !tx.IsRecurring || tx.Frequency == nil {
		return time.Time{}, false
	}
	ref := startOfDay(today)

	switch *tx.Frequency {
	case models.FrequencyMonthly:
		anchor := tx.Date.Day()
		year, month := ref.Year(), ref.Month()
		if anchor <= ref.Day() {
			next := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
			year, month = next.Year(), next.Month()
		}
		day := anchor
		if last := daysInMonth(year, month); day > last {
			day = last
		}
		return time.Date(year, month, day, 0, 0, 0, 0, time.UTC), true

	case models.FrequencyWeekly:
		anchor := int(tx.Date.Weekday())
		delta := anchor - int(ref.Weekday())
		if delta <= 0 {
			delta += 7
		}
		return ref.AddDate(0, 0, delta), true
	}
	return time.Time{}, false
}

// DaysUntilDue returns the number of whole days from today until dueDate,
// rounding partial days up. Outputs of NextDueDate are never in the past, so
// this is non-negative for them.
func DaysUntilDue(dueDate, today time.Time) int {
	diff := startOfDay(dueDate).Sub(startOfDay(today))
	return int(math.Ceil(diff.Hours() / 24))
}

// IsDueSoon reports whether a bill is due within the next three days.
func IsDueSoon(daysUntil int) bool {
	return daysUntil >= 0 && daysUntil <= dueSoonDays
}

// Project normalizes every recurring expense to a monthly cost: weekly
// entries count four times, monthly entries once. The annual cost is twelve
// monthly costs.
func Project(transactions []models.Transaction) Projection {
	var p Projection
	for _, tx := range transactions {
		if !isRecurringExpense(tx) {
			continue
		}
		p.ActiveCount++
		switch *tx.Frequency {
		case models.FrequencyWeekly:
			p.MonthlyCost += tx.Amount * weeksPerMonth
		case models.FrequencyMonthly:
			p.MonthlyCost += tx.Amount
		}
	}
	p.AnnualCost = p.MonthlyCost * 12
	return p
}

// UpcomingBills projects the next occurrence of every recurring expense and
// returns the soonest ones, ascending by days until due, capped at limit.
func UpcomingBills(transactions []models.Transaction, today time.Time, limit int) []Bill {
	if limit <= 0 {
		limit = DefaultUpcomingLimit
	}

	bills := make([]Bill, 0)
	for _, tx := range transactions {
		if !isRecurringExpense(tx) {
			continue
		}
		due, ok := NextDueDate(tx, today)
		if !ok {
			continue
		}
		days := DaysUntilDue(due, today)
		bills = append(bills, Bill{
			Transaction: tx,
			DueDate:     due.Format(time.DateOnly),
			DaysUntil:   days,
			DueSoon:     IsDueSoon(days),
		})
	}

	sort.SliceStable(bills, func(i, j int) bool {
		return bills[i].DaysUntil < bills[j].DaysUntil
	})
	if len(bills) > limit {
		bills = bills[:limit]
	}
	return bills
}

func isRecurringExpense(tx models.Transaction) bool {
	return tx.IsRecurring && tx.Frequency != nil && tx.Kind == models.TransactionKindExpense
}
