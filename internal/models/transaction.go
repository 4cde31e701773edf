package models

import "time"

// TransactionKind distinguishes money coming in from money going out.
type TransactionKind string

const (
	TransactionKindIncome  TransactionKind = "income"
	TransactionKindExpense TransactionKind = "expense"
)

// Frequency is the recurrence cadence of a recurring transaction.
type Frequency string

const (
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

// Transaction represents a single dated money movement owned by a user.
// Amount is always strictly positive; Kind carries the sign. Category is a
// free-text label, deliberately not a foreign key: deleting a category never
// rewrites the transactions that reference its name.
type Transaction struct {
	Base
	UserID      string          `gorm:"type:uuid;not null;index" json:"user_id"`
	Description string          `gorm:"not null" json:"description"`
	Amount      float64         `gorm:"not null" json:"amount"`
	Kind        TransactionKind `gorm:"not null" json:"kind"`
	Category    string          `json:"category"`
	Date        time.Time       `gorm:"type:date;not null;index" json:"date"`
	IsRecurring bool            `gorm:"default:false" json:"is_recurring"`
	// Frequency is set iff IsRecurring is true.
	Frequency *Frequency `json:"frequency,omitempty"`
}

// SameDay reports whether the transaction is dated on the given calendar day.
func (t *Transaction) SameDay(other time.Time) bool {
	y1, m1, d1 := t.Date.Date()
	y2, m2, d2 := other.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// Signed returns the amount with income positive and expense negative.
func (t *Transaction) Signed() float64 {
	if t.Kind == TransactionKindExpense {
		return -t.Amount
	}
	return t.Amount
}
