package models

// Budget is a monthly spending limit for one category. At most one budget
// exists per (user, category); writes go through an upsert.
type Budget struct {
	Base
	UserID   string  `gorm:"type:uuid;not null;uniqueIndex:idx_budgets_user_category" json:"user_id"`
	Category string  `gorm:"not null;uniqueIndex:idx_budgets_user_category" json:"category"`
	Amount   float64 `gorm:"not null" json:"amount"`
}
