package models

// CategoryKind mirrors TransactionKind and decides which transaction form
// offers the category.
type CategoryKind string

const (
	CategoryKindIncome  CategoryKind = "income"
	CategoryKindExpense CategoryKind = "expense"
)

// Category is a display label users can attach to transactions. It is not
// referentially enforced against Transaction.Category.
type Category struct {
	Base
	UserID string       `gorm:"type:uuid;not null;index" json:"user_id"`
	Name   string       `gorm:"not null" json:"name"`
	Kind   CategoryKind `gorm:"not null" json:"kind"`
	Color  string       `json:"color"`
}

// DefaultCategory describes one entry of the seed set installed for a user on
// first category listing.
type DefaultCategory struct {
	Name  string
	Kind  CategoryKind
	Color string
}

// DefaultCategories is the fixed seed set for new users.
var DefaultCategories = []DefaultCategory{
	{Name: "Salary", Kind: CategoryKindIncome, Color: "#4caf50"},
	{Name: "Freelance", Kind: CategoryKindIncome, Color: "#8bc34a"},
	{Name: "Investments", Kind: CategoryKindIncome, Color: "#009688"},
	{Name: "Food", Kind: CategoryKindExpense, Color: "#f44336"},
	{Name: "Housing", Kind: CategoryKindExpense, Color: "#ff9800"},
	{Name: "Transport", Kind: CategoryKindExpense, Color: "#2196f3"},
	{Name: "Utilities", Kind: CategoryKindExpense, Color: "#9c27b0"},
	{Name: "Entertainment", Kind: CategoryKindExpense, Color: "#e91e63"},
	{Name: "Health", Kind: CategoryKindExpense, Color: "#00bcd4"},
	{Name: "Other", Kind: CategoryKindExpense, Color: "#607d8b"},
}
