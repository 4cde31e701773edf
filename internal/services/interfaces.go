package services

import (
	"time"

	"finboard/internal/budgeting"
	"finboard/internal/models"
	"finboard/internal/pagination"
	"finboard/internal/reconcile"
	"finboard/internal/recurrence"
	"finboard/internal/reports"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, firstName, lastName string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	StoreRefreshTokenHash(userID, tokenHash string) error
	GetRefreshTokenHash(userID string) (string, error)
}

// TransactionInput carries every writable field of a transaction. Updates are
// full-field replaces, so the same input type serves create and update.
type TransactionInput struct {
	Description string
	Amount      float64
	Kind        models.TransactionKind
	Category    string
	Date        time.Time
	IsRecurring bool
	Frequency   *models.Frequency
}

// TransactionFilter holds optional filter parameters for listing transactions.
type TransactionFilter struct {
	FromDate *time.Time
	ToDate   *time.Time
	Kind     *models.TransactionKind
	Category *string
}

// TransactionServicer defines the record-store contract for transactions.
type TransactionServicer interface {
	CreateTransaction(userID string, in TransactionInput) (*models.Transaction, error)
	GetUserTransactions(userID string, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	GetAllTransactions(userID string) ([]models.Transaction, error)
	GetTransactionByID(userID, transactionID string) (*models.Transaction, error)
	UpdateTransaction(userID, transactionID string, in TransactionInput) (*models.Transaction, error)
	DeleteTransaction(userID, transactionID string) error
}

// BudgetServicer defines the record-store contract for budgets. Budgets are
// keyed by (user, category); Upsert guarantees at most one row per category.
type BudgetServicer interface {
	GetUserBudgets(userID string) ([]models.Budget, error)
	UpsertBudget(userID, category string, amount float64) (*models.Budget, error)
}

// CategoryServicer defines the record-store contract for categories.
type CategoryServicer interface {
	GetUserCategories(userID string) ([]models.Category, error)
	CreateCategory(userID, name string, kind models.CategoryKind, color string) (*models.Category, error)
	DeleteCategory(userID, categoryID string) error
}

// ReportServicer exposes the dashboard's read-only view-models: each call
// fetches the owner's snapshot once and hands it to the pure engines.
type ReportServicer interface {
	Summary(userID string) (reports.Summary, error)
	Monthly(userID string, today time.Time) (reports.MonthlyReport, error)
	CategoryBreakdown(userID string) (map[string]float64, error)
	CategoryTrend(userID string, topN int) ([]reports.TrendPoint, error)
	BalanceHistory(userID string, today time.Time, windowDays int) ([]reports.BalancePoint, error)
	ExpenseHeatmap(userID string, today time.Time, windowDays int) ([]reports.HeatmapCell, error)
	UpcomingBills(userID string, today time.Time, limit int) ([]recurrence.Bill, error)
	RecurringProjection(userID string) (recurrence.Projection, error)
	BudgetUtilization(userID string, today time.Time) ([]budgeting.UtilizationRow, error)
}

// ImportResult summarizes one reconciliation run.
type ImportResult struct {
	Imported      []models.Transaction `json:"imported"`
	ImportedCount int                  `json:"imported_count"`
	SkippedCount  int                  `json:"skipped_count"`
	FailedCount   int                  `json:"failed_count"`
}

// ImportServicer drives duplicate-aware merges of candidate batches into the
// record store.
type ImportServicer interface {
	GenerateCandidates(userID string, today time.Time, n int) ([]reconcile.Candidate, error)
	Run(userID string, candidates []reconcile.Candidate) (*ImportResult, error)
}
