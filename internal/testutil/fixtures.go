package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"finboard/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestTransaction creates a transaction of the given kind, amount and
// category, dated date.
func CreateTestTransaction(t *testing.T, db *gorm.DB, userID string, kind models.TransactionKind, amount float64, category string, date time.Time) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		UserID:      userID,
		Description: fmt.Sprintf("Test Transaction %d", nextID()),
		Amount:      amount,
		Kind:        kind,
		Category:    category,
		Date:        date,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// CreateTestRecurringExpense creates a recurring expense with the given frequency.
func CreateTestRecurringExpense(t *testing.T, db *gorm.DB, userID string, amount float64, frequency models.Frequency, date time.Time) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		UserID:      userID,
		Description: fmt.Sprintf("Test Subscription %d", nextID()),
		Amount:      amount,
		Kind:        models.TransactionKindExpense,
		Category:    "Entertainment",
		Date:        date,
		IsRecurring: true,
		Frequency:   &frequency,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test recurring expense: %v", err)
	}
	return tx
}

// CreateTestBudget creates a budget limit for the given category.
func CreateTestBudget(t *testing.T, db *gorm.DB, userID, category string, amount float64) *models.Budget {
	t.Helper()

	budget := &models.Budget{
		UserID:   userID,
		Category: category,
		Amount:   amount,
	}
	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}
	return budget
}

// CreateTestCategory creates a category of the given kind.
func CreateTestCategory(t *testing.T, db *gorm.DB, userID string, kind models.CategoryKind) *models.Category {
	t.Helper()

	category := &models.Category{
		UserID: userID,
		Name:   fmt.Sprintf("Test Category %d", nextID()),
		Kind:   kind,
		Color:  "#8884d8",
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}
