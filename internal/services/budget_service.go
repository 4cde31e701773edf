package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "finboard/internal/errors"
	"finboard/internal/models"
)

// budgetService handles budget-related business logic.
type budgetService struct {
	db *gorm.DB
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB) BudgetServicer {
	return &budgetService{db: db}
}

// GetUserBudgets returns every budget for the user, ordered by category.
func (s *budgetService) GetUserBudgets(userID string) ([]models.Budget, error) {
	var budgets []models.Budget
	if err := s.db.Where("user_id = ?", userID).Order("category ASC").Find(&budgets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
	return budgets, nil
}

// UpsertBudget creates or replaces the budget for (user, category). At most
// one row survives per category: an existing row has its amount overwritten.
func (s *budgetService) UpsertBudget(userID, category string, amount float64) (*models.Budget, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "category is required")
	}
	if amount < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "budget amount cannot be negative")
	}

	var budget models.Budget
	err := s.db.Where("user_id = ? AND category = ?", userID, category).First(&budget).Error
	switch {
	case err == nil:
		budget.Amount = amount
		if err := s.db.Save(&budget).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
		}
		return &budget, nil

	case errors.Is(err, gorm.ErrRecordNotFound):
		budget = models.Budget{UserID: userID, Category: category, Amount: amount}
		if err := s.db.Create(&budget).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
		}
		return &budget, nil

	default:
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
}
