package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "finboard/internal/errors"
	"finboard/internal/models"
	"finboard/internal/pagination"
)

// transactionService handles transaction-related business logic.
type transactionService struct {
	db *gorm.DB
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB) TransactionServicer {
	return &transactionService{db: db}
}

// validateInput rejects malformed transactions before any store call is
// attempted: non-positive amounts, empty descriptions, a recurring flag
// without a frequency, or a frequency without the flag.
func validateInput(in TransactionInput) error {
	if in.Amount <= 0 {
		return apperrors.WithMessage(apperrors.ErrValidation, "amount must be greater than zero")
	}
	if strings.TrimSpace(in.Description) == "" {
		return apperrors.WithMessage(apperrors.ErrValidation, "description is required")
	}
	if in.IsRecurring && in.Frequency == nil {
		return apperrors.WithMessage(apperrors.ErrValidation, "recurring transactions require a frequency")
	}
	if !in.IsRecurring && in.Frequency != nil {
		return apperrors.WithMessage(apperrors.ErrValidation, "frequency is only valid on recurring transactions")
	}
	if in.Date.IsZero() {
		return apperrors.WithMessage(apperrors.ErrValidation, "date is required")
	}
	return nil
}

// CreateTransaction validates and stores a new transaction for the user.
func (s *transactionService) CreateTransaction(userID string, in TransactionInput) (*models.Transaction, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	tx := &models.Transaction{
		UserID:      userID,
		Description: in.Description,
		Amount:      in.Amount,
		Kind:        in.Kind,
		Category:    in.Category,
		Date:        in.Date,
		IsRecurring: in.IsRecurring,
		Frequency:   in.Frequency,
	}

	if err := s.db.Create(tx).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
	return tx, nil
}

// GetUserTransactions retrieves a paginated, filtered list of the user's
// transactions, newest first, same-day entries ordered by creation instant.
func (s *transactionService) GetUserTransactions(userID string, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults()

	base := s.db.Model(&models.Transaction{}).Where("user_id = ?", userID)
	base = applyTransactionFilters(base, filter)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}

	var transactions []models.Transaction
	if err := base.Scopes(pagination.Paginate(page)).
		Order("date DESC, created_at DESC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}

	result := pagination.NewPageResponse(transactions, page.Page, page.PageSize, totalItems)
	return &result, nil
}

func applyTransactionFilters(q *gorm.DB, f TransactionFilter) *gorm.DB {
	if f.FromDate != nil {
		q = q.Where("date >= ?", *f.FromDate)
	}
	if f.ToDate != nil {
		q = q.Where("date <= ?", *f.ToDate)
	}
	if f.Kind != nil {
		q = q.Where("kind = ?", *f.Kind)
	}
	if f.Category != nil {
		q = q.Where("category = ?", *f.Category)
	}
	return q
}

// GetAllTransactions returns the user's full snapshot in chronological order,
// creation instant breaking same-day ties. The aggregation engines consume
// this ordering as the original insertion order.
func (s *transactionService) GetAllTransactions(userID string) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := s.db.Where("user_id = ?", userID).
		Order("date ASC, created_at ASC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
	return transactions, nil
}

// GetTransactionByID retrieves a transaction by ID for a specific user
func (s *transactionService) GetTransactionByID(userID, transactionID string) (*models.Transaction, error) {
	var tx models.Transaction
	if err := s.db.Where("id = ? AND user_id = ?", transactionID, userID).First(&tx).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
	return &tx, nil
}

// UpdateTransaction replaces every writable field of an existing transaction.
// There are no partial patches and no history: the previous field values are
// simply gone.
func (s *transactionService) UpdateTransaction(userID, transactionID string, in TransactionInput) (*models.Transaction, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	tx, err := s.GetTransactionByID(userID, transactionID)
	if err != nil {
		return nil, err
	}

	tx.Description = in.Description
	tx.Amount = in.Amount
	tx.Kind = in.Kind
	tx.Category = in.Category
	tx.Date = in.Date
	tx.IsRecurring = in.IsRecurring
	tx.Frequency = in.Frequency

	if err := s.db.Save(tx).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
	return tx, nil
}

// DeleteTransaction removes a transaction scoped to the user. A delete that
// affects zero rows is reported as ErrPermissionOrMissing, never as success:
// the row may already be gone or the write may have been blocked, and the
// caller deserves to know the difference from a confirmed delete.
func (s *transactionService) DeleteTransaction(userID, transactionID string) error {
	res := s.db.Where("id = ? AND user_id = ?", transactionID, userID).Delete(&models.Transaction{})
	if res.Error != nil {
		return apperrors.Wrap(apperrors.ErrStoreUnavailable, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrPermissionOrMissing
	}
	return nil
}
