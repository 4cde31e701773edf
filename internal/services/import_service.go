package services

import (
	"time"

	"finboard/internal/logger"
	"finboard/internal/models"
	"finboard/internal/optimistic"
	"finboard/internal/reconcile"
)

// importService merges externally sourced candidate batches into the record
// store. Classification is delegated to the reconcile package; inserts are
// issued strictly sequentially, each under an optimistic append that is
// rolled back if the durable write fails.
type importService struct {
	transactions TransactionServicer
	feed         *reconcile.Feed
}

// NewImportService creates a new ImportServicer backed by the given feed.
func NewImportService(transactions TransactionServicer, feed *reconcile.Feed) ImportServicer {
	return &importService{transactions: transactions, feed: feed}
}

// GenerateCandidates pulls a batch from the simulated external feed.
func (s *importService) GenerateCandidates(userID string, today time.Time, n int) ([]reconcile.Candidate, error) {
	existing, err := s.transactions.GetAllTransactions(userID)
	if err != nil {
		return nil, err
	}
	return s.feed.Generate(existing, today, n), nil
}

// Run classifies candidates against the pre-run existing set and inserts the
// new ones one at a time, in order. A duplicate is a skip, not a failure. A
// create failure rolls the candidate back out of the in-flight result and
// moves on to the next candidate; inserts already committed in the same run
// stay committed.
func (s *importService) Run(userID string, candidates []reconcile.Candidate) (*ImportResult, error) {
	existing, err := s.transactions.GetAllTransactions(userID)
	if err != nil {
		return nil, err
	}

	outcome := reconcile.Classify(existing, candidates)
	result := &ImportResult{
		Imported:     []models.Transaction{},
		SkippedCount: outcome.SkippedCount,
	}

	for _, cand := range outcome.New {
		pending := models.Transaction{
			UserID:      userID,
			Description: cand.Description,
			Amount:      cand.Amount,
			Kind:        cand.Kind,
			Category:    cand.Category,
			Date:        cand.Date,
		}

		var stored *models.Transaction
		err := optimistic.Apply(&result.Imported,
			func(list []models.Transaction) []models.Transaction {
				return append(list, pending)
			},
			func() error {
				created, createErr := s.transactions.CreateTransaction(userID, TransactionInput{
					Description: cand.Description,
					Amount:      cand.Amount,
					Kind:        cand.Kind,
					Category:    cand.Category,
					Date:        cand.Date,
				})
				if createErr != nil {
					return createErr
				}
				stored = created
				return nil
			})
		if err != nil {
			result.FailedCount++
			logger.Get().Warnw("import candidate failed",
				"user_id", userID,
				"description", cand.Description,
				"error", err.Error(),
			)
			continue
		}

		// Swap the optimistic pending row for the stored one (with ID).
		result.Imported[len(result.Imported)-1] = *stored
	}

	result.ImportedCount = len(result.Imported)
	return result, nil
}
