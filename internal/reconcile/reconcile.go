// Package reconcile classifies externally sourced candidate transactions as
// duplicates of, or additions to, an existing transaction log. Matching is
// tolerance-based: external feeds reformat descriptions and round amounts, so
// identity is date + kind + near-equal amount, never the description.
package reconcile

import (
	"math"
	"time"

	"finboard/internal/models"
)

// AmountTolerance is the exclusive bound on the amount difference below which
// two same-date, same-kind records are considered the same movement. Two
// records 0.009 apart are duplicates; 0.02 apart are not.
const AmountTolerance = 0.01

// Candidate is an externally sourced transaction that has not been admitted
// to the record store yet.
type Candidate struct {
	Description string                 `json:"description"`
	Amount      float64                `json:"amount"`
	Kind        models.TransactionKind `json:"kind"`
	Category    string                 `json:"category"`
	Date        time.Time              `json:"date"`
}

// Outcome is the result of classifying one candidate batch.
type Outcome struct {
	New          []Candidate
	SkippedCount int
}

// IsDuplicate reports whether the candidate matches an existing transaction:
// same calendar date, same kind, and amounts within AmountTolerance.
func IsDuplicate(existing models.Transaction, c Candidate) bool {
	if existing.Kind != c.Kind {
		return false
	}
	if !existing.SameDay(c.Date) {
		return false
	}
	return math.Abs(existing.Amount-c.Amount) < AmountTolerance
}

// Classify partitions candidates, in input order, into new entries and a
// skipped-duplicate count. Every candidate is matched against the
// pre-reconciliation existing set only: candidates admitted earlier in the
// same batch do not suppress later ones, so an internally duplicated batch
// classifies every copy as new.
func Classify(existing []models.Transaction, candidates []Candidate) Outcome {
	var out Outcome
	for _, c := range candidates {
		if matchesAny(existing, c) {
			out.SkippedCount++
			continue
		}
		out.New = append(out.New, c)
	}
	return out
}

func matchesAny(existing []models.Transaction, c Candidate) bool {
	for i := range existing {
		if IsDuplicate(existing[i], c) {
			return true
		}
	}
	return false
}
