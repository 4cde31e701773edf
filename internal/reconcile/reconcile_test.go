package reconcile

import (
	"testing"
	"time"

	"finboard/internal/models"
)

func day(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

func existingExpense(amount float64, date string) models.Transaction {
	return models.Transaction{
		Description: "Lunch",
		Amount:      amount,
		Kind:        models.TransactionKindExpense,
		Category:    "Food",
		Date:        day(date),
	}
}

func candidate(amount float64, kind models.TransactionKind, date string) Candidate {
	return Candidate{
		Description: "POS LUNCH",
		Amount:      amount,
		Kind:        kind,
		Category:    "Food",
		Date:        day(date),
	}
}

func TestIsDuplicate(t *testing.T) {
	existing := existingExpense(45.00, "2024-02-01")

	t.Run("within_tolerance", func(t *testing.T) {
		c := candidate(45.004, models.TransactionKindExpense, "2024-02-01")
		if !IsDuplicate(existing, c) {
			t.Error("0.004 apart should be a duplicate")
		}
	})

	t.Run("just_under_tolerance", func(t *testing.T) {
		c := candidate(45.009, models.TransactionKindExpense, "2024-02-01")
		if !IsDuplicate(existing, c) {
			t.Error("0.009 apart should be a duplicate")
		}
	})

	t.Run("at_or_over_tolerance", func(t *testing.T) {
		c := candidate(45.02, models.TransactionKindExpense, "2024-02-01")
		if IsDuplicate(existing, c) {
			t.Error("0.02 apart should not be a duplicate")
		}
	})

	t.Run("different_kind", func(t *testing.T) {
		c := candidate(45.00, models.TransactionKindIncome, "2024-02-01")
		if IsDuplicate(existing, c) {
			t.Error("kind mismatch should never be a duplicate")
		}
	})

	t.Run("different_day", func(t *testing.T) {
		c := candidate(45.00, models.TransactionKindExpense, "2024-02-02")
		if IsDuplicate(existing, c) {
			t.Error("date mismatch should never be a duplicate")
		}
	})

	t.Run("description_never_matters", func(t *testing.T) {
		c := Candidate{
			Description: "totally different",
			Amount:      45.00,
			Kind:        models.TransactionKindExpense,
			Date:        day("2024-02-01"),
		}
		if !IsDuplicate(existing, c) {
			t.Error("matching is date + kind + amount, not description")
		}
	})
}

func TestClassify(t *testing.T) {
	t.Run("partitions_new_and_skipped", func(t *testing.T) {
		existing := []models.Transaction{existingExpense(45.00, "2024-02-01")}
		out := Classify(existing, []Candidate{
			candidate(45.004, models.TransactionKindExpense, "2024-02-01"), // dup
			candidate(12.00, models.TransactionKindExpense, "2024-02-03"),  // new
		})
		if out.SkippedCount != 1 {
			t.Errorf("expected 1 skipped, got %d", out.SkippedCount)
		}
		if len(out.New) != 1 || out.New[0].Amount != 12.00 {
			t.Errorf("unexpected new set: %v", out.New)
		}
	})

	t.Run("matches_pre_run_existing_only", func(t *testing.T) {
		// Two identical candidates in one batch both come through: earlier
		// admissions never suppress later ones.
		out := Classify(nil, []Candidate{
			candidate(12.00, models.TransactionKindExpense, "2024-02-03"),
			candidate(12.00, models.TransactionKindExpense, "2024-02-03"),
		})
		if len(out.New) != 2 || out.SkippedCount != 0 {
			t.Errorf("expected both copies classified new, got %d new / %d skipped", len(out.New), out.SkippedCount)
		}
	})

	t.Run("preserves_input_order", func(t *testing.T) {
		out := Classify(nil, []Candidate{
			candidate(1, models.TransactionKindExpense, "2024-02-01"),
			candidate(2, models.TransactionKindExpense, "2024-02-02"),
			candidate(3, models.TransactionKindExpense, "2024-02-03"),
		})
		for i, c := range out.New {
			if c.Amount != float64(i+1) {
				t.Fatalf("order not preserved: %v", out.New)
			}
		}
	})

	t.Run("rerun_skips_everything", func(t *testing.T) {
		existing := []models.Transaction{
			existingExpense(45.00, "2024-02-01"),
			existingExpense(12.00, "2024-02-03"),
		}
		out := Classify(existing, []Candidate{
			candidate(45.00, models.TransactionKindExpense, "2024-02-01"),
			candidate(12.00, models.TransactionKindExpense, "2024-02-03"),
		})
		if len(out.New) != 0 || out.SkippedCount != 2 {
			t.Errorf("expected full skip on rerun, got %d new / %d skipped", len(out.New), out.SkippedCount)
		}
	})

	t.Run("empty_batch", func(t *testing.T) {
		out := Classify(nil, nil)
		if len(out.New) != 0 || out.SkippedCount != 0 {
			t.Errorf("expected empty outcome, got %+v", out)
		}
	})
}

func TestFeed(t *testing.T) {
	t.Run("deterministic_for_seed", func(t *testing.T) {
		existing := []models.Transaction{existingExpense(45.00, "2024-02-01")}
		a := NewFeed(42).Generate(existing, day("2024-02-10"), 10)
		b := NewFeed(42).Generate(existing, day("2024-02-10"), 10)
		if len(a) != 10 || len(b) != 10 {
			t.Fatalf("expected 10 candidates each, got %d and %d", len(a), len(b))
		}
		for i := range a {
			if a[i] != b[i] {
				t.Fatalf("same seed produced different candidates at %d: %+v vs %+v", i, a[i], b[i])
			}
		}
	})

	t.Run("echoes_stay_within_tolerance", func(t *testing.T) {
		existing := []models.Transaction{existingExpense(45.00, "2024-02-01")}
		candidates := NewFeed(7).Generate(existing, day("2024-02-10"), 50)
		for _, c := range candidates {
			if c.Date.Equal(day("2024-02-01")) && c.Kind == models.TransactionKindExpense && c.Category == "Food" && c.Description == "POS Lunch" {
				if !IsDuplicate(existing[0], c) {
					t.Errorf("echoed candidate drifted outside the tolerance: %+v", c)
				}
			}
		}
	})

	t.Run("fresh_candidates_within_two_weeks", func(t *testing.T) {
		today := day("2024-02-10")
		candidates := NewFeed(3).Generate(nil, today, 30)
		for _, c := range candidates {
			if c.Date.After(today) || c.Date.Before(today.AddDate(0, 0, -14)) {
				t.Errorf("candidate dated outside the window: %s", c.Date.Format(time.DateOnly))
			}
		}
	})
}
