package reports

import (
	"testing"

	"finboard/internal/models"
)

func TestCategoryTrend(t *testing.T) {
	t.Run("empty_when_no_expenses", func(t *testing.T) {
		points := CategoryTrend([]models.Transaction{
			tx(models.TransactionKindIncome, 1000, "Salary", "2024-01-05"),
		}, 5)
		if len(points) != 0 {
			t.Errorf("expected no trend points, got %d", len(points))
		}
	})

	t.Run("buckets_remainder_into_other", func(t *testing.T) {
		points := CategoryTrend([]models.Transaction{
			tx(models.TransactionKindExpense, 500, "Housing", "2024-01-02"),
			tx(models.TransactionKindExpense, 300, "Food", "2024-01-05"),
			tx(models.TransactionKindExpense, 40, "Transport", "2024-01-09"),
			tx(models.TransactionKindExpense, 10, "Entertainment", "2024-01-12"),
		}, 2)

		if len(points) != 1 {
			t.Fatalf("expected 1 month, got %d", len(points))
		}
		row := points[0].Series
		if len(row) != 3 {
			t.Fatalf("expected top 2 plus Other, got %d series: %v", len(row), row)
		}
		if row["Housing"] != 500 || row["Food"] != 300 {
			t.Errorf("unexpected top series: %v", row)
		}
		if row[OtherSeries] != 50 {
			t.Errorf("expected Other 50, got %f", row[OtherSeries])
		}
	})

	t.Run("no_other_series_when_all_selected", func(t *testing.T) {
		points := CategoryTrend([]models.Transaction{
			tx(models.TransactionKindExpense, 100, "Food", "2024-01-05"),
			tx(models.TransactionKindExpense, 60, "Transport", "2024-01-06"),
		}, 5)

		if len(points) != 1 {
			t.Fatalf("expected 1 month, got %d", len(points))
		}
		if _, ok := points[0].Series[OtherSeries]; ok {
			t.Errorf("Other should be absent when every category is in the top N: %v", points[0].Series)
		}
	})

	t.Run("months_sorted_chronologically", func(t *testing.T) {
		points := CategoryTrend([]models.Transaction{
			tx(models.TransactionKindExpense, 20, "Food", "2024-03-10"),
			tx(models.TransactionKindExpense, 30, "Food", "2023-11-02"),
			tx(models.TransactionKindExpense, 10, "Food", "2024-01-15"),
		}, 5)

		want := []string{"2023-11", "2024-01", "2024-03"}
		if len(points) != len(want) {
			t.Fatalf("expected %d months, got %d", len(want), len(points))
		}
		for i, month := range want {
			if points[i].Month != month {
				t.Errorf("position %d: expected %s, got %s", i, month, points[i].Month)
			}
		}
	})

	t.Run("tie_breaks_on_first_encounter", func(t *testing.T) {
		// Transport and Food tie at 100; Transport appears first in the input
		// so it takes the single top slot.
		points := CategoryTrend([]models.Transaction{
			tx(models.TransactionKindExpense, 100, "Transport", "2024-01-03"),
			tx(models.TransactionKindExpense, 100, "Food", "2024-01-04"),
		}, 1)

		row := points[0].Series
		if row["Transport"] != 100 {
			t.Errorf("expected Transport selected on tie, got %v", row)
		}
		if row[OtherSeries] != 100 {
			t.Errorf("expected Food folded into Other, got %v", row)
		}
	})

	t.Run("non_positive_top_n_uses_default", func(t *testing.T) {
		points := CategoryTrend([]models.Transaction{
			tx(models.TransactionKindExpense, 10, "Food", "2024-01-05"),
		}, 0)
		if len(points) != 1 || points[0].Series["Food"] != 10 {
			t.Errorf("expected default top N behavior, got %v", points)
		}
	})

	t.Run("category_spanning_months_stays_selected", func(t *testing.T) {
		points := CategoryTrend([]models.Transaction{
			tx(models.TransactionKindExpense, 60, "Food", "2024-01-05"),
			tx(models.TransactionKindExpense, 70, "Food", "2024-02-05"),
			tx(models.TransactionKindExpense, 100, "Housing", "2024-02-08"),
		}, 1)

		// Food totals 130 all-time and beats Housing's 100, so it keeps its own
		// series in both months.
		if points[0].Series["Food"] != 60 {
			t.Errorf("expected January Food 60, got %v", points[0].Series)
		}
		if points[1].Series["Food"] != 70 || points[1].Series[OtherSeries] != 100 {
			t.Errorf("expected February Food 70 and Other 100, got %v", points[1].Series)
		}
	})
}
