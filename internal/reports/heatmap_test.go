package reports

import (
	"testing"
	"time"

	"finboard/internal/models"
)

func TestExpenseHeatmap(t *testing.T) {
	t.Run("aligned_to_whole_weeks", func(t *testing.T) {
		cells := ExpenseHeatmap(nil, day("2024-03-15"), 91)

		if len(cells)%7 != 0 {
			t.Errorf("expected a whole number of weeks, got %d cells", len(cells))
		}
		first, _ := time.Parse(time.DateOnly, cells[0].Date)
		if first.Weekday() != time.Sunday {
			t.Errorf("expected first cell on Sunday, got %s", first.Weekday())
		}
		last, _ := time.Parse(time.DateOnly, cells[len(cells)-1].Date)
		if last.Weekday() != time.Saturday {
			t.Errorf("expected last cell on Saturday, got %s", last.Weekday())
		}
	})

	t.Run("intensity_relative_to_heaviest_day", func(t *testing.T) {
		cells := ExpenseHeatmap([]models.Transaction{
			tx(models.TransactionKindExpense, 100, "Food", "2024-03-12"),
			tx(models.TransactionKindExpense, 25, "Transport", "2024-03-13"),
			tx(models.TransactionKindIncome, 500, "Salary", "2024-03-13"),
		}, day("2024-03-15"), 91)

		byDate := make(map[string]HeatmapCell, len(cells))
		for _, c := range cells {
			byDate[c.Date] = c
		}
		if got := byDate["2024-03-12"]; got.Amount != 100 || got.Intensity != 1 {
			t.Errorf("expected heaviest day 100/1.0, got %+v", got)
		}
		if got := byDate["2024-03-13"]; got.Amount != 25 || got.Intensity != 0.25 {
			t.Errorf("expected 25/0.25, got %+v", got)
		}
		if got := byDate["2024-03-14"]; got.Amount != 0 || got.Intensity != 0 {
			t.Errorf("expected quiet day 0/0, got %+v", got)
		}
	})

	t.Run("same_day_expenses_accumulate", func(t *testing.T) {
		cells := ExpenseHeatmap([]models.Transaction{
			tx(models.TransactionKindExpense, 30, "Food", "2024-03-12"),
			tx(models.TransactionKindExpense, 70, "Food", "2024-03-12"),
		}, day("2024-03-15"), 91)

		for _, c := range cells {
			if c.Date == "2024-03-12" {
				if c.Amount != 100 || c.Intensity != 1 {
					t.Errorf("expected 100/1.0, got %+v", c)
				}
				return
			}
		}
		t.Fatal("2024-03-12 missing from heatmap")
	})

	t.Run("no_expenses_means_zero_intensity_everywhere", func(t *testing.T) {
		cells := ExpenseHeatmap([]models.Transaction{
			tx(models.TransactionKindIncome, 1000, "Salary", "2024-03-12"),
		}, day("2024-03-15"), 91)

		for _, c := range cells {
			if c.Intensity != 0 || c.Amount != 0 {
				t.Fatalf("expected all-zero cells, got %+v", c)
			}
		}
	})

	t.Run("expenses_outside_window_ignored", func(t *testing.T) {
		cells := ExpenseHeatmap([]models.Transaction{
			tx(models.TransactionKindExpense, 999, "Food", "2020-01-01"),
			tx(models.TransactionKindExpense, 10, "Food", "2024-03-12"),
		}, day("2024-03-15"), 91)

		for _, c := range cells {
			if c.Date == "2024-03-12" && c.Intensity != 1 {
				t.Errorf("expected in-window day to be the maximum, got %+v", c)
			}
			if c.Amount == 999 {
				t.Error("out-of-window expense leaked into the heatmap")
			}
		}
	})
}
