package reconcile

import (
	"fmt"
	"math/rand"
	"time"

	"finboard/internal/models"
)

// Feed simulates an external transaction source. It is deterministic for a
// given seed so import runs are reproducible in tests and demos. A real bank
// integration would replace this at the same boundary.
type Feed struct {
	rng *rand.Rand
}

// NewFeed creates a feed with the given random seed.
func NewFeed(seed int64) *Feed {
	return &Feed{rng: rand.New(rand.NewSource(seed))}
}

var feedMerchants = []struct {
	name     string
	category string
	min, max float64
}{
	{"GROCERY MART #2217", "Food", 12, 140},
	{"METRO TRANSIT", "Transport", 2, 35},
	{"POWER & LIGHT CO", "Utilities", 40, 180},
	{"STREAMFLIX", "Entertainment", 8, 20},
	{"CORNER PHARMACY", "Health", 5, 60},
	{"CAFFE ROMA", "Food", 3, 18},
	{"CITY PARKING", "Transport", 4, 25},
}

// Generate produces n candidates dated within the last two weeks. Roughly a
// third of them echo an existing record with a reformatted description and an
// amount off by a fraction of a cent, the way bank feeds replay entries the
// user already typed in by hand.
func (f *Feed) Generate(existing []models.Transaction, today time.Time, n int) []Candidate {
	candidates := make([]Candidate, 0, n)
	for i := 0; i < n; i++ {
		if len(existing) > 0 && f.rng.Intn(3) == 0 {
			candidates = append(candidates, f.echo(existing))
			continue
		}
		candidates = append(candidates, f.fresh(today))
	}
	return candidates
}

// echo replays an existing transaction the way an external feed would report
// it: same date and kind, jittered amount within the matching tolerance, and
// a reformatted description.
func (f *Feed) echo(existing []models.Transaction) Candidate {
	src := existing[f.rng.Intn(len(existing))]
	jitter := (f.rng.Float64() - 0.5) * 0.008
	return Candidate{
		Description: fmt.Sprintf("POS %s", src.Description),
		Amount:      src.Amount + jitter,
		Kind:        src.Kind,
		Category:    src.Category,
		Date:        src.Date,
	}
}

func (f *Feed) fresh(today time.Time) Candidate {
	m := feedMerchants[f.rng.Intn(len(feedMerchants))]
	amount := m.min + f.rng.Float64()*(m.max-m.min)
	daysBack := f.rng.Intn(14)
	y, mo, d := today.AddDate(0, 0, -daysBack).Date()
	return Candidate{
		Description: m.name,
		Amount:      float64(int(amount*100)) / 100,
		Kind:        models.TransactionKindExpense,
		Category:    m.category,
		Date:        time.Date(y, mo, d, 0, 0, 0, 0, time.UTC),
	}
}
