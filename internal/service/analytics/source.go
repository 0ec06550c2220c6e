package analytics

import (
	"math/rand"
	"time"

	"github.com/ogadoctor/triage-api/internal/model"
)

// Source supplies the historical consultation data behind the charts.
// Implementations must return days in ascending date order.
type Source interface {
	History() []*model.ConsultationDay
}

// GeneratedSource produces a deterministic pseudo-random history from a
// seed, covering the trailing N days up to the reference time.
type GeneratedSource struct {
	days []*model.ConsultationDay
}

// NewGeneratedSource builds the history once at construction; repeated
// calls to History return the same data for the session.
func NewGeneratedSource(seed int64, days int, end time.Time) *GeneratedSource {
	rng := rand.New(rand.NewSource(seed))
	end = end.Truncate(24 * time.Hour)

	history := make([]*model.ConsultationDay, 0, days)
	for i := days - 1; i >= 0; i-- {
		history = append(history, &model.ConsultationDay{
			Date:             end.AddDate(0, 0, -i),
			Consultations:    randRange(rng, 10, 25),
			Urgent:           randRange(rng, 1, 5),
			Moderate:         randRange(rng, 3, 10),
			Mild:             randRange(rng, 5, 12),
			ResponseTimeMins: randRange(rng, 5, 45),
		})
	}
	return &GeneratedSource{days: history}
}

func (s *GeneratedSource) History() []*model.ConsultationDay {
	return s.days
}

// FixtureSource serves a fixed history, for tests.
type FixtureSource struct {
	Days []*model.ConsultationDay
}

func (s *FixtureSource) History() []*model.ConsultationDay {
	return s.Days
}

// randRange returns a value in [min, max] inclusive.
func randRange(rng *rand.Rand, min, max int) int {
	return min + rng.Intn(max-min+1)
}
