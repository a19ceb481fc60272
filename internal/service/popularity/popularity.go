package service_popularity

import (
	"math"
	"time"

	"github.com/cinerec/core/internal/model"
)

type Scorer struct {
	now func() time.Time
}

type Option func(*Scorer)

func WithNow(now func() time.Time) Option {
	return func(s *Scorer) {
		s.now = now
	}
}

func New(opts ...Option) *Scorer {
	s := &Scorer{
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Score blends base popularity with a vote-weighted rating plus small
// bonuses for recent release years and box-office return.
func (s *Scorer) Score(m model.Movie) float64 {
	score := m.Popularity
	score += m.VoteAverage * math.Min(float64(m.VoteCount)/1000.0, 1.0)

	recency := 0.5
	if m.Year > 0 {
		yearsOld := float64(s.now().Year() - m.Year)
		recency = math.Max(0, 1-yearsOld/10)
	}
	score += 0.5 * recency

	if m.Budget > 0 && m.Revenue != 0 {
		roi := float64(m.Revenue-m.Budget) / float64(m.Budget)
		score += 0.3 * math.Min(roi/10, 1.0)
	}

	return score
}
