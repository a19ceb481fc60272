//go:build !integration
// +build !integration

package service_popularity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/cinerec/core/internal/model"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
)

type ScorerUnitSuite struct {
	suite.Suite
}

func fixedNow() time.Time {
	return time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
}

func (suite *ScorerUnitSuite) TestScore(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		movie    model.Movie
		expected float64
	}{
		{
			name:     "Should use half recency bonus when year is unknown",
			movie:    model.Movie{Popularity: 12.5},
			expected: 12.5 + 0.5*0.5,
		},
		{
			name:     "Should weight rating fully once votes reach the ceiling",
			movie:    model.Movie{Popularity: 1, VoteAverage: 8, VoteCount: 2000},
			expected: 1 + 8*1.0 + 0.5*0.5,
		},
		{
			name:     "Should weight rating proportionally below the ceiling",
			movie:    model.Movie{Popularity: 1, VoteAverage: 8, VoteCount: 500},
			expected: 1 + 8*0.5 + 0.5*0.5,
		},
		{
			name:     "Should grant full recency bonus for a current-year release",
			movie:    model.Movie{Year: 2024},
			expected: 0.5 * 1.0,
		},
		{
			name:     "Should decay recency bonus to zero after ten years",
			movie:    model.Movie{Year: 1994},
			expected: 0,
		},
		{
			name:     "Should cap the financial bonus at its weight",
			movie:    model.Movie{Year: 2024, Budget: 100, Revenue: 10100},
			expected: 0.5 + 0.3*1.0,
		},
		{
			name:     "Should penalize a box-office flop",
			movie:    model.Movie{Year: 2024, Budget: 100, Revenue: 50},
			expected: 0.5 + 0.3*(-0.05),
		},
		{
			name:     "Should skip the financial bonus without revenue data",
			movie:    model.Movie{Year: 2024, Budget: 100},
			expected: 0.5,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			scorer := New(WithNow(fixedNow))

			assert.InDelta(t, tc.expected, scorer.Score(tc.movie), 1e-9)
		})
	}
}

func (suite *ScorerUnitSuite) TestScoreMonotonic(t provider.T) {
	t.Parallel()

	base := model.Movie{
		Popularity:  10,
		VoteAverage: 7,
		VoteCount:   500,
		Year:        2018,
		Budget:      1000,
		Revenue:     3000,
	}

	testCases := []struct {
		name   string
		bumped model.Movie
	}{
		{
			name: "Higher popularity scores higher",
			bumped: func() model.Movie {
				m := base
				m.Popularity += 5
				return m
			}(),
		},
		{
			name: "Higher vote average scores higher",
			bumped: func() model.Movie {
				m := base
				m.VoteAverage += 1
				return m
			}(),
		},
		{
			name: "More recent release scores higher",
			bumped: func() model.Movie {
				m := base
				m.Year += 3
				return m
			}(),
		},
		{
			name: "Higher revenue scores higher",
			bumped: func() model.Movie {
				m := base
				m.Revenue += 1000
				return m
			}(),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			scorer := New(WithNow(fixedNow))

			assert.Greater(t, scorer.Score(tc.bumped), scorer.Score(base))
		})
	}
}

func (suite *ScorerUnitSuite) TestScoreDeterministic(t provider.T) {
	t.Parallel()

	scorer := New(WithNow(fixedNow))
	m := model.Movie{
		Popularity:  42,
		VoteAverage: 9.3,
		VoteCount:   2800,
		Year:        1994,
		Budget:      25_000_000,
		Revenue:     28_000_000,
	}

	assert.Equal(t, scorer.Score(m), scorer.Score(m))
}

func TestScorerUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(ScorerUnitSuite))
}
