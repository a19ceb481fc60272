package model

import "time"

type RecommendationRequest struct {
	UserID          string
	PreferredGenres []string
	MinRating       float64
	MinYear         int
	MaxYear         int
	Limit           int
}

func (r RecommendationRequest) Matches(m Movie) bool {
	if len(r.PreferredGenres) > 0 && !m.HasAnyGenre(r.PreferredGenres) {
		return false
	}
	if r.MinRating > 0 && m.Rating < r.MinRating {
		return false
	}
	if r.MinYear > 0 && m.Year < r.MinYear {
		return false
	}
	if r.MaxYear > 0 && m.Year > r.MaxYear {
		return false
	}
	return true
}

type RecommendationResponse struct {
	UserID      string
	Movies      []Movie
	Total       int
	GeneratedAt time.Time
}

type ScoredMovie struct {
	Movie  Movie
	Score  float64
	Reason string
}
