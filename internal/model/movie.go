package model

import "strings"

const EmptyTitle string = ""

type Movie struct {
	ID       int64
	Title    string
	Genres   []string
	Rating   float64
	Year     int
	Director string

	Overview string

	Popularity  float64
	VoteAverage float64
	VoteCount   int
	Budget      int64
	Revenue     int64
}

func (m Movie) HasGenre(genre string) bool {
	for _, g := range m.Genres {
		if strings.EqualFold(g, genre) {
			return true
		}
	}
	return false
}

func (m Movie) HasAnyGenre(genres []string) bool {
	for _, g := range genres {
		if m.HasGenre(g) {
			return true
		}
	}
	return false
}

type SearchQuery struct {
	Text      string
	Genres    []string
	MinRating float64
	YearFrom  int
	YearTo    int
	Limit     int
	Offset    int
}
