package infra_postgres_movie

import (
	"github.com/cinerec/core/internal/model"
	"github.com/lib/pq"
)

type MovieDB struct {
	ID          int64          `db:"id"`
	Title       string         `db:"title"`
	Genres      pq.StringArray `db:"genres"`
	Rating      float64        `db:"rating"`
	Year        int            `db:"year"`
	Director    string         `db:"director"`
	Overview    string         `db:"overview"`
	Popularity  float64        `db:"popularity"`
	VoteAverage float64        `db:"vote_average"`
	VoteCount   int            `db:"vote_count"`
	Budget      int64          `db:"budget"`
	Revenue     int64          `db:"revenue"`
}

func (m *MovieDB) ToDomain() model.Movie {
	return model.Movie{
		ID:          m.ID,
		Title:       m.Title,
		Genres:      []string(m.Genres),
		Rating:      m.Rating,
		Year:        m.Year,
		Director:    m.Director,
		Overview:    m.Overview,
		Popularity:  m.Popularity,
		VoteAverage: m.VoteAverage,
		VoteCount:   m.VoteCount,
		Budget:      m.Budget,
		Revenue:     m.Revenue,
	}
}

func FromDomain(m model.Movie) MovieDB {
	return MovieDB{
		ID:          m.ID,
		Title:       m.Title,
		Genres:      pq.StringArray(m.Genres),
		Rating:      m.Rating,
		Year:        m.Year,
		Director:    m.Director,
		Overview:    m.Overview,
		Popularity:  m.Popularity,
		VoteAverage: m.VoteAverage,
		VoteCount:   m.VoteCount,
		Budget:      m.Budget,
		Revenue:     m.Revenue,
	}
}
