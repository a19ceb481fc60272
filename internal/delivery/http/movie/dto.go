package http_movie

import (
	"github.com/cinerec/core/internal/model"
)

type CreateMovieRequestDTO struct {
	Title       string   `json:"title" binding:"required"`
	Genres      []string `json:"genres" binding:"required"`
	Rating      float64  `json:"rating" binding:"required"`
	Year        int      `json:"year" binding:"required"`
	Director    string   `json:"director"`
	Overview    string   `json:"overview"`
	Popularity  float64  `json:"popularity"`
	VoteAverage float64  `json:"vote_average"`
	VoteCount   int      `json:"vote_count"`
	Budget      int64    `json:"budget"`
	Revenue     int64    `json:"revenue"`
}

type UpdateMovieRequestDTO struct {
	Title       string   `json:"title"`
	Genres      []string `json:"genres"`
	Rating      float64  `json:"rating"`
	Year        int      `json:"year"`
	Director    string   `json:"director"`
	Overview    string   `json:"overview"`
	Popularity  float64  `json:"popularity"`
	VoteAverage float64  `json:"vote_average"`
	VoteCount   int      `json:"vote_count"`
	Budget      int64    `json:"budget"`
	Revenue     int64    `json:"revenue"`
}

type MovieResponseDTO struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Genres      []string `json:"genres"`
	Rating      float64  `json:"rating"`
	Year        int      `json:"year"`
	Director    string   `json:"director"`
	Overview    string   `json:"overview"`
	Popularity  float64  `json:"popularity"`
	VoteAverage float64  `json:"vote_average"`
	VoteCount   int      `json:"vote_count"`
	Budget      int64    `json:"budget"`
	Revenue     int64    `json:"revenue"`
}

type MoviesListResponseDTO struct {
	Movies []MovieResponseDTO `json:"movies"`
	Total  int                `json:"total"`
}

type SimilarMovieResponseDTO struct {
	MovieResponseDTO
	Score  float64 `json:"score"`
	Reason string  `json:"reason"`
}

type SimilarMoviesResponseDTO struct {
	MovieID int64                     `json:"movie_id"`
	Movies  []SimilarMovieResponseDTO `json:"similar_movies"`
	Total   int                       `json:"total"`
}

func (r *CreateMovieRequestDTO) ConvertToMovie() model.Movie {
	return model.Movie{
		Title:       r.Title,
		Genres:      r.Genres,
		Rating:      r.Rating,
		Year:        r.Year,
		Director:    r.Director,
		Overview:    r.Overview,
		Popularity:  r.Popularity,
		VoteAverage: r.VoteAverage,
		VoteCount:   r.VoteCount,
		Budget:      r.Budget,
		Revenue:     r.Revenue,
	}
}

func (r *UpdateMovieRequestDTO) ConvertToMovie(id int64) model.Movie {
	return model.Movie{
		ID:          id,
		Title:       r.Title,
		Genres:      r.Genres,
		Rating:      r.Rating,
		Year:        r.Year,
		Director:    r.Director,
		Overview:    r.Overview,
		Popularity:  r.Popularity,
		VoteAverage: r.VoteAverage,
		VoteCount:   r.VoteCount,
		Budget:      r.Budget,
		Revenue:     r.Revenue,
	}
}

func ConvertFromMovie(m model.Movie) MovieResponseDTO {
	return MovieResponseDTO{
		ID:          m.ID,
		Title:       m.Title,
		Genres:      m.Genres,
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

func ConvertFromMovieList(movies []model.Movie) []MovieResponseDTO {
	converted := make([]MovieResponseDTO, len(movies))
	for i, m := range movies {
		converted[i] = ConvertFromMovie(m)
	}
	return converted
}

func ConvertFromScoredMovieList(scored []model.ScoredMovie) []SimilarMovieResponseDTO {
	converted := make([]SimilarMovieResponseDTO, len(scored))
	for i, s := range scored {
		converted[i] = SimilarMovieResponseDTO{
			MovieResponseDTO: ConvertFromMovie(s.Movie),
			Score:            s.Score,
			Reason:           s.Reason,
		}
	}
	return converted
}
