package http_recommendation

import (
	"time"

	http_movie "github.com/cinerec/core/internal/delivery/http/movie"
	"github.com/cinerec/core/internal/model"
)

type RecommendationRequestDTO struct {
	UserID          *string  `json:"user_id"`
	PreferredGenres []string `json:"preferred_genres"`
	MinRating       float64  `json:"min_rating"`
	MinYear         int      `json:"min_year"`
	MaxYear         int      `json:"max_year"`
	Limit           int      `json:"limit"`
}

type RecommendationResponseDTO struct {
	UserID          *string                       `json:"user_id"`
	Recommendations []http_movie.MovieResponseDTO `json:"recommendations"`
	Timestamp       time.Time                     `json:"timestamp"`
	Total           int                           `json:"total_recommendations"`
}

type RecommendedMovieDTO struct {
	http_movie.MovieResponseDTO
	Score  float64 `json:"score"`
	Reason string  `json:"reason"`
}

type GenreRecommendationsResponseDTO struct {
	Genre           string                `json:"genre"`
	Recommendations []RecommendedMovieDTO `json:"recommendations"`
	Total           int                   `json:"total_recommendations"`
}

type DirectorRecommendationsResponseDTO struct {
	Director        string                `json:"director"`
	Recommendations []RecommendedMovieDTO `json:"recommendations"`
	Total           int                   `json:"total_recommendations"`
}

func (r *RecommendationRequestDTO) ConvertToRequest() model.RecommendationRequest {
	req := model.RecommendationRequest{
		PreferredGenres: r.PreferredGenres,
		MinRating:       r.MinRating,
		MinYear:         r.MinYear,
		MaxYear:         r.MaxYear,
		Limit:           r.Limit,
	}
	if r.UserID != nil {
		req.UserID = *r.UserID
	}
	return req
}

func ConvertFromScoredList(scored []model.ScoredMovie) []RecommendedMovieDTO {
	converted := make([]RecommendedMovieDTO, len(scored))
	for i, s := range scored {
		converted[i] = RecommendedMovieDTO{
			MovieResponseDTO: http_movie.ConvertFromMovie(s.Movie),
			Score:            s.Score,
			Reason:           s.Reason,
		}
	}
	return converted
}
