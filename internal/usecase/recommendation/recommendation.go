package usecase_recommendation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"sort"
	"time"

	"github.com/cinerec/core/internal/model"
)

var (
	ErrInternal     = errors.New("internal error")
	ErrInvalidInput = errors.New("invalid input")
)

const (
	defaultRecommendLimit = 5
	defaultListLimit      = 10
	maxLimit              = 100

	genreRecsCacheTTL = time.Hour

	// Movies below this many votes are too obscure to recommend by genre.
	qualityVoteFloor = 100
)

type Repository interface {
	Load(ctx context.Context) ([]model.Movie, error)
	LoadByGenre(ctx context.Context, genre string) ([]model.Movie, error)
	LoadByDirector(ctx context.Context, director string) ([]model.Movie, error)
}

type Scorer interface {
	Score(m model.Movie) float64
}

type Cache interface {
	Get(key string) (string, error)
	Set(key string, value string, ttl time.Duration) error
}

type Usecase struct {
	repository Repository
	scorer     Scorer

	cache  Cache
	logger *slog.Logger
}

type Option func(*Usecase)

func WithCache(cache Cache) Option {
	return func(u *Usecase) {
		u.cache = cache
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(u *Usecase) {
		u.logger = logger
	}
}

func New(
	repository Repository,
	scorer Scorer,
	opts ...Option,
) *Usecase {
	u := &Usecase{
		repository: repository,
		scorer:     scorer,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(u)
	}

	return u
}

// Recommend filters the catalog by the request criteria and ranks
// what is left by descending popularity score. Ties keep catalog order.
func (u *Usecase) Recommend(ctx context.Context, req model.RecommendationRequest) (model.RecommendationResponse, error) {
	limit, err := normalizeLimit(req.Limit, defaultRecommendLimit)
	if err != nil {
		return model.RecommendationResponse{}, err
	}
	if req.MinRating < 0 || req.MinRating > 10 {
		return model.RecommendationResponse{}, fmt.Errorf("%w: min rating must be within [0, 10]", ErrInvalidInput)
	}

	movies, err := u.repository.Load(ctx)
	if err != nil {
		return model.RecommendationResponse{}, errors.Join(ErrInternal, err)
	}

	matched := make([]model.Movie, 0, len(movies))
	for _, m := range movies {
		if req.Matches(m) {
			matched = append(matched, m)
		}
	}

	scores := make(map[int64]float64, len(matched))
	for _, m := range matched {
		scores[m.ID] = u.scorer.Score(m)
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return scores[matched[i].ID] > scores[matched[j].ID]
	})

	if len(matched) > limit {
		matched = matched[:limit]
	}

	return model.RecommendationResponse{
		UserID:      req.UserID,
		Movies:      matched,
		Total:       len(matched),
		GeneratedAt: time.Now().UTC(),
	}, nil
}

// Random samples the catalog without replacement.
func (u *Usecase) Random(ctx context.Context, limit int) ([]model.Movie, error) {
	limit, err := normalizeLimit(limit, defaultRecommendLimit)
	if err != nil {
		return nil, err
	}

	movies, err := u.repository.Load(ctx)
	if err != nil {
		return nil, errors.Join(ErrInternal, err)
	}

	if limit > len(movies) {
		limit = len(movies)
	}

	sample := make([]model.Movie, 0, limit)
	for _, i := range rand.Perm(len(movies))[:limit] {
		sample = append(sample, movies[i])
	}

	return sample, nil
}

func (u *Usecase) ByGenre(ctx context.Context, genre string, limit int) ([]model.ScoredMovie, error) {
	if genre == "" {
		return nil, fmt.Errorf("%w: genre cannot be empty", ErrInvalidInput)
	}
	limit, err := normalizeLimit(limit, defaultListLimit)
	if err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf("genre_recommendations:%s:%d", genre, limit)
	var cached []model.ScoredMovie
	if u.cacheGet(cacheKey, &cached) {
		return cached, nil
	}

	movies, err := u.repository.LoadByGenre(ctx, genre)
	if err != nil {
		return nil, errors.Join(ErrInternal, err)
	}

	qualified := make([]model.Movie, 0, len(movies))
	for _, m := range movies {
		if m.VoteCount >= qualityVoteFloor {
			qualified = append(qualified, m)
		}
	}
	sort.SliceStable(qualified, func(i, j int) bool {
		return qualified[i].Popularity > qualified[j].Popularity
	})
	if len(qualified) > limit {
		qualified = qualified[:limit]
	}

	reason := fmt.Sprintf("Popular %s movie with high ratings", genre)
	scored := make([]model.ScoredMovie, len(qualified))
	for i, m := range qualified {
		scored[i] = model.ScoredMovie{
			Movie:  m,
			Score:  u.scorer.Score(m),
			Reason: reason,
		}
	}

	if len(scored) > 0 {
		u.cacheSet(cacheKey, scored, genreRecsCacheTTL)
	}

	return scored, nil
}

func (u *Usecase) ByDirector(ctx context.Context, director string, limit int) ([]model.ScoredMovie, error) {
	if director == "" {
		return nil, fmt.Errorf("%w: director cannot be empty", ErrInvalidInput)
	}
	limit, err := normalizeLimit(limit, defaultListLimit)
	if err != nil {
		return nil, err
	}

	movies, err := u.repository.LoadByDirector(ctx, director)
	if err != nil {
		return nil, errors.Join(ErrInternal, err)
	}

	sort.SliceStable(movies, func(i, j int) bool {
		return movies[i].Popularity > movies[j].Popularity
	})
	if len(movies) > limit {
		movies = movies[:limit]
	}

	reason := fmt.Sprintf("Directed by %s", director)
	scored := make([]model.ScoredMovie, len(movies))
	for i, m := range movies {
		scored[i] = model.ScoredMovie{
			Movie:  m,
			Score:  u.scorer.Score(m),
			Reason: reason,
		}
	}

	return scored, nil
}

func normalizeLimit(limit int, fallback int) (int, error) {
	if limit < 0 {
		return 0, fmt.Errorf("%w: limit cannot be negative", ErrInvalidInput)
	}
	if limit == 0 {
		return fallback, nil
	}
	if limit > maxLimit {
		return maxLimit, nil
	}
	return limit, nil
}

func (u *Usecase) cacheGet(key string, dst any) bool {
	if u.cache == nil {
		return false
	}

	raw, err := u.cache.Get(key)
	if err != nil {
		u.logger.Warn("cache get failed", slog.String("key", key), slog.String("error", err.Error()))
		return false
	}
	if raw == "" {
		return false
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		u.logger.Warn("cache entry corrupted", slog.String("key", key), slog.String("error", err.Error()))
		return false
	}

	return true
}

func (u *Usecase) cacheSet(key string, v any, ttl time.Duration) {
	if u.cache == nil {
		return
	}

	raw, err := json.Marshal(v)
	if err != nil {
		u.logger.Warn("cache marshal failed", slog.String("key", key), slog.String("error", err.Error()))
		return
	}
	if err := u.cache.Set(key, string(raw), ttl); err != nil {
		u.logger.Warn("cache set failed", slog.String("key", key), slog.String("error", err.Error()))
	}
}
