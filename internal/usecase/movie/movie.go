package usecase_movie

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/cinerec/core/internal/model"
)

var (
	ErrInternal         = errors.New("internal error")
	ErrResourceNotFound = errors.New("no such resource")
	ErrInvalidInput     = errors.New("invalid input")
)

const (
	movieCacheTTL   = time.Hour
	popularCacheTTL = 30 * time.Minute

	defaultPageLimit = 20
	defaultListLimit = 10
	maxLimit         = 100

	// Popularity floor for the trending feed.
	trendingThreshold = 10.0

	// At most this many of the anchor's genres drive the similarity lookup.
	similarGenreCap = 3
)

type Repository interface {
	Load(ctx context.Context) ([]model.Movie, error)
	LoadByID(ctx context.Context, id int64) (model.Movie, error)
	LoadByGenre(ctx context.Context, genre string) ([]model.Movie, error)
	Search(ctx context.Context, q model.SearchQuery) ([]model.Movie, error)
	LoadPopular(ctx context.Context, limit int, offset int) ([]model.Movie, error)
	Store(ctx context.Context, m model.Movie) (int64, error)
	Update(ctx context.Context, m model.Movie) error
	DeleteByID(ctx context.Context, id int64) error
}

type Cache interface {
	Get(key string) (string, error)
	Set(key string, value string, ttl time.Duration) error
	Delete(key string) error
}

type Scorer interface {
	Score(m model.Movie) float64
}

type EventPublisher interface {
	Publish(e model.CatalogEvent)
}

type Usecase struct {
	repository Repository
	scorer     Scorer

	cache  Cache
	events EventPublisher
	logger *slog.Logger
}

type Option func(*Usecase)

func WithCache(cache Cache) Option {
	return func(u *Usecase) {
		u.cache = cache
	}
}

func WithEvents(events EventPublisher) Option {
	return func(u *Usecase) {
		u.events = events
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

func (u *Usecase) LoadAll(ctx context.Context) ([]model.Movie, error) {
	movies, err := u.repository.Load(ctx)
	if err != nil {
		return nil, errors.Join(ErrInternal, err)
	}

	return movies, nil
}

func (u *Usecase) LoadByID(ctx context.Context, id int64) (model.Movie, error) {
	if id <= 0 {
		return model.Movie{}, fmt.Errorf("%w: movie id must be positive", ErrInvalidInput)
	}

	cacheKey := fmt.Sprintf("movie:%d", id)
	var cached model.Movie
	if u.cacheGet(cacheKey, &cached) {
		return cached, nil
	}

	movie, err := u.repository.LoadByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return model.Movie{}, ErrResourceNotFound
		}
		return model.Movie{}, errors.Join(ErrInternal, err)
	}

	u.cacheSet(cacheKey, movie, movieCacheTTL)

	return movie, nil
}

func (u *Usecase) LoadByGenre(ctx context.Context, genre string) ([]model.Movie, error) {
	if genre == "" {
		return nil, fmt.Errorf("%w: genre cannot be empty", ErrInvalidInput)
	}

	movies, err := u.repository.LoadByGenre(ctx, genre)
	if err != nil {
		return nil, errors.Join(ErrInternal, err)
	}

	return movies, nil
}

func (u *Usecase) Search(ctx context.Context, q model.SearchQuery) ([]model.Movie, error) {
	if q.Offset < 0 {
		return nil, fmt.Errorf("%w: offset cannot be negative", ErrInvalidInput)
	}
	if q.MinRating < 0 || q.MinRating > 10 {
		return nil, fmt.Errorf("%w: min rating must be within [0, 10]", ErrInvalidInput)
	}
	limit, err := normalizeLimit(q.Limit, defaultPageLimit)
	if err != nil {
		return nil, err
	}
	q.Limit = limit

	movies, err := u.repository.Search(ctx, q)
	if err != nil {
		return nil, errors.Join(ErrInternal, err)
	}

	return movies, nil
}

func (u *Usecase) Popular(ctx context.Context, limit int, offset int) ([]model.Movie, error) {
	if offset < 0 {
		return nil, fmt.Errorf("%w: offset cannot be negative", ErrInvalidInput)
	}
	limit, err := normalizeLimit(limit, defaultPageLimit)
	if err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf("popular_movies:%d:%d", limit, offset)
	var cached []model.Movie
	if u.cacheGet(cacheKey, &cached) {
		return cached, nil
	}

	movies, err := u.repository.LoadPopular(ctx, limit, offset)
	if err != nil {
		return nil, errors.Join(ErrInternal, err)
	}

	if len(movies) > 0 {
		u.cacheSet(cacheKey, movies, popularCacheTTL)
	}

	return movies, nil
}

// Trending keeps recent releases whose popularity clears the threshold.
func (u *Usecase) Trending(ctx context.Context, limit int) ([]model.Movie, error) {
	limit, err := normalizeLimit(limit, defaultListLimit)
	if err != nil {
		return nil, err
	}

	movies, err := u.repository.Load(ctx)
	if err != nil {
		return nil, errors.Join(ErrInternal, err)
	}

	trending := make([]model.Movie, 0, len(movies))
	for _, m := range movies {
		if m.Year > 0 && m.Popularity > trendingThreshold {
			trending = append(trending, m)
		}
	}
	sort.SliceStable(trending, func(i, j int) bool {
		return trending[i].Popularity > trending[j].Popularity
	})
	if len(trending) > limit {
		trending = trending[:limit]
	}

	return trending, nil
}

// Similar collects movies sharing the anchor's leading genres,
// ordered by popularity with the anchor itself excluded.
func (u *Usecase) Similar(ctx context.Context, id int64, limit int) ([]model.ScoredMovie, error) {
	limit, err := normalizeLimit(limit, defaultListLimit)
	if err != nil {
		return nil, err
	}

	anchor, err := u.LoadByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(anchor.Genres) == 0 {
		return []model.ScoredMovie{}, nil
	}

	genres := anchor.Genres
	if len(genres) > similarGenreCap {
		genres = genres[:similarGenreCap]
	}

	seen := make(map[int64]struct{})
	var candidates []model.Movie
	for _, genre := range genres {
		movies, err := u.repository.LoadByGenre(ctx, genre)
		if err != nil {
			return nil, errors.Join(ErrInternal, err)
		}
		for _, m := range movies {
			if m.ID == anchor.ID {
				continue
			}
			if _, ok := seen[m.ID]; ok {
				continue
			}
			seen[m.ID] = struct{}{}
			candidates = append(candidates, m)
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Popularity > candidates[j].Popularity
	})
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	reason := fmt.Sprintf("Similar to '%s' (same genres)", anchor.Title)
	scored := make([]model.ScoredMovie, len(candidates))
	for i, m := range candidates {
		scored[i] = model.ScoredMovie{
			Movie:  m,
			Score:  u.scorer.Score(m),
			Reason: reason,
		}
	}

	return scored, nil
}

func (u *Usecase) Store(ctx context.Context, m model.Movie) (model.Movie, error) {
	if err := validateMovie(m); err != nil {
		return model.Movie{}, err
	}

	id, err := u.repository.Store(ctx, m)
	if err != nil {
		return model.Movie{}, errors.Join(ErrInternal, err)
	}
	m.ID = id

	u.publish(model.EventMovieCreated, m)

	return m, nil
}

func (u *Usecase) Update(ctx context.Context, m model.Movie) (model.Movie, error) {
	if m.ID <= 0 {
		return model.Movie{}, fmt.Errorf("%w: movie id must be positive", ErrInvalidInput)
	}
	if err := validateMovie(m); err != nil {
		return model.Movie{}, err
	}

	if err := u.repository.Update(ctx, m); err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return model.Movie{}, ErrResourceNotFound
		}
		return model.Movie{}, errors.Join(ErrInternal, err)
	}

	u.cacheDelete(fmt.Sprintf("movie:%d", m.ID))
	u.publish(model.EventMovieUpdated, m)

	return m, nil
}

func (u *Usecase) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: movie id must be positive", ErrInvalidInput)
	}

	movie, err := u.repository.LoadByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return ErrResourceNotFound
		}
		return errors.Join(ErrInternal, err)
	}

	if err := u.repository.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return ErrResourceNotFound
		}
		return errors.Join(ErrInternal, err)
	}

	u.cacheDelete(fmt.Sprintf("movie:%d", id))
	u.publish(model.EventMovieDeleted, movie)

	return nil
}

func validateMovie(m model.Movie) error {
	if m.Title == model.EmptyTitle {
		return fmt.Errorf("%w: movie title cannot be empty", ErrInvalidInput)
	}
	if m.Rating < 0 || m.Rating > 10 {
		return fmt.Errorf("%w: rating must be within [0, 10]", ErrInvalidInput)
	}
	if m.Year < 0 {
		return fmt.Errorf("%w: year cannot be negative", ErrInvalidInput)
	}

	return nil
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

func (u *Usecase) cacheDelete(key string) {
	if u.cache == nil {
		return
	}

	if err := u.cache.Delete(key); err != nil {
		u.logger.Warn("cache delete failed", slog.String("key", key), slog.String("error", err.Error()))
	}
}

func (u *Usecase) publish(eventType model.CatalogEventType, m model.Movie) {
	if u.events == nil {
		return
	}

	u.events.Publish(model.CatalogEvent{Type: eventType, Movie: m})
}
