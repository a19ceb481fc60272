package infra_inmem_catalog

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/cinerec/core/internal/model"
	usecase_movie "github.com/cinerec/core/internal/usecase/movie"
)

// Catalog keeps the whole movie set in process memory. It backs the
// service when no database is configured, the same way the stores
// behave in postgres mode.
type Catalog struct {
	mu     sync.RWMutex
	movies []model.Movie
	nextID int64
}

func New(seed []model.Movie) *Catalog {
	c := &Catalog{
		movies: make([]model.Movie, 0, len(seed)),
		nextID: 1,
	}
	for _, m := range seed {
		c.movies = append(c.movies, cloneMovie(m))
		if m.ID >= c.nextID {
			c.nextID = m.ID + 1
		}
	}

	return c
}

func (c *Catalog) Load(ctx context.Context) ([]model.Movie, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return cloneMovies(c.movies), nil
}

func (c *Catalog) LoadByID(ctx context.Context, id int64) (model.Movie, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, m := range c.movies {
		if m.ID == id {
			return cloneMovie(m), nil
		}
	}

	return model.Movie{}, usecase_movie.ErrResourceNotFound
}

func (c *Catalog) LoadByGenre(ctx context.Context, genre string) ([]model.Movie, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	matched := make([]model.Movie, 0)
	for _, m := range c.movies {
		if m.HasGenre(genre) {
			matched = append(matched, cloneMovie(m))
		}
	}

	return matched, nil
}

func (c *Catalog) LoadByDirector(ctx context.Context, director string) ([]model.Movie, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	needle := strings.ToLower(director)
	matched := make([]model.Movie, 0)
	for _, m := range c.movies {
		if strings.Contains(strings.ToLower(m.Director), needle) {
			matched = append(matched, cloneMovie(m))
		}
	}

	return matched, nil
}

func (c *Catalog) Search(ctx context.Context, q model.SearchQuery) ([]model.Movie, error) {
	c.mu.RLock()
	matched := make([]model.Movie, 0)
	for _, m := range c.movies {
		if matchesQuery(m, q) {
			matched = append(matched, cloneMovie(m))
		}
	}
	c.mu.RUnlock()

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Popularity > matched[j].Popularity
	})

	return page(matched, q.Limit, q.Offset), nil
}

func (c *Catalog) LoadPopular(ctx context.Context, limit int, offset int) ([]model.Movie, error) {
	c.mu.RLock()
	matched := cloneMovies(c.movies)
	c.mu.RUnlock()

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Popularity > matched[j].Popularity
	})

	return page(matched, limit, offset), nil
}

func (c *Catalog) Store(ctx context.Context, m model.Movie) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	m.ID = c.nextID
	c.nextID++
	c.movies = append(c.movies, cloneMovie(m))

	return m.ID, nil
}

func (c *Catalog) Update(ctx context.Context, m model.Movie) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.movies {
		if c.movies[i].ID == m.ID {
			c.movies[i] = cloneMovie(m)
			return nil
		}
	}

	return usecase_movie.ErrResourceNotFound
}

func (c *Catalog) DeleteByID(ctx context.Context, id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.movies {
		if c.movies[i].ID == id {
			c.movies = append(c.movies[:i], c.movies[i+1:]...)
			return nil
		}
	}

	return usecase_movie.ErrResourceNotFound
}

func matchesQuery(m model.Movie, q model.SearchQuery) bool {
	if q.Text != "" {
		needle := strings.ToLower(q.Text)
		if !strings.Contains(strings.ToLower(m.Title), needle) &&
			!strings.Contains(strings.ToLower(m.Overview), needle) &&
			!strings.Contains(strings.ToLower(m.Director), needle) {
			return false
		}
	}
	for _, genre := range q.Genres {
		if !m.HasGenre(genre) {
			return false
		}
	}
	if q.MinRating > 0 && m.VoteAverage < q.MinRating {
		return false
	}
	if q.YearFrom > 0 && m.Year < q.YearFrom {
		return false
	}
	if q.YearTo > 0 && m.Year > q.YearTo {
		return false
	}

	return true
}

func page(movies []model.Movie, limit int, offset int) []model.Movie {
	if offset >= len(movies) {
		return []model.Movie{}
	}
	movies = movies[offset:]
	if limit > 0 && len(movies) > limit {
		movies = movies[:limit]
	}

	return movies
}

func cloneMovie(m model.Movie) model.Movie {
	m.Genres = append([]string(nil), m.Genres...)
	return m
}

func cloneMovies(movies []model.Movie) []model.Movie {
	cloned := make([]model.Movie, len(movies))
	for i, m := range movies {
		cloned[i] = cloneMovie(m)
	}

	return cloned
}
