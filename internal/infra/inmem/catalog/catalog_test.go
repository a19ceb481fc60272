//go:build !integration
// +build !integration

package infra_inmem_catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cinerec/core/internal/model"
	usecase_movie "github.com/cinerec/core/internal/usecase/movie"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
)

type CatalogUnitSuite struct {
	suite.Suite
}

func fixture() []model.Movie {
	return []model.Movie{
		{ID: 1, Title: "Quiet Harbor", Genres: []string{"Drama"}, Rating: 8.1, Year: 1998, Director: "Ann Roth", Overview: "A harbor town drama about leaving home.", Popularity: 30, VoteAverage: 8.1, VoteCount: 900},
		{ID: 2, Title: "Night Freight", Genres: []string{"Crime", "Drama"}, Rating: 8.8, Year: 1975, Director: "Paul Veltman", Overview: "Two drivers smuggle more than cargo.", Popularity: 80, VoteAverage: 8.8, VoteCount: 4000},
		{ID: 3, Title: "Starlane", Genres: []string{"Sci-Fi", "Adventure"}, Rating: 8.4, Year: 2016, Director: "Maya Chen", Overview: "A freighter crew crosses a collapsing star lane.", Popularity: 95, VoteAverage: 8.4, VoteCount: 5200},
		{ID: 4, Title: "Night Market", Genres: []string{"Crime", "Thriller"}, Rating: 7.9, Year: 1992, Director: "Paul Veltman", Overview: "An informant works the market after dark.", Popularity: 55, VoteAverage: 7.9, VoteCount: 2100},
		{ID: 7, Title: "Glass Orchard", Genres: []string{"Drama", "Romance"}, Rating: 7.2, Year: 2009, Director: "Ann Roth", Overview: "An orchard keeper rebuilds a greenhouse.", Popularity: 12, VoteAverage: 7.2, VoteCount: 150},
	}
}

func movieIDs(movies []model.Movie) []int64 {
	ids := make([]int64, len(movies))
	for i, m := range movies {
		ids[i] = m.ID
	}
	return ids
}

func (suite *CatalogUnitSuite) TestLoad(t provider.T) {
	t.Parallel()

	catalog := New(fixture())
	ctx := context.Background()

	movies, err := catalog.Load(ctx)

	assert.NoError(t, err)
	assert.Len(t, movies, 5)

	movies[0].Genres[0] = "Mutated"
	reloaded, err := catalog.Load(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "Drama", reloaded[0].Genres[0])
}

func (suite *CatalogUnitSuite) TestLoadByID(t provider.T) {
	t.Parallel()

	catalog := New(fixture())
	ctx := context.Background()

	t.Run("Should load an existing movie", func(t provider.T) {
		t.Parallel()

		movie, err := catalog.LoadByID(ctx, 3)

		assert.NoError(t, err)
		assert.Equal(t, "Starlane", movie.Title)
	})

	t.Run("Should report a missing movie", func(t provider.T) {
		t.Parallel()

		_, err := catalog.LoadByID(ctx, 42)

		assert.ErrorIs(t, err, usecase_movie.ErrResourceNotFound)
	})
}

func (suite *CatalogUnitSuite) TestLoadByGenre(t provider.T) {
	t.Parallel()

	catalog := New(fixture())
	ctx := context.Background()

	movies, err := catalog.LoadByGenre(ctx, "drama")

	assert.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 7}, movieIDs(movies))
}

func (suite *CatalogUnitSuite) TestLoadByDirector(t provider.T) {
	t.Parallel()

	catalog := New(fixture())
	ctx := context.Background()

	movies, err := catalog.LoadByDirector(ctx, "veltman")

	assert.NoError(t, err)
	assert.Equal(t, []int64{2, 4}, movieIDs(movies))
}

func (suite *CatalogUnitSuite) TestSearch(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		query    model.SearchQuery
		expected []int64
	}{
		{
			name:     "Should match text against overviews",
			query:    model.SearchQuery{Text: "freighter"},
			expected: []int64{3},
		},
		{
			name:     "Should order title matches by popularity",
			query:    model.SearchQuery{Text: "night"},
			expected: []int64{2, 4},
		},
		{
			name:     "Should require every listed genre",
			query:    model.SearchQuery{Genres: []string{"Crime", "Drama"}},
			expected: []int64{2},
		},
		{
			name:     "Should apply the rating floor to vote averages",
			query:    model.SearchQuery{MinRating: 8.0},
			expected: []int64{3, 2, 1},
		},
		{
			name:     "Should keep releases inside the year window",
			query:    model.SearchQuery{YearFrom: 1990, YearTo: 2010},
			expected: []int64{4, 1, 7},
		},
		{
			name:     "Should page through the ranked result",
			query:    model.SearchQuery{Limit: 2, Offset: 1},
			expected: []int64{2, 4},
		},
		{
			name:     "Should return nothing past the last page",
			query:    model.SearchQuery{Offset: 10},
			expected: []int64{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			catalog := New(fixture())

			movies, err := catalog.Search(context.Background(), tc.query)

			assert.NoError(t, err)
			assert.Equal(t, tc.expected, movieIDs(movies))
		})
	}
}

func (suite *CatalogUnitSuite) TestStore(t provider.T) {
	t.Parallel()

	t.Run("Should continue numbering after the seed", func(t provider.T) {
		t.Parallel()

		catalog := New(fixture())
		ctx := context.Background()

		id, err := catalog.Store(ctx, model.Movie{Title: "Newcomer", Genres: []string{"Drama"}, Rating: 6.5, Year: 2024})

		assert.NoError(t, err)
		assert.Equal(t, int64(8), id)

		movies, err := catalog.Load(ctx)
		assert.NoError(t, err)
		assert.Len(t, movies, 6)
	})

	t.Run("Should start numbering at one when empty", func(t provider.T) {
		t.Parallel()

		catalog := New(nil)

		id, err := catalog.Store(context.Background(), model.Movie{Title: "Opener"})

		assert.NoError(t, err)
		assert.Equal(t, int64(1), id)
	})
}

func (suite *CatalogUnitSuite) TestUpdate(t provider.T) {
	t.Parallel()

	catalog := New(fixture())
	ctx := context.Background()

	t.Run("Should replace an existing movie", func(t provider.T) {
		updated := model.Movie{ID: 4, Title: "Night Market Redux", Genres: []string{"Crime"}, Rating: 8.0, Year: 1992}

		assert.NoError(t, catalog.Update(ctx, updated))

		movie, err := catalog.LoadByID(ctx, 4)
		assert.NoError(t, err)
		assert.Equal(t, "Night Market Redux", movie.Title)
	})

	t.Run("Should report a missing movie", func(t provider.T) {
		err := catalog.Update(ctx, model.Movie{ID: 99, Title: "Ghost"})

		assert.ErrorIs(t, err, usecase_movie.ErrResourceNotFound)
	})
}

func (suite *CatalogUnitSuite) TestDeleteByID(t provider.T) {
	t.Parallel()

	catalog := New(fixture())
	ctx := context.Background()

	assert.NoError(t, catalog.DeleteByID(ctx, 2))

	movies, err := catalog.Load(ctx)
	assert.NoError(t, err)
	assert.Len(t, movies, 4)
	assert.NotContains(t, movieIDs(movies), int64(2))

	assert.ErrorIs(t, catalog.DeleteByID(ctx, 2), usecase_movie.ErrResourceNotFound)
}

func TestCatalogUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(CatalogUnitSuite))
}
