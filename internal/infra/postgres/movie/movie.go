package infra_postgres_movie

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/cinerec/core/internal/model"
	usecase_movie "github.com/cinerec/core/internal/usecase/movie"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const movieColumns = "id, title, genres, rating, year, director, overview, popularity, vote_average, vote_count, budget, revenue"

type Repository struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// EnsureSchema creates the movies table and its indexes when they are
// missing. Safe to run on every startup.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS movies (
			id BIGSERIAL PRIMARY KEY,
			title TEXT NOT NULL,
			genres TEXT[] NOT NULL DEFAULT '{}',
			rating DOUBLE PRECISION NOT NULL DEFAULT 0,
			year INT NOT NULL DEFAULT 0,
			director TEXT NOT NULL DEFAULT '',
			overview TEXT NOT NULL DEFAULT '',
			popularity DOUBLE PRECISION NOT NULL DEFAULT 0,
			vote_average DOUBLE PRECISION NOT NULL DEFAULT 0,
			vote_count INT NOT NULL DEFAULT 0,
			budget BIGINT NOT NULL DEFAULT 0,
			revenue BIGINT NOT NULL DEFAULT 0
		)`,
		`CREATE INDEX IF NOT EXISTS idx_movies_popularity ON movies (popularity)`,
		`CREATE INDEX IF NOT EXISTS idx_movies_year ON movies (year)`,
	}

	for _, statement := range statements {
		if _, err := r.db.ExecContext(ctx, statement); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}

	return nil
}

func (r *Repository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM movies`); err != nil {
		return 0, fmt.Errorf("failed to count movies: %w", err)
	}

	return count, nil
}

// Seed inserts the starter catalog with its fixed ids and realigns the
// id sequence past them.
func (r *Repository) Seed(ctx context.Context, movies []model.Movie) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin seed tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
		INSERT INTO movies (id, title, genres, rating, year, director, overview, popularity, vote_average, vote_count, budget, revenue)
		VALUES (:id, :title, :genres, :rating, :year, :director, :overview, :popularity, :vote_average, :vote_count, :budget, :revenue)
		ON CONFLICT (id) DO NOTHING
	`

	for _, m := range movies {
		if _, err := tx.NamedExecContext(ctx, query, FromDomain(m)); err != nil {
			return fmt.Errorf("failed to seed movie %q: %w", m.Title, err)
		}
	}

	realign := `SELECT setval(pg_get_serial_sequence('movies', 'id'), (SELECT COALESCE(MAX(id), 1) FROM movies))`
	if _, err := tx.ExecContext(ctx, realign); err != nil {
		return fmt.Errorf("failed to realign id sequence: %w", err)
	}

	return tx.Commit()
}

func (r *Repository) Load(ctx context.Context) ([]model.Movie, error) {
	query := fmt.Sprintf(`SELECT %s FROM movies ORDER BY id`, movieColumns)

	var moviesDB []MovieDB
	if err := r.db.SelectContext(ctx, &moviesDB, query); err != nil {
		return nil, fmt.Errorf("failed to query movies: %w", err)
	}

	return toDomainAll(moviesDB), nil
}

func (r *Repository) LoadByID(ctx context.Context, id int64) (model.Movie, error) {
	query := fmt.Sprintf(`SELECT %s FROM movies WHERE id = $1`, movieColumns)

	var movieDB MovieDB
	if err := r.db.GetContext(ctx, &movieDB, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Movie{}, usecase_movie.ErrResourceNotFound
		}
		return model.Movie{}, fmt.Errorf("failed to load movie by id: %w", err)
	}

	return movieDB.ToDomain(), nil
}

func (r *Repository) LoadByGenre(ctx context.Context, genre string) ([]model.Movie, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM movies
		WHERE EXISTS (SELECT 1 FROM unnest(genres) AS g WHERE LOWER(g) = LOWER($1))
		ORDER BY id
	`, movieColumns)

	var moviesDB []MovieDB
	if err := r.db.SelectContext(ctx, &moviesDB, query, genre); err != nil {
		return nil, fmt.Errorf("failed to query movies by genre: %w", err)
	}

	return toDomainAll(moviesDB), nil
}

func (r *Repository) LoadByDirector(ctx context.Context, director string) ([]model.Movie, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM movies
		WHERE director ILIKE '%%' || $1 || '%%'
		ORDER BY popularity DESC
	`, movieColumns)

	var moviesDB []MovieDB
	if err := r.db.SelectContext(ctx, &moviesDB, query, director); err != nil {
		return nil, fmt.Errorf("failed to query movies by director: %w", err)
	}

	return toDomainAll(moviesDB), nil
}

func (r *Repository) Search(ctx context.Context, q model.SearchQuery) ([]model.Movie, error) {
	var (
		conditions []string
		args       []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if q.Text != "" {
		p := arg("%" + q.Text + "%")
		conditions = append(conditions, fmt.Sprintf("(title ILIKE %s OR overview ILIKE %s OR director ILIKE %s)", p, p, p))
	}
	for _, genre := range q.Genres {
		p := arg(genre)
		conditions = append(conditions, fmt.Sprintf("EXISTS (SELECT 1 FROM unnest(genres) AS g WHERE LOWER(g) = LOWER(%s))", p))
	}
	if q.MinRating > 0 {
		conditions = append(conditions, fmt.Sprintf("vote_average >= %s", arg(q.MinRating)))
	}
	if q.YearFrom > 0 {
		conditions = append(conditions, fmt.Sprintf("year >= %s", arg(q.YearFrom)))
	}
	if q.YearTo > 0 {
		conditions = append(conditions, fmt.Sprintf("year <= %s", arg(q.YearTo)))
	}

	query := fmt.Sprintf(`SELECT %s FROM movies`, movieColumns)
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += fmt.Sprintf(" ORDER BY popularity DESC LIMIT %s OFFSET %s", arg(q.Limit), arg(q.Offset))

	var moviesDB []MovieDB
	if err := r.db.SelectContext(ctx, &moviesDB, query, args...); err != nil {
		return nil, fmt.Errorf("failed to search movies: %w", err)
	}

	return toDomainAll(moviesDB), nil
}

func (r *Repository) LoadPopular(ctx context.Context, limit int, offset int) ([]model.Movie, error) {
	query := fmt.Sprintf(`SELECT %s FROM movies ORDER BY popularity DESC LIMIT $1 OFFSET $2`, movieColumns)

	var moviesDB []MovieDB
	if err := r.db.SelectContext(ctx, &moviesDB, query, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to query popular movies: %w", err)
	}

	return toDomainAll(moviesDB), nil
}

func (r *Repository) Store(ctx context.Context, m model.Movie) (int64, error) {
	query := `
		INSERT INTO movies (title, genres, rating, year, director, overview, popularity, vote_average, vote_count, budget, revenue)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRowxContext(ctx, query,
		m.Title,
		pq.StringArray(m.Genres),
		m.Rating,
		m.Year,
		m.Director,
		m.Overview,
		m.Popularity,
		m.VoteAverage,
		m.VoteCount,
		m.Budget,
		m.Revenue,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to store movie: %w", err)
	}

	return id, nil
}

func (r *Repository) Update(ctx context.Context, m model.Movie) error {
	query := `
		UPDATE movies
		SET title = :title, genres = :genres, rating = :rating, year = :year,
			director = :director, overview = :overview, popularity = :popularity,
			vote_average = :vote_average, vote_count = :vote_count,
			budget = :budget, revenue = :revenue
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, FromDomain(m))
	if err != nil {
		return fmt.Errorf("failed to update movie: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return usecase_movie.ErrResourceNotFound
	}

	return nil
}

func (r *Repository) DeleteByID(ctx context.Context, id int64) error {
	query := `DELETE FROM movies WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete movie: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return usecase_movie.ErrResourceNotFound
	}

	return nil
}

func toDomainAll(moviesDB []MovieDB) []model.Movie {
	movies := make([]model.Movie, len(moviesDB))
	for i, movieDB := range moviesDB {
		movies[i] = movieDB.ToDomain()
	}

	return movies
}
