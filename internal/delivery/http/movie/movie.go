package http_movie

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	http_common "github.com/cinerec/core/internal/delivery/http/common"
	http_auth_middleware "github.com/cinerec/core/internal/delivery/http/middleware/auth"
	"github.com/cinerec/core/internal/model"
	usecase_movie "github.com/cinerec/core/internal/usecase/movie"
	"github.com/gin-gonic/gin"
)

type Controller struct {
	uc   *usecase_movie.Usecase
	auth *http_auth_middleware.Middleware

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(uc *usecase_movie.Usecase,
	auth *http_auth_middleware.Middleware,
	opts ...ControllerOption) *Controller {
	c := &Controller{
		uc:     uc,
		auth:   auth,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	movies := router.Group("/movies")
	movies.GET("", c.getMovies)
	movies.GET("/popular", c.getPopularMovies)
	movies.GET("/trending", c.getTrendingMovies)
	movies.GET("/search", c.searchMovies)
	movies.GET("/genre/:genre", c.getMoviesByGenre)
	movies.GET("/:movie_id", c.getMovie)
	movies.GET("/:movie_id/similar", c.getSimilarMovies)

	admin := movies.Group("", c.auth.AuthRequired())
	admin.POST("", c.createMovie)
	admin.PUT("/:movie_id", c.updateMovie)
	admin.DELETE("/:movie_id", c.deleteMovie)
}

func (c *Controller) getMovies(ctx *gin.Context) {
	movies, err := c.uc.LoadAll(ctx.Request.Context())
	if err != nil {
		c.respondError(ctx, err, "failed to load movies")
		return
	}

	ctx.JSON(http.StatusOK, MoviesListResponseDTO{
		Movies: ConvertFromMovieList(movies),
		Total:  len(movies),
	})
}

func (c *Controller) getMovie(ctx *gin.Context) {
	movieID, ok := c.movieIDParam(ctx)
	if !ok {
		return
	}

	movie, err := c.uc.LoadByID(ctx.Request.Context(), movieID)
	if err != nil {
		c.respondError(ctx, err, "failed to load movie")
		return
	}

	ctx.JSON(http.StatusOK, ConvertFromMovie(movie))
}

func (c *Controller) getMoviesByGenre(ctx *gin.Context) {
	genre := ctx.Param("genre")

	movies, err := c.uc.LoadByGenre(ctx.Request.Context(), genre)
	if err != nil {
		c.respondError(ctx, err, "failed to load movies by genre")
		return
	}

	ctx.JSON(http.StatusOK, MoviesListResponseDTO{
		Movies: ConvertFromMovieList(movies),
		Total:  len(movies),
	})
}

func (c *Controller) searchMovies(ctx *gin.Context) {
	minRating, ok := c.floatQuery(ctx, "min_rating")
	if !ok {
		return
	}
	yearFrom, ok := c.intQuery(ctx, "year_from")
	if !ok {
		return
	}
	yearTo, ok := c.intQuery(ctx, "year_to")
	if !ok {
		return
	}
	limit, ok := c.intQuery(ctx, "limit")
	if !ok {
		return
	}
	offset, ok := c.intQuery(ctx, "offset")
	if !ok {
		return
	}

	q := model.SearchQuery{
		Text:      ctx.Query("query"),
		Genres:    splitGenres(ctx.Query("genres")),
		MinRating: minRating,
		YearFrom:  yearFrom,
		YearTo:    yearTo,
		Limit:     limit,
		Offset:    offset,
	}

	movies, err := c.uc.Search(ctx.Request.Context(), q)
	if err != nil {
		c.respondError(ctx, err, "failed to search movies")
		return
	}

	ctx.JSON(http.StatusOK, MoviesListResponseDTO{
		Movies: ConvertFromMovieList(movies),
		Total:  len(movies),
	})
}

func (c *Controller) getPopularMovies(ctx *gin.Context) {
	limit, ok := c.intQuery(ctx, "limit")
	if !ok {
		return
	}
	offset, ok := c.intQuery(ctx, "offset")
	if !ok {
		return
	}

	movies, err := c.uc.Popular(ctx.Request.Context(), limit, offset)
	if err != nil {
		c.respondError(ctx, err, "failed to load popular movies")
		return
	}

	ctx.JSON(http.StatusOK, MoviesListResponseDTO{
		Movies: ConvertFromMovieList(movies),
		Total:  len(movies),
	})
}

func (c *Controller) getTrendingMovies(ctx *gin.Context) {
	limit, ok := c.intQuery(ctx, "limit")
	if !ok {
		return
	}

	movies, err := c.uc.Trending(ctx.Request.Context(), limit)
	if err != nil {
		c.respondError(ctx, err, "failed to load trending movies")
		return
	}

	ctx.JSON(http.StatusOK, MoviesListResponseDTO{
		Movies: ConvertFromMovieList(movies),
		Total:  len(movies),
	})
}

func (c *Controller) getSimilarMovies(ctx *gin.Context) {
	movieID, ok := c.movieIDParam(ctx)
	if !ok {
		return
	}
	limit, ok := c.intQuery(ctx, "limit")
	if !ok {
		return
	}

	similar, err := c.uc.Similar(ctx.Request.Context(), movieID, limit)
	if err != nil {
		c.respondError(ctx, err, "failed to load similar movies")
		return
	}

	ctx.JSON(http.StatusOK, SimilarMoviesResponseDTO{
		MovieID: movieID,
		Movies:  ConvertFromScoredMovieList(similar),
		Total:   len(similar),
	})
}

func (c *Controller) createMovie(ctx *gin.Context) {
	var req CreateMovieRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn("invalid request body", slog.String("error", err.Error()))
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid request format",
		})
		return
	}

	stored, err := c.uc.Store(ctx.Request.Context(), req.ConvertToMovie())
	if err != nil {
		c.respondError(ctx, err, "failed to create movie")
		return
	}

	ctx.JSON(http.StatusCreated, ConvertFromMovie(stored))
}

func (c *Controller) updateMovie(ctx *gin.Context) {
	movieID, ok := c.movieIDParam(ctx)
	if !ok {
		return
	}

	var req UpdateMovieRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn("invalid request body", slog.String("error", err.Error()))
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid request format",
		})
		return
	}

	updated, err := c.uc.Update(ctx.Request.Context(), req.ConvertToMovie(movieID))
	if err != nil {
		c.respondError(ctx, err, "failed to update movie")
		return
	}

	ctx.JSON(http.StatusOK, ConvertFromMovie(updated))
}

func (c *Controller) deleteMovie(ctx *gin.Context) {
	movieID, ok := c.movieIDParam(ctx)
	if !ok {
		return
	}

	if err := c.uc.Delete(ctx.Request.Context(), movieID); err != nil {
		c.respondError(ctx, err, "failed to delete movie")
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (c *Controller) respondError(ctx *gin.Context, err error, msg string) {
	c.logger.Error(msg, slog.String("error", err.Error()))

	switch {
	case errors.Is(err, usecase_movie.ErrResourceNotFound):
		ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
			Message: "not found",
		})
	case errors.Is(err, usecase_movie.ErrInvalidInput):
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid request",
		})
	default:
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
	}
}

func (c *Controller) movieIDParam(ctx *gin.Context) (int64, bool) {
	idParam := ctx.Param("movie_id")
	movieID, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil {
		c.logger.Warn("invalid movie ID",
			slog.String("id", idParam),
			slog.String("error", err.Error()),
		)
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid movie id",
		})
		return 0, false
	}
	return movieID, true
}

func (c *Controller) intQuery(ctx *gin.Context, name string) (int, bool) {
	raw := ctx.Query(name)
	if raw == "" {
		return 0, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		c.logger.Warn("invalid query parameter",
			slog.String("param", name),
			slog.String("value", raw),
		)
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid " + name,
		})
		return 0, false
	}
	return v, true
}

func (c *Controller) floatQuery(ctx *gin.Context, name string) (float64, bool) {
	raw := ctx.Query(name)
	if raw == "" {
		return 0, true
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		c.logger.Warn("invalid query parameter",
			slog.String("param", name),
			slog.String("value", raw),
		)
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid " + name,
		})
		return 0, false
	}
	return v, true
}

func splitGenres(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	genres := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			genres = append(genres, trimmed)
		}
	}
	return genres
}
