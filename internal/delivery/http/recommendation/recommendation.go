package http_recommendation

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	http_common "github.com/cinerec/core/internal/delivery/http/common"
	http_movie "github.com/cinerec/core/internal/delivery/http/movie"
	usecase_recommendation "github.com/cinerec/core/internal/usecase/recommendation"
	"github.com/gin-gonic/gin"
)

type Controller struct {
	uc *usecase_recommendation.Usecase

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(uc *usecase_recommendation.Usecase, opts ...ControllerOption) *Controller {
	c := &Controller{
		uc:     uc,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	recs := router.Group("/recommendations")
	recs.POST("", c.recommend)
	recs.GET("/random", c.randomRecommendations)
	recs.GET("/genre/:genre", c.recommendationsByGenre)
	recs.GET("/director/:director", c.recommendationsByDirector)
}

func (c *Controller) recommend(ctx *gin.Context) {
	var req RecommendationRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn("invalid request body", slog.String("error", err.Error()))
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid request format",
		})
		return
	}

	resp, err := c.uc.Recommend(ctx.Request.Context(), req.ConvertToRequest())
	if err != nil {
		c.respondError(ctx, err, "failed to recommend movies")
		return
	}

	ctx.JSON(http.StatusOK, RecommendationResponseDTO{
		UserID:          req.UserID,
		Recommendations: http_movie.ConvertFromMovieList(resp.Movies),
		Timestamp:       resp.GeneratedAt,
		Total:           resp.Total,
	})
}

func (c *Controller) randomRecommendations(ctx *gin.Context) {
	limit, ok := c.intQuery(ctx, "limit")
	if !ok {
		return
	}

	movies, err := c.uc.Random(ctx.Request.Context(), limit)
	if err != nil {
		c.respondError(ctx, err, "failed to pick random movies")
		return
	}

	ctx.JSON(http.StatusOK, RecommendationResponseDTO{
		Recommendations: http_movie.ConvertFromMovieList(movies),
		Timestamp:       time.Now().UTC(),
		Total:           len(movies),
	})
}

func (c *Controller) recommendationsByGenre(ctx *gin.Context) {
	genre := ctx.Param("genre")
	limit, ok := c.intQuery(ctx, "limit")
	if !ok {
		return
	}

	scored, err := c.uc.ByGenre(ctx.Request.Context(), genre, limit)
	if err != nil {
		c.respondError(ctx, err, "failed to recommend by genre")
		return
	}

	ctx.JSON(http.StatusOK, GenreRecommendationsResponseDTO{
		Genre:           genre,
		Recommendations: ConvertFromScoredList(scored),
		Total:           len(scored),
	})
}

func (c *Controller) recommendationsByDirector(ctx *gin.Context) {
	director := ctx.Param("director")
	limit, ok := c.intQuery(ctx, "limit")
	if !ok {
		return
	}

	scored, err := c.uc.ByDirector(ctx.Request.Context(), director, limit)
	if err != nil {
		c.respondError(ctx, err, "failed to recommend by director")
		return
	}

	ctx.JSON(http.StatusOK, DirectorRecommendationsResponseDTO{
		Director:        director,
		Recommendations: ConvertFromScoredList(scored),
		Total:           len(scored),
	})
}

func (c *Controller) respondError(ctx *gin.Context, err error, msg string) {
	c.logger.Error(msg, slog.String("error", err.Error()))

	if errors.Is(err, usecase_recommendation.ErrInvalidInput) {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid request",
		})
		return
	}
	ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
		Message: "internal error",
	})
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
