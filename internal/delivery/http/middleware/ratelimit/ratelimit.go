package http_ratelimit_middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	http_common "github.com/cinerec/core/internal/delivery/http/common"
	"github.com/gin-gonic/gin"
)

const (
	tokenHeader  = "X-admin-token"
	window       = time.Minute
	defaultLimit = 60
)

type Counter interface {
	Incr(key string, window time.Duration) (int64, error)
}

type Middleware struct {
	counter Counter
	limit   int
	logger  *slog.Logger
}

func New(
	counter Counter,
	limit int,
) *Middleware {
	if limit <= 0 {
		limit = defaultLimit
	}

	return &Middleware{
		counter: counter,
		limit:   limit,
		logger:  slog.Default(),
	}
}

// Limit counts requests per caller over a fixed one-minute window.
// Authenticated admins are keyed by token, everyone else by client IP.
// A broken counter lets traffic through rather than blocking the API.
func (m *Middleware) Limit() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		count, err := m.counter.Incr(clientKey(ctx), window)
		if err != nil {
			m.logger.Warn("rate limit counter unavailable", slog.String("error", err.Error()))
			ctx.Next()
			return
		}

		if count > int64(m.limit) {
			ctx.Header("Retry-After", "60")
			ctx.JSON(http.StatusTooManyRequests, http_common.ErrorResponse{
				Message: fmt.Sprintf("Rate limit exceeded. Maximum %d requests per minute.", m.limit),
			})
			ctx.Abort()
			return
		}

		ctx.Next()
	}
}

func clientKey(ctx *gin.Context) string {
	if t := ctx.GetHeader(tokenHeader); t != "" {
		return "admin:" + t
	}
	return "ip:" + ctx.ClientIP()
}
