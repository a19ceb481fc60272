package http_auth_middleware

import (
	"log/slog"
	"net/http"

	http_common "github.com/cinerec/core/internal/delivery/http/common"
	"github.com/gin-gonic/gin"
)

const tokenHeader = "X-admin-token"

type TokenValidator interface {
	IsValid(token string) (bool, error)
}

type Middleware struct {
	validator TokenValidator
	logger    *slog.Logger
}

func New(
	validator TokenValidator,
) *Middleware {
	return &Middleware{
		validator: validator,
		logger:    slog.Default(),
	}
}

func (m *Middleware) AuthRequired() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		t := ctx.GetHeader(tokenHeader)
		if t == "" {
			m.logger.Warn("missing admin token header")
			ctx.JSON(http.StatusUnauthorized, http_common.ErrorResponse{
				Message: "no " + tokenHeader + " header",
			})
			ctx.Abort()
			return
		}

		valid, err := m.validator.IsValid(t)
		if err != nil {
			m.logger.Error("token validation failed", slog.String("error", err.Error()))
			ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
				Message: "internal error",
			})
			ctx.Abort()
			return
		}
		if !valid {
			m.logger.Warn("invalid admin token")
			ctx.JSON(http.StatusUnauthorized, http_common.ErrorResponse{
				Message: "invalid token",
			})
			ctx.Abort()
			return
		}
		ctx.Next()
	}
}
