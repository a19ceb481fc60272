package http_auth

import (
	"errors"
	"log/slog"
	"net/http"

	http_common "github.com/cinerec/core/internal/delivery/http/common"
	service_simple_auth "github.com/cinerec/core/internal/service/auth/simple"
	"github.com/gin-gonic/gin"
)

type Controller struct {
	service *service_simple_auth.Service
	logger  *slog.Logger
}

func New(
	service *service_simple_auth.Service,
) *Controller {
	return &Controller{
		service: service,
		logger:  slog.Default(),
	}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	auth.POST("", c.auth)
}

type AuthRequestDTO struct {
	Code string `json:"code" binding:"required"`
}

// auth trades the admin code for a session token returned in the
// X-admin-token header.
func (c *Controller) auth(ctx *gin.Context) {
	var req AuthRequestDTO

	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn("invalid request format", "error", err)
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid request format",
		})
		return
	}

	token, err := c.service.Auth(req.Code)
	if err != nil {
		switch {
		case errors.Is(err, service_simple_auth.ErrWrongCode):
			c.logger.Warn("wrong auth code")
			ctx.JSON(http.StatusForbidden, http_common.ErrorResponse{
				Message: "forbidden",
			})
		default:
			c.logger.Error("internal auth error", slog.String("error", err.Error()))
			ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
				Message: "internal error",
			})
		}
		return
	}

	ctx.Header("X-admin-token", token)

	ctx.Status(http.StatusAccepted)
}
