package http_health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const serviceName = "movie-recommendation"

type HealthResponseDTO struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
}

type ServiceInfoResponseDTO struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

type Controller struct{}

func New() *Controller {
	return &Controller{}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/", c.root)
	router.GET("/health", c.health)
}

func (c *Controller) root(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, ServiceInfoResponseDTO{
		Message: "Movie Recommendation Microservice",
		Version: "1.0.0",
		Endpoints: map[string]string{
			"health":          "/health",
			"movies":          "/api/v1/movies",
			"recommendations": "/api/v1/recommendations",
		},
	})
}

func (c *Controller) health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, HealthResponseDTO{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Service:   serviceName,
	})
}
