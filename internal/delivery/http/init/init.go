package http_init

import (
	"log"

	"github.com/gin-gonic/gin"
)

const apiPrefix = "/api/v1"

type Controller interface {
	RegisterRoutes(router *gin.RouterGroup)
}

type ControllerPool struct {
	pool     []Controller
	rootPool []Controller
	rg       *gin.RouterGroup
	root     *gin.RouterGroup
	engine   *gin.Engine
}

func NewControllerPool(middleware ...gin.HandlerFunc) *ControllerPool {
	engine := gin.Default()
	engine.Use(middleware...)

	rg := engine.Group(apiPrefix)
	root := engine.Group("")

	return &ControllerPool{
		pool:     make([]Controller, 0, 10),
		rootPool: make([]Controller, 0, 2),
		rg:       rg,
		root:     root,
		engine:   engine,
	}
}

func (pool *ControllerPool) Register() {
	for _, c := range pool.rootPool {
		c.RegisterRoutes(pool.root)
	}
	for _, c := range pool.pool {
		c.RegisterRoutes(pool.rg)
	}
}

func (pool *ControllerPool) RunAll(port string) {
	if err := pool.engine.Run(":" + port); err != nil {
		log.Fatalf("failed to run HTTP server: %v", err)
	}
}

// Add registers a controller under the versioned API prefix.
func (pool *ControllerPool) Add(c Controller) {
	pool.pool = append(pool.pool, c)
}

// AddRoot registers a controller at the server root, outside the API prefix.
func (pool *ControllerPool) AddRoot(c Controller) {
	pool.rootPool = append(pool.rootPool, c)
}
