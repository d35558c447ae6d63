package server

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cutroom/roughcut/config"
	"github.com/cutroom/roughcut/internal/assembly"
	"github.com/cutroom/roughcut/internal/catalog"
	"github.com/cutroom/roughcut/internal/export"
	"github.com/cutroom/roughcut/internal/store"
)

// Server handles HTTP requests for the timeline assembler.
type Server struct {
	cfg      *config.Config
	router   *gin.Engine
	store    store.Store
	catalog  catalog.Catalog
	engine   *assembly.Engine
	exporter *export.Exporter
}

// New creates a new HTTP server instance.
func New(cfg *config.Config, st store.Store, cat catalog.Catalog, exp *export.Exporter) *Server {
	gin.SetMode(gin.ReleaseMode)

	server := &Server{
		cfg:      cfg,
		store:    st,
		catalog:  cat,
		engine:   assembly.New(),
		exporter: exp,
	}

	router := gin.Default()
	server.setupRoutes(router)
	server.router = router
	return server
}

// setupRoutes configures the HTTP routes.
func (s *Server) setupRoutes(router *gin.Engine) {
	// Add CORS middleware
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	router.GET("/health", s.healthCheck)

	api := router.Group("/api/v1")
	{
		api.POST("/timelines", s.createTimeline)
		api.GET("/timelines", s.listTimelines)
		api.GET("/timelines/:id", s.getTimeline)
		api.DELETE("/timelines/:id", s.deleteTimeline)

		api.POST("/timelines/:id/assets", s.addAssets)
		api.GET("/timelines/:id/assets", s.listAssets)

		api.POST("/timelines/:id/assemble", s.assembleTimeline)
		api.POST("/timelines/:id/export", s.exportTimeline)
	}
}

// Start starts the HTTP server.
func (s *Server) Start(port string) error {
	return s.router.Run(":" + port)
}

// healthCheck handles health check requests.
func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":    "ok",
		"timestamp": time.Now(),
		"service":   "roughcut",
	})
}
