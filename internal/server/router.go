package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/dkarlsen/fitquest/internal/logger"
	"github.com/dkarlsen/fitquest/internal/service"
)

// RouterConfig carries everything the router needs wired in.
type RouterConfig struct {
	Log   *logger.Logger
	Users service.UserService
}

// NewRouter builds the gin engine with the three user operations plus a
// health check.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogger(cfg.Log))

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type"},
		AllowCredentials: true,
	}))

	h := NewUserHandler(cfg.Log, cfg.Users)

	router.GET("/healthcheck", HealthCheck)

	api := router.Group("/api")
	{
		api.POST("/users", h.CreateUser)
		api.GET("/users/:id/dashboard", h.GetDashboard)
		api.POST("/users/:id/missions/:missionID/complete", h.CompleteMission)
	}

	return router
}
