package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/mpendle/fitstore/internal/config"
	"github.com/mpendle/fitstore/internal/handler"
	"github.com/mpendle/fitstore/internal/middleware"
)

// SetupRouter wires the read-only query surface. The API is a thin shell
// over the services; all semantics live below it.
func SetupRouter(cfg *config.Config, log zerolog.Logger,
	statisticHandler *handler.StatisticHandler,
	activityHandler *handler.ActivityHandler,
	monitorHandler *handler.MonitorHandler) *gin.Engine {

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger(log))

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	if cfg.Server.RateLimit > 0 {
		r.Use(middleware.RateLimit(cfg.Server.RateLimit, time.Minute))
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "fitstore API is running",
		})
	})

	api := r.Group("/api/v1")
	if cfg.Auth.Secret != "" {
		api.Use(middleware.Auth(cfg.Auth.Secret, cfg.Auth.Issuer))
	}
	{
		statistics := api.Group("/statistics")
		{
			statistics.GET("", statisticHandler.Resolve)
			statistics.GET("/journal", statisticHandler.Journal)
			statistics.GET("/quartiles", statisticHandler.Quartiles)
		}

		activities := api.Group("/activities")
		{
			activities.GET("", activityHandler.Activities)
			activities.GET("/journals", activityHandler.Journals)
			activities.GET("/waypoints", activityHandler.Waypoints)
		}

		monitor := api.Group("/monitor")
		{
			monitor.GET("/journals", monitorHandler.Journals)
			monitor.GET("/steps", monitorHandler.Steps)
			monitor.GET("/heart-rate", monitorHandler.HeartRate)
		}
	}

	return r
}
