package server

import (
	"github.com/gin-gonic/gin"

	"github.com/numberloom/numberloom-backend/internal/http/handlers"
	"github.com/numberloom/numberloom-backend/internal/http/middleware"
	"github.com/numberloom/numberloom-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log *logger.Logger

	HealthHandler     *handlers.HealthHandler
	QueueHandler      *handlers.QueueHandler
	RepositionHandler *handlers.RepositionHandler
	HistoryHandler    *handlers.HistoryHandler
	PathHandler       *handlers.PathHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.AttachTraceContext())
	router.Use(middleware.RequestLogger(cfg.Log))

	router.GET("/healthcheck", cfg.HealthHandler.HealthCheck)

	api := router.Group("/api")
	{
		api.GET("/paths", cfg.PathHandler.ListPaths)
		paths := api.Group("/users/:user_id/paths/:path_id")
		{
			paths.GET("/next", cfg.QueueHandler.GetNextStitch)
			paths.GET("/queue", cfg.QueueHandler.GetStitchQueue)
			paths.POST("/initialize", cfg.PathHandler.Initialize)
			paths.DELETE("/queue", cfg.PathHandler.Reset)
			paths.POST("/stitches/:stitch_id/reposition", cfg.RepositionHandler.Reposition)
		}
		api.GET("/users/:user_id/stitches/:stitch_id/history", cfg.HistoryHandler.GetHistory)
	}

	return router
}
