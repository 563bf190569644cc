package app

import (
	"github.com/gin-gonic/gin"

	"github.com/numberloom/numberloom-backend/internal/platform/logger"
	"github.com/numberloom/numberloom-backend/internal/server"
)

func wireRouter(log *logger.Logger, h Handlers) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		Log:               log,
		HealthHandler:     h.Health,
		QueueHandler:      h.Queue,
		RepositionHandler: h.Reposition,
		HistoryHandler:    h.History,
		PathHandler:       h.Path,
	})
}
