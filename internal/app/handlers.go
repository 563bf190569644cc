package app

import (
	"github.com/numberloom/numberloom-backend/internal/http/handlers"
	"github.com/numberloom/numberloom-backend/internal/platform/logger"
)

type Handlers struct {
	Health     *handlers.HealthHandler
	Queue      *handlers.QueueHandler
	Reposition *handlers.RepositionHandler
	History    *handlers.HistoryHandler
	Path       *handlers.PathHandler
}

func wireHandlers(log *logger.Logger, s Services) Handlers {
	log.Info("wiring handlers")
	return Handlers{
		Health:     handlers.NewHealthHandler(),
		Queue:      handlers.NewQueueHandler(s.Queue),
		Reposition: handlers.NewRepositionHandler(s.Repositioning),
		History:    handlers.NewHistoryHandler(s.History),
		Path:       handlers.NewPathHandler(s.Path),
	}
}
