package app

import (
	"gorm.io/gorm"

	redisclient "github.com/numberloom/numberloom-backend/internal/clients/redis"
	"github.com/numberloom/numberloom-backend/internal/platform/logger"
	"github.com/numberloom/numberloom-backend/internal/scheduler"
	"github.com/numberloom/numberloom-backend/internal/services"
)

type Services struct {
	Repositioning services.RepositioningService
	Queue         services.QueueService
	History       services.HistoryService
	Path          services.PathService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, r Repos) Services {
	log.Info("wiring services")

	locks := scheduler.NewKeyedMutex()
	snaps := scheduler.NewSnapshotCache()

	var queueCache redisclient.QueueCache
	if cfg.RedisAddr != "" {
		qc, err := redisclient.NewQueueCache(log)
		if err != nil {
			log.Warn("redis queue cache unavailable, running without it", "error", err)
		} else {
			queueCache = qc
		}
	}

	return Services{
		Repositioning: services.NewRepositioningService(db, log, r.User, r.LearningPath, r.StitchQueue, r.RepositionEvent, locks, snaps, queueCache, cfg.MaxRetries),
		Queue:         services.NewQueueService(db, log, r.User, r.LearningPath, r.StitchQueue, r.Stitch, snaps, queueCache),
		History:       services.NewHistoryService(db, log, r.User, r.Stitch, r.RepositionEvent),
		Path:          services.NewPathService(db, log, r.User, r.LearningPath, r.StitchQueue, r.Stitch, locks, snaps, queueCache),
	}
}
