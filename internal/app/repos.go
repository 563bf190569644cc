package app

import (
	"gorm.io/gorm"

	"github.com/numberloom/numberloom-backend/internal/data/repos"
	"github.com/numberloom/numberloom-backend/internal/platform/logger"
)

type Repos struct {
	User            repos.UserRepo
	LearningPath    repos.LearningPathRepo
	Stitch          repos.StitchRepo
	StitchQueue     repos.StitchQueueRepo
	RepositionEvent repos.RepositionEventRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("wiring repos")
	return Repos{
		User:            repos.NewUserRepo(db, log),
		LearningPath:    repos.NewLearningPathRepo(db, log),
		Stitch:          repos.NewStitchRepo(db, log),
		StitchQueue:     repos.NewStitchQueueRepo(db, log),
		RepositionEvent: repos.NewRepositionEventRepo(db, log),
	}
}
