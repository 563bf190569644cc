package repos

import (
	"github.com/numberloom/numberloom-backend/internal/data/repos/catalog"
	"github.com/numberloom/numberloom-backend/internal/data/repos/progress"
	"github.com/numberloom/numberloom-backend/internal/data/repos/user"
)

type UserRepo = user.UserRepo

type LearningPathRepo = catalog.LearningPathRepo
type StitchRepo = catalog.StitchRepo

type StitchQueueRepo = progress.StitchQueueRepo
type RepositionEventRepo = progress.RepositionEventRepo

var (
	NewUserRepo            = user.NewUserRepo
	NewLearningPathRepo    = catalog.NewLearningPathRepo
	NewStitchRepo          = catalog.NewStitchRepo
	NewStitchQueueRepo     = progress.NewStitchQueueRepo
	NewRepositionEventRepo = progress.NewRepositionEventRepo
)
