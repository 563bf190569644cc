package domain

import (
	"github.com/numberloom/numberloom-backend/internal/domain/catalog"
	"github.com/numberloom/numberloom-backend/internal/domain/progress"
	"github.com/numberloom/numberloom-backend/internal/domain/user"
)

type User = user.User

type LearningPath = catalog.LearningPath
type Stitch = catalog.Stitch

type StitchQueue = progress.StitchQueue
type RepositionEvent = progress.RepositionEvent
