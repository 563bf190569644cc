package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/numberloom/numberloom-backend/internal/data/repos"
	types "github.com/numberloom/numberloom-backend/internal/domain"
	"github.com/numberloom/numberloom-backend/internal/scheduler"
)

// queueLoader resolves a (user, path) pair to its queue row, mapping each
// missing piece to the right not-found error. Precedence is user first, then
// path, then queue: a request for an unknown user reports the user even when
// the path is unknown too. A path that exists in the catalog but has no queue
// row for this user reports the path as not found, since from the learner's
// side the path was never started.
type queueLoader struct {
	users  repos.UserRepo
	paths  repos.LearningPathRepo
	queues repos.StitchQueueRepo
}

func (l queueLoader) resolvePath(ctx context.Context, tx *gorm.DB, userID, pathID uuid.UUID) (*types.LearningPath, error) {
	ok, err := l.users.Exists(ctx, tx, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", scheduler.ErrUserNotFound, userID)
	}
	path, err := l.paths.GetByID(ctx, tx, pathID)
	if err != nil {
		return nil, err
	}
	if path == nil {
		return nil, fmt.Errorf("%w: %s", scheduler.ErrLearningPathNotFound, pathID)
	}
	return path, nil
}

func (l queueLoader) load(ctx context.Context, tx *gorm.DB, userID, pathID uuid.UUID) (*types.StitchQueue, error) {
	if _, err := l.resolvePath(ctx, tx, userID, pathID); err != nil {
		return nil, err
	}
	q, err := l.queues.GetByUserAndPath(ctx, tx, userID, pathID)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, fmt.Errorf("%w: no queue for path %s", scheduler.ErrLearningPathNotFound, pathID)
	}
	return q, nil
}
