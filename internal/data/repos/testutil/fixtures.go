package testutil

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	types "github.com/numberloom/numberloom-backend/internal/domain"
)

func SeedUser(tb testing.TB, tx *gorm.DB, displayName string) *types.User {
	tb.Helper()
	row := &types.User{
		ID:          uuid.New(),
		DisplayName: displayName,
	}
	if err := tx.Create(row).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return row
}

func SeedLearningPath(tb testing.TB, tx *gorm.DB, slug string) *types.LearningPath {
	tb.Helper()
	row := &types.LearningPath{
		ID:     uuid.New(),
		Slug:   slug,
		Name:   slug,
		Active: true,
	}
	if err := tx.Create(row).Error; err != nil {
		tb.Fatalf("seed learning path: %v", err)
	}
	return row
}

// SeedStitches creates n stitches on the path with seed positions 1..n.
func SeedStitches(tb testing.TB, tx *gorm.DB, pathID uuid.UUID, n int) []*types.Stitch {
	tb.Helper()
	rows := make([]*types.Stitch, 0, n)
	for i := 1; i <= n; i++ {
		rows = append(rows, &types.Stitch{
			ID:             uuid.New(),
			LearningPathID: pathID,
			Name:           fmt.Sprintf("stitch-%02d", i),
			Difficulty:     i,
			SeedPosition:   i,
		})
	}
	if err := tx.Create(&rows).Error; err != nil {
		tb.Fatalf("seed stitches: %v", err)
	}
	return rows
}

// SeedQueue creates a queue row whose position array follows the given stitch
// order, version 0.
func SeedQueue(tb testing.TB, tx *gorm.DB, userID, pathID uuid.UUID, stitchIDs []uuid.UUID) *types.StitchQueue {
	tb.Helper()
	raw, err := json.Marshal(stitchIDs)
	if err != nil {
		tb.Fatalf("encode positions: %v", err)
	}
	row := &types.StitchQueue{
		ID:             uuid.New(),
		UserID:         userID,
		LearningPathID: pathID,
		Positions:      datatypes.JSON(raw),
		Version:        0,
	}
	if err := tx.Create(row).Error; err != nil {
		tb.Fatalf("seed queue: %v", err)
	}
	return row
}

func SeedRepositionEvent(tb testing.TB, tx *gorm.DB, userID, pathID, stitchID uuid.UUID, prev, next, skip, qlen int, at time.Time) *types.RepositionEvent {
	tb.Helper()
	row := &types.RepositionEvent{
		ID:               uuid.New(),
		UserID:           userID,
		LearningPathID:   pathID,
		StitchID:         stitchID,
		PreviousPosition: prev,
		NewPosition:      next,
		SkipNumber:       skip,
		QueueLength:      qlen,
		CreatedAt:        at,
	}
	if err := tx.Create(row).Error; err != nil {
		tb.Fatalf("seed reposition event: %v", err)
	}
	return row
}
