package progress

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/numberloom/numberloom-backend/internal/data/repos/testutil"
	types "github.com/numberloom/numberloom-backend/internal/domain"
)

func TestRepositionEventRepoAppendAndList(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	repo := NewRepositionEventRepo(db, testutil.Logger(t))
	ctx := context.Background()

	u := testutil.SeedUser(t, tx, "Sam")
	path := testutil.SeedLearningPath(t, tx, "place-value")
	stitches := testutil.SeedStitches(t, tx, path.ID, 3)
	stitchID := stitches[0].ID

	base := time.Now().UTC().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		row := &types.RepositionEvent{
			ID:               uuid.New(),
			UserID:           u.ID,
			LearningPathID:   path.ID,
			StitchID:         stitchID,
			PreviousPosition: 1,
			NewPosition:      i + 2,
			SkipNumber:       i + 1,
			QueueLength:      3,
			CreatedAt:        base.Add(time.Duration(i) * time.Minute),
		}
		if _, err := repo.Append(ctx, tx, row); err != nil {
			t.Fatalf("append event %d: %v", i, err)
		}
	}

	got, err := repo.ListByUserAndStitch(ctx, tx, u.ID, stitchID, 0)
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 events, got %d", len(got))
	}
	// Most recent first.
	for i := 0; i < len(got)-1; i++ {
		if got[i].CreatedAt.Before(got[i+1].CreatedAt) {
			t.Fatalf("events out of order at index %d", i)
		}
	}
	if got[0].SkipNumber != 3 {
		t.Fatalf("expected newest event first, got skip %d", got[0].SkipNumber)
	}
}

func TestRepositionEventRepoListHonorsLimit(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	repo := NewRepositionEventRepo(db, testutil.Logger(t))
	ctx := context.Background()

	u := testutil.SeedUser(t, tx, "Zoe")
	path := testutil.SeedLearningPath(t, tx, "rounding")
	stitches := testutil.SeedStitches(t, tx, path.ID, 1)

	base := time.Now().UTC().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		testutil.SeedRepositionEvent(t, tx, u.ID, path.ID, stitches[0].ID, 1, 2, 1, 1, base.Add(time.Duration(i)*time.Second))
	}

	got, err := repo.ListByUserAndStitch(ctx, tx, u.ID, stitches[0].ID, 2)
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 events with limit 2, got %d", len(got))
	}
}

func TestRepositionEventRepoListScopedToUserAndStitch(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	repo := NewRepositionEventRepo(db, testutil.Logger(t))
	ctx := context.Background()

	u1 := testutil.SeedUser(t, tx, "Kai")
	u2 := testutil.SeedUser(t, tx, "Rae")
	path := testutil.SeedLearningPath(t, tx, "fractions-intro")
	stitches := testutil.SeedStitches(t, tx, path.ID, 2)

	now := time.Now().UTC()
	testutil.SeedRepositionEvent(t, tx, u1.ID, path.ID, stitches[0].ID, 1, 3, 2, 2, now)
	testutil.SeedRepositionEvent(t, tx, u1.ID, path.ID, stitches[1].ID, 2, 1, 1, 2, now)
	testutil.SeedRepositionEvent(t, tx, u2.ID, path.ID, stitches[0].ID, 1, 2, 1, 2, now)

	got, err := repo.ListByUserAndStitch(ctx, tx, u1.ID, stitches[0].ID, 0)
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 event for user+stitch, got %d", len(got))
	}
	if got[0].UserID != u1.ID || got[0].StitchID != stitches[0].ID {
		t.Fatal("event scoped to wrong user or stitch")
	}
}

func TestRepositionEventRepoCountByUserAndPath(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	repo := NewRepositionEventRepo(db, testutil.Logger(t))
	ctx := context.Background()

	u := testutil.SeedUser(t, tx, "Eli")
	path := testutil.SeedLearningPath(t, tx, "ten-frames")
	stitches := testutil.SeedStitches(t, tx, path.ID, 2)

	now := time.Now().UTC()
	testutil.SeedRepositionEvent(t, tx, u.ID, path.ID, stitches[0].ID, 1, 2, 1, 2, now)
	testutil.SeedRepositionEvent(t, tx, u.ID, path.ID, stitches[1].ID, 2, 1, 1, 2, now)

	count, err := repo.CountByUserAndPath(ctx, tx, u.ID, path.ID)
	if err != nil {
		t.Fatalf("count events: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 events, got %d", count)
	}
}
