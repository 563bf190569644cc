package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/numberloom/numberloom-backend/internal/scheduler"
)

func TestHistoryRecordsEveryRepositioning(t *testing.T) {
	f := newServiceFixture(t)
	u, path, stitches := f.seedPath(t, 6)
	ctx := context.Background()

	// Reposition the same stitch twice: once from the head, once from
	// wherever it landed.
	if _, err := f.repositioning.RepositionStitch(ctx, u.ID, path.ID, stitches[0].ID, perfect()); err != nil {
		t.Fatalf("first reposition: %v", err)
	}
	if _, err := f.repositioning.RepositionStitch(ctx, u.ID, path.ID, stitches[0].ID, struggling()); err != nil {
		t.Fatalf("second reposition: %v", err)
	}

	events, err := f.history.GetRepositioningHistory(ctx, u.ID, stitches[0].ID, 0)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 ledger rows, got %d", len(events))
	}
	// Most recent first: the struggling rep came last. The ledger stores the
	// applied skip, so the perfect run on a 6-stitch queue reads 5, not the
	// raw band value.
	if events[0].SkipNumber != 1 {
		t.Fatalf("newest event skip: got %d want 1", events[0].SkipNumber)
	}
	if events[1].SkipNumber != 5 {
		t.Fatalf("oldest event skip: got %d want 5", events[1].SkipNumber)
	}
	if events[1].NewPosition != 5 {
		t.Fatalf("oldest event clamped position: got %d want 5", events[1].NewPosition)
	}
}

func TestHistoryEmptyForUntouchedStitch(t *testing.T) {
	f := newServiceFixture(t)
	u, _, stitches := f.seedPath(t, 3)

	events, err := f.history.GetRepositioningHistory(context.Background(), u.ID, stitches[2].ID, 0)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("expected empty history, got %d rows", len(events))
	}
}

func TestHistoryErrorTaxonomy(t *testing.T) {
	f := newServiceFixture(t)
	u, _, stitches := f.seedPath(t, 2)
	ctx := context.Background()

	if _, err := f.history.GetRepositioningHistory(ctx, uuid.New(), stitches[0].ID, 0); !errors.Is(err, scheduler.ErrUserNotFound) {
		t.Fatalf("unknown user: got %v", err)
	}
	if _, err := f.history.GetRepositioningHistory(ctx, u.ID, uuid.New(), 0); !errors.Is(err, scheduler.ErrStitchNotFound) {
		t.Fatalf("unknown stitch: got %v", err)
	}
}
