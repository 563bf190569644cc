package user

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/numberloom/numberloom-backend/internal/data/repos/testutil"
	types "github.com/numberloom/numberloom-backend/internal/domain"
)

func TestUserRepoCreateAndGet(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	repo := NewUserRepo(db, testutil.Logger(t))
	ctx := context.Background()

	row := &types.User{ID: uuid.New(), DisplayName: "Ada"}
	created, err := repo.Create(ctx, tx, []*types.User{row})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if len(created) != 1 || created[0].ID != row.ID {
		t.Fatalf("unexpected create result: %+v", created)
	}

	got, err := repo.GetByID(ctx, tx, row.ID)
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if got == nil {
		t.Fatal("expected user, got nil")
	}
	if got.DisplayName != "Ada" {
		t.Fatalf("display name mismatch: got %q", got.DisplayName)
	}
}

func TestUserRepoGetMissingReturnsNil(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	repo := NewUserRepo(db, testutil.Logger(t))
	ctx := context.Background()

	got, err := repo.GetByID(ctx, tx, uuid.New())
	if err != nil {
		t.Fatalf("get missing user: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for missing user, got %+v", got)
	}

	got, err = repo.GetByID(ctx, tx, uuid.Nil)
	if err != nil {
		t.Fatalf("get nil-id user: %v", err)
	}
	if got != nil {
		t.Fatal("expected nil for nil id")
	}
}

func TestUserRepoExists(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	repo := NewUserRepo(db, testutil.Logger(t))
	ctx := context.Background()

	seeded := testutil.SeedUser(t, tx, "Grace")

	ok, err := repo.Exists(ctx, tx, seeded.ID)
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if !ok {
		t.Fatal("expected seeded user to exist")
	}

	ok, err = repo.Exists(ctx, tx, uuid.New())
	if err != nil {
		t.Fatalf("exists (missing): %v", err)
	}
	if ok {
		t.Fatal("expected missing user to not exist")
	}
}
