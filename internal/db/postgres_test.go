package db

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	types "github.com/numberloom/numberloom-backend/internal/domain"
	"github.com/numberloom/numberloom-backend/internal/platform/logger"
)

func TestSqliteModeBootsAndMigrates(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", filepath.Join(t.TempDir(), "scheduler.db"))

	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}

	svc, err := NewPostgresService(log)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := svc.AutoMigrateAll(); err != nil {
		t.Fatalf("automigrate on sqlite: %v", err)
	}

	// The migrated schema must accept writes and fill timestamps without
	// relying on database-specific defaults.
	u := &types.User{ID: uuid.New(), DisplayName: "local-dev"}
	if err := svc.DB().Create(u).Error; err != nil {
		t.Fatalf("insert user on sqlite: %v", err)
	}
	var got types.User
	if err := svc.DB().Where("id = ?", u.ID).First(&got).Error; err != nil {
		t.Fatalf("read user back: %v", err)
	}
	if got.CreatedAt.IsZero() || got.UpdatedAt.IsZero() {
		t.Fatal("timestamps not populated on sqlite")
	}
}
