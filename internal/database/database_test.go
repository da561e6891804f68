package database

import (
	"path/filepath"
	"testing"

	"movie-shelf/internal/config"
)

func TestInit_PoolSettings(t *testing.T) {
	cfg := config.DatabaseConfig{
		Path:         filepath.Join(t.TempDir(), "test.db"),
		MaxOpenConns: 3,
		MaxIdleConns: 2,
	}

	db, err := Init(cfg)
	if err != nil {
		t.Fatalf("Init error: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	if got := sqlDB.Stats().MaxOpenConnections; got != 3 {
		t.Fatalf("MaxOpenConnections = %d, want 3", got)
	}
}

func TestInit_PoolDefaults(t *testing.T) {
	cfg := config.DatabaseConfig{
		Path: filepath.Join(t.TempDir(), "test.db"),
	}

	db, err := Init(cfg)
	if err != nil {
		t.Fatalf("Init error: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	if got := sqlDB.Stats().MaxOpenConnections; got != 10 {
		t.Fatalf("MaxOpenConnections = %d, want default 10", got)
	}
}

func TestAutoMigrate(t *testing.T) {
	cfg := config.DatabaseConfig{
		Path: filepath.Join(t.TempDir(), "test.db"),
	}

	db, err := Init(cfg)
	if err != nil {
		t.Fatalf("Init error: %v", err)
	}
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("AutoMigrate error: %v", err)
	}

	for _, table := range []string{"users", "movies", "audit_logs"} {
		if !db.Migrator().HasTable(table) {
			t.Errorf("table %q not created", table)
		}
	}
}
