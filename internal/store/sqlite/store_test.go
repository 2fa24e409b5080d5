package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/appengine-ltd/pet-world/internal/game"
)

func TestReopenKeepsPetsAndSkipsAppliedMigrations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pets.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	state := game.PetState{Name: "Cinder", Element: game.ElementFire, Level: 2, Gold: 5, Items: map[string]int{}}
	if err := s.Save(context.Background(), state); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()

	var applied int
	if err := s.sqlDB.QueryRow(`SELECT COUNT(1) FROM schema_migrations`).Scan(&applied); err != nil {
		t.Fatalf("count migrations: %v", err)
	}
	if applied != 1 {
		t.Fatalf("applied migrations=%d want 1", applied)
	}
	got, err := s.Load(context.Background(), "Cinder")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Gold != 5 || got.Level != 2 {
		t.Fatalf("loaded %+v", got)
	}
}

func TestExtractUpMigration(t *testing.T) {
	content := "-- +migrate Up\nCREATE TABLE a (x INTEGER);\n-- +migrate Down\nDROP TABLE a;\n"
	if got := extractUpMigration(content); got != "\nCREATE TABLE a (x INTEGER);\n" {
		t.Fatalf("got %q", got)
	}
	if got := extractUpMigration("SELECT 1;"); got != "SELECT 1;" {
		t.Fatalf("plain content should pass through, got %q", got)
	}
}
