// Package sqlite stores pets in a SQLite database, one JSON payload per row.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/appengine-ltd/pet-world/internal/game"
	"github.com/appengine-ltd/pet-world/internal/store/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store persists pets in SQLite.
type Store struct {
	sqlDB *sql.DB
}

// Open opens the database at path and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, game.NewError(game.KindIOFailure, "storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, game.WrapError(game.KindIOFailure, "open sqlite db", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, game.WrapError(game.KindIOFailure, "ping sqlite db", err)
	}
	if err := applyMigrations(context.Background(), sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, game.WrapError(game.KindIOFailure, "run migrations", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func (s *Store) Load(ctx context.Context, name string) (game.PetState, error) {
	if err := ctx.Err(); err != nil {
		return game.PetState{}, err
	}
	if s == nil || s.sqlDB == nil {
		return game.PetState{}, game.NewError(game.KindIOFailure, "storage is not configured")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return game.PetState{}, game.NewError(game.KindInvalidSelection, "pet name is required")
	}

	var payload string
	err := s.sqlDB.QueryRowContext(ctx, `SELECT payload FROM pets WHERE name = ?`, name).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return game.PetState{}, game.WrapError(game.KindNotFound, "load pet", fmt.Errorf("no save for %q", name))
		}
		return game.PetState{}, game.WrapError(game.KindIOFailure, "query pet", err)
	}
	var state game.PetState
	if err := json.Unmarshal([]byte(payload), &state); err != nil {
		return game.PetState{}, game.WrapError(game.KindIOFailure, "decode pet", err)
	}
	return state, nil
}

func (s *Store) Save(ctx context.Context, state game.PetState) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return game.NewError(game.KindIOFailure, "storage is not configured")
	}
	name := strings.TrimSpace(state.Name)
	if name == "" {
		return game.NewError(game.KindInvalidSelection, "pet name is required")
	}
	payload, err := json.Marshal(state)
	if err != nil {
		return game.WrapError(game.KindIOFailure, "encode pet", err)
	}
	_, err = s.sqlDB.ExecContext(ctx, `
INSERT INTO pets (name, payload, updated_at) VALUES (?, ?, ?)
ON CONFLICT(name) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at
`, name, string(payload), time.Now().UTC().UnixMilli())
	if err != nil {
		return game.WrapError(game.KindIOFailure, "save pet", err)
	}
	return nil
}

func (s *Store) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, game.NewError(game.KindIOFailure, "storage is not configured")
	}
	rows, err := s.sqlDB.QueryContext(ctx, `SELECT name FROM pets ORDER BY name`)
	if err != nil {
		return nil, game.WrapError(game.KindIOFailure, "list pets", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, game.WrapError(game.KindIOFailure, "scan pet name", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, game.WrapError(game.KindIOFailure, "list pets", err)
	}
	return names, nil
}
