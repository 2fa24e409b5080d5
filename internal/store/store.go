// Package store persists pets between sessions.
//
// Every backend stores one game.PetState per pet name. A missing pet is
// reported as game.ErrNotFound and any storage failure wraps
// game.ErrIOFailure, so callers branch with errors.Is regardless of backend.
package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/appengine-ltd/pet-world/internal/game"
	"github.com/appengine-ltd/pet-world/internal/store/bolt"
	"github.com/appengine-ltd/pet-world/internal/store/jsonfile"
	"github.com/appengine-ltd/pet-world/internal/store/sqlite"
)

// Store loads and saves pets by name.
type Store interface {
	Load(ctx context.Context, name string) (game.PetState, error)
	Save(ctx context.Context, state game.PetState) error
	List(ctx context.Context) ([]string, error)
	Close() error
}

type Kind string

// Database file names used inside the save directory.
const (
	sqliteFile = "pet-world.db"
	boltFile   = "pet-world.bolt"
)

const (
	KindJSON   Kind = "json"
	KindSQLite Kind = "sqlite"
	KindBolt   Kind = "bolt"
)

// Kinds lists the supported backends.
func Kinds() []Kind {
	return []Kind{KindJSON, KindSQLite, KindBolt}
}

// ParseKind resolves a backend name.
func ParseKind(raw string) (Kind, error) {
	kind := Kind(strings.ToLower(strings.TrimSpace(raw)))
	for _, k := range Kinds() {
		if k == kind {
			return k, nil
		}
	}
	return "", game.WrapError(game.KindInvalidSelection, "parse store kind", fmt.Errorf("unknown store %q", raw))
}

// Open opens the backend of the given kind rooted at dir.
func Open(kind Kind, dir string) (Store, error) {
	var (
		s   Store
		err error
	)
	switch kind {
	case KindJSON:
		s, err = openJSON(dir)
	case KindSQLite:
		s, err = openSQLite(dir)
	case KindBolt:
		s, err = openBolt(dir)
	default:
		return nil, game.WrapError(game.KindInvalidSelection, "open store", fmt.Errorf("unknown store %q", kind))
	}
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", kind, err)
	}
	return s, nil
}

func openJSON(dir string) (Store, error) {
	s, err := jsonfile.Open(dir)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func openSQLite(dir string) (Store, error) {
	if err := ensureDir(dir); err != nil {
		return nil, err
	}
	s, err := sqlite.Open(filepath.Join(dir, sqliteFile))
	if err != nil {
		return nil, err
	}
	return s, nil
}

func openBolt(dir string) (Store, error) {
	if err := ensureDir(dir); err != nil {
		return nil, err
	}
	s, err := bolt.Open(filepath.Join(dir, boltFile))
	if err != nil {
		return nil, err
	}
	return s, nil
}

func ensureDir(dir string) error {
	if strings.TrimSpace(dir) == "" {
		return game.NewError(game.KindIOFailure, "save directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return game.WrapError(game.KindIOFailure, "create save directory", err)
	}
	return nil
}

// Unavailable is a Store for when no backend could be opened. Every call
// fails with game.ErrIOFailure wrapping cause, so play continues without
// saves.
func Unavailable(cause error) Store {
	return unavailable{cause: cause}
}

type unavailable struct {
	cause error
}

func (u unavailable) err() error {
	return game.WrapError(game.KindIOFailure, "save storage unavailable", u.cause)
}

func (u unavailable) Load(context.Context, string) (game.PetState, error) {
	return game.PetState{}, u.err()
}

func (u unavailable) Save(context.Context, game.PetState) error { return u.err() }

func (u unavailable) List(context.Context) ([]string, error) { return nil, u.err() }

func (unavailable) Close() error { return nil }
