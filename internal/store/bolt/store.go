// Package bolt stores pets in a BoltDB bucket keyed by name.
package bolt

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/appengine-ltd/pet-world/internal/game"
	"go.etcd.io/bbolt"
)

const petBucket = "pets"

// Store provides a BoltDB-backed pet store.
type Store struct {
	db *bbolt.DB
}

// Open opens a BoltDB-backed store at the provided path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, game.NewError(game.KindIOFailure, "storage path is required")
	}

	db, err := bbolt.Open(filepath.Clean(path), 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, game.WrapError(game.KindIOFailure, "open storage db", err)
	}

	store := &Store{db: db}
	if err := store.ensureBuckets(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying BoltDB database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Save persists a pet record.
func (s *Store) Save(ctx context.Context, state game.PetState) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.db == nil {
		return game.NewError(game.KindIOFailure, "storage is not configured")
	}
	name := strings.TrimSpace(state.Name)
	if name == "" {
		return game.NewError(game.KindInvalidSelection, "pet name is required")
	}

	payload, err := json.Marshal(state)
	if err != nil {
		return game.WrapError(game.KindIOFailure, "marshal pet", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(petBucket))
		if bucket == nil {
			return fmt.Errorf("pet bucket is missing")
		}
		return bucket.Put(petKey(name), payload)
	})
	if err != nil {
		return game.WrapError(game.KindIOFailure, "save pet", err)
	}
	return nil
}

// Load fetches a pet record by name.
func (s *Store) Load(ctx context.Context, name string) (game.PetState, error) {
	if err := ctx.Err(); err != nil {
		return game.PetState{}, err
	}
	if s == nil || s.db == nil {
		return game.PetState{}, game.NewError(game.KindIOFailure, "storage is not configured")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return game.PetState{}, game.NewError(game.KindInvalidSelection, "pet name is required")
	}

	var (
		state game.PetState
		found bool
	)
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(petBucket))
		if bucket == nil {
			return fmt.Errorf("pet bucket is missing")
		}
		payload := bucket.Get(petKey(name))
		if payload == nil {
			return nil
		}
		found = true
		if err := json.Unmarshal(payload, &state); err != nil {
			return fmt.Errorf("unmarshal pet: %w", err)
		}
		return nil
	})
	if err != nil {
		return game.PetState{}, game.WrapError(game.KindIOFailure, "load pet", err)
	}
	if !found {
		return game.PetState{}, game.WrapError(game.KindNotFound, "load pet", fmt.Errorf("no save for %q", name))
	}
	return state, nil
}

// List returns every stored pet name in key order.
func (s *Store) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.db == nil {
		return nil, game.NewError(game.KindIOFailure, "storage is not configured")
	}
	var names []string
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(petBucket))
		if bucket == nil {
			return fmt.Errorf("pet bucket is missing")
		}
		return bucket.ForEach(func(k, _ []byte) error {
			names = append(names, string(k))
			return nil
		})
	})
	if err != nil {
		return nil, game.WrapError(game.KindIOFailure, "list pets", err)
	}
	return names, nil
}

func (s *Store) ensureBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte(petBucket)); err != nil {
			return game.WrapError(game.KindIOFailure, "create pet bucket", err)
		}
		return nil
	})
}

func petKey(name string) []byte {
	return []byte(name)
}
