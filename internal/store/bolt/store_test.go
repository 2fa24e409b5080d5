package bolt

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/appengine-ltd/pet-world/internal/game"
	"go.etcd.io/bbolt"
)

func TestPetStoreSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pets.bolt")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	state := game.PetState{Name: "Zephyr", Element: game.ElementWind, Level: 5, Experience: 3, Items: map[string]int{"Small Healing Potion": 1}, Health: 70}
	if err := store.Save(context.Background(), state); err != nil {
		t.Fatalf("save pet: %v", err)
	}
	loaded, err := store.Load(context.Background(), "Zephyr")
	if err != nil {
		t.Fatalf("load pet: %v", err)
	}
	if loaded.Level != 5 || loaded.Health != 70 || loaded.Items["Small Healing Potion"] != 1 {
		t.Fatalf("loaded %+v", loaded)
	}
}

func TestPetStoreCorruptPayload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pets.bolt")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	err = store.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(petBucket)).Put(petKey("Bad"), []byte("{"))
	})
	if err != nil {
		t.Fatalf("seed corrupt payload: %v", err)
	}
	if _, err := store.Load(context.Background(), "Bad"); !errors.Is(err, game.ErrIOFailure) {
		t.Fatalf("expected ErrIOFailure, got %v", err)
	}
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open(" "); !errors.Is(err, game.ErrIOFailure) {
		t.Fatalf("expected ErrIOFailure, got %v", err)
	}
}
