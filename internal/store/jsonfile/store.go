// Package jsonfile stores each pet as an indented JSON document named
// save_<name>.json inside a directory.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/appengine-ltd/pet-world/internal/game"
)

const (
	filePrefix = "save_"
	fileSuffix = ".json"
)

// Store is a directory of JSON save files.
type Store struct {
	dir string
}

// Open uses dir for saves. The directory is created by the first Save.
func Open(dir string) (*Store, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, game.NewError(game.KindIOFailure, "save directory is required")
	}
	return &Store{dir: filepath.Clean(dir)}, nil
}

func (s *Store) Close() error { return nil }

// Path is the save file used for a pet name.
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, filePrefix+fileSafe(name)+fileSuffix)
}

func (s *Store) Load(ctx context.Context, name string) (game.PetState, error) {
	if err := ctx.Err(); err != nil {
		return game.PetState{}, err
	}
	if strings.TrimSpace(name) == "" {
		return game.PetState{}, game.NewError(game.KindInvalidSelection, "pet name is required")
	}
	data, err := os.ReadFile(s.Path(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return game.PetState{}, game.WrapError(game.KindNotFound, "load pet", fmt.Errorf("no save for %q", name))
		}
		return game.PetState{}, game.WrapError(game.KindIOFailure, "read save", err)
	}
	var state game.PetState
	if err := json.Unmarshal(data, &state); err != nil {
		return game.PetState{}, game.WrapError(game.KindIOFailure, "decode save", err)
	}
	if state.Name != name {
		return game.PetState{}, game.WrapError(game.KindNotFound, "load pet", fmt.Errorf("%s holds %q, not %q", filepath.Base(s.Path(name)), state.Name, name))
	}
	return state, nil
}

func (s *Store) Save(ctx context.Context, state game.PetState) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(state.Name) == "" {
		return game.NewError(game.KindInvalidSelection, "pet name is required")
	}
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return game.WrapError(game.KindIOFailure, "encode save", err)
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return game.WrapError(game.KindIOFailure, "create save directory", err)
	}
	if err := os.WriteFile(s.Path(state.Name), data, 0o600); err != nil {
		return game.WrapError(game.KindIOFailure, "write save", err)
	}
	return nil
}

// List reads the pet names of every readable save file. Unreadable files are
// logged and skipped.
func (s *Store) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	matches, err := filepath.Glob(filepath.Join(s.dir, filePrefix+"*"+fileSuffix))
	if err != nil {
		return nil, game.WrapError(game.KindIOFailure, "list saves", err)
	}
	names := make([]string, 0, len(matches))
	for _, path := range matches {
		data, err := os.ReadFile(path)
		if err != nil {
			log.Printf("jsonfile: skip %s: %v", path, err)
			continue
		}
		var state game.PetState
		if err := json.Unmarshal(data, &state); err != nil || strings.TrimSpace(state.Name) == "" {
			log.Printf("jsonfile: skip %s: not a pet save", path)
			continue
		}
		names = append(names, state.Name)
	}
	sort.Strings(names)
	return names, nil
}

// fileSafe keeps letters, digits, '-' and '_' and writes every other byte as
// %XX, so distinct names never share a file.
func fileSafe(name string) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-', c == '_':
			b.WriteByte(c)
		default:
			b.WriteByte('%')
			b.WriteByte(hex[c>>4])
			b.WriteByte(hex[c&0x0f])
		}
	}
	return b.String()
}
