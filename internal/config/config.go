// Package config resolves runtime settings from the environment and command
// line flags. Flags win over environment variables, which win over defaults.
package config

import (
	"crypto/rand"
	"encoding/binary"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/appengine-ltd/pet-world/internal/game"
	"github.com/appengine-ltd/pet-world/internal/store"
)

type Config struct {
	Store   string `env:"PET_WORLD_STORE" envDefault:"json"`
	SaveDir string `env:"PET_WORLD_SAVE_DIR" envDefault:"saves"`
	// Seed zero means a fresh seed is drawn from crypto/rand.
	Seed    int64  `env:"PET_WORLD_SEED" envDefault:"0"`
	Catalog string `env:"PET_WORLD_CATALOG"`
	Plain   bool   `env:"PET_WORLD_PLAIN"`
	LogFile string `env:"PET_WORLD_LOG_FILE" envDefault:"pet-world.log"`

	ShowVersion bool `env:"-"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads the environment, applies flag overrides from args and validates
// the result. Usage output goes to stderr.
func Load(args []string, stderr io.Writer) (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet("pet-world", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.Store, "store", cfg.Store, "save backend: json, sqlite or bolt")
	fs.StringVar(&cfg.SaveDir, "save-dir", cfg.SaveDir, "directory for save data")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed, 0 for a random one")
	fs.StringVar(&cfg.Catalog, "catalog", cfg.Catalog, "optional YAML file replacing the built-in locations and items")
	fs.BoolVar(&cfg.Plain, "plain", cfg.Plain, "use the line-based console instead of the terminal UI")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "log file used while the terminal UI runs")
	fs.BoolVar(&cfg.ShowVersion, "version", false, "print version and exit")
	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("parse flags: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if _, err := store.ParseKind(c.Store); err != nil {
		return fmt.Errorf("invalid store: %w", err)
	}
	if strings.TrimSpace(c.SaveDir) == "" {
		return fmt.Errorf("save directory is required")
	}
	return nil
}

// StoreKind is the validated backend kind.
func (c Config) StoreKind() store.Kind {
	kind, _ := store.ParseKind(c.Store)
	return kind
}

// LoadCatalog returns the built-in catalog unless an override file is set.
func (c Config) LoadCatalog() (*game.Catalog, error) {
	if strings.TrimSpace(c.Catalog) == "" {
		return game.DefaultCatalog(), nil
	}
	return game.LoadCatalog(c.Catalog)
}

// ResolveSeed returns the configured seed, drawing one when it is zero.
func (c Config) ResolveSeed() (int64, error) {
	if c.Seed != 0 {
		return c.Seed, nil
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0, fmt.Errorf("draw seed: %w", err)
	}
	seed := int64(binary.LittleEndian.Uint64(buf[:]) >> 1)
	if seed == 0 {
		seed = 1
	}
	return seed, nil
}
