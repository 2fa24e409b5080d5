package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/appengine-ltd/pet-world/internal/config"
	"github.com/appengine-ltd/pet-world/internal/console"
	"github.com/appengine-ltd/pet-world/internal/game"
	"github.com/appengine-ltd/pet-world/internal/store"
	"github.com/appengine-ltd/pet-world/internal/ui"
)

// version, commit, date are injected at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := config.Load(args, stderr)
	if err != nil {
		return err
	}
	if cfg.ShowVersion {
		fmt.Fprintf(stdout, "Pet World %s (%s) %s\n", version, commit, date)
		return nil
	}

	catalog, err := cfg.LoadCatalog()
	if err != nil {
		return err
	}
	seed, err := cfg.ResolveSeed()
	if err != nil {
		return err
	}
	world := game.NewWorld(catalog, game.NewDice(seed))

	if !cfg.Plain {
		// The terminal belongs to bubbletea, so logs go to a file.
		logFile, err := tea.LogToFile(cfg.LogFile, "pet-world")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer logFile.Close()
	}

	st := openStore(cfg)
	defer st.Close()

	if cfg.Plain {
		err := console.New(stdin, stdout, world, st).Run(ctx)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}

	app := ui.NewApp(ui.AppConfig{
		Version:   version,
		Commit:    commit,
		BuildDate: date,
		World:     world,
		Store:     st,
	})
	err = app.Run(ctx)
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

// openStore falls back to a store that fails every call, so a broken save
// location costs saving but never the session.
func openStore(cfg config.Config) store.Store {
	st, err := store.Open(cfg.StoreKind(), cfg.SaveDir)
	if err != nil {
		log.Printf("store: %v; playing without saves", err)
		return store.Unavailable(err)
	}
	return st
}
