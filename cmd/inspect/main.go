package main

import (
	"fmt"
	"os"
	"queue-bot/internal"
	"queue-bot/repositories"

	"github.com/dgraph-io/badger/v4"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	BadgerFilepath string `envconfig:"INSPECT_BADGER_FILEPATH" required:"true"`
	// INSPECT_COLOURS enables colorized section headers
	Colours bool `envconfig:"INSPECT_COLOURS" default:"true"`
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	// Read only, the bot may be holding the lock
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer db.Close()

	store := repositories.NewDocumentStore(db)
	users, err := repositories.NewUserRepository(store).LoadUsers()
	if err != nil {
		return err
	}
	book, err := repositories.NewEventRepository(store).LoadEvents()
	if err != nil {
		return err
	}
	internal.RenderStore(os.Stdout, users, book, config.Colours)
	return nil
}
