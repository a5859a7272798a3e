package main

import (
	"address-book/bot"
	"address-book/internal"
	"address-book/repositories"
	"address-book/services"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
)

// Exit codes for the bot.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
	}
	os.Exit(code)
}

// run wires configuration, storage and the session, and keeps deferred cleanup ahead of os.Exit.
func run() (int, error) {
	config, err := internal.LoadConfig()
	if err != nil {
		return exitConfig, err
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	repository, closeStorage, err := openRepository(config, log)
	if err != nil {
		return exitRuntime, err
	}
	defer closeStorage()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	book := services.NewAddressBook(repository, log)
	dispatcher := bot.NewDispatcher(book, log, config.PageSize, time.Now)
	session := bot.NewSession(dispatcher, log, config.Colours)

	if err = session.Run(ctx, os.Stdin, os.Stdout); err != nil {
		return exitRuntime, err
	}
	log.Debug("Bot stopped cleanly", "session_contacts", book.Len())
	return exitOK, nil
}

func openRepository(config internal.Config, log *slog.Logger) (repositories.IContactRepository, func(), error) {
	switch config.StorageBackend {
	case internal.BackendBadger:
		db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
			WithLoggingLevel(badger.WARNING))
		if err != nil {
			return nil, nil, fmt.Errorf("database opening failed: %w", err)
		}
		closeDB := func() {
			log.Debug("Closing BadgerDB...")
			_ = db.Close()
		}
		return repositories.NewBadgerRepository(db, log), closeDB, nil
	default:
		repository, err := repositories.NewJSONFileRepository(config.ContactsFilepath, log)
		if err != nil {
			return nil, nil, err
		}
		return repository, func() {}, nil
	}
}
