package e2e

import (
	"address-book/bot"
	"address-book/internal"
	"address-book/repositories"
	"address-book/services"
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/suite"
)

type BaseSessionSuite struct {
	suite.Suite
	Config Config
	dir    string
}

// SetupSuite loads the environment configuration before running tests
func (s *BaseSessionSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	s.Require().Contains([]string{internal.BackendJSON, internal.BackendBadger}, s.Config.StorageBackend)
}

// SetupTest gives every scenario its own empty store
func (s *BaseSessionSuite) SetupTest() {
	s.dir = s.T().TempDir()
}

// Session runs one bot session, as a separate process run would, and returns what it printed.
// Sessions of the same test share their store.
func (s *BaseSessionSuite) Session(name string, lines ...string) string {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)

	log := logs.GetLoggerFromLevel(slog.LevelWarn)
	repository, closeStorage := s.openRepository(log)
	defer closeStorage()

	book := services.NewAddressBook(repository, log)
	dispatcher := bot.NewDispatcher(book, log, 10, time.Now)
	session := bot.NewSession(dispatcher, log, false)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var out bytes.Buffer
	err := session.Run(ctx, strings.NewReader(strings.Join(lines, "\n")+"\n"), &out)
	s.Require().NoError(err)

	if s.Config.DebugTranscript {
		s.T().Log(out.String())
	}
	return out.String()
}

func (s *BaseSessionSuite) openRepository(log *slog.Logger) (repositories.IContactRepository, func()) {
	switch s.Config.StorageBackend {
	case internal.BackendBadger:
		db, err := badger.Open(badger.DefaultOptions(filepath.Join(s.dir, "badger")).
			WithLoggingLevel(badger.ERROR))
		s.Require().NoError(err)
		return repositories.NewBadgerRepository(db, log), func() { _ = db.Close() }
	default:
		repository, err := repositories.NewJSONFileRepository(filepath.Join(s.dir, "contacts.json"), log)
		s.Require().NoError(err)
		return repository, func() {}
	}
}
