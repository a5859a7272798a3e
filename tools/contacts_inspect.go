package main

import (
	"address-book/repositories"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

// Prints the stored contact document as a table, from a JSON file or a badger directory.
func main() {
	file := flag.String("file", "", "Path to a contacts JSON file")
	dbPath := flag.String("db", "", "Path to a badger directory holding the contacts document")
	flag.Parse()

	repository, closeStorage, err := open(*file, *dbPath)
	if err != nil {
		log.Fatal("Error while opening storage: ", err)
	}
	defer closeStorage()

	doc, err := repository.Read()
	if err != nil {
		log.Fatal("Error while reading contacts: ", err)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"#", "Name", "Phones", "Birthday"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	i := 0
	for name, contact := range doc.All() {
		i++
		table.Append([]string{
			fmt.Sprint(i),
			name,
			strings.Join(contact.Phones, ", "),
			lo.FromPtrOr(contact.Birthday, "-"),
		})
	}
	table.Render()
	fmt.Printf("\n%d contact(s)\n", doc.Len())
}

func open(file, dbPath string) (repositories.IContactRepository, func(), error) {
	silent := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	switch {
	case dbPath != "":
		// Read-only with BypassLockGuard, so a running bot can keep the lock
		opts := badger.DefaultOptions(dbPath).
			WithReadOnly(true).
			WithBypassLockGuard(true).
			WithLoggingLevel(badger.WARNING)
		db, err := badger.Open(opts)
		if err != nil {
			return nil, nil, err
		}
		return repositories.NewBadgerRepository(db, silent), func() { _ = db.Close() }, nil
	case file != "":
		if _, err := os.Stat(file); err != nil {
			return nil, nil, err
		}
		repository, err := repositories.NewJSONFileRepository(file, silent)
		return repository, func() {}, err
	default:
		return nil, nil, fmt.Errorf("one of -file or -db is required")
	}
}
