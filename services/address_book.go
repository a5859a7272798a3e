//go:generate go run go.uber.org/mock/mockgen -source=address_book.go -destination=../mocks/mock_address_book.go -package=mocks
package services

import (
	"address-book/domain"
	"address-book/errors"
	"address-book/repositories"
	"fmt"
	"iter"
	"log/slog"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"
)

// MinSearchPhraseLength is the shortest phrase Search accepts, in characters.
const MinSearchPhraseLength = 2

type IAddressBook interface {
	Find(name string) (*domain.Record, error)
	Add(record *domain.Record) error
	Update(record *domain.Record) error
	Delete(name string) error
	Search(phrase string) (iter.Seq[Match], error)
	Pages(pageSize int) (iter.Seq[[]*domain.Record], error)
}

// Match is one search hit.
type Match struct {
	Name   string
	Record *domain.Record
}

// AddressBook indexes the records of the current session in memory,
// while the repository document remains the source of truth.
type AddressBook struct {
	repository repositories.IContactRepository
	log        *slog.Logger
	records    map[domain.Name]*domain.Record
}

func NewAddressBook(repository repositories.IContactRepository, log *slog.Logger) *AddressBook {
	return &AddressBook{
		repository: repository,
		log:        log,
		records:    make(map[domain.Name]*domain.Record),
	}
}

// transaction reloads the stored document, applies a change and persists it when apply asks to.
// Reloading first avoids clobbering changes made to the store since the last command.
// This is best-effort protection against a second writer, not concurrency control.
func (a *AddressBook) transaction(apply func(doc *repositories.Document) (persist bool, err error)) error {
	doc, err := a.repository.Read()
	if err != nil {
		return err
	}
	persist, err := apply(doc)
	if err != nil || !persist {
		return err
	}
	return a.repository.Write(doc)
}

// Find always reads the store, never the session index.
func (a *AddressBook) Find(name string) (*domain.Record, error) {
	doc, err := a.repository.Read()
	if err != nil {
		return nil, err
	}
	contact, ok := doc.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: '%s'", errors.ErrContactNotFound, name)
	}
	return repositories.ToRecord(name, contact)
}

// Add refuses to replace an existing contact.
func (a *AddressBook) Add(record *domain.Record) error {
	name := record.Name.String()
	err := a.transaction(func(doc *repositories.Document) (bool, error) {
		if doc.Has(name) {
			return false, fmt.Errorf("%w: '%s'", errors.ErrContactAlreadyExists, name)
		}
		doc.Set(name, repositories.FromRecord(record))
		return true, nil
	})
	if err != nil {
		return err
	}
	a.records[record.Name] = record
	a.log.Debug("Contact added", "name", name, "session_contacts", len(a.records))
	return nil
}

// Update overwrites an existing contact. Absent contacts are not created.
func (a *AddressBook) Update(record *domain.Record) error {
	name := record.Name.String()
	err := a.transaction(func(doc *repositories.Document) (bool, error) {
		if !doc.Has(name) {
			return false, fmt.Errorf("%w: '%s'", errors.ErrContactNotFound, name)
		}
		doc.Set(name, repositories.FromRecord(record))
		return true, nil
	})
	if err != nil {
		return err
	}
	a.records[record.Name] = record
	a.log.Debug("Contact updated", "name", name)
	return nil
}

func (a *AddressBook) Delete(name string) error {
	err := a.transaction(func(doc *repositories.Document) (bool, error) {
		if !doc.Delete(name) {
			return false, fmt.Errorf("%w: '%s'", errors.ErrContactNotFound, name)
		}
		return true, nil
	})
	if err != nil {
		return err
	}
	delete(a.records, domain.Name(name))
	a.log.Debug("Contact deleted", "name", name, "session_contacts", len(a.records))
	return nil
}

// Search matches the phrase against names without regard to case, and against phones as typed.
// The store is read once; the returned sequence walks that snapshot lazily.
func (a *AddressBook) Search(phrase string) (iter.Seq[Match], error) {
	if utf8.RuneCountInString(phrase) < MinSearchPhraseLength {
		return nil, fmt.Errorf("%w, got '%s'", errors.ErrSearchPhraseTooShort, phrase)
	}
	doc, err := a.repository.Read()
	if err != nil {
		return nil, err
	}
	lowered := strings.ToLower(phrase)
	return func(yield func(Match) bool) {
		for name, contact := range doc.All() {
			nameMatches := strings.Contains(strings.ToLower(name), lowered)
			phoneMatches := lo.ContainsBy(contact.Phones, func(p string) bool {
				return strings.Contains(p, phrase)
			})
			if !nameMatches && !phoneMatches {
				continue
			}
			record, err := repositories.ToRecord(name, contact)
			if err != nil {
				a.log.Warn("Skipping unreadable contact", "name", name, "error", err)
				continue
			}
			if !yield(Match{Name: name, Record: record}) {
				return
			}
		}
	}, nil
}

// Pages splits every stored record into contiguous pages of pageSize, the last one possibly shorter.
func (a *AddressBook) Pages(pageSize int) (iter.Seq[[]*domain.Record], error) {
	doc, err := a.repository.Read()
	if err != nil {
		return nil, err
	}
	records := make([]*domain.Record, 0, doc.Len())
	for name, contact := range doc.All() {
		record, err := repositories.ToRecord(name, contact)
		if err != nil {
			a.log.Warn("Skipping unreadable contact", "name", name, "error", err)
			continue
		}
		records = append(records, record)
	}
	return slices.Values(lo.Chunk(records, max(pageSize, 1))), nil
}

// Len is the number of records touched during this session.
func (a *AddressBook) Len() int {
	return len(a.records)
}
