package repositories

import (
	"address-book/errors"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
)

// DocumentKey is the badger key holding the JSON contact document.
const DocumentKey = "contacts:document"

type BadgerRepository struct {
	db  *badger.DB
	log *slog.Logger
}

// NewBadgerRepository keeps the same JSON document as the file backend, under a single key.
func NewBadgerRepository(db *badger.DB, log *slog.Logger) IContactRepository {
	return &BadgerRepository{db: db, log: log}
}

func (r *BadgerRepository) Read() (*Document, error) {
	var data []byte
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(DocumentKey))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return NewDocument(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("badger read: %w", err)
	}
	return decodeDocument(data, r.log), nil
}

func (r *BadgerRepository) Write(document *Document) error {
	data, err := json.Marshal(document)
	if err != nil {
		return fmt.Errorf("marshal contacts: %w", err)
	}
	err = r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(DocumentKey), data)
	})
	if err != nil {
		return fmt.Errorf("badger write: %w", err)
	}
	r.log.Debug("Contacts written", "key", DocumentKey, "contacts", document.Len())
	return nil
}
