package repositories

import (
	"address-book/domain"
	"bytes"
	"encoding/json"
	"fmt"
	"iter"

	"github.com/samber/lo"
)

// StoredContact is the on-disk shape of one contact.
type StoredContact struct {
	Phones   []string `json:"phones"`
	Birthday *string  `json:"birthday"`
}

// Document is the whole persisted collection, keyed by contact name.
// Key order is insertion order and survives a JSON round trip.
type Document struct {
	keys    []string
	entries map[string]StoredContact
}

func NewDocument() *Document {
	return &Document{entries: make(map[string]StoredContact)}
}

func (d *Document) Len() int {
	return len(d.keys)
}

func (d *Document) Has(name string) bool {
	_, ok := d.entries[name]
	return ok
}

func (d *Document) Get(name string) (StoredContact, bool) {
	c, ok := d.entries[name]
	return c, ok
}

// Set overwrites an existing key in place or appends a new one.
func (d *Document) Set(name string, contact StoredContact) {
	if !d.Has(name) {
		d.keys = append(d.keys, name)
	}
	d.entries[name] = contact
}

func (d *Document) Delete(name string) bool {
	if !d.Has(name) {
		return false
	}
	delete(d.entries, name)
	d.keys = lo.Without(d.keys, name)
	return true
}

func (d *Document) Names() []string {
	return append([]string(nil), d.keys...)
}

// All iterates over the contacts in document order.
func (d *Document) All() iter.Seq2[string, StoredContact] {
	return func(yield func(string, StoredContact) bool) {
		for _, k := range d.keys {
			if !yield(k, d.entries[k]) {
				return
			}
		}
	}
}

// MarshalJSON writes the object members in document order.
func (d *Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range d.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(d.entries[k])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a top-level object token by token so the member order is kept.
// A repeated key keeps its first position and its last value.
func (d *Document) UnmarshalJSON(data []byte) error {
	fresh := NewDocument()
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected a JSON object, got %v", tok)
	}
	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("expected an object key, got %v", tok)
		}
		var contact StoredContact
		if err = dec.Decode(&contact); err != nil {
			return fmt.Errorf("contact %q: %w", name, err)
		}
		fresh.Set(name, contact)
	}
	if _, err = dec.Token(); err != nil {
		return err
	}
	if _, err = dec.Token(); err == nil {
		return fmt.Errorf("unexpected data after the top-level object")
	}
	*d = *fresh
	return nil
}

// FromRecord converts a domain record into its stored shape.
func FromRecord(record *domain.Record) StoredContact {
	contact := StoredContact{Phones: record.PhoneStrings()}
	if record.Birthday.IsSet() {
		contact.Birthday = lo.ToPtr(record.Birthday.String())
	}
	return contact
}

// ToRecord rebuilds a domain record from its stored shape.
func ToRecord(name string, contact StoredContact) (*domain.Record, error) {
	record, err := domain.NewRecord(name, lo.FromPtr(contact.Birthday))
	if err != nil {
		return nil, fmt.Errorf("stored contact %q: %w", name, err)
	}
	record.Phones = lo.Map(contact.Phones, func(p string, _ int) domain.Phone { return domain.Phone(p) })
	return record, nil
}
