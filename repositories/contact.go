//go:generate go run go.uber.org/mock/mockgen -source=contact.go -destination=../mocks/mock_contact_repository.go -package=mocks
package repositories

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// IContactRepository reads and writes the whole contact document at once.
// There are no partial or merged writes: every Write replaces what was stored.
type IContactRepository interface {
	Read() (*Document, error)
	Write(document *Document) error
}

type JSONFileRepository struct {
	path string
	log  *slog.Logger
}

// NewJSONFileRepository creates the target file empty when it does not exist yet.
func NewJSONFileRepository(path string, log *slog.Logger) (IContactRepository, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err = os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create directory for %s: %w", path, err)
		}
		f, err := os.Create(path)
		if err != nil {
			return nil, fmt.Errorf("create %s: %w", path, err)
		}
		_ = f.Close()
		log.Info("Contacts file has been created", "path", path)
	} else if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	return &JSONFileRepository{path: path, log: log}, nil
}

// Read returns an empty document when the file is missing, empty or not valid JSON.
// Only I/O failures are reported as errors.
func (r *JSONFileRepository) Read() (*Document, error) {
	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return NewDocument(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", r.path, err)
	}
	return decodeDocument(data, r.log), nil
}

// defaultFileMode applies when the target file has vanished before a write.
const defaultFileMode os.FileMode = 0o644

// Write replaces the file through a temporary sibling and a rename.
// The replacement keeps the permissions of the file it replaces.
func (r *JSONFileRepository) Write(document *Document) error {
	data, err := json.Marshal(document)
	if err != nil {
		return fmt.Errorf("marshal contacts: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(r.path), filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("write %s: %w", r.path, err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w", r.path, err)
	}
	if err = tmp.Chmod(r.fileMode()); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w", r.path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("write %s: %w", r.path, err)
	}
	if err = os.Rename(tmp.Name(), r.path); err != nil {
		return fmt.Errorf("replace %s: %w", r.path, err)
	}
	r.log.Debug("Contacts written", "path", r.path, "contacts", document.Len())
	return nil
}

func (r *JSONFileRepository) fileMode() os.FileMode {
	info, err := os.Stat(r.path)
	if err != nil {
		return defaultFileMode
	}
	return info.Mode().Perm()
}

func decodeDocument(data []byte, log *slog.Logger) *Document {
	document := NewDocument()
	if len(bytes.TrimSpace(data)) == 0 {
		return document
	}
	if err := json.Unmarshal(data, document); err != nil {
		log.Debug("Malformed contacts document, starting from an empty one", "error", err)
		return NewDocument()
	}
	return document
}
