package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// jsonUsable reports whether data is a document worth decoding: valid
// JSON and not a bare null (null would clobber the caller's default).
func jsonUsable(data []byte) bool {
	if len(data) == 0 || !json.Valid(data) {
		return false
	}
	return !bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}

// FileStore keeps one <key>.json per document under a data directory.
// The directory is created lazily on first write.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Load reads and decodes the document at key. Absent, empty, or corrupt
// documents are treated as "use the default": out is left untouched and
// no error is returned. Only unexpected I/O failures surface.
func (s *FileStore) Load(key string, out any) error {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read document %q: %w", key, err)
	}
	if !jsonUsable(data) {
		return nil
	}
	// A valid-JSON document that does not fit out (e.g. an object where
	// a list is expected) also degrades to the default.
	_ = json.Unmarshal(data, out)
	return nil
}

// Save writes v to a temp file in the same directory and renames it
// over the target, so readers never observe a partial document.
func (s *FileStore) Save(key string, v any) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create data dir: %w", err)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal document %q: %w", key, err)
	}

	tmp, err := os.CreateTemp(s.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %q: %w", key, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write document %q: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file for %q: %w", key, err)
	}

	if err := os.Rename(tmpName, s.path(key)); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to replace document %q: %w", key, err)
	}
	return nil
}

// Ensure creates the document holding def if none exists yet.
func (s *FileStore) Ensure(key string, def any) error {
	if _, err := os.Stat(s.path(key)); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat document %q: %w", key, err)
	}
	return s.Save(key, def)
}
