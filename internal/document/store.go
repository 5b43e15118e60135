package document

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrNotFound is returned by Load when the config file does not exist.
var ErrNotFound = errors.New("config file not found")

// Store reads and writes the bot config file. Writes always replace the
// whole document; there are no partial updates.
type Store struct {
	path string
}

// NewStore creates a store for the config file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the config file location.
func (s *Store) Path() string {
	return s.path
}

// Exists reports whether the config file is present on disk.
func (s *Store) Exists() bool {
	info, err := os.Stat(s.path)
	return err == nil && info.Mode().IsRegular()
}

// Load reads and parses the config file. A parse failure is returned as-is
// so callers can treat it as fatal; the file is never reset or rewritten
// here. An empty file loads as an empty document.
func (s *Store) Load() (Document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("reading config file %s: %w", s.path, err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", s.path, err)
	}

	doc := Document(raw)
	if doc == nil {
		doc = Document{}
	}
	return doc, nil
}

// Dump writes the whole document, replacing any previous contents. The
// write goes through a temp file and rename so a crash mid-write cannot
// leave a half-written config behind.
func (s *Store) Dump(doc Document) error {
	data, err := yaml.Marshal(map[string]any(doc))
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	tempPath := s.path + ".tmp"
	if err := os.WriteFile(tempPath, data, 0644); err != nil {
		return fmt.Errorf("writing config file %s: %w", s.path, err)
	}

	if err := os.Rename(tempPath, s.path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("replacing config file %s: %w", s.path, err)
	}

	return nil
}

// Ready probes whether the store can operate: the config directory must
// exist and an existing config file must be readable. It never creates
// anything; that is Provision's job.
func (s *Store) Ready() error {
	dir := filepath.Dir(s.path)
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("config directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("config directory %s: not a directory", dir)
	}

	if s.Exists() {
		f, err := os.Open(s.path)
		if err != nil {
			return fmt.Errorf("config file %s: %w", s.path, err)
		}
		f.Close()
	}

	return nil
}

// Provision creates the config directory so a following Ready can succeed.
func (s *Store) Provision() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}
