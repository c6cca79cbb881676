package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"sync"

	"github.com/aretw0/arbor/internal/fsutil"
	"github.com/aretw0/arbor/pkg/ports"
	"gopkg.in/yaml.v3"
)

// Store implements ports.PreferenceStore as a flat YAML mapping on disk.
// Every Set and Delete rewrites the file atomically.
type Store struct {
	Path string

	mu sync.Mutex
}

// New creates a Store backed by path.
// If path is empty, it defaults to DefaultPath().
func New(path string) *Store {
	if path == "" {
		path = DefaultPath()
	}
	return &Store{Path: path}
}

// DefaultPath returns settings.yaml inside the user's configuration
// directory ($XDG_CONFIG_HOME/arbor on Linux), or ./.arbor when that
// directory cannot be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".arbor", "settings.yaml")
	}
	return filepath.Join(dir, "arbor", "settings.yaml")
}

// Get returns the value stored under key.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.read()
	if err != nil {
		return "", err
	}
	v, ok := data[key]
	if !ok {
		return "", ports.ErrPreferenceNotFound
	}
	return v, nil
}

// Set stores value under key.
func (s *Store) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.read()
	if err != nil {
		return err
	}
	data[key] = value
	return s.write(data)
}

// Delete removes key. The file is left untouched when the key is absent.
func (s *Store) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.read()
	if err != nil {
		return err
	}
	if _, ok := data[key]; !ok {
		return nil
	}
	delete(data, key)
	return s.write(data)
}

// All returns every stored preference.
func (s *Store) All(ctx context.Context) (map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.read()
	if err != nil {
		return nil, err
	}
	return maps.Clone(data), nil
}

// read loads the file. A missing file is an empty store.
func (s *Store) read() (map[string]string, error) {
	raw, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return make(map[string]string), nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	data := make(map[string]string)
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse settings file %s: %w", s.Path, err)
	}
	if data == nil {
		data = make(map[string]string)
	}
	return data, nil
}

func (s *Store) write(data map[string]string) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0755); err != nil {
		return fmt.Errorf("failed to ensure settings directory: %w", err)
	}

	// yaml.v3 sorts map keys, so the file is stable across writes.
	raw, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := fsutil.WriteFileAtomic(s.Path, raw, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}
