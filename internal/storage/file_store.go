package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileStore keeps every key in a single JSON snapshot file:
// a map of key -> raw JSON value. The whole snapshot is rewritten on every
// Set via a temp file and rename, so a crash mid-write never truncates
// previously persisted keys. Persist goroutines from different collections
// may call Set concurrently, so every access goes through mu.
type FileStore struct {
	path string

	mu   sync.Mutex
	data map[string]json.RawMessage
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = make(map[string]json.RawMessage)
	return s.save()
}

func (s *FileStore) Load() error {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'lifecompass init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	data := make(map[string]json.RawMessage)
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	s.mu.Lock()
	s.data = data
	s.mu.Unlock()
	return nil
}

func (s *FileStore) Close() error {
	return nil
}

func (s *FileStore) Get(key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data == nil {
		return nil, false, fmt.Errorf("storage not loaded")
	}
	value, ok := s.data[key]
	if !ok {
		return nil, false, nil
	}
	return value, true, nil
}

func (s *FileStore) Set(key string, value []byte) error {
	if !json.Valid(value) {
		return fmt.Errorf("value for key %q is not valid JSON", key)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.data[key] = json.RawMessage(value)
	return s.save()
}

func (s *FileStore) Path() string {
	return s.path
}

// save writes the snapshot to a uniquely named temp file next to the target
// and renames it into place. Callers must hold mu.
func (s *FileStore) save() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp storage file: %w", err)
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write storage: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write storage: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace storage file: %w", err)
	}

	return nil
}
