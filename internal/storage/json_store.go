package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/julianstephens/studylit/internal/logger"
)

type jsonFile struct {
	Version   int                        `json:"version"`
	Documents map[string]json.RawMessage `json:"documents"`
}

type JSONStore struct {
	path string
	file *jsonFile
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.file = &jsonFile{
		Version:   1,
		Documents: make(map[string]json.RawMessage),
	}

	return s.save()
}

// Load reads the store file. A corrupt file is copied aside to <path>.corrupt
// and the store starts empty so later writes still succeed; the parse error is
// returned so the caller can report it.
func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNotInitialized
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	file := &jsonFile{}
	if err := json.Unmarshal(data, file); err != nil {
		s.file = &jsonFile{Version: 1, Documents: make(map[string]json.RawMessage)}
		corruptPath := s.path + ".corrupt"
		if writeErr := os.WriteFile(corruptPath, data, 0600); writeErr != nil {
			logger.Error("Failed to preserve corrupt storage file", "path", corruptPath, "error", writeErr)
		}
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	if file.Documents == nil {
		file.Documents = make(map[string]json.RawMessage)
	}
	s.file = file

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	// Write to a sibling temp file then rename so a crash never truncates the store
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) Get(key string) ([]byte, error) {
	if s.file == nil {
		return nil, ErrNotLoaded
	}

	doc, ok := s.file.Documents[key]
	if !ok {
		return nil, ErrNotFound
	}

	out := make([]byte, len(doc))
	copy(out, doc)
	return out, nil
}

func (s *JSONStore) Set(key string, data []byte) error {
	if s.file == nil {
		return ErrNotLoaded
	}
	if !json.Valid(data) {
		return fmt.Errorf("refusing to store invalid JSON under %q", key)
	}

	doc := make(json.RawMessage, len(data))
	copy(doc, data)
	s.file.Documents[key] = doc
	return s.save()
}

func (s *JSONStore) Keys() ([]string, error) {
	if s.file == nil {
		return nil, ErrNotLoaded
	}

	keys := make([]string, 0, len(s.file.Documents))
	for key := range s.file.Documents {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys, nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
