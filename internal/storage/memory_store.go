package storage

import "sort"

// MemoryStore keeps documents in memory only. It backs tests and sessions
// where no durable store is available.
type MemoryStore struct {
	docs map[string][]byte
	// FailWrites makes every Set fail, for exercising write-failure handling
	FailWrites error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Init() error {
	s.docs = make(map[string][]byte)
	return nil
}

func (s *MemoryStore) Load() error {
	if s.docs == nil {
		s.docs = make(map[string][]byte)
	}
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}

func (s *MemoryStore) Get(key string) ([]byte, error) {
	if s.docs == nil {
		return nil, ErrNotLoaded
	}
	doc, ok := s.docs[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(doc))
	copy(out, doc)
	return out, nil
}

func (s *MemoryStore) Set(key string, data []byte) error {
	if s.docs == nil {
		return ErrNotLoaded
	}
	if s.FailWrites != nil {
		return s.FailWrites
	}
	doc := make([]byte, len(data))
	copy(doc, data)
	s.docs[key] = doc
	return nil
}

func (s *MemoryStore) Keys() ([]string, error) {
	if s.docs == nil {
		return nil, ErrNotLoaded
	}
	keys := make([]string, 0, len(s.docs))
	for key := range s.docs {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys, nil
}

func (s *MemoryStore) GetConfigPath() string {
	return ":memory:"
}
