package storage

import "errors"

var (
	// ErrNotFound is returned by Get when no document is stored under the key
	ErrNotFound = errors.New("document not found")
	// ErrNotLoaded is returned when a provider is used before Init or Load
	ErrNotLoaded = errors.New("storage not loaded")
	// ErrNotInitialized is returned by Load when the backing store does not exist yet
	ErrNotInitialized = errors.New("storage not initialized")
)

// Provider persists serialized documents by key. The tracker keeps its whole
// state under a single key and writes it through after every mutation.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Documents
	Get(key string) ([]byte, error)
	Set(key string, data []byte) error
	Keys() ([]string, error)

	// Utils
	GetConfigPath() string
}
