// Package keyring keeps the PostgreSQL connection string in the OS keyring.
package keyring

import (
	"errors"
	"fmt"
	"os"
	"strings"

	gokeyring "github.com/zalando/go-keyring"

	"github.com/julianstephens/studylit/internal/constants"
	"github.com/julianstephens/studylit/internal/storage"
)

var (
	ErrNotFound           = errors.New("connection string not found in keyring")
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// Source names where a resolved connection string came from.
type Source string

const (
	SourceFlag    Source = "flag"
	SourceEnv     Source = "env"
	SourceKeyring Source = "keyring"
)

func GetConnectionString() (string, error) {
	connStr, err := gokeyring.Get(constants.AppName, constants.DefaultKeyringUser)
	if err != nil {
		if errors.Is(err, gokeyring.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return connStr, nil
}

// SetConnectionString validates connStr and stores it. Embedded passwords are
// accepted here since the OS keyring encrypts them at rest.
func SetConnectionString(connStr string) error {
	connStr = strings.TrimSpace(connStr)
	if err := storage.ValidateConnString(connStr); err != nil && !errors.Is(err, storage.ErrEmbeddedCredentials) {
		return err
	}
	if err := gokeyring.Set(constants.AppName, constants.DefaultKeyringUser, connStr); err != nil {
		return fmt.Errorf("failed to store connection string in keyring: %w", err)
	}
	return nil
}

func DeleteConnectionString() error {
	err := gokeyring.Delete(constants.AppName, constants.DefaultKeyringUser)
	if err != nil {
		if errors.Is(err, gokeyring.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete connection string from keyring: %w", err)
	}
	return nil
}

// IsAvailable is a best-effort probe of the OS keyring.
func IsAvailable() bool {
	_, err := gokeyring.Get(constants.AppName, "probe")
	return err == nil || errors.Is(err, gokeyring.ErrNotFound)
}

// ResolveConnectionString picks the PostgreSQL connection string from, in
// order, an explicit value, the STUDYLIT_DB_CONNECTION variable and the
// keyring. It returns ErrNotFound when none is set.
func ResolveConnectionString(explicit string) (string, Source, error) {
	if storage.IsPostgresConnString(explicit) {
		return explicit, SourceFlag, nil
	}
	if env := strings.TrimSpace(os.Getenv(constants.EnvDBConnection)); env != "" {
		return env, SourceEnv, nil
	}
	connStr, err := GetConnectionString()
	if err != nil {
		return "", "", err
	}
	return connStr, SourceKeyring, nil
}
