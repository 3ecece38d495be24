package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/julianstephens/studylit/internal/constants"
	clierrors "github.com/julianstephens/studylit/internal/errors"
	"github.com/julianstephens/studylit/internal/keyring"
	"github.com/julianstephens/studylit/internal/logger"
	"github.com/julianstephens/studylit/internal/storage"
	"github.com/julianstephens/studylit/internal/tracker"
	"github.com/julianstephens/studylit/internal/utils"
	"github.com/julianstephens/studylit/internal/validation"
)

// KeyringConfig as the --config value selects the PostgreSQL connection
// string stored in the OS keyring.
const KeyringConfig = "keyring"

type Context struct {
	Store     storage.Provider
	Tracker   *tracker.Tracker
	Validator *validation.Validator
	// Ephemeral is set when the configured store could not be opened and the
	// session runs on an in-memory store.
	Ephemeral bool
}

// ExpandPath resolves a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}

// ResolveConfig turns the --config value into a file path or connection
// string. The keyring and STUDYLIT_DB_CONNECTION are consulted when config
// asks for the keyring or the environment variable is set. secret reports
// that the value came from one of those rather than the command line.
func ResolveConfig(config string) (value string, secret bool, err error) {
	if storage.IsPostgresConnString(config) {
		return config, false, nil
	}
	if config != KeyringConfig && os.Getenv(constants.EnvDBConnection) == "" {
		return ExpandPath(config), false, nil
	}

	connStr, source, err := keyring.ResolveConnectionString("")
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", false, fmt.Errorf("no connection string configured; run '%s keyring set' or set %s", constants.AppName, constants.EnvDBConnection)
		}
		return "", false, err
	}
	logger.Debug("Using PostgreSQL connection string", "source", source)
	return connStr, true, nil
}

// NewStore picks a provider for a resolved config value: PostgreSQL for
// connection strings and secrets, JSON for *.json paths and SQLite otherwise.
func NewStore(config string, secret bool) (storage.Provider, error) {
	switch {
	case secret || storage.IsPostgresConnString(config):
		if !secret && storage.HasEmbeddedCredentials(config) {
			return nil, fmt.Errorf("%w; store it with '%s keyring set' or use a .pgpass file", storage.ErrEmbeddedCredentials, constants.AppName)
		}
		return storage.NewPostgresStore(config), nil
	case strings.EqualFold(filepath.Ext(config), ".json"):
		return storage.NewJSONStore(config), nil
	default:
		return storage.NewSQLiteStore(config), nil
	}
}

// Open loads store, creating it on first use, and reads the tracker document.
// Failures are reported on stderr and the session carries on: an unreadable
// document leaves the defaults in place and an unusable store is swapped for
// an in-memory one.
func Open(store storage.Provider, stderr io.Writer, opts ...tracker.Option) *Context {
	ctx := &Context{Store: store}

	err := store.Load()
	if errors.Is(err, storage.ErrNotInitialized) {
		logger.Info("Initializing storage", "path", store.GetConfigPath())
		err = store.Init()
	}
	if err != nil {
		clierrors.Warn(stderr, err)
		if _, getErr := store.Get(constants.DocumentKey); errors.Is(getErr, storage.ErrNotLoaded) {
			memory := storage.NewMemoryStore()
			_ = memory.Init()
			ctx.Store = memory
			ctx.Ephemeral = true
			clierrors.Warn(stderr, errors.New("changes made in this session will not be saved"))
		}
	}

	ctx.Tracker = tracker.New(ctx.Store, opts...)
	if err := ctx.Tracker.Load(); err != nil {
		clierrors.Warn(stderr, err)
	}
	ctx.Validator = validation.New(ctx.Tracker.Catalog())

	return ctx
}

// warnOnWriteFailure reports a failed write-through after a mutation.
func (c *Context) warnOnWriteFailure() {
	if err := c.Tracker.LastWriteError(); err != nil {
		clierrors.Warn(os.Stderr, fmt.Errorf("change kept in memory only: %w", err))
	}
}

func (c *Context) resolveDate(date string) (string, error) {
	return utils.ResolveDate(date, c.Tracker.Now())
}
