package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"
	"time"

	pq "github.com/lib/pq"

	"github.com/julianstephens/studylit/internal/constants"
	"github.com/julianstephens/studylit/internal/logger"
	"github.com/julianstephens/studylit/internal/migration"
	"github.com/julianstephens/studylit/migrations"
)

var (
	ErrInvalidConnectionString = errors.New("invalid PostgreSQL connection string")
	ErrEmbeddedCredentials     = errors.New("connection string must not contain a password")
)

type PostgresStore struct {
	connStr string
	db      *sql.DB
}

func NewPostgresStore(connStr string) *PostgresStore {
	s := &PostgresStore{
		connStr: connStr,
	}
	s.ensureSearchPath()
	return s
}

// IsPostgresConnString reports whether s looks like a PostgreSQL URL
func IsPostgresConnString(s string) bool {
	return strings.HasPrefix(s, "postgres://") || strings.HasPrefix(s, "postgresql://")
}

func (s *PostgresStore) ensureSearchPath() {
	if IsPostgresConnString(s.connStr) {
		u, err := url.Parse(s.connStr)
		if err != nil {
			logger.Warn("Failed to parse Postgres connection string", "error", err)
			return
		}
		q := u.Query()
		if q.Get("search_path") == "" {
			q.Set("search_path", constants.AppName)
			u.RawQuery = q.Encode()
			s.connStr = u.String()
		}
		return
	}

	for _, part := range strings.Fields(s.connStr) {
		kv := strings.SplitN(part, "=", 2)
		if len(kv) == 2 && strings.EqualFold(kv[0], "search_path") {
			return
		}
	}
	s.connStr = strings.TrimSpace(s.connStr) + " search_path=" + constants.AppName
}

// ValidateConnString checks that connStr is a usable PostgreSQL connection
// string (URI or DSN) that carries no password.
func ValidateConnString(connStr string) error {
	if strings.TrimSpace(connStr) == "" {
		return fmt.Errorf("%w: connection string cannot be empty", ErrInvalidConnectionString)
	}

	if _, err := pq.NewConnector(connStr); err != nil {
		return fmt.Errorf("%w: invalid connection string format: %v", ErrInvalidConnectionString, err)
	}

	if IsPostgresConnString(connStr) {
		parsedURL, err := url.Parse(connStr)
		if err != nil {
			return fmt.Errorf("%w: failed to parse connection URL: %v", ErrInvalidConnectionString, err)
		}
		if _, isSet := parsedURL.User.Password(); isSet {
			return ErrEmbeddedCredentials
		}
		if parsedURL.Host == "" && parsedURL.User == nil && (parsedURL.Path == "" || parsedURL.Path == "/") {
			return fmt.Errorf("%w: connection URL is incomplete", ErrInvalidConnectionString)
		}
		return nil
	}

	for _, pair := range strings.Fields(connStr) {
		parts := strings.SplitN(pair, "=", 2)
		if len(parts) == 2 && strings.ToLower(strings.TrimSpace(parts[0])) == "password" {
			return ErrEmbeddedCredentials
		}
	}

	return nil
}

// HasEmbeddedCredentials reports whether connStr carries a password.
func HasEmbeddedCredentials(connStr string) bool {
	return errors.Is(ValidateConnString(connStr), ErrEmbeddedCredentials)
}

func (s *PostgresStore) open() (*sql.DB, error) {
	db, err := sql.Open("postgres", s.connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		if strings.Contains(err.Error(), "SSL is not enabled on the server") && !strings.Contains(s.connStr, "sslmode") {
			return nil, fmt.Errorf("failed to connect to database: %w (hint: try adding ?sslmode=disable to your connection string)", err)
		}
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func (s *PostgresStore) Init() error {
	db := s.db
	if db == nil {
		var err error
		if db, err = s.open(); err != nil {
			return err
		}
	}

	if _, err := db.Exec("CREATE SCHEMA IF NOT EXISTS " + constants.AppName); err != nil {
		db.Close()
		return fmt.Errorf("failed to create schema: %w", err)
	}
	s.db = db

	if err := s.runMigrations(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

func (s *PostgresStore) Load() error {
	if s.db != nil {
		return nil
	}

	db, err := s.open()
	if err != nil {
		return err
	}
	s.db = db

	var schemaExists bool
	err = db.QueryRow(
		"SELECT EXISTS (SELECT 1 FROM information_schema.schemata WHERE schema_name = $1)",
		constants.AppName,
	).Scan(&schemaExists)
	if err != nil {
		return fmt.Errorf("failed to check schema: %w", err)
	}
	if !schemaExists {
		return ErrNotInitialized
	}

	runner, err := s.runner()
	if err != nil {
		return err
	}
	st, err := runner.Status()
	if err != nil {
		return err
	}
	if st.Current == 0 {
		return ErrNotInitialized
	}
	return nil
}

func (s *PostgresStore) Close() error {
	if s.db != nil {
		err := s.db.Close()
		s.db = nil
		return err
	}
	return nil
}

func (s *PostgresStore) runner() (*migration.Runner, error) {
	subFS, err := fs.Sub(migrations.FS, "postgres")
	if err != nil {
		return nil, fmt.Errorf("failed to access postgres migrations: %w", err)
	}
	return migration.NewRunner(s.db, subFS, migration.Postgres), nil
}

func (s *PostgresStore) runMigrations() error {
	runner, err := s.runner()
	if err != nil {
		return err
	}
	_, err = runner.Apply()
	return err
}

// Migrations exposes the migration runner bound to this database
func (s *PostgresStore) Migrations() (*migration.Runner, error) {
	if s.db == nil {
		return nil, ErrNotLoaded
	}
	return s.runner()
}

func (s *PostgresStore) Get(key string) ([]byte, error) {
	if s.db == nil {
		return nil, ErrNotLoaded
	}

	var value string
	err := s.db.QueryRow("SELECT value::text FROM documents WHERE key = $1", key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read document %q: %w", key, err)
	}

	return []byte(value), nil
}

func (s *PostgresStore) Set(key string, data []byte) error {
	if s.db == nil {
		return ErrNotLoaded
	}

	_, err := s.db.Exec(`
		INSERT INTO documents (key, value, updated_at)
		VALUES ($1, $2::jsonb, $3)
		ON CONFLICT (key) DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = EXCLUDED.updated_at`,
		key, string(data), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to write document %q: %w", key, err)
	}

	return nil
}

func (s *PostgresStore) Keys() ([]string, error) {
	if s.db == nil {
		return nil, ErrNotLoaded
	}

	rows, err := s.db.Query("SELECT key FROM documents ORDER BY key")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}

	return keys, rows.Err()
}

func (s *PostgresStore) GetConfigPath() string {
	// Non-sensitive identifier instead of the connection string
	return "postgresql"
}
