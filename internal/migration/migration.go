// Package migration applies the numbered SQL files embedded under migrations/
// and tracks the applied version in a one-row schema_version table.
package migration

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/studylit/internal/logger"
)

// ErrSchemaTooNew means the database was migrated by a newer release.
var ErrSchemaTooNew = errors.New("database schema is newer than this version of studylit supports")

// Dialect selects the bind-parameter style of the target database
type Dialect int

const (
	SQLite Dialect = iota
	Postgres
)

// Migration is one NNN_name.sql file.
type Migration struct {
	Version int
	Name    string
	SQL     string
}

// Status compares the database with the migrations on hand.
type Status struct {
	Current int
	Latest  int
	Pending []Migration
}

func (s Status) UpToDate() bool {
	return s.Current == s.Latest
}

type Runner struct {
	db      *sql.DB
	fs      fs.FS
	dialect Dialect
}

func NewRunner(db *sql.DB, migrationFS fs.FS, dialect Dialect) *Runner {
	return &Runner{
		db:      db,
		fs:      migrationFS,
		dialect: dialect,
	}
}

// parseName splits "003_add_index.sql" into 3 and "add_index".
func parseName(filename string) (int, string, error) {
	prefix, name, ok := strings.Cut(strings.TrimSuffix(filename, ".sql"), "_")
	if !ok {
		return 0, "", fmt.Errorf("invalid migration filename %s: expected NNN_name.sql", filename)
	}
	version, err := strconv.Atoi(prefix)
	if err != nil {
		return 0, "", fmt.Errorf("invalid version number in %s: %w", filename, err)
	}
	if version < 1 {
		return 0, "", fmt.Errorf("invalid version number in %s: must be at least 1", filename)
	}
	return version, name, nil
}

// Migrations returns every migration file in version order.
func (r *Runner) Migrations() ([]Migration, error) {
	entries, err := fs.ReadDir(r.fs, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations: %w", err)
	}

	var out []Migration
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".sql" {
			continue
		}
		version, name, err := parseName(entry.Name())
		if err != nil {
			return nil, err
		}
		content, err := fs.ReadFile(r.fs, entry.Name())
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", entry.Name(), err)
		}
		out = append(out, Migration{Version: version, Name: name, SQL: string(content)})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Version < out[j].Version })
	for i := 1; i < len(out); i++ {
		if out[i].Version == out[i-1].Version {
			return nil, fmt.Errorf("duplicate migration version %d", out[i].Version)
		}
	}
	return out, nil
}

// CurrentVersion is the applied schema version, 0 for a fresh database.
func (r *Runner) CurrentVersion() (int, error) {
	if _, err := r.db.Exec(`CREATE TABLE IF NOT EXISTS schema_version (version INTEGER PRIMARY KEY)`); err != nil {
		return 0, fmt.Errorf("failed to create schema_version table: %w", err)
	}

	var version int
	err := r.db.QueryRow("SELECT version FROM schema_version").Scan(&version)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	return version, nil
}

func (r *Runner) Status() (Status, error) {
	current, err := r.CurrentVersion()
	if err != nil {
		return Status{}, err
	}
	all, err := r.Migrations()
	if err != nil {
		return Status{}, err
	}

	st := Status{Current: current}
	if len(all) > 0 {
		st.Latest = all[len(all)-1].Version
	}
	for _, m := range all {
		if m.Version > current {
			st.Pending = append(st.Pending, m)
		}
	}
	if st.Current > st.Latest {
		return st, fmt.Errorf("%w (database %d, supported %d)", ErrSchemaTooNew, st.Current, st.Latest)
	}
	return st, nil
}

// Check fails when the database is ahead of the bundled migrations.
func (r *Runner) Check() error {
	_, err := r.Status()
	return err
}

// Apply runs each pending migration in its own transaction and returns the
// ones applied.
func (r *Runner) Apply() ([]Migration, error) {
	st, err := r.Status()
	if err != nil {
		return nil, err
	}
	if len(st.Pending) == 0 {
		logger.Debug("Schema up to date", "version", st.Current)
		return nil, nil
	}

	start := time.Now()
	var applied []Migration
	for _, m := range st.Pending {
		if err := r.apply(m); err != nil {
			return applied, err
		}
		applied = append(applied, m)
		logger.Debug("Applied migration", "version", m.Version, "name", m.Name)
	}
	logger.Info("Schema migrated", "from", st.Current, "to", st.Latest, "elapsed", time.Since(start))
	return applied, nil
}

func (r *Runner) apply(m Migration) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin migration %d: %w", m.Version, err)
	}

	bind := "?"
	if r.dialect == Postgres {
		bind = "$1"
	}
	steps := []struct {
		query string
		args  []any
	}{
		{m.SQL, nil},
		{"DELETE FROM schema_version", nil},
		{"INSERT INTO schema_version (version) VALUES (" + bind + ")", []any{m.Version}},
	}
	for _, step := range steps {
		if _, err := tx.Exec(step.query, step.args...); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to apply migration %d (%s): %w", m.Version, m.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit migration %d: %w", m.Version, err)
	}
	return nil
}
