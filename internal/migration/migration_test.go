package migration

import (
	"database/sql"
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/studylit/migrations"
)

func setupTestDB(t *testing.T) *sql.DB {
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestApply(t *testing.T) {
	db := setupTestDB(t)
	runner := NewRunner(db, fstest.MapFS{
		"002_second.sql": {Data: []byte("CREATE TABLE b (id INTEGER);")},
		"001_init.sql":   {Data: []byte("CREATE TABLE a (id INTEGER);")},
		"README.md":      {Data: []byte("not a migration")},
	}, SQLite)

	st, err := runner.Status()
	if err != nil {
		t.Fatalf("Status() error = %v", err)
	}
	if st.Current != 0 || st.Latest != 2 || len(st.Pending) != 2 || st.UpToDate() {
		t.Errorf("fresh Status() = %+v", st)
	}

	applied, err := runner.Apply()
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if len(applied) != 2 || applied[0].Name != "init" || applied[1].Version != 2 {
		t.Errorf("applied = %+v, want init then second", applied)
	}

	version, err := runner.CurrentVersion()
	if err != nil || version != 2 {
		t.Errorf("CurrentVersion() = %d, %v; want 2", version, err)
	}

	applied, err = runner.Apply()
	if err != nil || len(applied) != 0 {
		t.Errorf("second Apply() = %v, %v; want nothing applied", applied, err)
	}

	st, err = runner.Status()
	if err != nil || !st.UpToDate() {
		t.Errorf("Status() = %+v, %v; want up to date", st, err)
	}
}

func TestApply_FailureRollsBack(t *testing.T) {
	db := setupTestDB(t)
	runner := NewRunner(db, fstest.MapFS{
		"001_init.sql":   {Data: []byte("CREATE TABLE a (id INTEGER);")},
		"002_broken.sql": {Data: []byte("CREATE TABLE nonsense (")},
	}, SQLite)

	applied, err := runner.Apply()
	if err == nil || !strings.Contains(err.Error(), "migration 2 (broken)") {
		t.Fatalf("Apply() error = %v, want failure in migration 2", err)
	}
	if len(applied) != 1 {
		t.Errorf("applied = %d migrations, want 1", len(applied))
	}
	if version, _ := runner.CurrentVersion(); version != 1 {
		t.Errorf("CurrentVersion() = %d, want 1", version)
	}
}

func TestMigrations_BadFiles(t *testing.T) {
	db := setupTestDB(t)

	tests := []struct {
		name    string
		files   fstest.MapFS
		wantErr string
	}{
		{
			name:    "missing underscore",
			files:   fstest.MapFS{"001.sql": {Data: []byte("")}},
			wantErr: "invalid migration filename",
		},
		{
			name:    "non numeric version",
			files:   fstest.MapFS{"abc_init.sql": {Data: []byte("")}},
			wantErr: "invalid version number",
		},
		{
			name:    "zero version",
			files:   fstest.MapFS{"000_init.sql": {Data: []byte("")}},
			wantErr: "at least 1",
		},
		{
			name: "duplicate version",
			files: fstest.MapFS{
				"001_a.sql": {Data: []byte("")},
				"01_b.sql":  {Data: []byte("")},
			},
			wantErr: "duplicate migration version",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRunner(db, tt.files, SQLite).Migrations()
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Migrations() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestCheck_NewerDatabase(t *testing.T) {
	db := setupTestDB(t)
	runner := NewRunner(db, fstest.MapFS{
		"001_init.sql": {Data: []byte("CREATE TABLE a (id INTEGER);")},
	}, SQLite)

	if _, err := runner.CurrentVersion(); err != nil {
		t.Fatalf("CurrentVersion() error = %v", err)
	}
	if _, err := db.Exec("INSERT INTO schema_version (version) VALUES (9)"); err != nil {
		t.Fatalf("failed to seed version: %v", err)
	}

	if err := runner.Check(); !errors.Is(err, ErrSchemaTooNew) {
		t.Errorf("Check() error = %v, want ErrSchemaTooNew", err)
	}
	if _, err := runner.Apply(); !errors.Is(err, ErrSchemaTooNew) {
		t.Errorf("Apply() error = %v, want ErrSchemaTooNew", err)
	}
}

func TestEmbeddedSQLiteMigrations(t *testing.T) {
	db := setupTestDB(t)

	subFS, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		t.Fatalf("failed to access embedded migrations: %v", err)
	}

	if _, err := NewRunner(db, subFS, SQLite).Apply(); err != nil {
		t.Fatalf("embedded migrations failed to apply: %v", err)
	}
	if _, err := db.Exec("INSERT INTO documents (key, value, updated_at) VALUES ('k', '{}', 'now')"); err != nil {
		t.Errorf("documents table not usable after migrations: %v", err)
	}
}
