package backup

import (
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/studylit/internal/constants"
)

func setupTestDB(t *testing.T) string {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "studylit.db")

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec(`CREATE TABLE documents (key TEXT PRIMARY KEY, value TEXT NOT NULL)`); err != nil {
		t.Fatalf("failed to create test table: %v", err)
	}
	if _, err := db.Exec(`INSERT INTO documents (key, value) VALUES ('neetTrackerData', '{"v":1}')`); err != nil {
		t.Fatalf("failed to insert test data: %v", err)
	}
	return dbPath
}

func readValue(t *testing.T, dbPath string) string {
	t.Helper()
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	var value string
	if err := db.QueryRow("SELECT value FROM documents WHERE key = 'neetTrackerData'").Scan(&value); err != nil {
		t.Fatalf("failed to read value: %v", err)
	}
	return value
}

func steppingClock(start time.Time) func() time.Time {
	current := start
	return func() time.Time {
		now := current
		current = current.Add(time.Minute)
		return now
	}
}

func TestCreateBackup(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath)

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup() error = %v", err)
	}
	if filepath.Dir(backupPath) != filepath.Join(filepath.Dir(dbPath), constants.BackupDirName) {
		t.Errorf("backup written to %s", backupPath)
	}
	name := filepath.Base(backupPath)
	if !strings.HasPrefix(name, constants.BackupFilePrefix) || !strings.HasSuffix(name, ".db") {
		t.Errorf("backup name = %s", name)
	}
	if got := readValue(t, backupPath); got != `{"v":1}` {
		t.Errorf("backup value = %s", got)
	}
}

func TestCreateBackup_MissingStore(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "missing.db"))
	if _, err := mgr.CreateBackup(); err == nil {
		t.Error("CreateBackup() without a store should fail")
	}
}

func TestUniqueBackupFilenames(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath)
	fixed := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)
	mgr.now = func() time.Time { return fixed }

	seen := make(map[string]bool)
	for i := 0; i < 3; i++ {
		path, err := mgr.CreateBackup()
		if err != nil {
			t.Fatalf("CreateBackup() error = %v", err)
		}
		if seen[path] {
			t.Fatalf("duplicate backup path %s", path)
		}
		seen[path] = true
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) != 3 {
		t.Errorf("ListBackups() = %d entries, want 3", len(backups))
	}
}

func TestBackupRotation(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath)
	mgr.now = steppingClock(time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC))

	var last string
	for i := 0; i < constants.MaxBackups+3; i++ {
		path, err := mgr.CreateBackup()
		if err != nil {
			t.Fatalf("CreateBackup() error = %v", err)
		}
		last = path
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) != constants.MaxBackups {
		t.Fatalf("kept %d backups, want %d", len(backups), constants.MaxBackups)
	}
	if backups[0].Path != last {
		t.Errorf("newest backup = %s, want %s", backups[0].Path, last)
	}
	for i := 1; i < len(backups); i++ {
		if backups[i].Timestamp.After(backups[i-1].Timestamp) {
			t.Errorf("backups not sorted newest first at %d", i)
		}
	}
}

func TestListBackups_IgnoresOtherFiles(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath)
	if _, err := mgr.CreateBackup(); err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"notes.txt", constants.BackupFilePrefix + "garbage.db", constants.BackupFilePrefix + "20250101-120000.json"} {
		if err := os.WriteFile(filepath.Join(mgr.GetBackupDir(), name), []byte("x"), 0600); err != nil {
			t.Fatal(err)
		}
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) != 1 {
		t.Errorf("ListBackups() = %+v, want only the real backup", backups)
	}
}

func TestListBackups_NoDirectory(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "studylit.db"))
	backups, err := mgr.ListBackups()
	if err != nil || len(backups) != 0 {
		t.Errorf("ListBackups() = %v, %v; want empty", backups, err)
	}
}

func TestRestoreBackup(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath)
	mgr.now = steppingClock(time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC))

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatal(err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.Exec(`UPDATE documents SET value = '{"v":2}'`); err != nil {
		t.Fatal(err)
	}
	db.Close()

	safetyCopy, err := mgr.RestoreBackup(backupPath)
	if err != nil {
		t.Fatalf("RestoreBackup() error = %v", err)
	}
	if got := readValue(t, dbPath); got != `{"v":1}` {
		t.Errorf("restored value = %s, want {\"v\":1}", got)
	}
	if safetyCopy == "" {
		t.Fatal("RestoreBackup() should snapshot the current store first")
	}
	if got := readValue(t, safetyCopy); got != `{"v":2}` {
		t.Errorf("safety copy value = %s, want {\"v\":2}", got)
	}
}

func TestRestoreBackup_Corrupted(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath)

	bad := filepath.Join(t.TempDir(), "bad.db")
	if err := os.WriteFile(bad, []byte("this is not a database file at all, just text padding"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := mgr.RestoreBackup(bad); err == nil {
		t.Error("RestoreBackup() of a corrupted file should fail")
	}
	if got := readValue(t, dbPath); got != `{"v":1}` {
		t.Errorf("store modified by failed restore: %s", got)
	}
}

func TestJSONStoreBackup(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "studylit.json")
	if err := os.WriteFile(storePath, []byte(`{"version":1,"documents":{}}`), 0600); err != nil {
		t.Fatal(err)
	}
	mgr := NewManager(storePath)
	mgr.now = steppingClock(time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC))
	if mgr.Kind() != KindJSON {
		t.Fatalf("Kind() = %v, want KindJSON", mgr.Kind())
	}

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup() error = %v", err)
	}
	if !strings.HasSuffix(backupPath, ".json") {
		t.Errorf("backup path = %s, want .json suffix", backupPath)
	}

	if err := os.WriteFile(storePath, []byte(`{"version":1,"documents":{"k":{}}}`), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := mgr.RestoreBackup(backupPath); err != nil {
		t.Fatalf("RestoreBackup() error = %v", err)
	}
	data, _ := os.ReadFile(storePath)
	if string(data) != `{"version":1,"documents":{}}` {
		t.Errorf("restored store = %s", data)
	}

	bad := filepath.Join(t.TempDir(), "bad.json")
	_ = os.WriteFile(bad, []byte("{broken"), 0600)
	if _, err := mgr.RestoreBackup(bad); err == nil {
		t.Error("RestoreBackup() of invalid JSON should fail")
	}
}
