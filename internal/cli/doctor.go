package cli

import (
	"fmt"
	"time"

	"github.com/julianstephens/studylit/internal/backup"
	"github.com/julianstephens/studylit/internal/constants"
	"github.com/julianstephens/studylit/internal/migration"
	"github.com/julianstephens/studylit/internal/storage"
)

type DoctorCmd struct{}

type check struct {
	name string
	run  func(ctx *Context) error
	// warnOnly checks report a warning instead of failing diagnostics
	warnOnly bool
	// needsStore checks are skipped when the store is unreachable
	needsStore bool
}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	checks := []check{
		{name: "Store reachable", run: checkStoreReachable},
		{name: "Schema version", run: checkSchemaVersion, needsStore: true},
		{name: "Migrations complete", run: checkMigrationsComplete, needsStore: true},
		{name: "Backups present", run: checkBackupsPresent, warnOnly: true},
		{name: "Data validation", run: checkValidation, needsStore: true},
		{name: "Clock/timezone", run: checkClockTimezone},
	}

	hasError := false
	storeReachable := true
	for _, chk := range checks {
		if chk.needsStore && !storeReachable {
			fmt.Printf("⊘ %s: SKIPPED (store not reachable)\n", chk.name)
			continue
		}
		err := chk.run(ctx)
		switch {
		case err == nil:
			fmt.Printf("✓ %s: OK\n", chk.name)
		case chk.warnOnly:
			fmt.Printf("⚠ %s: WARNING\n", chk.name)
			fmt.Printf("   %v\n", err)
		default:
			fmt.Printf("❌ %s: FAIL\n", chk.name)
			fmt.Printf("   Error: %v\n", err)
			hasError = true
			if chk.name == "Store reachable" {
				storeReachable = false
			}
		}
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkStoreReachable(ctx *Context) error {
	if ctx.Ephemeral {
		return fmt.Errorf("configured store could not be opened; running in memory")
	}
	if _, err := ctx.Store.Keys(); err != nil {
		return fmt.Errorf("failed to query store: %w", err)
	}
	if sqliteStore, ok := ctx.Store.(*storage.SQLiteStore); ok {
		db := sqliteStore.GetDB()
		if db == nil {
			return fmt.Errorf("database connection is nil")
		}
		var result int
		if err := db.QueryRow("SELECT 1").Scan(&result); err != nil {
			return fmt.Errorf("failed to query database: %w", err)
		}
	}
	return nil
}

// migrationRunner returns the runner for SQL-backed stores, or nil for stores
// without a schema.
func migrationRunner(ctx *Context) (*migration.Runner, error) {
	switch s := ctx.Store.(type) {
	case *storage.SQLiteStore:
		return s.Migrations()
	case *storage.PostgresStore:
		return s.Migrations()
	}
	return nil, nil
}

func checkSchemaVersion(ctx *Context) error {
	runner, err := migrationRunner(ctx)
	if err != nil || runner == nil {
		return err
	}
	return runner.Check()
}

func checkMigrationsComplete(ctx *Context) error {
	runner, err := migrationRunner(ctx)
	if err != nil || runner == nil {
		return err
	}

	st, err := runner.Status()
	if err != nil {
		return fmt.Errorf("failed to read schema status: %w", err)
	}
	if !st.UpToDate() {
		return fmt.Errorf("migrations incomplete: current version %d, latest version %d (%d pending)", st.Current, st.Latest, len(st.Pending))
	}
	return nil
}

func checkBackupsPresent(ctx *Context) error {
	if !supportsFileBackup(ctx.Store) {
		return nil
	}
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found - consider creating one with '%s backup create'", constants.AppName)
	}
	return nil
}

func checkValidation(ctx *Context) error {
	result := ctx.Validator.ValidateDocument(ctx.Tracker.Document())
	if result.HasConflicts() {
		return fmt.Errorf("%d problem(s) found:\n%s", len(result.Conflicts), result.FormatReport())
	}
	return nil
}

func checkClockTimezone(ctx *Context) error {
	now := ctx.Tracker.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	if _, offset := now.Zone(); offset == 0 && now.Location() == time.UTC {
		fmt.Printf("   Note: timezone is UTC\n")
	}
	return nil
}
