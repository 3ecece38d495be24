package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/julianstephens/studylit/internal/cli"
	"github.com/julianstephens/studylit/internal/constants"
	clierrors "github.com/julianstephens/studylit/internal/errors"
	"github.com/julianstephens/studylit/internal/logger"
	"github.com/julianstephens/studylit/internal/storage"
	"github.com/julianstephens/studylit/internal/tracker"
	"github.com/julianstephens/studylit/internal/utils"
)

var CLI struct {
	Version  kong.VersionFlag
	Config   string `help:"Store path (*.db for SQLite, *.json for a JSON file), a PostgreSQL connection string without a password, or 'keyring'." type:"string" default:"${default_config}" env:"STUDYLIT_CONFIG"`
	Debug    bool   `help:"Log at debug level and mirror logs to stderr." env:"STUDYLIT_DEBUG"`
	Timezone string `help:"IANA timezone used to decide today's date." env:"STUDYLIT_TIMEZONE"`

	Init    cli.InitCmd `cmd:"" help:"Initialize studylit storage."`
	Tui     cli.TuiCmd  `cmd:"" help:"Launch the interactive dashboard." default:"1"`
	Profile struct {
		Set  cli.ProfileSetCmd  `cmd:"" help:"Create or replace your profile."`
		Show cli.ProfileShowCmd `cmd:"" help:"Show your profile." default:"1"`
	} `cmd:"" help:"Manage your student profile."`
	Plan struct {
		Show cli.PlanShowCmd `cmd:"" help:"Show the plan for a day." default:"1"`
		Save cli.PlanSaveCmd `cmd:"" help:"Save plan details for a day."`
		Slot struct {
			Add    cli.PlanSlotAddCmd    `cmd:"" help:"Add a time slot."`
			Toggle cli.PlanSlotToggleCmd `cmd:"" help:"Toggle a time slot's completion."`
			Remove cli.PlanSlotRemoveCmd `cmd:"" help:"Remove a time slot."`
		} `cmd:"" help:"Manage time slots."`
	} `cmd:"" help:"Manage daily study plans."`
	Mock struct {
		Add  cli.MockAddCmd  `cmd:"" help:"Record a mock test."`
		List cli.MockListCmd `cmd:"" help:"List recorded mock tests." default:"1"`
	} `cmd:"" help:"Track mock tests."`
	Subject struct {
		Show   cli.SubjectShowCmd   `cmd:"" help:"Show subject progress or a subject's chapters." default:"withargs"`
		Toggle cli.SubjectToggleCmd `cmd:"" help:"Toggle a chapter's completion."`
	} `cmd:"" help:"Track syllabus progress."`
	Habit struct {
		Add    cli.HabitAddCmd    `cmd:"" help:"Create a habit."`
		List   cli.HabitListCmd   `cmd:"" help:"List habits." default:"1"`
		Toggle cli.HabitToggleCmd `cmd:"" help:"Toggle a daily habit for a day."`
		Mark   cli.HabitMarkCmd   `cmd:"" help:"Advance a challenge by one day."`
	} `cmd:"" help:"Manage habits and challenges."`
	Stats     cli.StatsCmd     `cmd:"" help:"Show dashboard totals."`
	Analytics cli.AnalyticsCmd `cmd:"" help:"Show monthly analytics and trends."`
	Countdown cli.CountdownCmd `cmd:"" help:"Show the time left until the exam."`
	Doctor    cli.DoctorCmd    `cmd:"" help:"Run health checks and diagnostics."`
	Backup    struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage store backups."`
	Keyring struct {
		Set    cli.KeyringSetCmd    `cmd:"" help:"Store the PostgreSQL connection string in the OS keyring."`
		Get    cli.KeyringGetCmd    `cmd:"" help:"Show the stored connection string with the password masked."`
		Delete cli.KeyringDeleteCmd `cmd:"" help:"Remove the stored connection string."`
	} `cmd:"" help:"Manage the PostgreSQL connection string in the OS keyring."`
}

// logDir keeps logs next to a file store and under the default config
// directory for PostgreSQL.
func logDir(config string) string {
	if config == cli.KeyringConfig || storage.IsPostgresConnString(config) {
		return filepath.Dir(cli.ExpandPath(constants.DefaultConfigPath))
	}
	return filepath.Dir(cli.ExpandPath(config))
}

func main() {
	// A missing .env is fine; variables may come from the environment.
	_ = godotenv.Load()

	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("NEET study planner: daily plans, mock tests, syllabus progress and habits"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":        constants.Version,
			"default_config": constants.DefaultConfigPath,
		},
	)

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: logDir(CLI.Config)}); err != nil {
		clierrors.Warn(os.Stderr, fmt.Errorf("file logging disabled: %w", err))
	}

	command := ctx.Command()
	if strings.HasPrefix(command, "keyring") {
		clierrors.Fatal(ctx.Run())
		return
	}

	var opts []tracker.Option
	if CLI.Timezone != "" {
		loc, err := utils.LoadLocation(CLI.Timezone)
		if err != nil {
			clierrors.Fatalf("invalid timezone %q: %v", CLI.Timezone, err)
		}
		opts = append(opts, tracker.WithClock(func() time.Time { return time.Now().In(loc) }))
	}

	config, secret, err := cli.ResolveConfig(CLI.Config)
	if err != nil {
		clierrors.Fatal(err)
	}
	store, err := cli.NewStore(config, secret)
	if err != nil {
		clierrors.Fatal(err)
	}

	var appCtx *cli.Context
	if command == "init" {
		appCtx = &cli.Context{Store: store}
	} else {
		appCtx = cli.Open(store, os.Stderr, opts...)
	}

	err = ctx.Run(appCtx)
	if closeErr := appCtx.Store.Close(); closeErr != nil {
		logger.Warn("Failed to close store", "error", closeErr)
	}
	clierrors.Fatal(err)
	_ = logger.Close()
}
