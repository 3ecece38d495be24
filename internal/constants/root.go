package constants

import "time"

const (
	AppName            = "studylit"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/studylit/studylit.db"
	Version            = "v0.3.0"

	// DocumentKey is the single storage key the whole tracker document lives under
	DocumentKey = "neetTrackerData"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// ExamDate is the NEET 2026 exam day the countdown runs towards
	ExamDate = "2026-05-03"

	// SlotHours is the study-hours credit for one completed time slot
	SlotHours = 0.5

	// Challenge lengths
	Challenge21Target  = 21
	Challenge100Target = 100

	// SampleHabitSeedCount is how many sample habits bootstrap an empty daily population
	SampleHabitSeedCount = 4

	// Dashboard/analytics windows
	RecentTestsShown    = 5
	ChartTestsWindow    = 10
	StudyChartDays      = 7
	CountdownRefreshSec = 60

	// Daily plan defaults for a date with no saved plan; times start unset
	DefaultSleepTime   = ""
	DefaultWakeTime    = ""
	DefaultTargetHours = 8.0

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "studylit-"

	// Environment variables
	EnvDBConnection = "STUDYLIT_DB_CONNECTION"

	// CountdownInterval is how often the countdown display refreshes
	CountdownInterval = CountdownRefreshSec * time.Second
)
