// Package logger is the process-wide structured logger. Until Init or
// InitWriter runs every helper is a no-op.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	fileName   = "studylit.log"
	maxSizeMB  = 10
	maxBackups = 3
	maxAgeDays = 28
)

var (
	// Logger is the global logger instance
	Logger *log.Logger

	rotator *lumberjack.Logger
)

type Config struct {
	// Debug lowers the level to debug and mirrors output to stderr
	Debug     bool
	ConfigDir string
}

// LogPath is the file Init writes to for a config directory.
func LogPath(configDir string) string {
	return filepath.Join(configDir, "logs", fileName)
}

// Init logs to a rotating file under cfg.ConfigDir.
func Init(cfg Config) error {
	path := LogPath(cfg.ConfigDir)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	rotator = &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
		Compress:   true,
	}

	var w io.Writer = rotator
	level := log.WarnLevel
	if cfg.Debug {
		w = io.MultiWriter(os.Stderr, rotator)
		level = log.DebugLevel
	}
	Logger = newLogger(w, level, cfg.Debug)
	return nil
}

// InitWriter points the global logger at w, without timestamps.
func InitWriter(w io.Writer, level log.Level) {
	rotator = nil
	Logger = newLogger(w, level, false)
	Logger.SetReportTimestamp(false)
}

func newLogger(w io.Writer, level log.Level, caller bool) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportCaller:    caller,
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "studylit",
	})
}

// Close releases the log file opened by Init.
func Close() error {
	if rotator == nil {
		return nil
	}
	err := rotator.Close()
	rotator = nil
	return err
}

func logAt(level log.Level, msg string, keyvals []interface{}) {
	if Logger != nil {
		Logger.Log(level, msg, keyvals...)
	}
}

func Debug(msg string, keyvals ...interface{}) { logAt(log.DebugLevel, msg, keyvals) }
func Info(msg string, keyvals ...interface{}) { logAt(log.InfoLevel, msg, keyvals) }
func Warn(msg string, keyvals ...interface{}) { logAt(log.WarnLevel, msg, keyvals) }
func Error(msg string, keyvals ...interface{}) { logAt(log.ErrorLevel, msg, keyvals) }

// CronLogger routes robfig/cron's scheduler logs into the global logger.
// Routine scheduler chatter is demoted to debug.
type CronLogger struct{}

func (CronLogger) Info(msg string, keysAndValues ...interface{}) {
	Debug(msg, keysAndValues...)
}

func (CronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	Error(msg, append([]interface{}{"error", err}, keysAndValues...)...)
}
