// Package errors formats command failures for the terminal, adding a next
// step for the errors users can act on.
package errors

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/julianstephens/studylit/internal/constants"
	"github.com/julianstephens/studylit/internal/keyring"
	"github.com/julianstephens/studylit/internal/logger"
	"github.com/julianstephens/studylit/internal/storage"
	"github.com/julianstephens/studylit/internal/tracker"
)

var hints = []struct {
	target error
	hint   string
}{
	{storage.ErrNotInitialized, "run '" + constants.AppName + " init' to create the store"},
	{storage.ErrEmbeddedCredentials, "store the connection string with '" + constants.AppName + " keyring set'"},
	{keyring.ErrNotFound, "run '" + constants.AppName + " keyring set' or set " + constants.EnvDBConnection},
	{tracker.ErrHabitNotFound, "list habit IDs with '" + constants.AppName + " habit list'"},
	{tracker.ErrUnknownChapter, "list chapters with '" + constants.AppName + " subject show <subject>'"},
	{tracker.ErrUnknownSubject, "subjects are physics, chemistry and biology"},
}

// Hint returns a suggested next step for err, or "" when there is none.
func Hint(err error) string {
	for _, h := range hints {
		if errors.Is(err, h.target) {
			return h.hint
		}
	}
	return ""
}

// Format renders err with an "Error: " prefix and, when known, a hint line.
func Format(err error) string {
	if err == nil {
		return ""
	}
	msg := fmt.Sprintf("Error: %v", err)
	if hint := Hint(err); hint != "" {
		msg += "\nHint: " + hint
	}
	return msg
}

func Formatf(format string, args ...interface{}) string {
	return Format(fmt.Errorf(format, args...))
}

// Warn reports a non-fatal error on w and logs it. The command keeps running.
func Warn(w io.Writer, err error) {
	if err == nil {
		return
	}
	logger.Warn("Non-fatal error", "error", err)
	fmt.Fprintf(w, "Warning: %v\n", err)
}

// Fatal logs err, prints it on stderr and exits with status 1. A nil err is a no-op.
func Fatal(err error) {
	if err == nil {
		return
	}
	logger.Error("Command failed", "error", err)
	fmt.Fprintln(os.Stderr, Format(err))
	os.Exit(1)
}

func Fatalf(format string, args ...interface{}) {
	Fatal(fmt.Errorf(format, args...))
}
