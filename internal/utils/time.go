// Package utils holds the date helpers shared by the tracker, metrics and CLI.
// Dates are YYYY-MM-DD strings and times of day are HH:MM strings throughout.
package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/studylit/internal/constants"
)

// relativeDays maps the date words accepted on the command line to day offsets.
var relativeDays = map[string]int{
	"":          0,
	"today":     0,
	"yesterday": -1,
	"tomorrow":  1,
}

// LoadLocation resolves an IANA name; "" and "Local" mean the system zone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

func FormatDate(t time.Time) string {
	return t.Format(constants.DateFormat)
}

func ParseDate(date string) (time.Time, error) {
	return time.Parse(constants.DateFormat, date)
}

// ParseDateInLocation returns midnight of date in loc.
func ParseDateInLocation(date string, loc *time.Location) (time.Time, error) {
	t, err := ParseDate(date)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc), nil
}

// ResolveDate accepts a YYYY-MM-DD date or one of "today", "yesterday" and
// "tomorrow" relative to now. An empty string means today.
func ResolveDate(date string, now time.Time) (string, error) {
	if offset, ok := relativeDays[strings.ToLower(strings.TrimSpace(date))]; ok {
		return FormatDate(now.AddDate(0, 0, offset)), nil
	}
	if !ValidateDateFormat(date) {
		return "", fmt.Errorf("invalid date %q (expected YYYY-MM-DD, today, yesterday or tomorrow)", date)
	}
	return date, nil
}

// InMonth reports whether date falls in the given month. Unparsable dates are
// in no month.
func InMonth(date string, year int, month time.Month) bool {
	t, err := ParseDate(date)
	if err != nil {
		return false
	}
	return t.Year() == year && t.Month() == month
}

// LastNDays returns the n dates ending at now, oldest first.
func LastNDays(now time.Time, n int) []string {
	days := make([]string, 0, max(n, 0))
	for i := n - 1; i >= 0; i-- {
		days = append(days, FormatDate(now.AddDate(0, 0, -i)))
	}
	return days
}

func ParseTime(clock string) (time.Time, error) {
	return time.Parse(constants.TimeFormat, clock)
}

func ValidateTimeFormat(clock string) bool {
	_, err := ParseTime(clock)
	return err == nil
}

func ValidateDateFormat(date string) bool {
	_, err := ParseDate(date)
	return err == nil
}
