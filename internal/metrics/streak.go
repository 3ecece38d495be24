// Package metrics computes the derived figures shown on the dashboard and the
// analytics views. Every function is pure and never divides by zero.
package metrics

import "sort"

// Streak counts consecutive truthy entries starting from the most recent date.
// Only dates present in the map are visited, newest first; a missing day is
// skipped rather than treated as a break.
func Streak[V any](entries map[string]V, truthy func(V) bool) int {
	dates := make([]string, 0, len(entries))
	for date := range entries {
		dates = append(dates, date)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	streak := 0
	for _, date := range dates {
		if !truthy(entries[date]) {
			break
		}
		streak++
	}
	return streak
}

// StudyStreak is the streak over study-hours entries; a day counts when hours > 0.
func StudyStreak(hours map[string]float64) int {
	return Streak(hours, func(h float64) bool { return h > 0 })
}

// HabitStreak is the streak over a daily habit's completion flags.
func HabitStreak(days map[string]bool) int {
	return Streak(days, func(done bool) bool { return done })
}
