package metrics

import (
	"time"

	"github.com/julianstephens/studylit/internal/models"
	"github.com/julianstephens/studylit/internal/utils"
)

// MonthlyRollup aggregates one calendar month of activity.
type MonthlyRollup struct {
	Year                int
	Month               time.Month
	StudyHours          float64
	MockTests           int
	HabitEntries        int
	HabitsCompleted     int
	HabitCompletionRate int
}

// Monthly computes the rollup for the given month and year.
func Monthly(doc *models.Document, year int, month time.Month) MonthlyRollup {
	r := MonthlyRollup{Year: year, Month: month}
	if doc == nil {
		return r
	}

	for date, hours := range doc.StudyHours {
		if utils.InMonth(date, year, month) {
			r.StudyHours += hours
		}
	}

	for _, test := range doc.MockTests {
		if utils.InMonth(test.Date, year, month) {
			r.MockTests++
		}
	}

	for _, habit := range doc.Habits.Daily {
		for date, done := range habit.Progress.Days {
			if !utils.InMonth(date, year, month) {
				continue
			}
			r.HabitEntries++
			if done {
				r.HabitsCompleted++
			}
		}
	}
	r.HabitCompletionRate = Percent(float64(r.HabitsCompleted), float64(r.HabitEntries))

	return r
}

// CurrentMonth computes the rollup for the month containing now.
func CurrentMonth(doc *models.Document, now time.Time) MonthlyRollup {
	return Monthly(doc, now.Year(), now.Month())
}
