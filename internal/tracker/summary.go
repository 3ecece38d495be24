package tracker

import (
	"time"

	"github.com/julianstephens/studylit/internal/constants"
	"github.com/julianstephens/studylit/internal/metrics"
	"github.com/julianstephens/studylit/internal/models"
	"github.com/julianstephens/studylit/internal/utils"
)

// Dashboard holds the headline figures shown on every overview.
type Dashboard struct {
	TotalHours      float64
	StudyStreak     int
	MockTestAverage int
	OverallProgress int
	MockTestCount   int
	Countdown       metrics.Countdown
}

func (t *Tracker) Dashboard() Dashboard {
	average := metrics.MockTestAverage(t.doc.MockTests)
	return Dashboard{
		TotalHours:      metrics.TotalStudyHours(t.doc.StudyHours),
		StudyStreak:     metrics.StudyStreak(t.doc.StudyHours),
		MockTestAverage: average,
		OverallProgress: metrics.OverallProgress(t.doc.Profile, average),
		MockTestCount:   len(t.doc.MockTests),
		Countdown:       t.Countdown(),
	}
}

// Countdown is the time left until the exam in the clock's location.
func (t *Tracker) Countdown() metrics.Countdown {
	now := t.now()
	exam, err := utils.ParseDateInLocation(t.catalog.ExamDate, now.Location())
	if err != nil {
		return metrics.Countdown{Passed: true}
	}
	return metrics.Until(now, exam)
}

// SubjectStatus is one subject's chapter progress next to the profile target.
type SubjectStatus struct {
	Name      constants.SubjectName
	Completed int
	Total     int
	Progress  int
	Target    int
}

func (t *Tracker) SubjectStatuses() []SubjectStatus {
	statuses := make([]SubjectStatus, 0, len(constants.Subjects))
	for _, name := range constants.Subjects {
		subject := t.doc.Subjects[name]
		completed := 0
		for chapter, done := range subject.Chapters {
			if done && t.catalog.HasChapter(name, chapter) {
				completed++
			}
		}
		statuses = append(statuses, SubjectStatus{
			Name:      name,
			Completed: completed,
			Total:     t.catalog.TotalChapters(name),
			Progress:  t.subjectProgress(name, subject),
			Target:    subjectTarget(t.doc.Profile, name),
		})
	}
	return statuses
}

func subjectTarget(p *models.Profile, name constants.SubjectName) int {
	if p == nil {
		return 0
	}
	switch name {
	case constants.SubjectPhysics:
		return p.PhysicsTarget
	case constants.SubjectChemistry:
		return p.ChemistryTarget
	case constants.SubjectBiology:
		return p.BiologyTarget
	}
	return 0
}

// Analytics gathers the chart and rollup data for the analytics view.
type Analytics struct {
	Month       metrics.MonthlyRollup
	StudyDays   []string
	StudySeries []float64
	RecentTests []models.MockTest
	TrendTests  []models.MockTest
	HabitRates  []metrics.HabitRate
}

func (t *Tracker) Analytics() Analytics {
	now := t.now()
	days := utils.LastNDays(now, constants.StudyChartDays)
	return Analytics{
		Month:       metrics.CurrentMonth(t.doc, now),
		StudyDays:   days,
		StudySeries: metrics.StudyHoursSeries(t.doc.StudyHours, days),
		RecentTests: metrics.RecentTests(t.doc.MockTests, constants.RecentTestsShown),
		TrendTests:  metrics.TrendTests(t.doc.MockTests, constants.ChartTestsWindow),
		HabitRates:  metrics.HabitCompletionRates(t.doc.Habits.Daily),
	}
}

// HabitStreak is the current streak of a daily habit; challenges have none.
func HabitStreak(h models.Habit) int {
	return metrics.HabitStreak(h.Progress.Days)
}

// MonthOf returns the rollup for an arbitrary month.
func (t *Tracker) MonthOf(year int, month time.Month) metrics.MonthlyRollup {
	return metrics.Monthly(t.doc, year, month)
}
