package tracker

import (
	"testing"

	"github.com/julianstephens/studylit/internal/constants"
	"github.com/julianstephens/studylit/internal/models"
)

func TestAddMockTest_SortedDescending(t *testing.T) {
	tr, _ := setupTracker(t)
	for _, date := range []string{"2025-06-02", "2025-06-10", "2025-05-20", ""} {
		tr.AddMockTest(models.MockTest{Date: date, ActualScore: 500})
	}

	tests := tr.MockTests()
	want := []string{"2025-06-15", "2025-06-10", "2025-06-02", "2025-05-20"}
	for i, test := range tests {
		if test.Date != want[i] {
			t.Errorf("tests[%d].Date = %s, want %s", i, test.Date, want[i])
		}
		if test.ID == "" {
			t.Errorf("tests[%d] has no ID", i)
		}
	}
}

func TestDashboard(t *testing.T) {
	tr, _ := setupTracker(t)

	empty := tr.Dashboard()
	if empty.TotalHours != 0 || empty.StudyStreak != 0 || empty.MockTestAverage != 0 || empty.OverallProgress != 0 {
		t.Errorf("empty dashboard = %+v", empty)
	}

	tr.SetProfile(models.Profile{TargetScore: 650})
	tr.AddMockTest(models.MockTest{Date: "2025-06-01", ActualScore: 600})
	tr.AddMockTest(models.MockTest{Date: "2025-06-02", ActualScore: 570})
	tr.SavePlan("2025-06-14", models.DailyPlan{TimeSlots: []models.TimeSlot{
		{Time: "06:00", Goal: "Physics", Completed: true},
	}})
	tr.SavePlan("2025-06-15", models.DailyPlan{TimeSlots: []models.TimeSlot{
		{Time: "06:00", Goal: "Physics", Completed: true},
		{Time: "07:00", Goal: "Biology", Completed: true},
	}})

	d := tr.Dashboard()
	if d.TotalHours != 1.5 {
		t.Errorf("TotalHours = %v, want 1.5", d.TotalHours)
	}
	if d.StudyStreak != 2 {
		t.Errorf("StudyStreak = %d, want 2", d.StudyStreak)
	}
	if d.MockTestAverage != 585 || d.OverallProgress != 90 || d.MockTestCount != 2 {
		t.Errorf("dashboard = %+v", d)
	}
	if d.Countdown.Passed || d.Countdown.Days == 0 {
		t.Errorf("Countdown = %+v, want time remaining", d.Countdown)
	}
}

func TestSubjectStatuses(t *testing.T) {
	tr, _ := setupTracker(t)
	tr.SetProfile(models.Profile{PhysicsTarget: 160, ChemistryTarget: 150, BiologyTarget: 340})
	chapter := tr.Catalog().ChapterList(constants.SubjectBiology)[0]
	if _, err := tr.ToggleChapter(constants.SubjectBiology, chapter); err != nil {
		t.Fatal(err)
	}

	statuses := tr.SubjectStatuses()
	if len(statuses) != 3 {
		t.Fatalf("got %d statuses", len(statuses))
	}
	bio := statuses[2]
	if bio.Name != constants.SubjectBiology || bio.Completed != 1 || bio.Target != 340 {
		t.Errorf("biology = %+v", bio)
	}
	if bio.Total != tr.Catalog().TotalChapters(constants.SubjectBiology) {
		t.Errorf("Total = %d", bio.Total)
	}
}

func TestAnalytics(t *testing.T) {
	tr, _ := setupTracker(t)
	habit, _ := tr.CreateHabit("Read", constants.HabitTypeDaily)
	_, _ = tr.ToggleDailyHabit(habit.ID, "2025-06-01")
	_, _ = tr.ToggleDailyHabit(habit.ID, "2025-06-02")
	_, _ = tr.ToggleDailyHabit(habit.ID, "2025-06-03")
	_, _ = tr.ToggleDailyHabit(habit.ID, "2025-06-02")
	tr.SavePlan("2025-06-13", models.DailyPlan{TimeSlots: []models.TimeSlot{
		{Time: "06:00", Goal: "Physics", Completed: true},
	}})

	a := tr.Analytics()
	if a.Month.HabitCompletionRate != 67 {
		t.Errorf("HabitCompletionRate = %d, want 67", a.Month.HabitCompletionRate)
	}
	if a.Month.StudyHours != 0.5 {
		t.Errorf("month StudyHours = %v", a.Month.StudyHours)
	}
	if len(a.StudyDays) != constants.StudyChartDays || a.StudyDays[len(a.StudyDays)-1] != "2025-06-15" {
		t.Errorf("StudyDays = %v", a.StudyDays)
	}
	if a.StudySeries[4] != 0.5 {
		t.Errorf("StudySeries = %v", a.StudySeries)
	}
	if len(a.HabitRates) != 1 || a.HabitRates[0].Rate != 67 {
		t.Errorf("HabitRates = %+v", a.HabitRates)
	}
}

func TestCountdownPassed(t *testing.T) {
	tr, _ := setupTracker(t)
	tr.catalog.ExamDate = "2025-01-01"
	if c := tr.Countdown(); !c.Passed {
		t.Errorf("Countdown = %+v, want passed", c)
	}
}
