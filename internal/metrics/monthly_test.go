package metrics

import (
	"testing"
	"time"

	"github.com/julianstephens/studylit/internal/models"
)

func TestMonthly(t *testing.T) {
	doc := models.NewDocument()
	doc.StudyHours = map[string]float64{
		"2024-06-01": 2,
		"2024-06-15": 1.5,
		"2024-05-31": 4,
		"2023-06-10": 3,
	}
	doc.MockTests = []models.MockTest{
		{ID: "1", Date: "2024-06-20"},
		{ID: "2", Date: "2024-06-02"},
		{ID: "3", Date: "2024-05-28"},
	}
	doc.Habits.Daily = []models.Habit{
		{ID: "h1", Progress: models.HabitProgress{Days: map[string]bool{
			"2024-06-01": true,
			"2024-06-02": false,
			"2024-06-03": true,
			"2024-05-30": false,
		}}},
	}

	r := Monthly(doc, 2024, time.June)
	if r.StudyHours != 3.5 {
		t.Errorf("StudyHours = %v, want 3.5", r.StudyHours)
	}
	if r.MockTests != 2 {
		t.Errorf("MockTests = %d, want 2", r.MockTests)
	}
	if r.HabitEntries != 3 || r.HabitsCompleted != 2 {
		t.Errorf("habit entries = %d/%d, want 2/3", r.HabitsCompleted, r.HabitEntries)
	}
	if r.HabitCompletionRate != 67 {
		t.Errorf("HabitCompletionRate = %d, want 67", r.HabitCompletionRate)
	}
}

func TestMonthlyEmpty(t *testing.T) {
	r := Monthly(models.NewDocument(), 2024, time.June)
	if r.StudyHours != 0 || r.MockTests != 0 || r.HabitCompletionRate != 0 {
		t.Errorf("expected zero rollup, got %+v", r)
	}

	r = Monthly(nil, 2024, time.June)
	if r.HabitCompletionRate != 0 {
		t.Errorf("expected zero rollup for nil document, got %+v", r)
	}
}

func TestCurrentMonth(t *testing.T) {
	doc := models.NewDocument()
	doc.StudyHours["2025-02-14"] = 2
	r := CurrentMonth(doc, time.Date(2025, 2, 28, 23, 0, 0, 0, time.UTC))
	if r.Month != time.February || r.Year != 2025 || r.StudyHours != 2 {
		t.Errorf("CurrentMonth() = %+v", r)
	}
}
