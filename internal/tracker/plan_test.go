package tracker

import (
	"testing"

	"github.com/julianstephens/studylit/internal/constants"
	"github.com/julianstephens/studylit/internal/models"
)

func TestPlan_DefaultWhenAbsent(t *testing.T) {
	tr, _ := setupTracker(t)

	plan := tr.Plan("2025-06-15")
	if plan.SleepTime != "" || plan.WakeTime != "" {
		t.Errorf("plan times = %q/%q, want unset", plan.SleepTime, plan.WakeTime)
	}
	if plan.TargetHours != constants.DefaultTargetHours || len(plan.TimeSlots) != 0 {
		t.Errorf("plan = %+v, want empty default", plan)
	}
	if _, ok := tr.Document().DailyPlans["2025-06-15"]; ok {
		t.Error("reading a plan must not create it")
	}
}

func TestSavePlan_FiltersIncompleteSlots(t *testing.T) {
	tr, _ := setupTracker(t)

	saved := tr.SavePlan("2025-06-15", models.DailyPlan{
		SleepTime:   "23:00",
		WakeTime:    "06:00",
		TargetHours: 8,
		TimeSlots: []models.TimeSlot{
			{Time: "06:00", Goal: "Physics", Completed: true},
			{Time: "", Goal: "X", Completed: false},
		},
	})

	if len(saved.TimeSlots) != 1 || saved.TimeSlots[0].Goal != "Physics" {
		t.Errorf("slots = %+v, want only the Physics slot", saved.TimeSlots)
	}
	if got := tr.Document().StudyHours["2025-06-15"]; got != 0.5 {
		t.Errorf("studyHours = %v, want 0.5", got)
	}
}

func TestSavePlan_RecomputesHours(t *testing.T) {
	tr, _ := setupTracker(t)
	date := "2025-06-15"

	tr.SavePlan(date, models.DailyPlan{TimeSlots: []models.TimeSlot{
		{Time: "06:00", Goal: "Physics", Completed: true},
		{Time: "07:00", Goal: "Chemistry", Completed: true},
		{Time: "08:00", Goal: "Biology", Completed: true},
		{Time: "09:00", Goal: "Revision", Completed: false},
	}})
	if got := tr.Document().StudyHours[date]; got != 1.5 {
		t.Fatalf("studyHours = %v, want 1.5", got)
	}

	plan := tr.Plan(date)
	plan.TimeSlots[0].Completed = false
	tr.SavePlan(date, plan)
	if got := tr.Document().StudyHours[date]; got != 1.0 {
		t.Errorf("studyHours after uncheck = %v, want 1.0", got)
	}

	summary := SummarizePlan(tr.Plan(date))
	if summary.CompletedSlots != 2 || summary.CompletedHours != 1.0 {
		t.Errorf("summary = %+v", summary)
	}
}

func TestPlan_ReturnsCopy(t *testing.T) {
	tr, _ := setupTracker(t)
	tr.SavePlan("2025-06-15", models.DailyPlan{TimeSlots: []models.TimeSlot{
		{Time: "06:00", Goal: "Physics"},
	}})

	plan := tr.Plan("2025-06-15")
	plan.TimeSlots[0].Goal = "changed"
	if tr.Plan("2025-06-15").TimeSlots[0].Goal != "Physics" {
		t.Error("Plan() leaked the stored slot slice")
	}
}

func TestSavePlan_NilMapsAfterLoad(t *testing.T) {
	tr, store := setupTracker(t)
	_ = store.Set(constants.DocumentKey, []byte(`{"dailyPlans":null,"studyHours":null}`))
	if err := tr.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	tr.SavePlan("2025-06-15", models.DailyPlan{TimeSlots: []models.TimeSlot{
		{Time: "06:00", Goal: "Physics", Completed: true},
	}})
	if tr.Document().StudyHours["2025-06-15"] != 0.5 {
		t.Error("SavePlan should recreate missing maps")
	}
}
