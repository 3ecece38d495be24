package cli

import (
	"testing"
	"time"

	"github.com/julianstephens/studylit/internal/models"
	"github.com/julianstephens/studylit/internal/storage"
	"github.com/julianstephens/studylit/internal/tracker"
	"github.com/julianstephens/studylit/internal/validation"
)

func setupContext(t *testing.T) *Context {
	t.Helper()
	store := storage.NewMemoryStore()
	if err := store.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	tr := tracker.New(store, tracker.WithClock(func() time.Time { return fixedNow }))
	if err := tr.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return &Context{Store: store, Tracker: tr, Validator: validation.New(tr.Catalog())}
}

func TestSavePlan(t *testing.T) {
	const date = "2025-06-15"

	tests := []struct {
		name      string
		plan      models.DailyPlan
		wantHours float64
		wantSlots int
	}{
		{
			name: "empty row sharing a time with a goal",
			plan: models.DailyPlan{
				TargetHours: 8,
				TimeSlots: []models.TimeSlot{
					{Time: "06:00", Goal: "", Completed: false},
					{Time: "06:00", Goal: "Physics", Completed: true},
				},
			},
			wantHours: 0.5,
			wantSlots: 1,
		},
		{
			name: "target beyond the waking window",
			plan: models.DailyPlan{
				WakeTime:    "06:00",
				SleepTime:   "07:00",
				TargetHours: 8,
				TimeSlots:   []models.TimeSlot{{Time: "06:00", Goal: "Revision", Completed: true}},
			},
			wantHours: 0.5,
			wantSlots: 1,
		},
		{
			name: "two goals at one time",
			plan: models.DailyPlan{
				TimeSlots: []models.TimeSlot{
					{Time: "09:00", Goal: "Physics", Completed: true},
					{Time: "09:00", Goal: "Chemistry", Completed: true},
				},
			},
			wantHours: 1,
			wantSlots: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := setupContext(t)
			if err := savePlan(ctx, date, tt.plan); err != nil {
				t.Fatalf("savePlan() error = %v", err)
			}
			if got := ctx.Tracker.Document().StudyHours[date]; got != tt.wantHours {
				t.Errorf("StudyHours[%s] = %v, want %v", date, got, tt.wantHours)
			}
			if got := len(ctx.Tracker.Plan(date).TimeSlots); got != tt.wantSlots {
				t.Errorf("saved %d slots, want %d", got, tt.wantSlots)
			}
		})
	}
}

func TestSavePlan_RejectsMalformedTimes(t *testing.T) {
	const date = "2025-06-15"
	ctx := setupContext(t)

	plan := models.DailyPlan{
		WakeTime:  "6am",
		TimeSlots: []models.TimeSlot{{Time: "06:00", Goal: "Physics", Completed: true}},
	}
	if err := savePlan(ctx, date, plan); err == nil {
		t.Fatal("expected a malformed wake time to block the save")
	}
	if _, ok := ctx.Tracker.Document().DailyPlans[date]; ok {
		t.Error("plan was saved despite a malformed time")
	}
	if _, ok := ctx.Tracker.Document().StudyHours[date]; ok {
		t.Error("study hours were recorded despite a malformed time")
	}
}
