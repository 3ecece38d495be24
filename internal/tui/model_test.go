package tui

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/studylit/internal/constants"
	"github.com/julianstephens/studylit/internal/models"
	"github.com/julianstephens/studylit/internal/storage"
	"github.com/julianstephens/studylit/internal/tracker"
	"github.com/julianstephens/studylit/internal/tui/components/habits"
	"github.com/julianstephens/studylit/internal/tui/components/plan"
	"github.com/julianstephens/studylit/internal/tui/components/subjects"
)

var fixedNow = time.Date(2025, time.June, 15, 9, 30, 0, 0, time.UTC)

func setupTracker(t *testing.T, withProfile bool) *tracker.Tracker {
	t.Helper()
	store := storage.NewMemoryStore()
	if err := store.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	n := 0
	tr := tracker.New(store,
		tracker.WithClock(func() time.Time { return fixedNow }),
		tracker.WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		}),
	)
	if err := tr.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if withProfile {
		tr.SetProfile(models.Profile{Name: "Asha", TargetScore: 650})
	}
	return tr
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return model, cmd
}

func sized(t *testing.T, m Model) Model {
	t.Helper()
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	return m
}

func TestNewModel_ProfileFormWithoutProfile(t *testing.T) {
	m := NewModel(setupTracker(t, false))
	if m.state != StateProfileForm {
		t.Errorf("state = %v, want StateProfileForm", m.state)
	}
	if m.form == nil {
		t.Fatal("expected profile form to be open")
	}

	m = NewModel(setupTracker(t, true))
	if m.state != StateDashboard {
		t.Errorf("state = %v, want StateDashboard", m.state)
	}
}

func TestNewModel_SeedsHabits(t *testing.T) {
	tr := setupTracker(t, true)
	NewModel(tr)
	if got := len(tr.Habits().Daily); got != constants.SampleHabitSeedCount {
		t.Errorf("daily habits = %d, want %d", got, constants.SampleHabitSeedCount)
	}
}

func TestTabCycling(t *testing.T) {
	m := sized(t, NewModel(setupTracker(t, true)))

	want := []SessionState{StatePlan, StateSubjects, StateHabits, StateDashboard}
	for _, w := range want {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
		if m.state != w {
			t.Fatalf("after tab state = %v, want %v", m.state, w)
		}
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.state != StateHabits {
		t.Errorf("after shift+tab state = %v, want StateHabits", m.state)
	}
}

func TestQuit(t *testing.T) {
	m := NewModel(setupTracker(t, true))
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if !m.quitting {
		t.Error("expected quitting to be set")
	}
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("expected empty view after quit")
	}
}

func TestPlanTab_TogglesSlot(t *testing.T) {
	tr := setupTracker(t, true)
	today := tr.Today()
	p := tracker.DefaultPlan()
	p.TimeSlots = []models.TimeSlot{
		{Time: "07:00", Goal: "Physics PYQs"},
		{Time: "09:00", Goal: "Biology NCERT"},
	}
	tr.SavePlan(today, p)

	m := sized(t, NewModel(tr))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected toggle command")
	}
	msg, ok := cmd().(plan.ToggleSlotMsg)
	if !ok || msg.Index != 1 {
		t.Fatalf("cmd() = %#v, want ToggleSlotMsg{Index: 1}", msg)
	}

	m, _ = update(t, m, msg)
	saved := tr.Plan(today)
	if !saved.TimeSlots[1].Completed || saved.TimeSlots[0].Completed {
		t.Errorf("slots = %+v, want only the second completed", saved.TimeSlots)
	}
	if got := tr.Document().StudyHours[today]; got != constants.SlotHours {
		t.Errorf("study hours = %v, want %v", got, constants.SlotHours)
	}
	if m.planModel.Plan.CompletedSlots() != 1 {
		t.Error("plan view was not refreshed")
	}
}

func TestToggleSlot_OutOfRange(t *testing.T) {
	tr := setupTracker(t, true)
	m := NewModel(tr)
	update(t, m, plan.ToggleSlotMsg{Index: 3})
	if _, ok := tr.Document().DailyPlans[tr.Today()]; ok {
		t.Error("out of range toggle should not save a plan")
	}
}

func TestMarkHabit(t *testing.T) {
	tr := setupTracker(t, true)
	challenge, err := tr.CreateHabit("No social media", constants.HabitType21Day)
	if err != nil {
		t.Fatalf("CreateHabit() error = %v", err)
	}
	m := NewModel(tr)
	daily := tr.Habits().Daily[0]

	m, _ = update(t, m, habits.MarkHabitMsg{ID: daily.ID, Type: daily.Type})
	h, _ := tr.FindHabit(daily.ID)
	if !h.Progress.Days[tr.Today()] {
		t.Error("expected daily habit to be done today")
	}

	m, _ = update(t, m, habits.MarkHabitMsg{ID: challenge.ID, Type: challenge.Type})
	h, _ = tr.FindHabit(challenge.ID)
	if h.Progress.Challenge.Current != 1 {
		t.Errorf("challenge current = %d, want 1", h.Progress.Challenge.Current)
	}
	if m.status == "" {
		t.Error("expected a status message")
	}

	m, _ = update(t, m, habits.MarkHabitMsg{ID: "missing", Type: constants.HabitTypeDaily})
	if !strings.HasPrefix(m.status, "⚠") {
		t.Errorf("status = %q, want a warning", m.status)
	}
}

func TestMarkHabit_CompletedChallengeAfterFailedWrite(t *testing.T) {
	store := storage.NewMemoryStore()
	if err := store.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	tr := tracker.New(store, tracker.WithClock(func() time.Time { return fixedNow }))
	tr.SetProfile(models.Profile{Name: "Asha", TargetScore: 650})
	challenge, err := tr.CreateHabit("No social media", constants.HabitType21Day)
	if err != nil {
		t.Fatalf("CreateHabit() error = %v", err)
	}
	tr.Document().Habits.Challenges21[0].Progress.Challenge.Current = 21
	m := NewModel(tr)

	store.FailWrites = fmt.Errorf("disk full")
	m, _ = update(t, m, subjects.ToggleChapterMsg{Subject: constants.SubjectPhysics, Chapter: "Gravitation"})
	if !strings.Contains(m.status, "not saved") {
		t.Fatalf("status = %q, want a failed-write warning", m.status)
	}
	store.FailWrites = nil

	m, _ = update(t, m, habits.MarkHabitMsg{ID: challenge.ID, Type: challenge.Type})
	if strings.Contains(m.status, "not saved") {
		t.Errorf("status = %q, stale write error after a no-op mark", m.status)
	}
	if m.status != "No social media: day 21 of 21" {
		t.Errorf("status = %q", m.status)
	}
}

func TestToggleChapter(t *testing.T) {
	tr := setupTracker(t, true)
	m := NewModel(tr)

	m, _ = update(t, m, subjects.ToggleChapterMsg{Subject: constants.SubjectPhysics, Chapter: "Gravitation"})
	if !tr.Subject(constants.SubjectPhysics).Chapters["Gravitation"] {
		t.Error("expected chapter to be completed")
	}

	m, _ = update(t, m, subjects.ToggleChapterMsg{Subject: constants.SubjectPhysics, Chapter: "Astrology"})
	if m.status == "" {
		t.Error("expected a warning for an unknown chapter")
	}
}

func TestAddHabitForm(t *testing.T) {
	m := sized(t, NewModel(setupTracker(t, true)))
	m, _ = update(t, m, habits.AddHabitMsg{})
	if m.state != StateAddHabit || m.form == nil {
		t.Fatalf("state = %v, want StateAddHabit with a form", m.state)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.state != StateHabits || m.form != nil {
		t.Errorf("after esc state = %v, want StateHabits with no form", m.state)
	}
}

func TestSaveHabitAndProfile(t *testing.T) {
	tr := setupTracker(t, false)
	m := NewModel(tr)

	m.profileForm.Name = "Ravi"
	m.profileForm.TargetScore = "600"
	m.saveProfile()
	if p := tr.Profile(); p == nil || p.Name != "Ravi" || p.TargetScore != 600 {
		t.Errorf("profile = %+v, want Ravi/600", p)
	}

	m.habitForm = &HabitFormModel{Name: "  Revise formulas ", Type: constants.HabitType100Day}
	m.saveHabit()
	if got := tr.Habits().Challenges100; len(got) != 1 || got[0].Name != "Revise formulas" {
		t.Errorf("challenges100 = %+v", got)
	}
}

func TestCountdownTick(t *testing.T) {
	m := NewModel(setupTracker(t, true))
	m, cmd := update(t, m, countdownTickMsg(fixedNow))
	if cmd == nil {
		t.Error("expected the next tick to be scheduled")
	}
	if m.countdown.Passed || m.countdown.Days == 0 {
		t.Errorf("countdown = %+v, want days remaining", m.countdown)
	}
}

func TestProfileFormModel(t *testing.T) {
	fm := newProfileFormModel(&models.Profile{Name: "Asha", Age: 18, TargetScore: 650})
	if fm.Age != "18" || fm.TargetScore != "650" || fm.PhysicsTarget != "" {
		t.Errorf("form model = %+v", fm)
	}

	p := fm.Profile()
	if p.Name != "Asha" || p.Age != 18 || p.TargetScore != 650 || p.PhysicsTarget != 0 {
		t.Errorf("Profile() = %+v", p)
	}
}

func TestValidateScore(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"", false},
		{"0", false},
		{"720", false},
		{"721", true},
		{"-1", true},
		{"abc", true},
	}
	validate := validateScore(720)
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if err := validate(tt.input); (err != nil) != tt.wantErr {
				t.Errorf("validateScore(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateDate(t *testing.T) {
	if err := validateDate("2007-03-14"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := validateDate("14/03/2007"); err == nil {
		t.Error("expected error for non ISO date")
	}
}
