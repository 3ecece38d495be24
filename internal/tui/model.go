package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/studylit/internal/constants"
	"github.com/julianstephens/studylit/internal/metrics"
	"github.com/julianstephens/studylit/internal/tracker"
	"github.com/julianstephens/studylit/internal/tui/components/habits"
	"github.com/julianstephens/studylit/internal/tui/components/plan"
	"github.com/julianstephens/studylit/internal/tui/components/subjects"
	"github.com/julianstephens/studylit/internal/validation"
)

type SessionState int

const (
	StateDashboard SessionState = iota
	StatePlan
	StateSubjects
	StateHabits
	StateProfileForm
	StateAddHabit
)

// tabCount is the number of tab states; form states follow them.
const tabCount = 4

var tabTitles = []string{"Dashboard", "Plan", "Subjects", "Habits"}

// countdownTickMsg drives the periodic countdown refresh.
type countdownTickMsg time.Time

func tickCountdown() tea.Cmd {
	return tea.Tick(constants.CountdownInterval, func(t time.Time) tea.Msg {
		return countdownTickMsg(t)
	})
}

type Model struct {
	tracker       *tracker.Tracker
	validator     *validation.Validator
	state         SessionState
	previousState SessionState
	keys          KeyMap
	help          help.Model
	bar           progress.Model
	planModel     plan.Model
	subjectsModel subjects.Model
	habitsModel   habits.Model
	form          *huh.Form
	profileForm   *ProfileFormModel
	habitForm     *HabitFormModel
	dashboard     tracker.Dashboard
	countdown     metrics.Countdown
	today         string
	status        string
	warning       string
	quitting      bool
	width         int
	height        int
}

// NewModel builds the dashboard over t. Without a profile the session opens on
// the setup form.
func NewModel(t *tracker.Tracker) Model {
	t.SeedSampleHabits()
	today := t.Today()

	pm := plan.New(0, 0)
	pm.SetPlan(today, t.Plan(today))

	m := Model{
		tracker:       t,
		validator:     validation.New(t.Catalog()),
		state:         StateDashboard,
		keys:          DefaultKeyMap(),
		help:          help.New(),
		bar:           progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
		planModel:     pm,
		subjectsModel: subjects.New(t.Catalog(), t.Document().Subjects),
		habitsModel:   habits.New(t.Habits(), today, 0, 0),
		today:         today,
	}
	m.refresh()

	if t.Profile() == nil {
		m.openProfileForm()
	}
	return m
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case StatePlan:
		keys = append(keys, m.keys.Up, m.keys.Down, m.keys.Enter)
	case StateSubjects:
		keys = append(keys, m.keys.Left, m.keys.Right, m.keys.Enter)
	case StateHabits:
		keys = append(keys, m.keys.Add, m.keys.Enter)
	}
	keys = append(keys, m.keys.Profile)
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help, m.keys.Profile}

	var actions []key.Binding
	switch m.state {
	case StatePlan:
		actions = []key.Binding{m.keys.Up, m.keys.Down, m.keys.Enter}
	case StateSubjects:
		actions = []key.Binding{m.keys.Left, m.keys.Right, m.keys.Up, m.keys.Down, m.keys.Enter}
	case StateHabits:
		actions = []key.Binding{m.keys.Up, m.keys.Down, m.keys.Add, m.keys.Enter}
	}

	return [][]key.Binding{global, actions}
}

func (m Model) Init() tea.Cmd {
	if m.form != nil && m.state == StateProfileForm {
		return tea.Batch(m.form.Init(), tickCountdown())
	}
	return tickCountdown()
}

// refresh re-reads every view model from the tracker and re-runs validation.
func (m *Model) refresh() {
	m.today = m.tracker.Today()
	m.dashboard = m.tracker.Dashboard()
	m.countdown = m.dashboard.Countdown
	m.planModel.SetPlan(m.today, m.tracker.Plan(m.today))
	m.subjectsModel.SetSubjects(m.tracker.Document().Subjects)
	m.habitsModel.SetHabits(m.tracker.Habits(), m.today)

	result := m.validator.ValidateDocument(m.tracker.Document())
	if result.HasConflicts() {
		m.warning = fmt.Sprintf("⚠ %d validation warning(s), run 'studylit doctor' for details", len(result.Conflicts))
	} else {
		m.warning = ""
	}
}

// afterWrite refreshes the views and surfaces a failed save in the status line.
func (m *Model) afterWrite(done string) {
	m.refresh()
	if err := m.tracker.LastWriteError(); err != nil {
		m.status = fmt.Sprintf("⚠ Changes not saved: %v", err)
		return
	}
	m.status = done
}

func (m *Model) openProfileForm() {
	m.profileForm = newProfileFormModel(m.tracker.Profile())
	m.form = NewProfileForm(m.profileForm)
	if m.state < tabCount {
		m.previousState = m.state
	}
	m.state = StateProfileForm
}

func (m *Model) openHabitForm() {
	m.habitForm = &HabitFormModel{Type: constants.HabitTypeDaily}
	m.form = NewHabitForm(m.habitForm)
	m.previousState = StateHabits
	m.state = StateAddHabit
}

func (m *Model) contentHeight() int {
	// tabs, status line and help
	return max(0, m.height-6)
}

func (m *Model) resize() {
	h := m.contentHeight()
	m.help.Width = m.width
	m.planModel.SetSize(m.width, h)
	m.subjectsModel.SetSize(m.width, h)
	m.habitsModel.SetSize(m.width, h)
	m.bar.Width = min(40, max(10, m.width-24))
}
