package plan

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/studylit/internal/models"
	"github.com/julianstephens/studylit/internal/tracker"
)

var (
	timeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(8)

	goalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Strikethrough(true)

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
)

// ToggleSlotMsg asks the parent to flip the completion flag of a slot.
type ToggleSlotMsg struct {
	Index int
}

type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "toggle slot"),
		),
	}
}

type Model struct {
	viewport viewport.Model
	keys     KeyMap
	Date     string
	Plan     models.DailyPlan
	cursor   int
	width    int
	height   int
}

func New(width, height int) Model {
	return Model{
		viewport: viewport.New(width, height),
		keys:     DefaultKeyMap(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
				m.Render()
			}
			return m, nil
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.Plan.TimeSlots)-1 {
				m.cursor++
				m.Render()
			}
			return m, nil
		case key.Matches(msg, m.keys.Toggle):
			if len(m.Plan.TimeSlots) == 0 {
				return m, nil
			}
			index := m.cursor
			return m, func() tea.Msg { return ToggleSlotMsg{Index: index} }
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.viewport.View()
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
	m.Render()
}

func (m *Model) SetPlan(date string, plan models.DailyPlan) {
	m.Date = date
	m.Plan = plan
	if m.cursor >= len(plan.TimeSlots) {
		m.cursor = max(0, len(plan.TimeSlots)-1)
	}
	m.Render()
}

// Cursor is the index of the highlighted slot.
func (m Model) Cursor() int {
	return m.cursor
}

func unsetDash(t string) string {
	if t == "" {
		return "--:--"
	}
	return t
}

func (m *Model) Render() {
	summary := tracker.SummarizePlan(m.Plan)

	var b strings.Builder
	focus := m.Plan.FocusSubject
	if focus == "" {
		focus = "none"
	}
	fmt.Fprintf(&b, "%s  wake %s  sleep %s  focus %s\n",
		goalStyle.Render(m.Date), unsetDash(m.Plan.WakeTime), unsetDash(m.Plan.SleepTime), focus)
	fmt.Fprintf(&b, "%s\n\n", statusStyle.Render(fmt.Sprintf(
		"%d/%d slots done | %.1f of %.1f target hours",
		summary.CompletedSlots, len(m.Plan.TimeSlots), summary.CompletedHours, summary.TargetHours)))

	if len(m.Plan.TimeSlots) == 0 {
		b.WriteString(statusStyle.Render("No time slots planned. Add some with 'studylit plan slot add'."))
		m.viewport.SetContent(b.String())
		return
	}

	for i, slot := range m.Plan.TimeSlots {
		pointer := "  "
		if i == m.cursor {
			pointer = cursorStyle.Render("> ")
		}
		goal := goalStyle.Render(slot.Goal)
		mark := "[ ]"
		if slot.Completed {
			goal = doneStyle.Render(slot.Goal)
			mark = "[x]"
		}
		fmt.Fprintf(&b, "%s%s %s %s\n", pointer, mark, timeStyle.Render(slot.Time), goal)
	}
	m.viewport.SetContent(b.String())
}
