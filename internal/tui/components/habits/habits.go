package habits

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/studylit/internal/constants"
	"github.com/julianstephens/studylit/internal/metrics"
	"github.com/julianstephens/studylit/internal/models"
	"github.com/julianstephens/studylit/internal/tracker"
)

type AddHabitMsg struct{}

// MarkHabitMsg asks the parent to toggle a daily habit for today or advance a challenge.
type MarkHabitMsg struct {
	ID   string
	Type constants.HabitType
}

type Item struct {
	Habit models.Habit
	Today string
}

func (i Item) Title() string {
	if c := i.Habit.Progress.Challenge; c != nil {
		if c.Done() {
			return "★ " + i.Habit.Name
		}
		return "◇ " + i.Habit.Name
	}
	if i.Habit.Progress.Days[i.Today] {
		return "✓ " + i.Habit.Name
	}
	return "○ " + i.Habit.Name
}

func (i Item) Description() string {
	if c := i.Habit.Progress.Challenge; c != nil {
		return fmt.Sprintf("%s | %d/%d days (%d%%)", i.Habit.Type, c.Current, c.Target, metrics.ChallengePercent(*c))
	}
	status := "not done today"
	if i.Habit.Progress.Days[i.Today] {
		status = "done today"
	}
	return fmt.Sprintf("daily | %s | streak %d", status, tracker.HabitStreak(i.Habit))
}

func (i Item) FilterValue() string { return i.Habit.Name }

type KeyMap struct {
	Add  key.Binding
	Mark key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Mark: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "mark"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(habits models.Habits, today string, width, height int) Model {
	l := list.New(items(habits, today), list.NewDefaultDelegate(), width, height)
	l.Title = "Habits"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Mark}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Mark}
	}

	return Model{list: l, keys: keys}
}

// items flattens the three populations, daily habits first.
func items(habits models.Habits, today string) []list.Item {
	var out []list.Item
	for _, group := range [][]models.Habit{habits.Daily, habits.Challenges21, habits.Challenges100} {
		for _, h := range group {
			out = append(out, Item{Habit: h, Today: today})
		}
	}
	return out
}

func (m *Model) SetHabits(habits models.Habits, today string) {
	m.list.SetItems(items(habits, today))
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddHabitMsg{} }
		case key.Matches(msg, m.keys.Mark):
			if i, ok := m.list.SelectedItem().(Item); ok {
				if c := i.Habit.Progress.Challenge; c != nil && c.Done() {
					return m, nil
				}
				return m, func() tea.Msg { return MarkHabitMsg{ID: i.Habit.ID, Type: i.Habit.Type} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No habits yet.\n  Press 'a' to add one."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
