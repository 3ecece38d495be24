package subjects

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/studylit/internal/catalog"
	"github.com/julianstephens/studylit/internal/constants"
	"github.com/julianstephens/studylit/internal/models"
)

var (
	activeSubjectStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("205")).
				Bold(true).
				Underline(true)

	subjectStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	tierStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Width(8)

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))
)

// ToggleChapterMsg asks the parent to flip a chapter's completion.
type ToggleChapterMsg struct {
	Subject constants.SubjectName
	Chapter string
}

type KeyMap struct {
	Prev   key.Binding
	Next   key.Binding
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev subject"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next subject"),
		),
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
			key.WithHelp("enter", "toggle chapter"),
		),
	}
}

type Model struct {
	catalog  *catalog.Catalog
	subjects models.Subjects
	keys     KeyMap
	bar      progress.Model
	selected int
	cursor   int
	width    int
	height   int
}

func New(c *catalog.Catalog, subjects models.Subjects) Model {
	return Model{
		catalog:  c,
		subjects: subjects,
		keys:     DefaultKeyMap(),
		bar:      progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Subject is the subject currently shown.
func (m Model) Subject() constants.SubjectName {
	return constants.Subjects[m.selected]
}

func (m Model) chapters() []string {
	return m.catalog.ChapterList(m.Subject())
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Prev):
		m.selected = (m.selected - 1 + len(constants.Subjects)) % len(constants.Subjects)
		m.cursor = 0
	case key.Matches(keyMsg, m.keys.Next):
		m.selected = (m.selected + 1) % len(constants.Subjects)
		m.cursor = 0
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.chapters())-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.keys.Toggle):
		chapters := m.chapters()
		if len(chapters) == 0 {
			return m, nil
		}
		toggle := ToggleChapterMsg{Subject: m.Subject(), Chapter: chapters[m.cursor]}
		return m, func() tea.Msg { return toggle }
	}
	return m, nil
}

func (m *Model) SetSubjects(subjects models.Subjects) {
	m.subjects = subjects
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.bar.Width = min(40, max(10, width-20))
}

func (m Model) View() string {
	var b strings.Builder

	var names []string
	for i, name := range constants.Subjects {
		style := subjectStyle
		if i == m.selected {
			style = activeSubjectStyle
		}
		names = append(names, style.Render(strings.ToUpper(string(name))))
	}
	b.WriteString(strings.Join(names, "  ") + "\n\n")

	subject := m.subjects[m.Subject()]
	chapters := m.chapters()
	completed := 0
	for _, chapter := range chapters {
		if subject.Chapters[chapter] {
			completed++
		}
	}
	fmt.Fprintf(&b, "%s  %d/%d chapters\n\n", m.bar.ViewAs(float64(subject.Progress)/100), completed, len(chapters))

	// Keep the cursor on screen when the chapter list is taller than the pane.
	visible := len(chapters)
	if m.height > 6 {
		visible = min(visible, m.height-6)
	}
	start := 0
	if m.cursor >= visible {
		start = m.cursor - visible + 1
	}
	for i := start; i < min(len(chapters), start+visible); i++ {
		chapter := chapters[i]
		pointer := "  "
		if i == m.cursor {
			pointer = cursorStyle.Render("> ")
		}
		mark := "[ ]"
		name := chapter
		if subject.Chapters[chapter] {
			mark = "[x]"
			name = doneStyle.Render(chapter)
		}
		tier := tierStyle.Render(string(m.catalog.DifficultyOf(m.Subject(), chapter)))
		fmt.Fprintf(&b, "%s%s %s %s\n", pointer, mark, tier, name)
	}
	return b.String()
}
