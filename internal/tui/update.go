package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/studylit/internal/constants"
	"github.com/julianstephens/studylit/internal/tui/components/habits"
	"github.com/julianstephens/studylit/internal/tui/components/plan"
	"github.com/julianstephens/studylit/internal/tui/components/subjects"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case countdownTickMsg:
		// Picks up a date rollover as well as the new countdown.
		m.refresh()
		return m, tickCountdown()

	case plan.ToggleSlotMsg:
		m.toggleSlot(msg.Index)
		return m, nil

	case subjects.ToggleChapterMsg:
		done, err := m.tracker.ToggleChapter(msg.Subject, msg.Chapter)
		if err != nil {
			m.status = fmt.Sprintf("⚠ %v", err)
			return m, nil
		}
		m.afterWrite(fmt.Sprintf("%s %s", msg.Chapter, completion(done)))
		return m, nil

	case habits.AddHabitMsg:
		m.openHabitForm()
		return m, m.form.Init()

	case habits.MarkHabitMsg:
		m.markHabit(msg)
		return m, nil
	}

	if m.state == StateProfileForm || m.state == StateAddHabit {
		return m.updateForm(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % tabCount
			m.status = ""
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + tabCount) % tabCount
			m.status = ""
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Profile):
			m.openProfileForm()
			return m, m.form.Init()
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case StatePlan:
		m.planModel, cmd = m.planModel.Update(msg)
	case StateSubjects:
		m.subjectsModel, cmd = m.subjectsModel.Update(msg)
	case StateHabits:
		m.habitsModel, cmd = m.habitsModel.Update(msg)
	}
	return m, cmd
}

// updateForm feeds msg to the open form and applies it once completed.
func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.closeForm()
		return m, nil
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		if m.state == StateProfileForm {
			m.saveProfile()
		} else {
			m.saveHabit()
		}
		m.closeForm()
	case huh.StateAborted:
		m.closeForm()
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) closeForm() {
	m.form = nil
	m.profileForm = nil
	m.habitForm = nil
	m.state = m.previousState
}

func (m *Model) saveProfile() {
	profile := m.profileForm.Profile()
	if result := m.validator.ValidateProfile(profile); result.HasConflicts() {
		m.status = fmt.Sprintf("⚠ Profile not saved: %s", result.Conflicts[0].Description)
		return
	}
	m.tracker.SetProfile(profile)
	m.afterWrite(fmt.Sprintf("Profile saved for %s", profile.Name))
}

func (m *Model) saveHabit() {
	h, err := m.tracker.CreateHabit(m.habitForm.Name, m.habitForm.Type)
	if err != nil {
		m.status = fmt.Sprintf("⚠ %v", err)
		return
	}
	m.afterWrite(fmt.Sprintf("Added %s habit %q", h.Type, h.Name))
}

func (m *Model) toggleSlot(index int) {
	p := m.tracker.Plan(m.today)
	if index < 0 || index >= len(p.TimeSlots) {
		return
	}
	p.TimeSlots[index].Completed = !p.TimeSlots[index].Completed
	saved := m.tracker.SavePlan(m.today, p)
	if index >= len(saved.TimeSlots) {
		m.afterWrite("Plan saved")
		return
	}
	m.afterWrite(fmt.Sprintf("%s %s", saved.TimeSlots[index].Goal, completion(saved.TimeSlots[index].Completed)))
}

func (m *Model) markHabit(msg habits.MarkHabitMsg) {
	h, err := m.tracker.FindHabit(msg.ID)
	if err != nil {
		m.status = fmt.Sprintf("⚠ %v", err)
		return
	}

	if msg.Type == constants.HabitTypeDaily {
		done, err := m.tracker.ToggleDailyHabit(msg.ID, m.today)
		if err != nil {
			m.status = fmt.Sprintf("⚠ %v", err)
			return
		}
		m.afterWrite(fmt.Sprintf("%s %s", h.Name, completion(done)))
		return
	}

	progress, err := m.tracker.IncrementChallenge(msg.ID)
	if err != nil {
		m.status = fmt.Sprintf("⚠ %v", err)
		return
	}
	m.afterWrite(fmt.Sprintf("%s: day %d of %d", h.Name, progress.Current, progress.Target))
}

func completion(done bool) string {
	if done {
		return "marked complete"
	}
	return "marked incomplete"
}
