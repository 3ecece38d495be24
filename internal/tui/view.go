package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/studylit/internal/metrics"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string

	switch m.state {
	case StateDashboard:
		content = m.viewDashboard()
	case StatePlan:
		content = m.planModel.View()
	case StateSubjects:
		content = m.subjectsModel.View()
	case StateHabits:
		content = m.habitsModel.View()
	case StateProfileForm, StateAddHabit:
		if m.form != nil {
			content = m.form.View()
		}
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		m.viewStatus(),
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range tabTitles {
		style := inactiveTabStyle
		if SessionState(i) == m.state {
			style = activeTabStyle
		}
		tabs = append(tabs, style.Render(title))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...) + "\n"
}

func (m Model) viewStatus() string {
	var lines []string
	if m.status != "" {
		lines = append(lines, mutedStyle.Render(m.status))
	}
	if m.warning != "" {
		lines = append(lines, warningStyle.Render(m.warning))
	}
	return strings.Join(lines, "\n")
}

func formatCountdown(c metrics.Countdown) string {
	if c.Passed {
		return "NEET exam day has arrived"
	}
	return fmt.Sprintf("%d days  %d hours  %d minutes to NEET", c.Days, c.Hours, c.Minutes)
}

func (m Model) viewDashboard() string {
	var b strings.Builder

	name := "student"
	if p := m.tracker.Profile(); p != nil && p.Name != "" {
		name = p.Name
	}
	b.WriteString(titleStyle.Render(fmt.Sprintf("Welcome back, %s", name)) + "\n")
	b.WriteString(countdownStyle.Render(formatCountdown(m.countdown)) + "\n\n")

	d := m.dashboard
	fmt.Fprintf(&b, "%s%.1f h\n", labelStyle.Render("Total study"), d.TotalHours)
	fmt.Fprintf(&b, "%s%d day(s)\n", labelStyle.Render("Study streak"), d.StudyStreak)
	fmt.Fprintf(&b, "%s%d/720 over %d test(s)\n", labelStyle.Render("Mock average"), d.MockTestAverage, d.MockTestCount)
	fmt.Fprintf(&b, "%s%s\n\n", labelStyle.Render("Toward target"), m.bar.ViewAs(percent(d.OverallProgress)))

	for _, s := range m.tracker.SubjectStatuses() {
		label := labelStyle.Render(strings.ToUpper(string(s.Name)[:1]) + string(s.Name)[1:])
		fmt.Fprintf(&b, "%s%s %d/%d\n", label, m.bar.ViewAs(percent(s.Progress)), s.Completed, s.Total)
	}

	summaryPlan := m.planModel.Plan
	fmt.Fprintf(&b, "\n%s%d/%d slots done\n", labelStyle.Render("Today"), summaryPlan.CompletedSlots(), len(summaryPlan.TimeSlots))

	return b.String()
}

func percent(p int) float64 {
	return float64(max(0, min(100, p))) / 100
}
