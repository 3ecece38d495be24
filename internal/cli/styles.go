package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#626262"))
	doneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500"))
)

func header(title string) {
	fmt.Println(headerStyle.Render(title))
}

func checkbox(done bool) string {
	if done {
		return doneStyle.Render("[x]")
	}
	return "[ ]"
}

// bar renders a fixed-width text bar for a 0-100 percentage.
func bar(percent, width int) string {
	percent = max(0, min(100, percent))
	filled := percent * width / 100
	return doneStyle.Render(strings.Repeat("█", filled)) + mutedStyle.Render(strings.Repeat("░", width-filled))
}
