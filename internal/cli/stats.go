package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/studylit/internal/metrics"
)

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *Context) error {
	d := ctx.Tracker.Dashboard()

	header("Dashboard")
	if p := ctx.Tracker.Profile(); p != nil {
		fmt.Printf("  Hi %s, target %d/720\n", p.Name, p.TargetScore)
	}
	fmt.Printf("  Exam countdown:   %s\n", formatCountdown(d.Countdown))
	fmt.Printf("  Total study:      %.1fh\n", d.TotalHours)
	fmt.Printf("  Study streak:     %d day(s)\n", d.StudyStreak)
	fmt.Printf("  Mock tests:       %d (average %d)\n", d.MockTestCount, d.MockTestAverage)
	fmt.Printf("  Target progress:  %s %d%%\n", bar(d.OverallProgress, 20), d.OverallProgress)

	fmt.Println()
	header("Subjects")
	for _, s := range ctx.Tracker.SubjectStatuses() {
		fmt.Printf("  %-10s %s %3d%%\n", s.Name, bar(s.Progress, 20), s.Progress)
	}

	fmt.Println()
	printPlan(ctx.Tracker.Today(), ctx.Tracker.Plan(ctx.Tracker.Today()))
	return nil
}

const monthFormat = "2006-01"

type AnalyticsCmd struct {
	Month string `help:"Month to roll up (YYYY-MM). Defaults to the current month."`
}

func (c *AnalyticsCmd) Run(ctx *Context) error {
	a := ctx.Tracker.Analytics()

	title := "This month"
	if c.Month != "" {
		m, err := time.Parse(monthFormat, c.Month)
		if err != nil {
			return fmt.Errorf("invalid month %q, expected YYYY-MM", c.Month)
		}
		a.Month = ctx.Tracker.MonthOf(m.Year(), m.Month())
		title = "Month"
	}

	header(fmt.Sprintf("%s (%s %d)", title, a.Month.Month, a.Month.Year))
	fmt.Printf("  Study hours:      %.1fh\n", a.Month.StudyHours)
	fmt.Printf("  Mock tests:       %d\n", a.Month.MockTests)
	fmt.Printf("  Habit completion: %d%% (%d of %d entries)\n",
		a.Month.HabitCompletionRate, a.Month.HabitsCompleted, a.Month.HabitEntries)

	fmt.Println()
	header("Last 7 days")
	maxHours := 0.0
	for _, h := range a.StudySeries {
		maxHours = max(maxHours, h)
	}
	for i, day := range a.StudyDays {
		fmt.Printf("  %s %s %.1fh\n", day, bar(metrics.Percent(a.StudySeries[i], maxHours), 20), a.StudySeries[i])
	}

	fmt.Println()
	header("Score trend")
	if len(a.TrendTests) == 0 {
		fmt.Println(mutedStyle.Render("  no mock tests yet"))
	}
	for _, t := range a.TrendTests {
		fmt.Printf("  %s %s %d\n", t.Date, bar(metrics.Percent(float64(t.ActualScore), 720), 20), t.ActualScore)
	}

	fmt.Println()
	header("Habit completion")
	if len(a.HabitRates) == 0 {
		fmt.Println(mutedStyle.Render("  no daily habits yet"))
	}
	for _, r := range a.HabitRates {
		fmt.Printf("  %-32s %s %3d%%\n", truncate(r.Name, 32), bar(r.Rate, 20), r.Rate)
	}
	return nil
}

func formatCountdown(c metrics.Countdown) string {
	if c.Passed {
		return "exam day has arrived"
	}
	return fmt.Sprintf("%dd %dh %dm", c.Days, c.Hours, c.Minutes)
}

func truncate(s string, n int) string {
	if len([]rune(s)) <= n {
		return s
	}
	return strings.TrimSpace(string([]rune(s)[:n-1])) + "…"
}
