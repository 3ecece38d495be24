package cli

import (
	"fmt"

	"github.com/julianstephens/studylit/internal/constants"
	"github.com/julianstephens/studylit/internal/metrics"
	"github.com/julianstephens/studylit/internal/models"
	"github.com/julianstephens/studylit/internal/tracker"
)

type HabitAddCmd struct {
	Name string `arg:"" help:"Habit name."`
	Type string `help:"Habit type: daily, 21day or 100day." default:"daily" enum:"daily,21day,100day"`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	habit, err := ctx.Tracker.CreateHabit(c.Name, constants.HabitType(c.Type))
	if err != nil {
		return err
	}
	ctx.warnOnWriteFailure()
	fmt.Printf("✓ Added %s habit %q (%s)\n", habit.Type, habit.Name, habit.ID)
	return nil
}

type HabitListCmd struct{}

// Run lists every habit. An empty daily population is seeded with sample
// habits first.
func (c *HabitListCmd) Run(ctx *Context) error {
	if ctx.Tracker.SeedSampleHabits() {
		ctx.warnOnWriteFailure()
		fmt.Println(mutedStyle.Render("Added sample daily habits to get you started."))
	}

	today := ctx.Tracker.Today()
	habits := ctx.Tracker.Habits()

	header("Daily habits")
	printDailyHabits(habits.Daily, today)
	fmt.Println()
	header("21-day challenges")
	printChallenges(habits.Challenges21)
	fmt.Println()
	header("100-day challenges")
	printChallenges(habits.Challenges100)
	return nil
}

func printDailyHabits(habits []models.Habit, today string) {
	if len(habits) == 0 {
		fmt.Println(mutedStyle.Render("  none"))
		return
	}
	for _, h := range habits {
		fmt.Printf("  %s %-32s streak %-3d %s\n",
			checkbox(h.Progress.Days[today]), h.Name, tracker.HabitStreak(h), mutedStyle.Render(h.ID))
	}
}

func printChallenges(habits []models.Habit) {
	if len(habits) == 0 {
		fmt.Println(mutedStyle.Render("  none"))
		return
	}
	for _, h := range habits {
		c := h.Progress.Challenge
		if c == nil {
			continue
		}
		fmt.Printf("  %-32s %s %3d/%-3d %s\n",
			h.Name, bar(metrics.ChallengePercent(*c), 20), c.Current, c.Target, mutedStyle.Render(h.ID))
	}
}

type HabitToggleCmd struct {
	ID   string `arg:"" help:"Habit ID."`
	Date string `help:"Date (YYYY-MM-DD, today, yesterday or tomorrow)." default:"today"`
}

func (c *HabitToggleCmd) Run(ctx *Context) error {
	date, err := ctx.resolveDate(c.Date)
	if err != nil {
		return err
	}
	done, err := ctx.Tracker.ToggleDailyHabit(c.ID, date)
	if err != nil {
		return err
	}
	ctx.warnOnWriteFailure()

	habit, err := ctx.Tracker.FindHabit(c.ID)
	if err != nil {
		return err
	}
	fmt.Printf("%s %s on %s (streak %d)\n", checkbox(done), habit.Name, date, tracker.HabitStreak(habit))
	return nil
}

type HabitMarkCmd struct {
	ID string `arg:"" help:"Challenge habit ID."`
}

// Run advances a challenge by one day.
func (c *HabitMarkCmd) Run(ctx *Context) error {
	before, err := ctx.Tracker.FindHabit(c.ID)
	if err != nil {
		return err
	}
	progress, err := ctx.Tracker.IncrementChallenge(c.ID)
	if err != nil {
		return err
	}
	ctx.warnOnWriteFailure()

	if before.Progress.Challenge != nil && before.Progress.Challenge.Done() {
		fmt.Printf("%s is already complete (%d/%d)\n", before.Name, progress.Current, progress.Target)
		return nil
	}
	fmt.Printf("✓ %s: day %d of %d\n", before.Name, progress.Current, progress.Target)
	if progress.Done() {
		fmt.Println(doneStyle.Render("Challenge complete!"))
	}
	return nil
}
