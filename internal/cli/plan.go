package cli

import (
	"fmt"

	"github.com/julianstephens/studylit/internal/models"
	"github.com/julianstephens/studylit/internal/tracker"
)

type PlanShowCmd struct {
	Date string `help:"Date (YYYY-MM-DD, today, yesterday or tomorrow)." default:"today"`
}

func (c *PlanShowCmd) Run(ctx *Context) error {
	date, err := ctx.resolveDate(c.Date)
	if err != nil {
		return err
	}
	printPlan(date, ctx.Tracker.Plan(date))
	return nil
}

func printPlan(date string, plan models.DailyPlan) {
	header(fmt.Sprintf("Plan for %s", date))
	fmt.Printf("  Wake %s · Sleep %s", orUnset(plan.WakeTime), orUnset(plan.SleepTime))
	if plan.FocusSubject != "" {
		fmt.Printf(" · Focus: %s", plan.FocusSubject)
	}
	fmt.Println()

	if len(plan.TimeSlots) == 0 {
		fmt.Println(mutedStyle.Render("  No time slots. Add one with 'studylit plan slot add TIME GOAL'."))
	}
	for i, slot := range plan.TimeSlots {
		fmt.Printf("  %2d. %s %s  %s\n", i+1, checkbox(slot.Completed), slot.Time, slot.Goal)
	}

	summary := tracker.SummarizePlan(plan)
	fmt.Printf("\n  Studied %.1fh of %.1fh target (%d slots done)\n",
		summary.CompletedHours, summary.TargetHours, summary.CompletedSlots)
}

func orUnset(t string) string {
	if t == "" {
		return "--:--"
	}
	return t
}

type PlanSaveCmd struct {
	Date   string   `help:"Date (YYYY-MM-DD, today, yesterday or tomorrow)." default:"today"`
	Sleep  *string  `help:"Sleep time (HH:MM)."`
	Wake   *string  `help:"Wake time (HH:MM)."`
	Focus  *string  `help:"Focus subject for the day."`
	Target *float64 `help:"Target study hours."`
}

// Run updates the plan's day-level fields, keeping its slots.
func (c *PlanSaveCmd) Run(ctx *Context) error {
	date, err := ctx.resolveDate(c.Date)
	if err != nil {
		return err
	}

	plan := ctx.Tracker.Plan(date)
	if c.Sleep != nil {
		plan.SleepTime = *c.Sleep
	}
	if c.Wake != nil {
		plan.WakeTime = *c.Wake
	}
	if c.Focus != nil {
		plan.FocusSubject = *c.Focus
	}
	if c.Target != nil {
		plan.TargetHours = *c.Target
	}

	return savePlan(ctx, date, plan)
}

// savePlan commits a plan and prints it as stored. Malformed times block the
// save; advisory findings are printed after it.
func savePlan(ctx *Context, date string, plan models.DailyPlan) error {
	result := ctx.Validator.ValidatePlan(date, plan)
	errs, warnings := result.Split()
	if errs.HasConflicts() {
		return fmt.Errorf("plan not saved:\n%s", errs.FormatReport())
	}

	dropped := 0
	for _, slot := range plan.TimeSlots {
		if !slot.IsComplete() {
			dropped++
		}
	}

	saved := ctx.Tracker.SavePlan(date, plan)
	ctx.warnOnWriteFailure()
	if dropped > 0 {
		fmt.Println(warnStyle.Render(fmt.Sprintf("Skipped %d slot(s) missing a time or goal.", dropped)))
	}
	if warnings.HasConflicts() {
		fmt.Print(warnStyle.Render(warnings.FormatReport()))
	}
	printPlan(date, saved)
	return nil
}

type PlanSlotAddCmd struct {
	Time string `arg:"" help:"Slot time (HH:MM)."`
	Goal string `arg:"" help:"What to study."`
	Done bool   `help:"Mark the slot completed."`
	Date string `help:"Date (YYYY-MM-DD, today, yesterday or tomorrow)." default:"today"`
}

func (c *PlanSlotAddCmd) Run(ctx *Context) error {
	date, err := ctx.resolveDate(c.Date)
	if err != nil {
		return err
	}
	plan := ctx.Tracker.Plan(date)
	plan.TimeSlots = append(plan.TimeSlots, models.TimeSlot{Time: c.Time, Goal: c.Goal, Completed: c.Done})
	return savePlan(ctx, date, plan)
}

type PlanSlotToggleCmd struct {
	Index int    `arg:"" help:"Slot number as shown by 'plan show'."`
	Date  string `help:"Date (YYYY-MM-DD, today, yesterday or tomorrow)." default:"today"`
}

func (c *PlanSlotToggleCmd) Run(ctx *Context) error {
	date, err := ctx.resolveDate(c.Date)
	if err != nil {
		return err
	}
	plan := ctx.Tracker.Plan(date)
	if c.Index < 1 || c.Index > len(plan.TimeSlots) {
		return fmt.Errorf("slot %d does not exist (plan has %d)", c.Index, len(plan.TimeSlots))
	}
	plan.TimeSlots[c.Index-1].Completed = !plan.TimeSlots[c.Index-1].Completed
	return savePlan(ctx, date, plan)
}

type PlanSlotRemoveCmd struct {
	Index int    `arg:"" help:"Slot number as shown by 'plan show'."`
	Date  string `help:"Date (YYYY-MM-DD, today, yesterday or tomorrow)." default:"today"`
}

func (c *PlanSlotRemoveCmd) Run(ctx *Context) error {
	date, err := ctx.resolveDate(c.Date)
	if err != nil {
		return err
	}
	plan := ctx.Tracker.Plan(date)
	if c.Index < 1 || c.Index > len(plan.TimeSlots) {
		return fmt.Errorf("slot %d does not exist (plan has %d)", c.Index, len(plan.TimeSlots))
	}
	plan.TimeSlots = append(plan.TimeSlots[:c.Index-1], plan.TimeSlots[c.Index:]...)
	return savePlan(ctx, date, plan)
}
