package cli

import (
	"fmt"

	"github.com/julianstephens/studylit/internal/constants"
	"github.com/julianstephens/studylit/internal/metrics"
	"github.com/julianstephens/studylit/internal/models"
)

type MockAddCmd struct {
	Score     int    `help:"Total score obtained." required:""`
	Target    int    `help:"Target score for this test."`
	Date      string `help:"Test date (YYYY-MM-DD, today or yesterday)." default:"today"`
	Physics   int    `help:"Physics score."`
	Chemistry int    `help:"Chemistry score."`
	Biology   int    `help:"Biology score."`
	Time      int    `help:"Time taken in minutes."`
	Negative  int    `help:"Marks lost to negative marking."`
	Guess     int    `help:"Marks gained from guesses."`
	Silly     int    `help:"Number of silly mistakes."`
}

func (c *MockAddCmd) Run(ctx *Context) error {
	date, err := ctx.resolveDate(c.Date)
	if err != nil {
		return err
	}

	target := c.Target
	if target == 0 {
		if p := ctx.Tracker.Profile(); p != nil {
			target = p.TargetScore
		}
	}

	test := models.MockTest{
		Date:           date,
		TargetScore:    target,
		ActualScore:    c.Score,
		PhysicsScore:   c.Physics,
		ChemistryScore: c.Chemistry,
		BiologyScore:   c.Biology,
		TimeTaken:      c.Time,
		NegativeMarks:  c.Negative,
		GuessMarks:     c.Guess,
		SillyMistakes:  c.Silly,
	}
	if result := ctx.Validator.ValidateMockTest(test); result.HasConflicts() {
		return fmt.Errorf("mock test not recorded:\n%s", result.FormatReport())
	}

	stored := ctx.Tracker.AddMockTest(test)
	ctx.warnOnWriteFailure()
	fmt.Printf("✓ Recorded mock test on %s: %d/%d (%d%% of target)\n",
		stored.Date, stored.ActualScore, stored.TargetScore, metrics.Accuracy(stored))
	return nil
}

type MockListCmd struct {
	All bool `help:"Show every recorded test instead of the most recent."`
}

func (c *MockListCmd) Run(ctx *Context) error {
	tests := ctx.Tracker.MockTests()
	if len(tests) == 0 {
		fmt.Println("No mock tests recorded yet.")
		return nil
	}
	if !c.All {
		tests = metrics.RecentTests(tests, constants.RecentTestsShown)
	}

	header(fmt.Sprintf("Mock tests (average %d)", metrics.MockTestAverage(ctx.Tracker.MockTests())))
	fmt.Printf("  %-10s  %7s  %7s  %8s  %4s  %4s  %4s  %5s  %5s\n",
		"Date", "Score", "Target", "Accuracy", "Phy", "Chem", "Bio", "Neg", "Silly")
	for _, t := range tests {
		fmt.Printf("  %-10s  %7d  %7d  %7d%%  %4d  %4d  %4d  %5d  %5d\n",
			t.Date, t.ActualScore, t.TargetScore, metrics.Accuracy(t),
			t.PhysicsScore, t.ChemistryScore, t.BiologyScore, t.NegativeMarks, t.SillyMistakes)
	}
	return nil
}
