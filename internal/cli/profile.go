package cli

import (
	"fmt"

	"github.com/julianstephens/studylit/internal/models"
	"github.com/julianstephens/studylit/internal/tui"
)

type ProfileSetCmd struct {
	Name            string `help:"Your name."`
	Age             int    `help:"Age in years."`
	Location        string `help:"City or region."`
	DOB             string `name:"dob" help:"Date of birth (YYYY-MM-DD)."`
	Attempt         string `help:"Attempt number (e.g. first, second)."`
	Target          int    `help:"Overall target score out of 720."`
	PhysicsTarget   int    `help:"Physics target score."`
	ChemistryTarget int    `help:"Chemistry target score."`
	BiologyTarget   int    `help:"Biology target score."`
	College         string `help:"Dream college."`
	Goal            string `help:"Life goal."`
	Hobbies         string `help:"Hobbies."`
	Form            bool   `help:"Fill in the profile with an interactive form."`
}

// Run replaces the profile wholesale. Without --name the interactive form is
// used, prefilled from the current profile.
func (c *ProfileSetCmd) Run(ctx *Context) error {
	var profile models.Profile
	if c.Form || c.Name == "" {
		current := ctx.Tracker.Profile()
		filled, err := tui.RunProfileForm(current)
		if err != nil {
			return fmt.Errorf("profile form: %w", err)
		}
		profile = filled
	} else {
		profile = models.Profile{
			Name:            c.Name,
			Age:             c.Age,
			Location:        c.Location,
			DateOfBirth:     c.DOB,
			AttemptNumber:   c.Attempt,
			TargetScore:     c.Target,
			PhysicsTarget:   c.PhysicsTarget,
			ChemistryTarget: c.ChemistryTarget,
			BiologyTarget:   c.BiologyTarget,
			DreamCollege:    c.College,
			LifeGoal:        c.Goal,
			Hobbies:         c.Hobbies,
		}
	}

	if result := ctx.Validator.ValidateProfile(profile); result.HasConflicts() {
		return fmt.Errorf("invalid profile:\n%s", result.FormatReport())
	}

	ctx.Tracker.SetProfile(profile)
	ctx.warnOnWriteFailure()
	fmt.Printf("✓ Profile saved for %s\n", profile.Name)
	return nil
}

type ProfileShowCmd struct{}

func (c *ProfileShowCmd) Run(ctx *Context) error {
	p := ctx.Tracker.Profile()
	if p == nil {
		fmt.Println("No profile yet. Create one with 'studylit profile set'.")
		return nil
	}

	header("Profile")
	fmt.Printf("  Name:          %s\n", p.Name)
	fmt.Printf("  Age:           %d\n", p.Age)
	fmt.Printf("  Location:      %s\n", p.Location)
	fmt.Printf("  Date of birth: %s\n", p.DateOfBirth)
	fmt.Printf("  Attempt:       %s\n", p.AttemptNumber)
	fmt.Println()
	header("Targets")
	fmt.Printf("  Overall:   %d/720\n", p.TargetScore)
	fmt.Printf("  Physics:   %d\n", p.PhysicsTarget)
	fmt.Printf("  Chemistry: %d\n", p.ChemistryTarget)
	fmt.Printf("  Biology:   %d\n", p.BiologyTarget)
	fmt.Println()
	header("Motivation")
	fmt.Printf("  Dream college: %s\n", p.DreamCollege)
	fmt.Printf("  Life goal:     %s\n", p.LifeGoal)
	fmt.Printf("  Hobbies:       %s\n", p.Hobbies)
	return nil
}
