package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/studylit/internal/constants"
	"github.com/julianstephens/studylit/internal/models"
	"github.com/julianstephens/studylit/internal/utils"
)

// ProfileFormModel holds the string-typed form values for a profile.
type ProfileFormModel struct {
	Name            string
	Age             string
	Location        string
	DateOfBirth     string
	AttemptNumber   string
	TargetScore     string
	PhysicsTarget   string
	ChemistryTarget string
	BiologyTarget   string
	DreamCollege    string
	LifeGoal        string
	Hobbies         string
}

type HabitFormModel struct {
	Name string
	Type constants.HabitType
}

func newProfileFormModel(p *models.Profile) *ProfileFormModel {
	if p == nil {
		return &ProfileFormModel{AttemptNumber: "first"}
	}
	return &ProfileFormModel{
		Name:            p.Name,
		Age:             itoa(p.Age),
		Location:        p.Location,
		DateOfBirth:     p.DateOfBirth,
		AttemptNumber:   p.AttemptNumber,
		TargetScore:     itoa(p.TargetScore),
		PhysicsTarget:   itoa(p.PhysicsTarget),
		ChemistryTarget: itoa(p.ChemistryTarget),
		BiologyTarget:   itoa(p.BiologyTarget),
		DreamCollege:    p.DreamCollege,
		LifeGoal:        p.LifeGoal,
		Hobbies:         p.Hobbies,
	}
}

func itoa(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}

// atoi treats blank input as zero; inputs are validated before submission.
func atoi(s string) int {
	n, _ := strconv.Atoi(strings.TrimSpace(s))
	return n
}

// Profile converts the form values into a profile record.
func (fm *ProfileFormModel) Profile() models.Profile {
	return models.Profile{
		Name:            strings.TrimSpace(fm.Name),
		Age:             atoi(fm.Age),
		Location:        strings.TrimSpace(fm.Location),
		DateOfBirth:     strings.TrimSpace(fm.DateOfBirth),
		AttemptNumber:   fm.AttemptNumber,
		TargetScore:     atoi(fm.TargetScore),
		PhysicsTarget:   atoi(fm.PhysicsTarget),
		ChemistryTarget: atoi(fm.ChemistryTarget),
		BiologyTarget:   atoi(fm.BiologyTarget),
		DreamCollege:    strings.TrimSpace(fm.DreamCollege),
		LifeGoal:        strings.TrimSpace(fm.LifeGoal),
		Hobbies:         strings.TrimSpace(fm.Hobbies),
	}
}

func validateRequired(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s cannot be empty", field)
		}
		return nil
	}
}

// validateScore accepts a blank value or an integer in [0, limit].
func validateScore(limit int) func(string) error {
	return func(s string) error {
		s = strings.TrimSpace(s)
		if s == "" {
			return nil
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return errors.New("must be a whole number")
		}
		if n < 0 || n > limit {
			return fmt.Errorf("must be between 0 and %d", limit)
		}
		return nil
	}
}

func validateDate(s string) error {
	s = strings.TrimSpace(s)
	if s == "" || utils.ValidateDateFormat(s) {
		return nil
	}
	return errors.New("use YYYY-MM-DD")
}

// NewProfileForm builds the multi-page setup form.
func NewProfileForm(fm *ProfileFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&fm.Name).
				Validate(validateRequired("name")),
			huh.NewInput().
				Title("Age").
				Value(&fm.Age).
				Validate(validateScore(120)),
			huh.NewInput().
				Title("Location").
				Value(&fm.Location),
			huh.NewInput().
				Title("Date of Birth (YYYY-MM-DD)").
				Value(&fm.DateOfBirth).
				Validate(validateDate),
			huh.NewSelect[string]().
				Title("Attempt").
				Options(
					huh.NewOption("First", "first"),
					huh.NewOption("Second", "second"),
					huh.NewOption("Third", "third"),
					huh.NewOption("Fourth or later", "fourth"),
				).
				Value(&fm.AttemptNumber),
		).Title("About you"),
		huh.NewGroup(
			huh.NewInput().
				Title("Overall target (out of 720)").
				Value(&fm.TargetScore).
				Validate(validateScore(720)),
			huh.NewInput().
				Title("Physics target (out of 180)").
				Value(&fm.PhysicsTarget).
				Validate(validateScore(180)),
			huh.NewInput().
				Title("Chemistry target (out of 180)").
				Value(&fm.ChemistryTarget).
				Validate(validateScore(180)),
			huh.NewInput().
				Title("Biology target (out of 360)").
				Value(&fm.BiologyTarget).
				Validate(validateScore(360)),
		).Title("Targets"),
		huh.NewGroup(
			huh.NewInput().
				Title("Dream college").
				Value(&fm.DreamCollege),
			huh.NewText().
				Title("Life goal").
				Value(&fm.LifeGoal),
			huh.NewInput().
				Title("Hobbies").
				Value(&fm.Hobbies),
		).Title("Motivation"),
	).WithTheme(huh.ThemeDracula())
}

// NewHabitForm creates a form for adding a habit of any type.
func NewHabitForm(fm *HabitFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit Name").
				Value(&fm.Name).
				Validate(validateRequired("habit name")),
			huh.NewSelect[constants.HabitType]().
				Title("Type").
				Options(
					huh.NewOption("Daily", constants.HabitTypeDaily),
					huh.NewOption("21-day challenge", constants.HabitType21Day),
					huh.NewOption("100-day challenge", constants.HabitType100Day),
				).
				Value(&fm.Type),
		),
	).WithTheme(huh.ThemeDracula())
}

// RunProfileForm runs the profile form standalone, prefilled from current.
func RunProfileForm(current *models.Profile) (models.Profile, error) {
	fm := newProfileFormModel(current)
	if err := NewProfileForm(fm).Run(); err != nil {
		return models.Profile{}, err
	}
	return fm.Profile(), nil
}
