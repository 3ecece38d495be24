package tracker

import (
	"fmt"
	"strings"

	"github.com/julianstephens/studylit/internal/constants"
	"github.com/julianstephens/studylit/internal/models"
)

// CreateHabit adds a habit to the population matching habitType.
func (t *Tracker) CreateHabit(name string, habitType constants.HabitType) (models.Habit, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Habit{}, ErrEmptyHabitName
	}
	if _, ok := constants.ParseHabitType(string(habitType)); !ok {
		return models.Habit{}, fmt.Errorf("%w: %s", ErrUnknownHabitType, habitType)
	}

	habit := models.NewHabit(t.newID(), name, habitType, t.now())
	population := t.doc.Habits.Population(habitType)
	*population = append(*population, habit)

	t.persist()
	return habit, nil
}

// Habits returns the three habit populations. The slices are shared with the
// document and must not be modified.
func (t *Tracker) Habits() models.Habits {
	return t.doc.Habits
}

// SeedSampleHabits fills an empty daily population with the first sample
// habits from the catalog. It reports whether anything was added; a non-empty
// population is left untouched.
func (t *Tracker) SeedSampleHabits() bool {
	if len(t.doc.Habits.Daily) > 0 {
		return false
	}

	samples := t.catalog.SampleHabits
	if len(samples) > constants.SampleHabitSeedCount {
		samples = samples[:constants.SampleHabitSeedCount]
	}
	if len(samples) == 0 {
		return false
	}

	now := t.now()
	daily := make([]models.Habit, 0, len(samples))
	for _, name := range samples {
		daily = append(daily, models.NewHabit(t.newID(), name, constants.HabitTypeDaily, now))
	}
	t.doc.Habits.Daily = daily

	t.persist()
	return true
}

// FindHabit returns a copy of the habit with id from any population.
func (t *Tracker) FindHabit(id string) (models.Habit, error) {
	ref, err := t.habitRef(id)
	if err != nil {
		return models.Habit{}, err
	}
	habit := *ref
	if ref.Progress.Challenge != nil {
		c := *ref.Progress.Challenge
		habit.Progress.Challenge = &c
	}
	if ref.Progress.Days != nil {
		habit.Progress.Days = make(map[string]bool, len(ref.Progress.Days))
		for date, done := range ref.Progress.Days {
			habit.Progress.Days[date] = done
		}
	}
	return habit, nil
}

func (t *Tracker) habitRef(id string) (*models.Habit, error) {
	for _, habitType := range []constants.HabitType{
		constants.HabitTypeDaily, constants.HabitType21Day, constants.HabitType100Day,
	} {
		population := *t.doc.Habits.Population(habitType)
		for i := range population {
			if population[i].ID == id {
				return &population[i], nil
			}
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrHabitNotFound, id)
}

// ToggleDailyHabit flips a daily habit's completion flag for date and returns
// the new flag.
func (t *Tracker) ToggleDailyHabit(id, date string) (bool, error) {
	habit, err := t.habitRef(id)
	if err != nil {
		return false, err
	}
	if habit.Progress.Challenge != nil {
		return false, fmt.Errorf("%w: %s is a challenge habit", ErrWrongHabitType, habit.Name)
	}

	if habit.Progress.Days == nil {
		habit.Progress.Days = make(map[string]bool)
	}
	habit.Progress.Days[date] = !habit.Progress.Days[date]

	t.persist()
	return habit.Progress.Days[date], nil
}

// IncrementChallenge advances a challenge habit by one, never past its target.
// At the target it is a no-op: nothing is written and LastWriteError is nil.
func (t *Tracker) IncrementChallenge(id string) (models.ChallengeProgress, error) {
	habit, err := t.habitRef(id)
	if err != nil {
		return models.ChallengeProgress{}, err
	}
	challenge := habit.Progress.Challenge
	if challenge == nil {
		return models.ChallengeProgress{}, fmt.Errorf("%w: %s is a daily habit", ErrWrongHabitType, habit.Name)
	}

	if challenge.Current >= challenge.Target {
		t.lastWriteErr = nil
		return *challenge, nil
	}
	challenge.Current++

	t.persist()
	return *challenge, nil
}
