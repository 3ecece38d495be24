package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/julianstephens/studylit/internal/constants"
)

// ChallengeProgress is the count-up state of a 21/100-day challenge.
type ChallengeProgress struct {
	Current int `json:"current"`
	Target  int `json:"target"`
}

// Done reports whether the challenge has reached its target.
func (c ChallengeProgress) Done() bool {
	return c.Current >= c.Target
}

// HabitProgress holds either per-date completion flags (daily habits) or a
// challenge counter. Exactly one of Days or Challenge is meaningful.
type HabitProgress struct {
	Days      map[string]bool
	Challenge *ChallengeProgress
}

func (p HabitProgress) MarshalJSON() ([]byte, error) {
	if p.Challenge != nil {
		return json.Marshal(p.Challenge)
	}
	if p.Days == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(p.Days)
}

func (p *HabitProgress) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to parse habit progress: %w", err)
	}

	_, hasCurrent := raw["current"]
	_, hasTarget := raw["target"]
	if hasCurrent && hasTarget {
		var c ChallengeProgress
		if err := json.Unmarshal(data, &c); err != nil {
			return fmt.Errorf("failed to parse challenge progress: %w", err)
		}
		p.Challenge = &c
		p.Days = nil
		return nil
	}

	days := make(map[string]bool, len(raw))
	if err := json.Unmarshal(data, &days); err != nil {
		return fmt.Errorf("failed to parse daily progress: %w", err)
	}
	p.Days = days
	p.Challenge = nil
	return nil
}

// Habit represents a tracked practice, either daily or a fixed-length challenge
type Habit struct {
	ID        string              `json:"id"`
	Name      string              `json:"name"`
	Type      constants.HabitType `json:"type"`
	CreatedAt time.Time           `json:"createdAt"`
	Progress  HabitProgress       `json:"progress"`
}

// NewHabit builds a habit with the empty progress record matching its type.
func NewHabit(id, name string, habitType constants.HabitType, createdAt time.Time) Habit {
	h := Habit{
		ID:        id,
		Name:      name,
		Type:      habitType,
		CreatedAt: createdAt,
	}
	if target := constants.ChallengeTarget(habitType); target > 0 {
		h.Progress.Challenge = &ChallengeProgress{Current: 0, Target: target}
	} else {
		h.Progress.Days = make(map[string]bool)
	}
	return h
}

// Habits groups the three habit populations.
type Habits struct {
	Daily         []Habit `json:"daily"`
	Challenges21  []Habit `json:"challenges21"`
	Challenges100 []Habit `json:"challenges100"`
}

func NewHabits() Habits {
	return Habits{
		Daily:         []Habit{},
		Challenges21:  []Habit{},
		Challenges100: []Habit{},
	}
}

// Population returns a pointer to the slice holding habits of the given type.
func (h *Habits) Population(t constants.HabitType) *[]Habit {
	switch t {
	case constants.HabitType21Day:
		return &h.Challenges21
	case constants.HabitType100Day:
		return &h.Challenges100
	default:
		return &h.Daily
	}
}
