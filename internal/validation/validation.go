// Package validation checks form-derived records and the stored document for
// problems the tracker itself tolerates silently.
package validation

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/julianstephens/studylit/internal/catalog"
	"github.com/julianstephens/studylit/internal/constants"
	"github.com/julianstephens/studylit/internal/models"
	"github.com/julianstephens/studylit/internal/utils"
)

type ConflictType string

const (
	ConflictInvalidDateTime    ConflictType = "invalid_datetime"
	ConflictInvalidScore       ConflictType = "invalid_score"
	ConflictMissingField       ConflictType = "missing_field"
	ConflictDuplicateSlotTime  ConflictType = "duplicate_slot_time"
	ConflictOvercommitted      ConflictType = "overcommitted"
	ConflictStudyHoursMismatch ConflictType = "study_hours_mismatch"
	ConflictUnknownChapter     ConflictType = "unknown_chapter"
	ConflictChallengeOverrun   ConflictType = "challenge_overrun"
	ConflictDuplicateHabitName ConflictType = "duplicate_habit_name"
	ConflictMockTestOrder      ConflictType = "mock_test_order"
)

// Conflict is a single finding.
type Conflict struct {
	Type        ConflictType
	Description string
	Date        string // YYYY-MM-DD format (if applicable)
	Items       []string
}

type ValidationResult struct {
	Conflicts []Conflict
}

func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// Blocking reports whether the conflict type marks the record as malformed.
// Other types are advisory.
func (t ConflictType) Blocking() bool {
	switch t {
	case ConflictInvalidDateTime, ConflictInvalidScore, ConflictMissingField:
		return true
	}
	return false
}

// Split separates malformed-record conflicts from advisory ones.
func (vr *ValidationResult) Split() (errs, warnings ValidationResult) {
	for _, c := range vr.Conflicts {
		if c.Type.Blocking() {
			errs.add(c)
		} else {
			warnings.add(c)
		}
	}
	return errs, warnings
}

func (vr *ValidationResult) add(c Conflict) {
	vr.Conflicts = append(vr.Conflicts, c)
}

func (vr *ValidationResult) merge(other ValidationResult) {
	vr.Conflicts = append(vr.Conflicts, other.Conflicts...)
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No conflicts detected."
	}

	var b strings.Builder
	b.WriteString("Conflicts detected:\n")
	for _, conflict := range vr.Conflicts {
		fmt.Fprintf(&b, "- %s\n", conflict.Description)
	}
	return b.String()
}

// Validator checks records against the reference catalog's exam pattern.
type Validator struct {
	catalog *catalog.Catalog
}

func New(c *catalog.Catalog) *Validator {
	if c == nil {
		c = catalog.Default()
	}
	return &Validator{catalog: c}
}

func (v *Validator) maxMarks() int {
	return v.catalog.Pattern.TotalMarks
}

func (v *Validator) subjectMarks(s constants.SubjectName) int {
	return v.catalog.Pattern.Subjects[s].Marks
}

func (v *Validator) ValidateProfile(p models.Profile) ValidationResult {
	var result ValidationResult

	if strings.TrimSpace(p.Name) == "" {
		result.add(Conflict{Type: ConflictMissingField, Description: "Profile name is required", Items: []string{"name"}})
	}
	if p.Age < 0 {
		result.add(Conflict{Type: ConflictInvalidScore, Description: fmt.Sprintf("Age %d cannot be negative", p.Age), Items: []string{"age"}})
	}
	if p.DateOfBirth != "" && !utils.ValidateDateFormat(p.DateOfBirth) {
		result.add(Conflict{
			Type:        ConflictInvalidDateTime,
			Description: fmt.Sprintf("Date of birth %q is not in YYYY-MM-DD format", p.DateOfBirth),
			Items:       []string{"dateOfBirth"},
		})
	}

	v.checkScore(&result, "Target score", p.TargetScore, v.maxMarks())
	v.checkScore(&result, "Physics target", p.PhysicsTarget, v.subjectMarks(constants.SubjectPhysics))
	v.checkScore(&result, "Chemistry target", p.ChemistryTarget, v.subjectMarks(constants.SubjectChemistry))
	v.checkScore(&result, "Biology target", p.BiologyTarget, v.subjectMarks(constants.SubjectBiology))

	return result
}

func (v *Validator) checkScore(result *ValidationResult, label string, score, limit int) {
	if limit > 0 && score > limit {
		result.add(Conflict{
			Type:        ConflictInvalidScore,
			Description: fmt.Sprintf("%s %d exceeds the maximum of %d", label, score, limit),
			Items:       []string{label},
		})
	}
	if score < 0 {
		result.add(Conflict{
			Type:        ConflictInvalidScore,
			Description: fmt.Sprintf("%s %d cannot be negative", label, score),
			Items:       []string{label},
		})
	}
}

// ValidateMockTest checks a test before it is recorded. Actual and subject
// scores may be negative because of negative marking.
func (v *Validator) ValidateMockTest(m models.MockTest) ValidationResult {
	var result ValidationResult

	if m.Date != "" && !utils.ValidateDateFormat(m.Date) {
		result.add(Conflict{
			Type:        ConflictInvalidDateTime,
			Description: fmt.Sprintf("Mock test date %q is not in YYYY-MM-DD format", m.Date),
			Date:        m.Date,
		})
	}

	if m.ActualScore > v.maxMarks() {
		result.add(Conflict{
			Type:        ConflictInvalidScore,
			Description: fmt.Sprintf("Score %d exceeds the maximum of %d", m.ActualScore, v.maxMarks()),
			Date:        m.Date,
		})
	}
	v.checkScore(&result, "Target score", m.TargetScore, v.maxMarks())

	for _, sub := range []struct {
		name  constants.SubjectName
		score int
	}{
		{constants.SubjectPhysics, m.PhysicsScore},
		{constants.SubjectChemistry, m.ChemistryScore},
		{constants.SubjectBiology, m.BiologyScore},
	} {
		if limit := v.subjectMarks(sub.name); limit > 0 && sub.score > limit {
			result.add(Conflict{
				Type:        ConflictInvalidScore,
				Description: fmt.Sprintf("%s score %d exceeds the maximum of %d", sub.name, sub.score, limit),
				Date:        m.Date,
				Items:       []string{string(sub.name)},
			})
		}
	}

	for _, field := range []struct {
		label string
		value int
	}{
		{"Time taken", m.TimeTaken},
		{"Negative marks", m.NegativeMarks},
		{"Guess marks", m.GuessMarks},
		{"Silly mistakes", m.SillyMistakes},
	} {
		if field.value < 0 {
			result.add(Conflict{
				Type:        ConflictInvalidScore,
				Description: fmt.Sprintf("%s %d cannot be negative", field.label, field.value),
				Date:        m.Date,
			})
		}
	}

	return result
}

// ValidatePlan checks a daily plan's times and flags slots sharing a time and
// targets that exceed the waking window. Slots missing a time or goal are
// dropped on save and are not checked.
func (v *Validator) ValidatePlan(date string, plan models.DailyPlan) ValidationResult {
	var result ValidationResult

	if !utils.ValidateDateFormat(date) {
		result.add(Conflict{
			Type:        ConflictInvalidDateTime,
			Description: fmt.Sprintf("Plan date %q is not in YYYY-MM-DD format", date),
			Date:        date,
		})
	}

	for _, field := range []struct {
		name  string
		value string
	}{
		{"wake", plan.WakeTime},
		{"sleep", plan.SleepTime},
	} {
		if field.value != "" && !utils.ValidateTimeFormat(field.value) {
			result.add(Conflict{
				Type:        ConflictInvalidDateTime,
				Description: fmt.Sprintf("%s: %s time %q is not in HH:MM format", date, field.name, field.value),
				Date:        date,
			})
		}
	}

	seen := make(map[string]string)
	for _, slot := range plan.TimeSlots {
		if !slot.IsComplete() {
			continue
		}
		if !utils.ValidateTimeFormat(slot.Time) {
			result.add(Conflict{
				Type:        ConflictInvalidDateTime,
				Description: fmt.Sprintf("%s: slot time %q is not in HH:MM format", date, slot.Time),
				Date:        date,
				Items:       []string{slot.Goal},
			})
			continue
		}
		if other, ok := seen[slot.Time]; ok {
			result.add(Conflict{
				Type:        ConflictDuplicateSlotTime,
				Description: fmt.Sprintf("%s: %q and %q are both scheduled at %s", date, other, slot.Goal, slot.Time),
				Date:        date,
				Items:       []string{other, slot.Goal},
			})
			continue
		}
		seen[slot.Time] = slot.Goal
	}

	if window, ok := wakingHours(plan.WakeTime, plan.SleepTime); ok && plan.TargetHours > window {
		result.add(Conflict{
			Type:        ConflictOvercommitted,
			Description: fmt.Sprintf("%s: target of %.1fh exceeds the %.1fh waking window", date, plan.TargetHours, window),
			Date:        date,
		})
	}

	return result
}

// wakingHours is the time from wake to sleep, wrapping past midnight.
func wakingHours(wake, sleep string) (float64, bool) {
	w, err := utils.ParseTime(wake)
	if err != nil {
		return 0, false
	}
	s, err := utils.ParseTime(sleep)
	if err != nil {
		return 0, false
	}
	d := s.Sub(w).Hours()
	if d <= 0 {
		d += 24
	}
	return d, true
}

// ValidateDocument checks the whole stored document for inconsistencies.
func (v *Validator) ValidateDocument(doc *models.Document) ValidationResult {
	var result ValidationResult
	if doc == nil {
		return result
	}

	if doc.Profile != nil {
		result.merge(v.ValidateProfile(*doc.Profile))
	}

	dates := make([]string, 0, len(doc.DailyPlans))
	for date := range doc.DailyPlans {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	for _, date := range dates {
		plan := doc.DailyPlans[date]
		result.merge(v.ValidatePlan(date, plan))

		want := float64(plan.CompletedSlots()) * constants.SlotHours
		if got := doc.StudyHours[date]; math.Abs(got-want) > 1e-9 {
			result.add(Conflict{
				Type:        ConflictStudyHoursMismatch,
				Description: fmt.Sprintf("%s: recorded %.1fh of study but the plan has %.1fh completed", date, got, want),
				Date:        date,
			})
		}
	}

	for i, test := range doc.MockTests {
		result.merge(v.ValidateMockTest(test))
		if i > 0 && doc.MockTests[i-1].Date < test.Date {
			result.add(Conflict{
				Type:        ConflictMockTestOrder,
				Description: fmt.Sprintf("Mock test on %s is listed after an older test", test.Date),
				Date:        test.Date,
			})
		}
	}

	for _, name := range constants.Subjects {
		chapters := make([]string, 0)
		for chapter := range doc.Subjects[name].Chapters {
			if !v.catalog.HasChapter(name, chapter) {
				chapters = append(chapters, chapter)
			}
		}
		sort.Strings(chapters)
		for _, chapter := range chapters {
			result.add(Conflict{
				Type:        ConflictUnknownChapter,
				Description: fmt.Sprintf("%s chapter %q is not in the catalog", name, chapter),
				Items:       []string{chapter},
			})
		}
	}

	result.merge(v.validateHabits(doc.Habits))

	return result
}

func (v *Validator) validateHabits(habits models.Habits) ValidationResult {
	var result ValidationResult

	for _, population := range [][]models.Habit{habits.Daily, habits.Challenges21, habits.Challenges100} {
		names := make(map[string]bool)
		for _, habit := range population {
			key := strings.ToLower(strings.TrimSpace(habit.Name))
			if names[key] {
				result.add(Conflict{
					Type:        ConflictDuplicateHabitName,
					Description: fmt.Sprintf("Duplicate %s habit name: %s", habit.Type, habit.Name),
					Items:       []string{habit.ID},
				})
			}
			names[key] = true

			if c := habit.Progress.Challenge; c != nil && c.Current > c.Target {
				result.add(Conflict{
					Type:        ConflictChallengeOverrun,
					Description: fmt.Sprintf("Challenge %q is at %d of %d", habit.Name, c.Current, c.Target),
					Items:       []string{habit.ID},
				})
			}
		}
	}

	return result
}
