package tracker

import (
	"github.com/julianstephens/studylit/internal/constants"
	"github.com/julianstephens/studylit/internal/models"
)

// DefaultPlan is the plan shown for a date that has never been saved.
func DefaultPlan() models.DailyPlan {
	return models.DailyPlan{
		SleepTime:    constants.DefaultSleepTime,
		WakeTime:     constants.DefaultWakeTime,
		FocusSubject: "",
		TargetHours:  constants.DefaultTargetHours,
		TimeSlots:    []models.TimeSlot{},
	}
}

// Plan returns a copy of the plan stored for date, or DefaultPlan when absent.
func (t *Tracker) Plan(date string) models.DailyPlan {
	plan, ok := t.doc.DailyPlans[date]
	if !ok {
		return DefaultPlan()
	}
	slots := make([]models.TimeSlot, len(plan.TimeSlots))
	copy(slots, plan.TimeSlots)
	plan.TimeSlots = slots
	return plan
}

// SavePlan replaces the plan for date. Slots missing a time or a goal are
// dropped, and the date's study hours are recomputed from the completed slots
// that remain. It returns the plan as stored.
func (t *Tracker) SavePlan(date string, plan models.DailyPlan) models.DailyPlan {
	slots := make([]models.TimeSlot, 0, len(plan.TimeSlots))
	for _, slot := range plan.TimeSlots {
		if slot.IsComplete() {
			slots = append(slots, slot)
		}
	}
	plan.TimeSlots = slots

	if t.doc.DailyPlans == nil {
		t.doc.DailyPlans = make(map[string]models.DailyPlan)
	}
	if t.doc.StudyHours == nil {
		t.doc.StudyHours = make(map[string]float64)
	}
	t.doc.DailyPlans[date] = plan
	t.doc.StudyHours[date] = float64(plan.CompletedSlots()) * constants.SlotHours

	t.persist()
	return t.Plan(date)
}

// PlanSummary compares the completed study time of a plan with its target.
type PlanSummary struct {
	CompletedSlots int
	CompletedHours float64
	TargetHours    float64
}

func SummarizePlan(plan models.DailyPlan) PlanSummary {
	completed := plan.CompletedSlots()
	return PlanSummary{
		CompletedSlots: completed,
		CompletedHours: float64(completed) * constants.SlotHours,
		TargetHours:    plan.TargetHours,
	}
}
