package models

type TimeSlot struct {
	Time      string `json:"time"` // HH:MM format
	Goal      string `json:"goal"`
	Completed bool   `json:"completed"`
}

// IsComplete reports whether the slot carries both of its required fields.
func (s TimeSlot) IsComplete() bool {
	return s.Time != "" && s.Goal != ""
}

type DailyPlan struct {
	SleepTime    string     `json:"sleepTime"` // HH:MM format
	WakeTime     string     `json:"wakeTime"`  // HH:MM format
	FocusSubject string     `json:"focusSubject"`
	TargetHours  float64    `json:"targetHours"`
	TimeSlots    []TimeSlot `json:"timeSlots"`
}

// CompletedSlots returns the number of completed slots in the plan.
func (p DailyPlan) CompletedSlots() int {
	n := 0
	for _, slot := range p.TimeSlots {
		if slot.Completed {
			n++
		}
	}
	return n
}
