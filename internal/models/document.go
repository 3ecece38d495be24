package models

// Document is the whole persisted tracker state, stored under a single key.
type Document struct {
	Profile    *Profile             `json:"profile"`
	DailyPlans map[string]DailyPlan `json:"dailyPlans"`
	MockTests  []MockTest           `json:"mockTests"`
	Habits     Habits               `json:"habits"`
	Subjects   Subjects             `json:"subjects"`
	StudyHours map[string]float64   `json:"studyHours"`
}

// NewDocument returns the default skeleton every load starts from.
func NewDocument() *Document {
	return &Document{
		Profile:    nil,
		DailyPlans: make(map[string]DailyPlan),
		MockTests:  []MockTest{},
		Habits:     NewHabits(),
		Subjects:   NewSubjects(),
		StudyHours: make(map[string]float64),
	}
}
