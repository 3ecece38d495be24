package constants

// HabitType identifies which habit population a habit belongs to
type HabitType string

// SubjectName identifies one of the three NEET subjects
type SubjectName string

// Difficulty is a chapter difficulty tier in the reference catalog
type Difficulty string

const (
	HabitTypeDaily  HabitType = "daily"
	HabitType21Day  HabitType = "21day"
	HabitType100Day HabitType = "100day"

	SubjectPhysics   SubjectName = "physics"
	SubjectChemistry SubjectName = "chemistry"
	SubjectBiology   SubjectName = "biology"

	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Subjects lists the subjects in display order
var Subjects = []SubjectName{SubjectPhysics, SubjectChemistry, SubjectBiology}

// Difficulties lists the catalog tiers in display order
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// ParseSubject returns the SubjectName for s and whether it is known
func ParseSubject(s string) (SubjectName, bool) {
	for _, subj := range Subjects {
		if string(subj) == s {
			return subj, true
		}
	}
	return "", false
}

// ParseHabitType returns the HabitType for s and whether it is known
func ParseHabitType(s string) (HabitType, bool) {
	switch HabitType(s) {
	case HabitTypeDaily, HabitType21Day, HabitType100Day:
		return HabitType(s), true
	}
	return "", false
}

// ChallengeTarget returns the count target for a challenge habit type, or 0 for daily habits
func ChallengeTarget(t HabitType) int {
	switch t {
	case HabitType21Day:
		return Challenge21Target
	case HabitType100Day:
		return Challenge100Target
	}
	return 0
}
