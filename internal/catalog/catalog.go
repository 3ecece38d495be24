// Package catalog holds the read-only NEET reference data: chapters grouped by
// difficulty, important topics, sample habits and the exam pattern.
package catalog

import "github.com/julianstephens/studylit/internal/constants"

type SubjectPattern struct {
	Questions int `json:"questions"`
	Marks     int `json:"marks"`
}

type ExamPattern struct {
	TotalQuestions  int                                      `json:"total_questions"`
	TotalMarks      int                                      `json:"total_marks"`
	DurationMinutes int                                      `json:"duration_minutes"`
	Subjects        map[constants.SubjectName]SubjectPattern `json:"subjects"`
}

type Catalog struct {
	ExamDate        string                                                      `json:"exam_date"`
	Pattern         ExamPattern                                                 `json:"exam_pattern"`
	Chapters        map[constants.SubjectName]map[constants.Difficulty][]string `json:"chapters"`
	ImportantTopics map[constants.SubjectName][]string                          `json:"important_topics"`
	SampleHabits    []string                                                    `json:"sample_habits"`
}

// Default returns the built-in reference catalog.
func Default() *Catalog {
	return &Catalog{
		ExamDate: constants.ExamDate,
		Pattern: ExamPattern{
			TotalQuestions:  180,
			TotalMarks:      720,
			DurationMinutes: 180,
			Subjects: map[constants.SubjectName]SubjectPattern{
				constants.SubjectPhysics:   {Questions: 45, Marks: 180},
				constants.SubjectChemistry: {Questions: 45, Marks: 180},
				constants.SubjectBiology:   {Questions: 90, Marks: 360},
			},
		},
		Chapters: map[constants.SubjectName]map[constants.Difficulty][]string{
			constants.SubjectPhysics: {
				constants.DifficultyEasy:   {"Units and Measurements", "Motion in Straight Line", "Gravitation"},
				constants.DifficultyMedium: {"Laws of Motion", "Work, Energy and Power", "Rotational Motion", "Oscillations", "Waves"},
				constants.DifficultyHard:   {"Electrostatics", "Current Electricity", "Magnetism", "Electromagnetic Induction", "Alternating Current", "Dual Nature of Radiation"},
			},
			constants.SubjectChemistry: {
				constants.DifficultyEasy:   {"Some Basic Concepts", "States of Matter", "Chemical Bonding", "Redox Reactions"},
				constants.DifficultyMedium: {"Atomic Structure", "Periodic Table", "Equilibrium", "Thermodynamics", "Solutions"},
				constants.DifficultyHard:   {"Chemical Kinetics", "Electrochemistry", "Coordination Compounds", "Organic Chemistry"},
			},
			constants.SubjectBiology: {
				constants.DifficultyEasy:   {"The Living World", "Biological Classification", "Plant Kingdom", "Animal Kingdom"},
				constants.DifficultyMedium: {"Morphology of Plants", "Anatomy of Plants", "Structural Organisation in Animals", "Biomolecules", "Cell Cycle", "Photosynthesis"},
				constants.DifficultyHard:   {"Genetics and Evolution", "Biology and Human Welfare", "Biotechnology", "Ecology and Environment"},
			},
		},
		ImportantTopics: map[constants.SubjectName][]string{
			constants.SubjectPhysics:   {"Mechanics", "Electrodynamics", "Optics", "Modern Physics", "Thermodynamics"},
			constants.SubjectChemistry: {"Organic Chemistry", "Physical Chemistry", "Inorganic Chemistry", "Coordination Chemistry"},
			constants.SubjectBiology:   {"Genetics", "Ecology", "Human Physiology", "Plant Physiology", "Cell Biology", "Molecular Biology"},
		},
		SampleHabits: []string{
			"Study for 8+ hours daily",
			"Solve 50 MCQs daily",
			"Read NCERT for 2 hours",
			"Take one mock test weekly",
			"Revise previous day topics",
			"Exercise for 30 minutes",
			"Sleep 7+ hours",
			"Meditate for 15 minutes",
		},
	}
}

// ChapterList returns every chapter of a subject, easy tier first.
func (c *Catalog) ChapterList(subject constants.SubjectName) []string {
	tiers := c.Chapters[subject]
	var chapters []string
	for _, d := range constants.Difficulties {
		chapters = append(chapters, tiers[d]...)
	}
	return chapters
}

// TotalChapters returns the number of catalog chapters for a subject.
func (c *Catalog) TotalChapters(subject constants.SubjectName) int {
	total := 0
	for _, list := range c.Chapters[subject] {
		total += len(list)
	}
	return total
}

// HasChapter reports whether chapter belongs to subject in the catalog.
func (c *Catalog) HasChapter(subject constants.SubjectName, chapter string) bool {
	for _, list := range c.Chapters[subject] {
		for _, name := range list {
			if name == chapter {
				return true
			}
		}
	}
	return false
}

// DifficultyOf returns the tier a chapter sits in, or "" if unknown.
func (c *Catalog) DifficultyOf(subject constants.SubjectName, chapter string) constants.Difficulty {
	for d, list := range c.Chapters[subject] {
		for _, name := range list {
			if name == chapter {
				return d
			}
		}
	}
	return ""
}
