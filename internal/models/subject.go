package models

import "github.com/julianstephens/studylit/internal/constants"

// Subject tracks chapter completion for one subject. Progress is derived from the
// reference catalog and cached here for display.
type Subject struct {
	Progress int             `json:"progress"`
	Chapters map[string]bool `json:"chapters"`
}

// CompletedChapters counts chapters flagged complete.
func (s Subject) CompletedChapters() int {
	n := 0
	for _, done := range s.Chapters {
		if done {
			n++
		}
	}
	return n
}

type Subjects map[constants.SubjectName]Subject

func NewSubjects() Subjects {
	subjects := make(Subjects, len(constants.Subjects))
	for _, name := range constants.Subjects {
		subjects[name] = Subject{Chapters: make(map[string]bool)}
	}
	return subjects
}
