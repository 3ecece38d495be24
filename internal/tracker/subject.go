package tracker

import (
	"fmt"

	"github.com/julianstephens/studylit/internal/constants"
	"github.com/julianstephens/studylit/internal/metrics"
	"github.com/julianstephens/studylit/internal/models"
)

// Subject returns a copy of the stored progress for a subject.
func (t *Tracker) Subject(name constants.SubjectName) models.Subject {
	subject := t.doc.Subjects[name]
	chapters := make(map[string]bool, len(subject.Chapters))
	for chapter, done := range subject.Chapters {
		chapters[chapter] = done
	}
	subject.Chapters = chapters
	return subject
}

// ToggleChapter flips a chapter's completion flag and recomputes the subject's
// progress against the catalog. It returns the chapter's new state.
func (t *Tracker) ToggleChapter(name constants.SubjectName, chapter string) (bool, error) {
	if _, ok := constants.ParseSubject(string(name)); !ok {
		return false, fmt.Errorf("%w: %s", ErrUnknownSubject, name)
	}
	if !t.catalog.HasChapter(name, chapter) {
		return false, fmt.Errorf("%w: %q in %s", ErrUnknownChapter, chapter, name)
	}

	if t.doc.Subjects == nil {
		t.doc.Subjects = models.NewSubjects()
	}
	subject := t.doc.Subjects[name]
	if subject.Chapters == nil {
		subject.Chapters = make(map[string]bool)
	}
	subject.Chapters[chapter] = !subject.Chapters[chapter]
	subject.Progress = t.subjectProgress(name, subject)
	t.doc.Subjects[name] = subject

	t.persist()
	return subject.Chapters[chapter], nil
}

// subjectProgress counts only completed chapters the catalog knows about.
func (t *Tracker) subjectProgress(name constants.SubjectName, subject models.Subject) int {
	completed := 0
	for chapter, done := range subject.Chapters {
		if done && t.catalog.HasChapter(name, chapter) {
			completed++
		}
	}
	return metrics.SubjectProgress(completed, t.catalog.TotalChapters(name))
}
