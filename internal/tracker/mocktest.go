package tracker

import (
	"sort"

	"github.com/julianstephens/studylit/internal/models"
)

// AddMockTest records a test under a fresh ID, keeps the list ordered newest
// first and returns the stored test. An empty date means today.
func (t *Tracker) AddMockTest(test models.MockTest) models.MockTest {
	test.ID = t.newID()
	if test.Date == "" {
		test.Date = t.Today()
	}

	t.doc.MockTests = append(t.doc.MockTests, test)
	sort.SliceStable(t.doc.MockTests, func(i, j int) bool {
		return t.doc.MockTests[i].Date > t.doc.MockTests[j].Date
	})

	t.persist()
	return test
}

// MockTests returns a copy of the recorded tests, newest first.
func (t *Tracker) MockTests() []models.MockTest {
	tests := make([]models.MockTest, len(t.doc.MockTests))
	copy(tests, t.doc.MockTests)
	return tests
}
