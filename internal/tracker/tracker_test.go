package tracker

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/julianstephens/studylit/internal/constants"
	"github.com/julianstephens/studylit/internal/models"
	"github.com/julianstephens/studylit/internal/storage"
)

var fixedNow = time.Date(2025, time.June, 15, 9, 30, 0, 0, time.UTC)

func setupTracker(t *testing.T) (*Tracker, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore()
	if err := store.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	n := 0
	tr := New(store,
		WithClock(func() time.Time { return fixedNow }),
		WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		}),
	)
	if err := tr.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return tr, store
}

func storedDocument(t *testing.T, store storage.Provider) map[string]json.RawMessage {
	t.Helper()
	data, err := store.Get(constants.DocumentKey)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("stored document is not JSON: %v", err)
	}
	return raw
}

func TestLoad_MissingDocumentUsesDefaults(t *testing.T) {
	tr, _ := setupTracker(t)

	doc := tr.Document()
	if doc.Profile != nil {
		t.Error("Profile should be nil by default")
	}
	if doc.Habits.Daily == nil || doc.Habits.Challenges21 == nil || doc.Habits.Challenges100 == nil {
		t.Errorf("default habits skeleton incomplete: %+v", doc.Habits)
	}
	if len(doc.Subjects) != len(constants.Subjects) {
		t.Errorf("default subjects = %d, want %d", len(doc.Subjects), len(constants.Subjects))
	}
}

func TestLoad_ShallowMerge(t *testing.T) {
	tests := []struct {
		name  string
		data  string
		check func(t *testing.T, doc *models.Document)
	}{
		{
			name: "missing habits key falls back to default skeleton",
			data: `{"studyHours":{"2025-06-01":1.5}}`,
			check: func(t *testing.T, doc *models.Document) {
				if doc.Habits.Daily == nil || doc.Habits.Challenges21 == nil || doc.Habits.Challenges100 == nil {
					t.Errorf("habits = %+v, want full default skeleton", doc.Habits)
				}
				if doc.StudyHours["2025-06-01"] != 1.5 {
					t.Errorf("studyHours not loaded: %v", doc.StudyHours)
				}
			},
		},
		{
			name: "habits with only daily replaces whole subtree",
			data: `{"habits":{"daily":[{"id":"h1","name":"Read","type":"daily","createdAt":"2025-06-01T00:00:00Z","progress":{"2025-06-01":true}}]}}`,
			check: func(t *testing.T, doc *models.Document) {
				if len(doc.Habits.Daily) != 1 || doc.Habits.Daily[0].ID != "h1" {
					t.Fatalf("daily = %+v", doc.Habits.Daily)
				}
				if doc.Habits.Challenges21 != nil || doc.Habits.Challenges100 != nil {
					t.Errorf("challenge populations were merged from defaults: %+v", doc.Habits)
				}
				if !doc.Habits.Daily[0].Progress.Days["2025-06-01"] {
					t.Error("daily progress not decoded")
				}
			},
		},
		{
			name: "subjects subtree is replaced not merged",
			data: `{"subjects":{"physics":{"progress":7,"chapters":{"Gravitation":true}}}}`,
			check: func(t *testing.T, doc *models.Document) {
				if len(doc.Subjects) != 1 {
					t.Errorf("subjects = %v, want only physics", doc.Subjects)
				}
				if doc.Subjects[constants.SubjectPhysics].Progress != 7 {
					t.Errorf("physics = %+v", doc.Subjects[constants.SubjectPhysics])
				}
			},
		},
		{
			name: "challenge progress decodes as counter",
			data: `{"habits":{"daily":[],"challenges21":[{"id":"c1","name":"Run","type":"21day","createdAt":"2025-06-01T00:00:00Z","progress":{"current":3,"target":21}}],"challenges100":[]}}`,
			check: func(t *testing.T, doc *models.Document) {
				c := doc.Habits.Challenges21[0].Progress.Challenge
				if c == nil || c.Current != 3 || c.Target != 21 {
					t.Errorf("challenge = %+v", c)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := storage.NewMemoryStore()
			_ = store.Init()
			if err := store.Set(constants.DocumentKey, []byte(tt.data)); err != nil {
				t.Fatal(err)
			}
			tr := New(store)
			if err := tr.Load(); err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			tt.check(t, tr.Document())
		})
	}
}

func TestLoad_CorruptDocumentFallsBack(t *testing.T) {
	store := storage.NewMemoryStore()
	_ = store.Init()
	_ = store.Set(constants.DocumentKey, []byte(`{"mockTests":"not a list"}`))

	tr := New(store)
	if err := tr.Load(); err == nil {
		t.Fatal("Load() should report the decode failure")
	}
	if tr.Document().MockTests == nil || len(tr.Document().MockTests) != 0 {
		t.Errorf("MockTests = %v, want empty default", tr.Document().MockTests)
	}

	// The session continues on defaults
	tr.AddMockTest(models.MockTest{Date: "2025-06-01", ActualScore: 500})
	if len(tr.MockTests()) != 1 {
		t.Error("mutation after failed load was not applied")
	}
}

func TestLoad_ReadFailure(t *testing.T) {
	tr := New(storage.NewMemoryStore())
	err := tr.Load()
	if !errors.Is(err, storage.ErrNotLoaded) {
		t.Fatalf("Load() error = %v, want ErrNotLoaded", err)
	}
	if tr.Document() == nil || tr.Document().StudyHours == nil {
		t.Error("tracker should hold the default document after a read failure")
	}
}

func TestWriteFailureKeepsMemoryState(t *testing.T) {
	tr, store := setupTracker(t)
	store.FailWrites = errors.New("quota exceeded")

	tr.SetProfile(models.Profile{Name: "Asha", TargetScore: 650})

	if tr.Profile() == nil || tr.Profile().Name != "Asha" {
		t.Error("in-memory profile should be updated despite write failure")
	}
	if tr.LastWriteError() == nil {
		t.Error("LastWriteError() should report the failed write")
	}
	if _, err := store.Get(constants.DocumentKey); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("nothing should be stored, Get() error = %v", err)
	}

	store.FailWrites = nil
	tr.SetProfile(models.Profile{Name: "Asha", TargetScore: 680})
	if tr.LastWriteError() != nil {
		t.Errorf("LastWriteError() = %v after successful write", tr.LastWriteError())
	}
}

func TestPersistRoundTrip(t *testing.T) {
	tr, store := setupTracker(t)
	tr.SetProfile(models.Profile{Name: "Asha", TargetScore: 650})
	tr.AddMockTest(models.MockTest{Date: "2025-06-01", ActualScore: 585, TargetScore: 650})

	raw := storedDocument(t, store)
	for _, key := range []string{"profile", "dailyPlans", "mockTests", "habits", "subjects", "studyHours"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("stored document missing %q", key)
		}
	}

	reloaded := New(store)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := reloaded.Dashboard().OverallProgress; got != 90 {
		t.Errorf("OverallProgress = %d, want 90", got)
	}
}

func TestProfileReturnsCopy(t *testing.T) {
	tr, _ := setupTracker(t)
	tr.SetProfile(models.Profile{Name: "Asha"})

	p := tr.Profile()
	p.Name = "changed"
	if tr.Profile().Name != "Asha" {
		t.Error("Profile() leaked a reference to stored state")
	}
}
