// Package tracker owns the study tracker's application state. A Tracker holds
// the document, applies each mutation and writes the document through to its
// storage provider before returning. It is not safe for concurrent use.
package tracker

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/studylit/internal/catalog"
	"github.com/julianstephens/studylit/internal/constants"
	"github.com/julianstephens/studylit/internal/logger"
	"github.com/julianstephens/studylit/internal/models"
	"github.com/julianstephens/studylit/internal/storage"
	"github.com/julianstephens/studylit/internal/utils"
)

var (
	ErrHabitNotFound    = errors.New("habit not found")
	ErrWrongHabitType   = errors.New("operation does not apply to this habit type")
	ErrUnknownSubject   = errors.New("unknown subject")
	ErrUnknownChapter   = errors.New("unknown chapter")
	ErrEmptyHabitName   = errors.New("habit name cannot be empty")
	ErrUnknownHabitType = errors.New("unknown habit type")
)

type Tracker struct {
	doc     *models.Document
	store   storage.Provider
	catalog *catalog.Catalog
	newID   func() string
	now     func() time.Time

	lastWriteErr error
}

type Option func(*Tracker)

// WithClock overrides the time source used for "today" and creation stamps.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) {
		t.now = now
	}
}

// WithIDGenerator overrides the entity identifier source.
func WithIDGenerator(newID func() string) Option {
	return func(t *Tracker) {
		t.newID = newID
	}
}

// WithCatalog replaces the built-in reference catalog.
func WithCatalog(c *catalog.Catalog) Option {
	return func(t *Tracker) {
		t.catalog = c
	}
}

// New returns a tracker holding the default document. Call Load to read the
// stored document.
func New(store storage.Provider, opts ...Option) *Tracker {
	t := &Tracker{
		doc:     models.NewDocument(),
		store:   store,
		catalog: catalog.Default(),
		newID:   uuid.NewString,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Load replaces the in-memory document with the stored one. A missing document
// leaves the defaults in place. An unreadable one is logged, the defaults are
// kept and the error is returned for reporting only.
func (t *Tracker) Load() error {
	t.doc = models.NewDocument()

	data, err := t.store.Get(constants.DocumentKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil
		}
		logger.Warn("Failed to read tracker data, using defaults", "key", constants.DocumentKey, "error", err)
		return fmt.Errorf("failed to read tracker data: %w", err)
	}

	doc, err := DecodeDocument(data)
	if err != nil {
		logger.Warn("Failed to decode tracker data, using defaults", "key", constants.DocumentKey, "error", err)
		return fmt.Errorf("failed to decode tracker data: %w", err)
	}
	t.doc = doc

	return nil
}

// DecodeDocument overlays the stored top-level keys onto the default document.
// Each present key replaces its default subtree wholesale; nested values are
// never merged with defaults.
func DecodeDocument(data []byte) (*models.Document, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	doc := models.NewDocument()
	if err := override(raw, "profile", &doc.Profile); err != nil {
		return nil, err
	}
	if err := override(raw, "dailyPlans", &doc.DailyPlans); err != nil {
		return nil, err
	}
	if err := override(raw, "mockTests", &doc.MockTests); err != nil {
		return nil, err
	}
	if err := override(raw, "habits", &doc.Habits); err != nil {
		return nil, err
	}
	if err := override(raw, "subjects", &doc.Subjects); err != nil {
		return nil, err
	}
	if err := override(raw, "studyHours", &doc.StudyHours); err != nil {
		return nil, err
	}

	return doc, nil
}

func override[T any](raw map[string]json.RawMessage, key string, dst *T) error {
	value, ok := raw[key]
	if !ok {
		return nil
	}
	var fresh T
	if err := json.Unmarshal(value, &fresh); err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*dst = fresh
	return nil
}

// persist writes the whole document through. Failures are logged and kept for
// LastWriteError; the in-memory document stays authoritative.
func (t *Tracker) persist() {
	data, err := json.Marshal(t.doc)
	if err == nil {
		err = t.store.Set(constants.DocumentKey, data)
	}
	t.lastWriteErr = err
	if err != nil {
		logger.Error("Failed to persist tracker data", "key", constants.DocumentKey, "error", err)
	}
}

// LastWriteError returns the error from the most recent write, or nil.
func (t *Tracker) LastWriteError() error {
	return t.lastWriteErr
}

// Document returns the live document for read-only queries.
func (t *Tracker) Document() *models.Document {
	return t.doc
}

func (t *Tracker) Catalog() *catalog.Catalog {
	return t.catalog
}

func (t *Tracker) Now() time.Time {
	return t.now()
}

func (t *Tracker) Today() string {
	return utils.FormatDate(t.now())
}

// Profile returns a copy of the profile, or nil when none is set.
func (t *Tracker) Profile() *models.Profile {
	if t.doc.Profile == nil {
		return nil
	}
	p := *t.doc.Profile
	return &p
}

// SetProfile replaces the profile wholesale.
func (t *Tracker) SetProfile(p models.Profile) {
	t.doc.Profile = &p
	t.persist()
}
