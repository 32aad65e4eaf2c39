package store

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"educonnect_backend/internals/features/records/model"
)

// DateLayout is the capture-time date stamp format used on notices,
// payments and orders.
const DateLayout = "02 Jan 2006"

// Store owns the student records and shared reference data.
//
// Writers are serialized by writeMu. Each write works on a copy of the
// current document, persists the copy, and only then publishes it, so a
// failed save leaves the published state untouched. Published documents
// are never modified again; readers just load the current pointer.
type Store struct {
	persister Persister
	logger    log.Logger
	now       func() time.Time

	writeMu sync.Mutex
	current atomic.Pointer[model.Document]
}

type Option func(*Store)

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithLogger(l log.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// Open loads the document through p and returns a ready store.
func Open(ctx context.Context, p Persister, opts ...Option) (*Store, error) {
	s := &Store{
		persister: p,
		logger:    log.NewNopLogger(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.Reload(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload replaces the in-memory state with the persisted document.
func (s *Store) Reload(ctx context.Context) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	doc, err := s.persister.Load(ctx)
	if err != nil {
		level.Error(s.logger).Log("op", "load", "err", err)
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}
	doc.Normalize()
	s.current.Store(doc)
	level.Info(s.logger).Log("op", "load", "students", len(doc.Students), "notices", len(doc.Notices))
	return nil
}

// Snapshot returns the current document. It must be treated as read-only.
func (s *Store) Snapshot() *model.Document {
	return s.current.Load()
}

// Now is the store clock, shared with callers that stamp replies.
func (s *Store) Now() time.Time {
	return s.now()
}

/* ===================== LOOKUP ===================== */

// resolveKey finds the record key for an identifier: the normalized name
// first, then a case-insensitive match on the record id.
func resolveKey(doc *model.Document, identifier string) (string, bool) {
	key := NormalizeKey(identifier)
	if key == "" {
		return "", false
	}
	if _, ok := doc.Students[key]; ok {
		return key, true
	}
	id := strings.TrimSpace(identifier)
	for k, r := range doc.Students {
		if r.ID != "" && strings.EqualFold(r.ID, id) {
			return k, true
		}
	}
	return "", false
}

// Student returns the record for identifier from the current snapshot.
func (s *Store) Student(identifier string) (string, *model.StudentRecord, error) {
	return FindStudent(s.Snapshot(), identifier)
}

// FindStudent resolves identifier within doc.
func FindStudent(doc *model.Document, identifier string) (string, *model.StudentRecord, error) {
	key, ok := resolveKey(doc, identifier)
	if !ok {
		return "", nil, fmt.Errorf("student %q: %w", identifier, ErrNotFound)
	}
	return key, doc.Students[key], nil
}

// Students returns the summary projection of every record, ordered by key.
func (s *Store) Students() []model.Summary {
	doc := s.Snapshot()
	out := make([]model.Summary, 0, len(doc.Students))
	for _, key := range slices.Sorted(maps.Keys(doc.Students)) {
		out = append(out, doc.Students[key].Summary(key))
	}
	return out
}

func (s *Store) Notices() []model.Notice {
	return s.Snapshot().Notices
}

func (s *Store) Timetable() map[string][]model.ClassSlot {
	return s.Snapshot().Timetable
}

func (s *Store) Menu() []model.MenuItem {
	return s.Snapshot().Cafeteria.Menu
}

func (s *Store) Placements() []model.Placement {
	return s.Snapshot().Placements
}

func (s *Store) Events() []model.Event {
	return s.Snapshot().Events
}

func (s *Store) Faculty() []model.Faculty {
	return s.Snapshot().Faculty
}

/* ===================== WRITE PATH ===================== */

// txn is the working copy handed to a mutation.
type txn struct {
	doc    *model.Document
	now    time.Time
	cloned map[string]bool
}

func (t *txn) date() string {
	return t.now.Format(DateLayout)
}

// student returns a private, writable copy of the record for identifier.
func (t *txn) student(identifier string) (string, *model.StudentRecord, error) {
	key, ok := resolveKey(t.doc, identifier)
	if !ok {
		return "", nil, fmt.Errorf("student %q: %w", identifier, ErrNotFound)
	}
	if !t.cloned[key] {
		t.doc.Students[key] = t.doc.Students[key].Clone()
		t.cloned[key] = true
	}
	return key, t.doc.Students[key], nil
}

// update runs fn against a copy of the document and publishes the copy
// once it has been persisted.
func (s *Store) update(ctx context.Context, op string, fn func(t *txn) error) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	t := &txn{
		doc:    s.current.Load().ShallowClone(),
		now:    s.now(),
		cloned: map[string]bool{},
	}
	if err := fn(t); err != nil {
		if errors.Is(err, errUnchanged) {
			level.Debug(s.logger).Log("op", op, "msg", "no change")
			return nil
		}
		level.Debug(s.logger).Log("op", op, "err", err)
		return err
	}

	if err := s.persister.Save(ctx, t.doc); err != nil {
		level.Error(s.logger).Log("op", op, "msg", "persist failed, mutation discarded", "err", err)
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}
	s.current.Store(t.doc)
	level.Info(s.logger).Log("op", op)
	return nil
}
