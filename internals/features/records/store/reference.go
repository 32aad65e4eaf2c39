package store

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"educonnect_backend/internals/features/records/model"
)

/* ===================== NOTICES ===================== */

// CreateNotice stamps the notice with the next id and today's date and
// puts it at the front (newest first).
func (s *Store) CreateNotice(ctx context.Context, n model.Notice) (model.Notice, error) {
	err := s.update(ctx, "notice.create", func(t *txn) error {
		t.doc.Sequences.Notice++
		n.ID = t.doc.Sequences.Notice
		n.Date = t.date()
		n.TimeAgo = "Just now"
		t.doc.Notices = slices.Insert(t.doc.Notices, 0, n)
		return nil
	})
	return n, err
}

// DeleteNotice removes the notice with id; unknown ids are a no-op.
func (s *Store) DeleteNotice(ctx context.Context, id int) error {
	return s.update(ctx, "notice.delete", func(t *txn) error {
		kept := slices.DeleteFunc(t.doc.Notices, func(n model.Notice) bool { return n.ID == id })
		if len(kept) == len(t.doc.Notices) {
			return errUnchanged
		}
		t.doc.Notices = kept
		return nil
	})
}

/* ===================== TIMETABLE ===================== */

// AddClass appends a slot to day (lower-cased), creating the day if needed.
func (s *Store) AddClass(ctx context.Context, day string, slot model.ClassSlot) error {
	day = strings.ToLower(strings.TrimSpace(day))
	return s.update(ctx, "timetable.add", func(t *txn) error {
		if day == "" {
			return fmt.Errorf("day is empty: %w", ErrInvalidInput)
		}
		t.doc.Timetable[day] = append(t.doc.Timetable[day], slot)
		return nil
	})
}

/* ===================== CAFETERIA MENU ===================== */

func (s *Store) AddMenuItem(ctx context.Context, m model.MenuItem) (model.MenuItem, error) {
	err := s.update(ctx, "menu.add", func(t *txn) error {
		t.doc.Sequences.MenuItem++
		m.ID = t.doc.Sequences.MenuItem
		t.doc.Cafeteria.Menu = append(t.doc.Cafeteria.Menu, m)
		return nil
	})
	return m, err
}

// DeleteMenuItem removes the item with id; unknown ids are a no-op.
func (s *Store) DeleteMenuItem(ctx context.Context, id int) error {
	return s.update(ctx, "menu.delete", func(t *txn) error {
		kept := slices.DeleteFunc(t.doc.Cafeteria.Menu, func(m model.MenuItem) bool { return m.ID == id })
		if len(kept) == len(t.doc.Cafeteria.Menu) {
			return errUnchanged
		}
		t.doc.Cafeteria.Menu = kept
		return nil
	})
}

/* ===================== PLACEMENTS / EVENTS / FACULTY ===================== */

func (s *Store) AddPlacement(ctx context.Context, p model.Placement) error {
	return s.update(ctx, "placement.add", func(t *txn) error {
		t.doc.Placements = append(t.doc.Placements, p)
		return nil
	})
}

func (s *Store) AddEvent(ctx context.Context, e model.Event) error {
	return s.update(ctx, "event.add", func(t *txn) error {
		t.doc.Events = append(t.doc.Events, e)
		return nil
	})
}

func (s *Store) AddFaculty(ctx context.Context, f model.Faculty) error {
	return s.update(ctx, "faculty.add", func(t *txn) error {
		t.doc.Faculty = append(t.doc.Faculty, f)
		return nil
	})
}
