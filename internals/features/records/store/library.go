package store

import (
	"context"
	"fmt"
	"slices"

	"educonnect_backend/internals/features/records/model"
)

/* ===================== LIBRARY ===================== */

// AddBook appends a borrowed book with status Active and no fine.
// max_books is advisory and not enforced here.
func (s *Store) AddBook(ctx context.Context, identifier string, b model.Book) error {
	return s.update(ctx, "library.add", func(t *txn) error {
		_, r, err := t.student(identifier)
		if err != nil {
			return err
		}
		b.Fine = 0
		b.Status = model.BookStatusActive
		r.Library.BooksBorrowed = append(r.Library.BooksBorrowed, b)
		recomputeLibrary(&r.Library)
		return nil
	})
}

// ReturnBook removes every borrowed entry whose title matches exactly.
func (s *Store) ReturnBook(ctx context.Context, identifier, title string) error {
	return s.update(ctx, "library.return", func(t *txn) error {
		_, r, err := t.student(identifier)
		if err != nil {
			return err
		}
		r.Library.BooksBorrowed = slices.DeleteFunc(r.Library.BooksBorrowed, func(b model.Book) bool {
			return b.Title == title
		})
		recomputeLibrary(&r.Library)
		return nil
	})
}

// UpdateBook sets status and fine on every entry with the given title.
func (s *Store) UpdateBook(ctx context.Context, identifier, title, status string, fine int) error {
	return s.update(ctx, "library.update", func(t *txn) error {
		_, r, err := t.student(identifier)
		if err != nil {
			return err
		}
		found := false
		for i := range r.Library.BooksBorrowed {
			if r.Library.BooksBorrowed[i].Title != title {
				continue
			}
			r.Library.BooksBorrowed[i].Status = status
			r.Library.BooksBorrowed[i].Fine = fine
			found = true
		}
		if !found {
			return fmt.Errorf("book %q: %w", title, ErrNotFound)
		}
		recomputeLibrary(&r.Library)
		return nil
	})
}

/* ===================== COURSES ===================== */

// AddCourse enrolls the student; the code is the key, so an existing entry
// with the same code is replaced in place.
func (s *Store) AddCourse(ctx context.Context, identifier string, c model.Course) error {
	return s.update(ctx, "course.add", func(t *txn) error {
		_, r, err := t.student(identifier)
		if err != nil {
			return err
		}
		if i := slices.IndexFunc(r.Courses, func(x model.Course) bool { return x.Code == c.Code }); i >= 0 {
			r.Courses[i] = c
		} else {
			r.Courses = append(r.Courses, c)
		}
		recomputeCourseCredits(r)
		return nil
	})
}

// RemoveCourse drops every course with the given code.
func (s *Store) RemoveCourse(ctx context.Context, identifier, code string) error {
	return s.update(ctx, "course.remove", func(t *txn) error {
		_, r, err := t.student(identifier)
		if err != nil {
			return err
		}
		r.Courses = slices.DeleteFunc(r.Courses, func(c model.Course) bool { return c.Code == code })
		recomputeCourseCredits(r)
		return nil
	})
}
