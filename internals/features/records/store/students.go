package store

import (
	"context"
	"fmt"

	"educonnect_backend/internals/features/records/model"
)

// CreateStudent adds a record keyed by the normalized name and returns the key.
func (s *Store) CreateStudent(ctx context.Context, b model.Basic) (string, error) {
	key := NormalizeKey(b.Name)
	err := s.update(ctx, "student.create", func(t *txn) error {
		if key == "" {
			return fmt.Errorf("student name is empty: %w", ErrInvalidInput)
		}
		if _, ok := t.doc.Students[key]; ok {
			return fmt.Errorf("student %q: %w", b.Name, ErrAlreadyExists)
		}
		t.doc.Sequences.Student++
		id := fmt.Sprintf("CSE%sA%02d", t.now.Format("2006"), t.doc.Sequences.Student)
		t.doc.Students[key] = model.NewStudentRecord(id, b)
		t.cloned[key] = true
		return nil
	})
	if err != nil {
		return "", err
	}
	return key, nil
}

// UpdateStudent overwrites identity fields only; detail and derived data stay.
func (s *Store) UpdateStudent(ctx context.Context, identifier string, b model.Basic) error {
	return s.update(ctx, "student.update", func(t *txn) error {
		_, r, err := t.student(identifier)
		if err != nil {
			return err
		}
		r.ApplyBasic(b)
		return nil
	})
}

// DeleteStudent removes the record and everything nested in it. It returns
// the removed student's name.
func (s *Store) DeleteStudent(ctx context.Context, identifier string) (string, error) {
	var name string
	err := s.update(ctx, "student.delete", func(t *txn) error {
		key, ok := resolveKey(t.doc, identifier)
		if !ok {
			return fmt.Errorf("student %q: %w", identifier, ErrNotFound)
		}
		name = t.doc.Students[key].Name
		delete(t.doc.Students, key)
		return nil
	})
	return name, err
}
