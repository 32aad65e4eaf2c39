package store

import (
	"context"
	"slices"

	"educonnect_backend/internals/features/records/model"
)

/* ===================== ATTENDANCE ===================== */

// UpsertAttendance replaces or inserts one subject entry and rebuilds the
// overall aggregates. total == 0 yields a 0 percent, not an error.
func (s *Store) UpsertAttendance(ctx context.Context, identifier, subject string, present, total int) error {
	return s.update(ctx, "attendance.upsert", func(t *txn) error {
		_, r, err := t.student(identifier)
		if err != nil {
			return err
		}
		r.Attendance.Subjects[subject] = model.SubjectAttendance{
			Present: present,
			Total:   total,
			Percent: percent(present, total),
		}
		RecomputeAttendance(&r.Attendance)
		return nil
	})
}

// DeleteAttendance removes a subject entry; absent subjects are a no-op.
func (s *Store) DeleteAttendance(ctx context.Context, identifier, subject string) error {
	return s.update(ctx, "attendance.delete", func(t *txn) error {
		_, r, err := t.student(identifier)
		if err != nil {
			return err
		}
		if _, ok := r.Attendance.Subjects[subject]; !ok {
			return errUnchanged
		}
		delete(r.Attendance.Subjects, subject)
		RecomputeAttendance(&r.Attendance)
		return nil
	})
}

/* ===================== GRADES ===================== */

func (s *Store) UpsertGrade(ctx context.Context, identifier, subject string, g model.SubjectGrade) error {
	return s.update(ctx, "grade.upsert", func(t *txn) error {
		_, r, err := t.student(identifier)
		if err != nil {
			return err
		}
		r.Grades.CurrentSemester[subject] = g
		RecomputeGrades(&r.Grades)
		return nil
	})
}

// DeleteGrade removes a subject from the current term; absent subjects are a no-op.
func (s *Store) DeleteGrade(ctx context.Context, identifier, subject string) error {
	return s.update(ctx, "grade.delete", func(t *txn) error {
		_, r, err := t.student(identifier)
		if err != nil {
			return err
		}
		if _, ok := r.Grades.CurrentSemester[subject]; !ok {
			return errUnchanged
		}
		delete(r.Grades.CurrentSemester, subject)
		RecomputeGrades(&r.Grades)
		return nil
	})
}

/* ===================== EXAMS ===================== */

// AddExam appends; insertion order is kept.
func (s *Store) AddExam(ctx context.Context, identifier string, e model.Exam) error {
	return s.update(ctx, "exam.add", func(t *txn) error {
		_, r, err := t.student(identifier)
		if err != nil {
			return err
		}
		r.Exams = append(r.Exams, e)
		return nil
	})
}

// DeleteExams removes every exam with the given subject.
func (s *Store) DeleteExams(ctx context.Context, identifier, subject string) error {
	return s.update(ctx, "exam.delete", func(t *txn) error {
		_, r, err := t.student(identifier)
		if err != nil {
			return err
		}
		kept := slices.DeleteFunc(r.Exams, func(e model.Exam) bool { return e.Subject == subject })
		if len(kept) == len(r.Exams) {
			return errUnchanged
		}
		r.Exams = kept
		return nil
	})
}
