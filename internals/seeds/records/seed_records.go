package records

import (
	"context"
	_ "embed"
	"fmt"
	"slices"

	"github.com/bytedance/sonic"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"educonnect_backend/internals/features/records/dto"
	"educonnect_backend/internals/features/records/store"
)

//go:embed data_records.json
var demoData []byte

// Seed shapes reuse the admin request DTOs.
type recordsSeed struct {
	Students   []studentSeed                 `json:"students"`
	Notices    []dto.NoticeRequest           `json:"notices"`
	Timetable  map[string][]dto.ClassRequest `json:"timetable"`
	Menu       []dto.MenuItemRequest         `json:"menu"`
	Placements []dto.PlacementRequest        `json:"placements"`
	Events     []dto.EventRequest            `json:"events"`
	Faculty    []dto.FacultyRequest          `json:"faculty"`
}

type studentSeed struct {
	Basic      dto.StudentBasicRequest  `json:"basic"`
	Attendance []dto.AttendanceRequest  `json:"attendance"`
	Grades     []dto.GradeRequest       `json:"grades"`
	Exams      []dto.ExamRequest        `json:"exams"`
	Fees       *dto.FeeRequest          `json:"fees"`
	Payments   []dto.PaymentQuery       `json:"payments"`
	Books      []dto.LibraryBookRequest `json:"books"`
	BookStatus []bookStatusSeed         `json:"book_status"`
	Courses    []dto.CourseRequest      `json:"courses"`
}

type bookStatusSeed struct {
	Title string `json:"title"`
	dto.BookStatusRequest
}

// SeedRecords writes the demo data through the store's mutations. It does
// nothing unless the store is empty.
func SeedRecords(ctx context.Context, st *store.Store, logger log.Logger) error {
	if !st.Snapshot().IsEmpty() {
		level.Info(logger).Log("op", "seed.records", "msg", "store not empty, skipping")
		return nil
	}

	var seed recordsSeed
	if err := sonic.Unmarshal(demoData, &seed); err != nil {
		return fmt.Errorf("decode demo data: %w", err)
	}

	for _, s := range seed.Students {
		if err := seedStudent(ctx, st, s); err != nil {
			return fmt.Errorf("seed student %q: %w", s.Basic.Name, err)
		}
	}

	// CreateNotice puts each notice first, so insert oldest first
	for _, n := range slices.Backward(seed.Notices) {
		if _, err := st.CreateNotice(ctx, n.ToModel()); err != nil {
			return fmt.Errorf("seed notice: %w", err)
		}
	}
	for _, day := range []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday"} {
		for _, c := range seed.Timetable[day] {
			if err := st.AddClass(ctx, day, c.ToModel()); err != nil {
				return fmt.Errorf("seed timetable: %w", err)
			}
		}
	}
	for _, m := range seed.Menu {
		if _, err := st.AddMenuItem(ctx, m.ToModel()); err != nil {
			return fmt.Errorf("seed menu: %w", err)
		}
	}
	for _, p := range seed.Placements {
		if err := st.AddPlacement(ctx, p.ToModel()); err != nil {
			return fmt.Errorf("seed placement: %w", err)
		}
	}
	for _, e := range seed.Events {
		if err := st.AddEvent(ctx, e.ToModel()); err != nil {
			return fmt.Errorf("seed event: %w", err)
		}
	}
	for _, f := range seed.Faculty {
		if err := st.AddFaculty(ctx, f.ToModel()); err != nil {
			return fmt.Errorf("seed faculty: %w", err)
		}
	}

	level.Info(logger).Log("op", "seed.records", "msg", "demo data written",
		"students", len(seed.Students), "notices", len(seed.Notices), "menu", len(seed.Menu))
	return nil
}

func seedStudent(ctx context.Context, st *store.Store, s studentSeed) error {
	key, err := st.CreateStudent(ctx, s.Basic.ToModel())
	if err != nil {
		return err
	}
	for _, a := range s.Attendance {
		if err := st.UpsertAttendance(ctx, key, a.Subject, a.Present, a.Total); err != nil {
			return err
		}
	}
	for _, g := range s.Grades {
		if err := st.UpsertGrade(ctx, key, g.Subject, g.ToModel()); err != nil {
			return err
		}
	}
	for _, e := range s.Exams {
		if err := st.AddExam(ctx, key, e.ToModel()); err != nil {
			return err
		}
	}
	if f := s.Fees; f != nil {
		if err := st.SetFees(ctx, key, f.TotalFee, f.Paid, f.DueDate, f.Breakdown); err != nil {
			return err
		}
	}
	for _, p := range s.Payments {
		if _, err := st.AddPayment(ctx, key, p.Amount, p.Mode); err != nil {
			return err
		}
	}
	for _, b := range s.Books {
		if err := st.AddBook(ctx, key, b.ToModel()); err != nil {
			return err
		}
	}
	for _, b := range s.BookStatus {
		if err := st.UpdateBook(ctx, key, b.Title, b.Status, b.Fine); err != nil {
			return err
		}
	}
	for _, c := range s.Courses {
		if err := st.AddCourse(ctx, key, c.ToModel()); err != nil {
			return err
		}
	}
	return nil
}
