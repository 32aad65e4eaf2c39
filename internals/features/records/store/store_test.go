package store

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"educonnect_backend/internals/features/records/model"
)

type memPersister struct {
	mu    sync.Mutex
	doc   *model.Document
	saves int
	fail  error
}

func (p *memPersister) Load(context.Context) (*model.Document, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.doc == nil {
		return model.NewDocument(), nil
	}
	return p.doc, nil
}

func (p *memPersister) Save(_ context.Context, doc *model.Document) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.fail != nil {
		return p.fail
	}
	p.doc = doc
	p.saves++
	return nil
}

func (p *memPersister) saveCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.saves
}

var fixedNow = time.Date(2025, time.March, 3, 9, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T) (*Store, *memPersister) {
	t.Helper()
	p := &memPersister{}
	s, err := Open(context.Background(), p, WithClock(func() time.Time { return fixedNow }))
	require.NoError(t, err)
	return s, p
}

func seedStudent(t *testing.T, s *Store, name string) string {
	t.Helper()
	key, err := s.CreateStudent(context.Background(), model.Basic{Name: name, CGPA: 8.1, RollNo: "21"})
	require.NoError(t, err)
	return key
}

func student(t *testing.T, s *Store, key string) *model.StudentRecord {
	t.Helper()
	_, r, err := s.Student(key)
	require.NoError(t, err)
	return r
}

func TestCreateStudent(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	key, err := s.CreateStudent(ctx, model.Basic{Name: "  Ada   Lovelace ", CGPA: 9.2})
	require.NoError(t, err)
	assert.Equal(t, "ada lovelace", key)

	r := student(t, s, key)
	assert.Equal(t, "CSE2025A01", r.ID)
	assert.Equal(t, 0, r.Attendance.OverallPercent)
	assert.Empty(t, r.Attendance.Subjects)
	assert.Empty(t, r.Exams)
	assert.Equal(t, model.DefaultMaxBooks, r.Library.MaxBooks)
	assert.Equal(t, 9.2, r.Grades.CGPA)

	_, err = s.CreateStudent(ctx, model.Basic{Name: "ADA LOVELACE"})
	assert.ErrorIs(t, err, ErrAlreadyExists)

	_, err = s.CreateStudent(ctx, model.Basic{Name: "   "})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestLookupByID(t *testing.T) {
	s, _ := newTestStore(t)
	key := seedStudent(t, s, "Ada Lovelace")

	got, _, err := s.Student("cse2025a01")
	require.NoError(t, err)
	assert.Equal(t, key, got)

	_, _, err = s.Student("nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateStudentKeepsDetail(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	key := seedStudent(t, s, "Ada Lovelace")
	require.NoError(t, s.UpsertAttendance(ctx, key, "Maths", 18, 20))

	require.NoError(t, s.UpdateStudent(ctx, key, model.Basic{Name: "Ada Lovelace", Email: "ada@example.edu", CGPA: 9.5}))

	r := student(t, s, key)
	assert.Equal(t, "ada@example.edu", r.Email)
	assert.Equal(t, 9.5, r.CGPA)
	assert.Equal(t, 9.5, r.Grades.CGPA)
	assert.Equal(t, 90, r.Attendance.OverallPercent)

	assert.ErrorIs(t, s.UpdateStudent(ctx, "ghost", model.Basic{Name: "ghost"}), ErrNotFound)
}

func TestDeleteStudent(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	key := seedStudent(t, s, "Ada Lovelace")

	name, err := s.DeleteStudent(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", name)
	assert.Empty(t, s.Students())

	_, err = s.DeleteStudent(ctx, key)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAttendanceAggregates(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	key := seedStudent(t, s, "ada lovelace")

	require.NoError(t, s.UpsertAttendance(ctx, key, "Maths", 18, 20))
	r := student(t, s, key)
	assert.Equal(t, 90, r.Attendance.Subjects["Maths"].Percent)
	assert.Equal(t, 90, r.Attendance.OverallPercent)

	require.NoError(t, s.UpsertAttendance(ctx, key, "Physics", 10, 20))
	require.NoError(t, s.UpsertAttendance(ctx, key, "Lab", 0, 0))
	r = student(t, s, key)
	assert.Equal(t, 0, r.Attendance.Subjects["Lab"].Percent)
	assert.Equal(t, 28, r.Attendance.Present)
	assert.Equal(t, 40, r.Attendance.TotalClasses)
	assert.Equal(t, 12, r.Attendance.Absent)
	assert.Equal(t, 70, r.Attendance.OverallPercent)

	// replacing a subject rebuilds from the full map
	require.NoError(t, s.UpsertAttendance(ctx, key, "Physics", 20, 20))
	r = student(t, s, key)
	assert.Equal(t, 95, r.Attendance.OverallPercent)

	require.NoError(t, s.DeleteAttendance(ctx, key, "Maths"))
	r = student(t, s, key)
	assert.Equal(t, 20, r.Attendance.TotalClasses)
	assert.Equal(t, 100, r.Attendance.OverallPercent)

	require.NoError(t, s.DeleteAttendance(ctx, key, "Physics"))
	require.NoError(t, s.DeleteAttendance(ctx, key, "Lab"))
	r = student(t, s, key)
	assert.Equal(t, 0, r.Attendance.OverallPercent)
	assert.Equal(t, 0, r.Attendance.TotalClasses)
}

func TestPercentTiesRoundToEven(t *testing.T) {
	assert.Equal(t, 12, percent(1, 8)) // 12.5
	assert.Equal(t, 38, percent(3, 8)) // 37.5
	assert.Equal(t, 0, percent(5, 0))
}

func TestDeletesOfMissingEntriesAreNoOps(t *testing.T) {
	s, p := newTestStore(t)
	ctx := context.Background()
	key := seedStudent(t, s, "ada lovelace")
	require.NoError(t, s.UpsertAttendance(ctx, key, "Maths", 18, 20))
	require.NoError(t, s.UpsertGrade(ctx, key, "DSA", model.SubjectGrade{Grade: "A", Credits: 4}))
	require.NoError(t, s.AddExam(ctx, key, model.Exam{Subject: "DSA"}))

	before := student(t, s, key)
	saves := p.saveCount()

	assert.NoError(t, s.DeleteAttendance(ctx, key, "History"))
	assert.NoError(t, s.DeleteGrade(ctx, key, "History"))
	assert.NoError(t, s.DeleteExams(ctx, key, "History"))
	assert.NoError(t, s.DeleteNotice(ctx, 42))
	assert.NoError(t, s.DeleteMenuItem(ctx, 42))

	assert.Same(t, before, student(t, s, key))
	assert.Equal(t, saves, p.saveCount())

	assert.ErrorIs(t, s.DeleteAttendance(ctx, "ghost", "Maths"), ErrNotFound)
}

func TestGradesSGPA(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	key := seedStudent(t, s, "ada lovelace")

	require.NoError(t, s.UpsertGrade(ctx, key, "DSA", model.SubjectGrade{Grade: "A", Marks: 88, Credits: 4}))
	require.NoError(t, s.UpsertGrade(ctx, key, "OS", model.SubjectGrade{Grade: "B+", Marks: 76, Credits: 3}))
	r := student(t, s, key)
	assert.Equal(t, 8.57, r.Grades.SGPA)
	assert.Equal(t, 7, r.Grades.EarnedCredits)

	require.NoError(t, s.UpsertGrade(ctx, key, "Ethics", model.SubjectGrade{Grade: "Z", Credits: 3}))
	r = student(t, s, key)
	assert.Equal(t, 6.0, r.Grades.SGPA)
	assert.Equal(t, 10, r.Grades.EarnedCredits)

	require.NoError(t, s.DeleteGrade(ctx, key, "Ethics"))
	require.NoError(t, s.DeleteGrade(ctx, key, "OS"))
	r = student(t, s, key)
	assert.Equal(t, 9.0, r.Grades.SGPA)
	assert.Equal(t, 4, r.Grades.EarnedCredits)

	require.NoError(t, s.DeleteGrade(ctx, key, "DSA"))
	r = student(t, s, key)
	assert.Equal(t, 0.0, r.Grades.SGPA)
	assert.Equal(t, 0, r.Grades.EarnedCredits)
}

func TestExamsKeepOrderAndDeleteAllMatching(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	key := seedStudent(t, s, "ada lovelace")

	for _, subj := range []string{"OS", "DSA", "OS"} {
		require.NoError(t, s.AddExam(ctx, key, model.Exam{Subject: subj, Type: "Mid-Sem"}))
	}
	r := student(t, s, key)
	require.Len(t, r.Exams, 3)
	assert.Equal(t, "DSA", r.Exams[1].Subject)

	require.NoError(t, s.DeleteExams(ctx, key, "OS"))
	r = student(t, s, key)
	require.Len(t, r.Exams, 1)
	assert.Equal(t, "DSA", r.Exams[0].Subject)
}

func TestFeesAndPayments(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	key := seedStudent(t, s, "ada lovelace")

	require.NoError(t, s.SetFees(ctx, key, 120000, 20000, "31 Mar 2025", map[string]int{"tuition": 100000}))
	r := student(t, s, key)
	assert.Equal(t, 100000, r.Fees.Pending)
	assert.Equal(t, 100000, r.Fees.Breakdown["tuition"])

	p1, err := s.AddPayment(ctx, key, 30000, "")
	require.NoError(t, err)
	p2, err := s.AddPayment(ctx, key, 5000, "UPI")
	require.NoError(t, err)

	assert.Equal(t, "REC001", p1.Receipt)
	assert.Equal(t, DefaultPaymentMode, p1.Mode)
	assert.Equal(t, "03 Mar 2025", p1.Date)
	assert.Equal(t, "REC002", p2.Receipt)

	r = student(t, s, key)
	assert.Equal(t, 55000, r.Fees.Paid)
	assert.Equal(t, r.Fees.TotalFee-r.Fees.Paid, r.Fees.Pending)
	assert.Len(t, r.Fees.PaymentHistory, 2)

	// fee set without breakdown keeps the old one
	require.NoError(t, s.SetFees(ctx, key, 50000, 60000, "", nil))
	r = student(t, s, key)
	assert.Equal(t, -10000, r.Fees.Pending)
	assert.Equal(t, 100000, r.Fees.Breakdown["tuition"])
}

func TestCheckoutSettlement(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	key := seedStudent(t, s, "ada lovelace")
	require.NoError(t, s.SetFees(ctx, key, 1000, 0, "", nil))

	amount, err := CheckoutAmount(student(t, s, key), 0)
	require.NoError(t, err)
	assert.Equal(t, 1000, amount)

	require.NoError(t, s.AddCheckout(ctx, key, "FEE-1", 400))
	require.NoError(t, s.SettleCheckout(ctx, "FEE-1", model.CheckoutPaid, "Midtrans"))
	require.NoError(t, s.SettleCheckout(ctx, "FEE-1", model.CheckoutPaid, "Midtrans"))

	r := student(t, s, key)
	assert.Equal(t, 400, r.Fees.Paid)
	assert.Equal(t, 600, r.Fees.Pending)
	require.Len(t, r.Fees.PaymentHistory, 1)
	assert.Equal(t, "Midtrans", r.Fees.PaymentHistory[0].Mode)
	assert.Equal(t, model.CheckoutPaid, r.Fees.Checkouts[0].Status)

	assert.ErrorIs(t, s.SettleCheckout(ctx, "FEE-404", model.CheckoutPaid, ""), ErrNotFound)

	require.NoError(t, s.SetFees(ctx, key, 1000, 1000, "", nil))
	_, err = CheckoutAmount(student(t, s, key), 0)
	assert.ErrorIs(t, err, ErrNothingPending)
}

func TestLibrary(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	key := seedStudent(t, s, "ada lovelace")

	for _, title := range []string{"CLRS", "SICP", "CLRS"} {
		require.NoError(t, s.AddBook(ctx, key, model.Book{Title: title, Fine: 99}))
	}
	r := student(t, s, key)
	assert.Equal(t, 3, r.Library.TotalBorrowed)
	assert.Equal(t, 0, r.Library.TotalFine)
	assert.Equal(t, model.BookStatusActive, r.Library.BooksBorrowed[0].Status)

	require.NoError(t, s.UpdateBook(ctx, key, "SICP", model.BookStatusOverdue, 50))
	r = student(t, s, key)
	assert.Equal(t, 50, r.Library.TotalFine)
	assert.ErrorIs(t, s.UpdateBook(ctx, key, "TAOCP", model.BookStatusOverdue, 5), ErrNotFound)

	require.NoError(t, s.ReturnBook(ctx, key, "CLRS"))
	r = student(t, s, key)
	require.Len(t, r.Library.BooksBorrowed, 1)
	assert.Equal(t, 1, r.Library.TotalBorrowed)
	assert.Equal(t, "SICP", r.Library.BooksBorrowed[0].Title)
}

func TestCourses(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	key := seedStudent(t, s, "ada lovelace")

	require.NoError(t, s.AddCourse(ctx, key, model.Course{Code: "CS301", Name: "DSA", Credits: 4}))
	require.NoError(t, s.AddCourse(ctx, key, model.Course{Code: "CS302", Name: "OS", Credits: 3}))
	require.NoError(t, s.AddCourse(ctx, key, model.Course{Code: "CS301", Name: "Algorithms", Credits: 4}))

	r := student(t, s, key)
	require.Len(t, r.Courses, 2)
	assert.Equal(t, "Algorithms", r.Courses[0].Name)
	assert.Equal(t, 7, r.Grades.TotalCredits)

	require.NoError(t, s.RemoveCourse(ctx, key, "CS301"))
	r = student(t, s, key)
	require.Len(t, r.Courses, 1)
	assert.Equal(t, 3, r.Grades.TotalCredits)
}

func TestNoticesNewestFirstWithMonotonicIDs(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	_, err := s.CreateNotice(ctx, model.Notice{Title: "first", Type: model.NoticeInfo})
	require.NoError(t, err)
	second, err := s.CreateNotice(ctx, model.Notice{Title: "second", Type: model.NoticeUrgent})
	require.NoError(t, err)
	assert.Equal(t, "03 Mar 2025", second.Date)

	notices := s.Notices()
	require.Len(t, notices, 2)
	assert.Equal(t, 2, notices[0].ID)
	assert.Equal(t, 1, notices[1].ID)

	require.NoError(t, s.DeleteNotice(ctx, 2))
	third, err := s.CreateNotice(ctx, model.Notice{Title: "third"})
	require.NoError(t, err)
	assert.Equal(t, 3, third.ID)
}

func TestMenuAndTimetable(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	a, err := s.AddMenuItem(ctx, model.MenuItem{Item: "Samosa", Price: 15})
	require.NoError(t, err)
	b, err := s.AddMenuItem(ctx, model.MenuItem{Item: "Tea", Price: 10})
	require.NoError(t, err)
	assert.Equal(t, 1, a.ID)
	assert.Equal(t, 2, b.ID)

	require.NoError(t, s.DeleteMenuItem(ctx, 1))
	c, err := s.AddMenuItem(ctx, model.MenuItem{Item: "Dosa", Price: 40})
	require.NoError(t, err)
	assert.Equal(t, 3, c.ID)
	assert.Len(t, s.Menu(), 2)

	require.NoError(t, s.AddClass(ctx, "Monday", model.ClassSlot{Time: "09:00", Course: "DSA"}))
	require.NoError(t, s.AddClass(ctx, "monday", model.ClassSlot{Time: "10:00", Course: "OS"}))
	assert.Len(t, s.Timetable()["monday"], 2)
	assert.ErrorIs(t, s.AddClass(ctx, " ", model.ClassSlot{}), ErrInvalidInput)
}

func TestOrdersAndAppointments(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	key := seedStudent(t, s, "ada lovelace")
	assert.Empty(t, s.Orders(key))

	first, err := s.PlaceOrder(ctx, key, []string{"Tea"}, 10)
	require.NoError(t, err)
	second, err := s.PlaceOrder(ctx, key, []string{"Dosa", "Tea"}, 50)
	require.NoError(t, err)
	assert.Regexp(t, `^ORD[0-9A-F]{8}$`, first.ID)

	orders := s.Orders(key)
	require.Len(t, orders, 2)
	assert.Equal(t, second.ID, orders[0].ID)
	assert.Equal(t, OrderStatusPreparing, orders[0].Status)

	require.NoError(t, s.UpdateOrderStatus(ctx, key, first.ID, "Ready"))
	assert.ErrorIs(t, s.UpdateOrderStatus(ctx, key, "ORD404", "Ready"), ErrNotFound)

	all := s.AllOrders()
	require.Len(t, all, 2)
	assert.Equal(t, "ada lovelace", all[1].StudentKey)
	assert.Equal(t, "Ready", all[1].Status)

	assert.Empty(t, s.Orders("ghost"))

	a, err := s.BookAppointment(ctx, key, model.Appointment{Professor: "Dr. Rao", Purpose: "Project"})
	require.NoError(t, err)
	assert.Equal(t, AppointmentStatusPending, a.Status)
	assert.Len(t, student(t, s, key).FacultyAppointments, 1)
}

func TestPersistFailureLeavesStateUntouched(t *testing.T) {
	s, p := newTestStore(t)
	ctx := context.Background()
	key := seedStudent(t, s, "ada lovelace")
	require.NoError(t, s.UpsertAttendance(ctx, key, "Maths", 18, 20))

	p.fail = errors.New("disk full")
	err := s.UpsertAttendance(ctx, key, "Maths", 1, 20)
	assert.ErrorIs(t, err, ErrPersist)

	_, err = s.CreateNotice(ctx, model.Notice{Title: "lost"})
	assert.ErrorIs(t, err, ErrPersist)

	assert.Equal(t, 90, student(t, s, key).Attendance.OverallPercent)
	assert.Empty(t, s.Notices())
}

func TestReadersKeepTheirSnapshot(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	key := seedStudent(t, s, "ada lovelace")
	require.NoError(t, s.UpsertAttendance(ctx, key, "Maths", 18, 20))

	old := s.Snapshot()
	require.NoError(t, s.UpsertAttendance(ctx, key, "Maths", 5, 20))

	assert.Equal(t, 90, old.Students[key].Attendance.OverallPercent)
	assert.Equal(t, 25, student(t, s, key).Attendance.OverallPercent)
}

func TestConcurrentWritesSerialize(t *testing.T) {
	s, p := newTestStore(t)
	ctx := context.Background()
	key := seedStudent(t, s, "ada lovelace")
	require.NoError(t, s.SetFees(ctx, key, 10000, 0, "", nil))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.AddPayment(ctx, key, 10, "Cash")
			assert.NoError(t, err)
			_ = s.Students()
		}()
	}
	wg.Wait()

	r := student(t, s, key)
	assert.Equal(t, 500, r.Fees.Paid)
	assert.Equal(t, 9500, r.Fees.Pending)
	assert.Len(t, r.Fees.PaymentHistory, 50)
	assert.Equal(t, "REC050", r.Fees.PaymentHistory[49].Receipt)
	assert.Equal(t, 52, p.saveCount())
}

func TestFilePersisterRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data", "student_data.json")
	fp := NewFilePersister(path)

	s, err := Open(ctx, fp, WithClock(func() time.Time { return fixedNow }))
	require.NoError(t, err)
	key := seedStudent(t, s, "Ada Lovelace")
	require.NoError(t, s.UpsertAttendance(ctx, key, "Maths", 18, 20))
	require.NoError(t, s.UpsertGrade(ctx, key, "DSA", model.SubjectGrade{Grade: "A", Marks: 90, Credits: 4}))
	require.NoError(t, s.AddExam(ctx, key, model.Exam{Subject: "DSA", DaysLeft: 3}))
	require.NoError(t, s.SetFees(ctx, key, 1000, 100, "01 Apr 2025", map[string]int{"hostel": 300}))
	_, err = s.AddPayment(ctx, key, 50, "Cash")
	require.NoError(t, err)
	require.NoError(t, s.AddBook(ctx, key, model.Book{Title: "CLRS"}))
	require.NoError(t, s.AddCourse(ctx, key, model.Course{Code: "CS301", Credits: 4}))
	_, err = s.PlaceOrder(ctx, key, []string{"Tea"}, 10)
	require.NoError(t, err)
	_, err = s.BookAppointment(ctx, key, model.Appointment{Professor: "Dr. Rao"})
	require.NoError(t, err)
	_, err = s.CreateNotice(ctx, model.Notice{Title: "Exam schedule"})
	require.NoError(t, err)
	require.NoError(t, s.AddClass(ctx, "monday", model.ClassSlot{Course: "DSA"}))
	_, err = s.AddMenuItem(ctx, model.MenuItem{Item: "Tea"})
	require.NoError(t, err)
	require.NoError(t, s.AddPlacement(ctx, model.Placement{Company: "Acme", Roles: []string{"SDE"}}))
	require.NoError(t, s.AddEvent(ctx, model.Event{Name: "Hackathon"}))
	require.NoError(t, s.AddFaculty(ctx, model.Faculty{Name: "Dr. Rao"}))

	loaded, err := fp.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, s.Snapshot(), loaded)

	require.NoError(t, fp.Save(ctx, loaded))
	again, err := fp.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, loaded, again)
}

func TestFilePersisterMissingFile(t *testing.T) {
	fp := NewFilePersister(filepath.Join(t.TempDir(), "absent.json"))
	doc, err := fp.Load(context.Background())
	require.NoError(t, err)
	assert.True(t, doc.IsEmpty())
	assert.NotNil(t, doc.Students)
}
