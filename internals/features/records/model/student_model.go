// file: internals/features/records/model/student_model.go
package model

/* ===================== STUDENT RECORD ===================== */

// StudentRecord is one entry of Document.Students, keyed by the normalized
// student name. Derived fields are only ever written by the store.
type StudentRecord struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Phone    string  `json:"phone"`
	Course   string  `json:"course"`
	Year     string  `json:"year"`
	Semester string  `json:"semester"`
	Section  string  `json:"section"`
	RollNo   string  `json:"roll_no"`
	DOB      string  `json:"dob"`
	Address  string  `json:"address"`
	CGPA     float64 `json:"cgpa"`

	Attendance Attendance `json:"attendance"`
	Grades     Grades     `json:"grades"`
	Exams      []Exam     `json:"exams"`
	Library    Library    `json:"library"`
	Fees       Fees       `json:"fees"`
	Courses    []Course   `json:"courses"`

	// created lazily on first use
	FacultyAppointments []Appointment    `json:"faculty_appointments,omitempty"`
	CafeteriaOrders     []CafeteriaOrder `json:"cafeteria_orders,omitempty"`
}

// Basic is the identity part of a record; update replaces exactly these fields.
type Basic struct {
	Name     string
	Email    string
	Phone    string
	Course   string
	Year     string
	Semester string
	Section  string
	RollNo   string
	DOB      string
	Address  string
	CGPA     float64
}

/* ===================== ATTENDANCE ===================== */

type Attendance struct {
	OverallPercent int                          `json:"overall_percent"`
	TotalClasses   int                          `json:"total_classes"`
	Present        int                          `json:"present"`
	Absent         int                          `json:"absent"`
	Subjects       map[string]SubjectAttendance `json:"subjects"`
}

type SubjectAttendance struct {
	Present int `json:"present"`
	Total   int `json:"total"`
	Percent int `json:"percent"`
}

/* ===================== GRADES ===================== */

type Grades struct {
	CurrentSemester map[string]SubjectGrade `json:"current_semester"`
	SGPA            float64                 `json:"sgpa"`
	CGPA            float64                 `json:"cgpa"`
	TotalCredits    int                     `json:"total_credits"`
	EarnedCredits   int                     `json:"earned_credits"`
}

type SubjectGrade struct {
	Grade   string `json:"grade"`
	Marks   int    `json:"marks"`
	Credits int    `json:"credits"`
}

/* ===================== EXAMS ===================== */

type Exam struct {
	Subject  string `json:"subject"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Venue    string `json:"venue"`
	Type     string `json:"type"`
	DaysLeft int    `json:"days_left"`
}

/* ===================== LIBRARY ===================== */

const DefaultMaxBooks = 5

// Book status values shown by the assistant. Status is admin-set, never derived.
const (
	BookStatusActive  = "Active"
	BookStatusDueSoon = "Due Soon"
	BookStatusOverdue = "Overdue"
)

type Library struct {
	BooksBorrowed []Book `json:"books_borrowed"`
	TotalBorrowed int    `json:"total_borrowed"`
	TotalFine     int    `json:"total_fine"`
	MaxBooks      int    `json:"max_books"`
}

type Book struct {
	Title     string `json:"title"`
	Author    string `json:"author"`
	IssueDate string `json:"issue_date"`
	DueDate   string `json:"due_date"`
	Fine      int    `json:"fine"`
	Status    string `json:"status"`
}

/* ===================== FEES ===================== */

type Fees struct {
	TotalFee       int            `json:"total_fee"`
	Paid           int            `json:"paid"`
	Pending        int            `json:"pending"`
	DueDate        string         `json:"due_date"`
	PaymentHistory []Payment      `json:"payment_history"`
	Breakdown      map[string]int `json:"breakdown"`
	Checkouts      []Checkout     `json:"checkouts,omitempty"`
}

type Payment struct {
	Date    string `json:"date"`
	Amount  int    `json:"amount"`
	Mode    string `json:"mode"`
	Receipt string `json:"receipt"`
}

// Checkout status values for online fee payments.
const (
	CheckoutPending  = "pending"
	CheckoutPaid     = "paid"
	CheckoutExpired  = "expired"
	CheckoutCanceled = "canceled"
)

// Checkout tracks one payment-gateway transaction until the gateway settles it.
type Checkout struct {
	OrderID string `json:"order_id"`
	Amount  int    `json:"amount"`
	Status  string `json:"status"`
	Created string `json:"created"`
}

/* ===================== COURSES ===================== */

type Course struct {
	Code      string `json:"code"`
	Name      string `json:"name"`
	Credits   int    `json:"credits"`
	Professor string `json:"professor"`
	Schedule  string `json:"schedule"`
}

/* ===================== CAMPUS ===================== */

type Appointment struct {
	Professor string `json:"professor"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Purpose   string `json:"purpose"`
	Status    string `json:"status"`
}

type CafeteriaOrder struct {
	ID     string   `json:"id"`
	Items  []string `json:"items"`
	Total  int      `json:"total"`
	Status string   `json:"status"`
	Date   string   `json:"date"`
}

// Summary is the list projection returned by fetch-all-students.
type Summary struct {
	Key        string  `json:"key"`
	Name       string  `json:"name"`
	RollNo     string  `json:"roll_no"`
	Email      string  `json:"email"`
	Course     string  `json:"course"`
	Year       string  `json:"year"`
	CGPA       float64 `json:"cgpa"`
	Attendance int     `json:"attendance"`
}

// NewStudentRecord returns a record with zeroed aggregates and empty detail data.
func NewStudentRecord(id string, b Basic) *StudentRecord {
	r := &StudentRecord{
		ID: id,
		Attendance: Attendance{
			Subjects: map[string]SubjectAttendance{},
		},
		Grades: Grades{
			CurrentSemester: map[string]SubjectGrade{},
		},
		Exams: []Exam{},
		Library: Library{
			BooksBorrowed: []Book{},
			MaxBooks:      DefaultMaxBooks,
		},
		Fees: Fees{
			PaymentHistory: []Payment{},
			Breakdown:      map[string]int{},
		},
		Courses: []Course{},
	}
	r.ApplyBasic(b)
	return r
}

// ApplyBasic overwrites identity fields only.
func (r *StudentRecord) ApplyBasic(b Basic) {
	r.Name = b.Name
	r.Email = b.Email
	r.Phone = b.Phone
	r.Course = b.Course
	r.Year = b.Year
	r.Semester = b.Semester
	r.Section = b.Section
	r.RollNo = b.RollNo
	r.DOB = b.DOB
	r.Address = b.Address
	r.CGPA = b.CGPA
	r.Grades.CGPA = b.CGPA
}

func (r *StudentRecord) Summary(key string) Summary {
	return Summary{
		Key:        key,
		Name:       r.Name,
		RollNo:     r.RollNo,
		Email:      r.Email,
		Course:     r.Course,
		Year:       r.Year,
		CGPA:       r.CGPA,
		Attendance: r.Attendance.OverallPercent,
	}
}
