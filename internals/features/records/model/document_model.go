// file: internals/features/records/model/document_model.go
package model

import (
	"maps"
	"slices"
)

// Document is the whole persisted store: one structured document that is
// loaded in full at start-up and rewritten in full after every mutation.
type Document struct {
	Students   map[string]*StudentRecord `json:"students"`
	Notices    []Notice                  `json:"notices"`
	Timetable  map[string][]ClassSlot    `json:"timetable"`
	Cafeteria  Cafeteria                 `json:"cafeteria"`
	Placements []Placement               `json:"placements"`
	Events     []Event                   `json:"events"`
	Faculty    []Faculty                 `json:"faculty"`
	Sequences  Sequences                 `json:"sequences"`
}

func NewDocument() *Document {
	d := &Document{}
	d.Normalize()
	return d
}

// IsEmpty reports whether the document holds no students and no reference data.
func (d *Document) IsEmpty() bool {
	return len(d.Students) == 0 &&
		len(d.Notices) == 0 &&
		len(d.Timetable) == 0 &&
		len(d.Cafeteria.Menu) == 0 &&
		len(d.Placements) == 0 &&
		len(d.Events) == 0 &&
		len(d.Faculty) == 0
}

// Normalize replaces nil collections with empty ones and lifts the id
// counters to at least the highest id already present, so documents written
// by older versions (no sequences block) keep issuing unique ids.
func (d *Document) Normalize() {
	if d.Students == nil {
		d.Students = map[string]*StudentRecord{}
	}
	if d.Notices == nil {
		d.Notices = []Notice{}
	}
	if d.Timetable == nil {
		d.Timetable = map[string][]ClassSlot{}
	}
	if d.Cafeteria.Menu == nil {
		d.Cafeteria.Menu = []MenuItem{}
	}
	if d.Placements == nil {
		d.Placements = []Placement{}
	}
	if d.Events == nil {
		d.Events = []Event{}
	}
	if d.Faculty == nil {
		d.Faculty = []Faculty{}
	}

	for key, r := range d.Students {
		if r == nil {
			delete(d.Students, key)
			continue
		}
		r.normalize()
	}
	if n := len(d.Students); d.Sequences.Student < n {
		d.Sequences.Student = n
	}
	for _, n := range d.Notices {
		if n.ID > d.Sequences.Notice {
			d.Sequences.Notice = n.ID
		}
	}
	for _, m := range d.Cafeteria.Menu {
		if m.ID > d.Sequences.MenuItem {
			d.Sequences.MenuItem = m.ID
		}
	}
}

func (r *StudentRecord) normalize() {
	if r.Attendance.Subjects == nil {
		r.Attendance.Subjects = map[string]SubjectAttendance{}
	}
	if r.Grades.CurrentSemester == nil {
		r.Grades.CurrentSemester = map[string]SubjectGrade{}
	}
	if r.Exams == nil {
		r.Exams = []Exam{}
	}
	if r.Library.BooksBorrowed == nil {
		r.Library.BooksBorrowed = []Book{}
	}
	if r.Library.MaxBooks == 0 {
		r.Library.MaxBooks = DefaultMaxBooks
	}
	if r.Fees.PaymentHistory == nil {
		r.Fees.PaymentHistory = []Payment{}
	}
	if r.Fees.Breakdown == nil {
		r.Fees.Breakdown = map[string]int{}
	}
	if r.Courses == nil {
		r.Courses = []Course{}
	}
}

// ShallowClone copies the top-level collections so they can be replaced or
// appended to without touching the receiver. Student records are shared;
// callers must Clone a record before changing it.
func (d *Document) ShallowClone() *Document {
	out := &Document{
		Students:   maps.Clone(d.Students),
		Notices:    slices.Clone(d.Notices),
		Timetable:  make(map[string][]ClassSlot, len(d.Timetable)),
		Cafeteria:  Cafeteria{Menu: slices.Clone(d.Cafeteria.Menu)},
		Placements: slices.Clone(d.Placements),
		Events:     slices.Clone(d.Events),
		Faculty:    slices.Clone(d.Faculty),
		Sequences:  d.Sequences,
	}
	for day, slots := range d.Timetable {
		out.Timetable[day] = slices.Clone(slots)
	}
	return out
}

// Clone returns a deep copy of the record.
func (r *StudentRecord) Clone() *StudentRecord {
	out := *r
	out.Attendance.Subjects = maps.Clone(r.Attendance.Subjects)
	out.Grades.CurrentSemester = maps.Clone(r.Grades.CurrentSemester)
	out.Exams = slices.Clone(r.Exams)
	out.Library.BooksBorrowed = slices.Clone(r.Library.BooksBorrowed)
	out.Fees.PaymentHistory = slices.Clone(r.Fees.PaymentHistory)
	out.Fees.Breakdown = maps.Clone(r.Fees.Breakdown)
	out.Fees.Checkouts = slices.Clone(r.Fees.Checkouts)
	out.Courses = slices.Clone(r.Courses)
	out.FacultyAppointments = slices.Clone(r.FacultyAppointments)
	if r.CafeteriaOrders != nil {
		out.CafeteriaOrders = make([]CafeteriaOrder, len(r.CafeteriaOrders))
		for i, o := range r.CafeteriaOrders {
			o.Items = slices.Clone(o.Items)
			out.CafeteriaOrders[i] = o
		}
	}
	return &out
}
