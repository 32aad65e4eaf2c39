// file: internals/features/records/dto/student_dto.go
package dto

import (
	"strings"

	"educonnect_backend/internals/features/records/model"
)

/* =========================================================
   STUDENT (basic info)
========================================================= */

type StudentBasicRequest struct {
	Name     string  `json:"name" validate:"required"`
	Email    string  `json:"email" validate:"omitempty,email"`
	Phone    string  `json:"phone"`
	Course   string  `json:"course"`
	Year     string  `json:"year"`
	Semester string  `json:"semester"`
	Section  string  `json:"section"`
	RollNo   string  `json:"roll_no"`
	DOB      string  `json:"dob"`
	Address  string  `json:"address"`
	CGPA     float64 `json:"cgpa" validate:"gte=0,lte=10"`
}

func (r *StudentBasicRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.RollNo = strings.TrimSpace(r.RollNo)
}

func (r StudentBasicRequest) ToModel() model.Basic {
	return model.Basic{
		Name:     r.Name,
		Email:    r.Email,
		Phone:    r.Phone,
		Course:   r.Course,
		Year:     r.Year,
		Semester: r.Semester,
		Section:  r.Section,
		RollNo:   r.RollNo,
		DOB:      r.DOB,
		Address:  r.Address,
		CGPA:     r.CGPA,
	}
}

type StudentResponse struct {
	Key     string               `json:"key"`
	Student *model.StudentRecord `json:"student"`
}

/* =========================================================
   ATTENDANCE / GRADES / EXAMS
========================================================= */

type AttendanceRequest struct {
	StudentKey string `json:"student_key" validate:"required"`
	Subject    string `json:"subject" validate:"required"`
	Present    int    `json:"present" validate:"gte=0,ltefield=Total"`
	Total      int    `json:"total" validate:"gte=0"`
}

type GradeRequest struct {
	StudentKey string `json:"student_key" validate:"required"`
	Subject    string `json:"subject" validate:"required"`
	Grade      string `json:"grade" validate:"required,max=3"`
	Marks      int    `json:"marks" validate:"gte=0,lte=100"`
	Credits    int    `json:"credits" validate:"gte=0"`
}

func (r GradeRequest) ToModel() model.SubjectGrade {
	return model.SubjectGrade{
		Grade:   strings.ToUpper(strings.TrimSpace(r.Grade)),
		Marks:   r.Marks,
		Credits: r.Credits,
	}
}

type ExamRequest struct {
	StudentKey string `json:"student_key" validate:"required"`
	Subject    string `json:"subject" validate:"required"`
	Date       string `json:"date" validate:"required"`
	Time       string `json:"time"`
	Venue      string `json:"venue"`
	ExamType   string `json:"exam_type"`
	DaysLeft   int    `json:"days_left" validate:"gte=0"`
}

func (r ExamRequest) ToModel() model.Exam {
	return model.Exam{
		Subject:  r.Subject,
		Date:     r.Date,
		Time:     r.Time,
		Venue:    r.Venue,
		Type:     r.ExamType,
		DaysLeft: r.DaysLeft,
	}
}

/* =========================================================
   FEES
========================================================= */

type FeeRequest struct {
	StudentKey string         `json:"student_key" validate:"required"`
	TotalFee   int            `json:"total_fee" validate:"gte=0"`
	Paid       int            `json:"paid" validate:"gte=0"`
	DueDate    string         `json:"due_date"`
	Breakdown  map[string]int `json:"breakdown,omitempty"`
}

// PaymentQuery is read from the query string: ?amount=&mode=
type PaymentQuery struct {
	Amount int    `query:"amount" json:"amount" validate:"gt=0"`
	Mode   string `query:"mode" json:"mode"`
}

/* =========================================================
   LIBRARY / COURSES
========================================================= */

type LibraryBookRequest struct {
	StudentKey string `json:"student_key" validate:"required"`
	Title      string `json:"title" validate:"required"`
	Author     string `json:"author"`
	IssueDate  string `json:"issue_date"`
	DueDate    string `json:"due_date"`
}

func (r LibraryBookRequest) ToModel() model.Book {
	return model.Book{
		Title:     r.Title,
		Author:    r.Author,
		IssueDate: r.IssueDate,
		DueDate:   r.DueDate,
	}
}

type BookStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Active 'Due Soon' Overdue"`
	Fine   int    `json:"fine" validate:"gte=0"`
}

type CourseRequest struct {
	Code      string `json:"code" validate:"required"`
	Name      string `json:"name" validate:"required"`
	Credits   int    `json:"credits" validate:"gte=0"`
	Professor string `json:"professor"`
	Schedule  string `json:"schedule"`
}

func (r CourseRequest) ToModel() model.Course {
	return model.Course{
		Code:      strings.TrimSpace(r.Code),
		Name:      r.Name,
		Credits:   r.Credits,
		Professor: r.Professor,
		Schedule:  r.Schedule,
	}
}
