// file: internals/features/records/dto/campus_dto.go
package dto

import (
	"strings"

	"educonnect_backend/internals/features/records/model"
)

/* =========================================================
   NOTICES / TIMETABLE
========================================================= */

type NoticeRequest struct {
	Title      string `json:"title" validate:"required"`
	Content    string `json:"content"`
	NoticeType string `json:"notice_type" validate:"required,oneof=urgent warning info"`
	Author     string `json:"author"`
}

func (r NoticeRequest) ToModel() model.Notice {
	return model.Notice{
		Title:   r.Title,
		Content: r.Content,
		Type:    r.NoticeType,
		Author:  r.Author,
	}
}

// ClassRequest is accepted either as a JSON body or as query parameters.
type ClassRequest struct {
	Time      string `json:"time" query:"time" validate:"required"`
	Course    string `json:"course" query:"course" validate:"required"`
	Room      string `json:"room" query:"room"`
	Professor string `json:"professor" query:"professor"`
	ClassType string `json:"class_type" query:"class_type"`
}

const DefaultClassType = "Lecture"

func (r ClassRequest) ToModel() model.ClassSlot {
	kind := strings.TrimSpace(r.ClassType)
	if kind == "" {
		kind = DefaultClassType
	}
	return model.ClassSlot{
		Time:      r.Time,
		Course:    r.Course,
		Room:      r.Room,
		Professor: r.Professor,
		Type:      kind,
	}
}

/* =========================================================
   CAFETERIA
========================================================= */

type MenuItemRequest struct {
	Item     string `json:"item" validate:"required"`
	Price    int    `json:"price" validate:"gte=0"`
	Category string `json:"category"`
}

func (r MenuItemRequest) ToModel() model.MenuItem {
	return model.MenuItem{Item: r.Item, Price: r.Price, Category: r.Category}
}

type OrderStatusRequest struct {
	StudentKey string `json:"student_key" validate:"required"`
	OrderID    string `json:"order_id" validate:"required"`
	Status     string `json:"status" validate:"required"`
}

type OrderRequest struct {
	StudentKey  string   `json:"student_key" validate:"required"`
	Items       []string `json:"items" validate:"required,min=1,dive,required"`
	TotalAmount int      `json:"total_amount" validate:"gte=0"`
}

/* =========================================================
   PLACEMENTS / EVENTS / FACULTY
========================================================= */

type PlacementRequest struct {
	Company     string `json:"company" validate:"required"`
	Type        string `json:"type"`
	Role        string `json:"role"`
	CTC         string `json:"ctc"`
	Date        string `json:"date"`
	Deadline    string `json:"deadline"`
	Eligibility string `json:"eligibility"`
}

func (r PlacementRequest) ToModel() model.Placement {
	p := model.Placement{
		Company:     r.Company,
		Type:        r.Type,
		Roles:       []string{},
		CTC:         r.CTC,
		Date:        r.Date,
		Deadline:    r.Deadline,
		Eligibility: r.Eligibility,
	}
	if role := strings.TrimSpace(r.Role); role != "" {
		p.Roles = append(p.Roles, role)
	}
	return p
}

type EventRequest struct {
	Name        string `json:"name" validate:"required"`
	Organizer   string `json:"organizer"`
	Date        string `json:"date"`
	Venue       string `json:"venue"`
	Description string `json:"description"`
}

func (r EventRequest) ToModel() model.Event {
	return model.Event{
		Name:        r.Name,
		Organizer:   r.Organizer,
		Date:        r.Date,
		Venue:       r.Venue,
		Description: r.Description,
	}
}

type FacultyRequest struct {
	Name        string `json:"name" validate:"required"`
	Designation string `json:"designation"`
	Department  string `json:"department"`
	Cabin       string `json:"cabin"`
	Email       string `json:"email" validate:"omitempty,email"`
}

func (r FacultyRequest) ToModel() model.Faculty {
	return model.Faculty{
		Name:        r.Name,
		Designation: r.Designation,
		Department:  r.Department,
		Cabin:       r.Cabin,
		Email:       r.Email,
	}
}

/* =========================================================
   APPOINTMENTS
========================================================= */

type AppointmentRequest struct {
	StudentKey    string `json:"student_key" validate:"required"`
	ProfessorName string `json:"professor_name" validate:"required"`
	Date          string `json:"date" validate:"required"`
	Time          string `json:"time"`
	Purpose       string `json:"purpose"`
}

func (r AppointmentRequest) ToModel() model.Appointment {
	return model.Appointment{
		Professor: r.ProfessorName,
		Date:      r.Date,
		Time:      r.Time,
		Purpose:   r.Purpose,
	}
}
