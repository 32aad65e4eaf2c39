// file: internals/features/records/controller/student_controller.go
package controller

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"educonnect_backend/internals/features/records/dto"
	"educonnect_backend/internals/features/records/store"
	helper "educonnect_backend/internals/helpers"
)

/* =========================================================
   Controller
========================================================= */

// StudentController serves the admin mutations on individual student records.
type StudentController struct {
	Store    *store.Store
	Validate *validator.Validate
}

func NewStudentController(s *store.Store, v *validator.Validate) *StudentController {
	return &StudentController{Store: s, Validate: v}
}

/* =========================================================
   STUDENTS
========================================================= */

// GET /api/admin/students
func (ctl *StudentController) List(c *fiber.Ctx) error {
	list := ctl.Store.Students()
	return helper.JsonList(c, "ok", list, len(list))
}

// GET /api/admin/student/:key
func (ctl *StudentController) Get(c *fiber.Ctx) error {
	key, r, err := ctl.Store.Student(helper.PathParam(c, "key"))
	if err != nil {
		return helper.FromStoreError(c, err)
	}
	return helper.JsonOK(c, "ok", dto.StudentResponse{Key: key, Student: r})
}

// POST /api/admin/student
func (ctl *StudentController) Create(c *fiber.Ctx) error {
	var req dto.StudentBasicRequest
	if err := helper.BindJSON(c, ctl.Validate, &req); err != nil {
		return helper.FromStoreError(c, err)
	}
	req.Normalize()

	key, err := ctl.Store.CreateStudent(c.UserContext(), req.ToModel())
	if err != nil {
		return helper.FromStoreError(c, err)
	}
	return helper.JsonCreated(c, fmt.Sprintf("Student %s added successfully", req.Name), fiber.Map{"key": key})
}

// PUT /api/admin/student/:key
func (ctl *StudentController) Update(c *fiber.Ctx) error {
	var req dto.StudentBasicRequest
	if err := helper.BindJSON(c, ctl.Validate, &req); err != nil {
		return helper.FromStoreError(c, err)
	}
	req.Normalize()

	if err := ctl.Store.UpdateStudent(c.UserContext(), helper.PathParam(c, "key"), req.ToModel()); err != nil {
		return helper.FromStoreError(c, err)
	}
	return helper.JsonUpdated(c, fmt.Sprintf("Student %s updated successfully", req.Name), nil)
}

// DELETE /api/admin/student/:key
func (ctl *StudentController) Delete(c *fiber.Ctx) error {
	name, err := ctl.Store.DeleteStudent(c.UserContext(), helper.PathParam(c, "key"))
	if err != nil {
		return helper.FromStoreError(c, err)
	}
	return helper.JsonDeleted(c, fmt.Sprintf("Student %s deleted successfully", name), nil)
}

/* =========================================================
   ATTENDANCE
========================================================= */

// POST /api/admin/attendance
func (ctl *StudentController) UpsertAttendance(c *fiber.Ctx) error {
	var req dto.AttendanceRequest
	if err := helper.BindJSON(c, ctl.Validate, &req); err != nil {
		return helper.FromStoreError(c, err)
	}
	if err := ctl.Store.UpsertAttendance(c.UserContext(), req.StudentKey, req.Subject, req.Present, req.Total); err != nil {
		return helper.FromStoreError(c, err)
	}
	return ctl.attendanceResult(c, req.StudentKey, "Attendance updated")
}

// DELETE /api/admin/attendance/:key/:subject
func (ctl *StudentController) DeleteAttendance(c *fiber.Ctx) error {
	key := helper.PathParam(c, "key")
	if err := ctl.Store.DeleteAttendance(c.UserContext(), key, helper.PathParam(c, "subject")); err != nil {
		return helper.FromStoreError(c, err)
	}
	return ctl.attendanceResult(c, key, "Attendance removed")
}

func (ctl *StudentController) attendanceResult(c *fiber.Ctx, key, msg string) error {
	_, r, err := ctl.Store.Student(key)
	if err != nil {
		return helper.FromStoreError(c, err)
	}
	return helper.JsonUpdated(c, msg, fiber.Map{"overall": r.Attendance.OverallPercent})
}

/* =========================================================
   GRADES
========================================================= */

// POST /api/admin/grade
func (ctl *StudentController) UpsertGrade(c *fiber.Ctx) error {
	var req dto.GradeRequest
	if err := helper.BindJSON(c, ctl.Validate, &req); err != nil {
		return helper.FromStoreError(c, err)
	}
	if err := ctl.Store.UpsertGrade(c.UserContext(), req.StudentKey, req.Subject, req.ToModel()); err != nil {
		return helper.FromStoreError(c, err)
	}
	return ctl.gradeResult(c, req.StudentKey, "Grade updated")
}

// DELETE /api/admin/grade/:key/:subject
func (ctl *StudentController) DeleteGrade(c *fiber.Ctx) error {
	key := helper.PathParam(c, "key")
	if err := ctl.Store.DeleteGrade(c.UserContext(), key, helper.PathParam(c, "subject")); err != nil {
		return helper.FromStoreError(c, err)
	}
	return ctl.gradeResult(c, key, "Grade removed")
}

func (ctl *StudentController) gradeResult(c *fiber.Ctx, key, msg string) error {
	_, r, err := ctl.Store.Student(key)
	if err != nil {
		return helper.FromStoreError(c, err)
	}
	return helper.JsonUpdated(c, msg, fiber.Map{"sgpa": r.Grades.SGPA})
}

/* =========================================================
   EXAMS
========================================================= */

// POST /api/admin/exam
func (ctl *StudentController) AddExam(c *fiber.Ctx) error {
	var req dto.ExamRequest
	if err := helper.BindJSON(c, ctl.Validate, &req); err != nil {
		return helper.FromStoreError(c, err)
	}
	if err := ctl.Store.AddExam(c.UserContext(), req.StudentKey, req.ToModel()); err != nil {
		return helper.FromStoreError(c, err)
	}
	return helper.JsonCreated(c, "Exam added", nil)
}

// DELETE /api/admin/exam/:key/:subject removes every exam for the subject.
func (ctl *StudentController) DeleteExams(c *fiber.Ctx) error {
	if err := ctl.Store.DeleteExams(c.UserContext(), helper.PathParam(c, "key"), helper.PathParam(c, "subject")); err != nil {
		return helper.FromStoreError(c, err)
	}
	return helper.JsonDeleted(c, "Exam removed", nil)
}

/* =========================================================
   FEES
========================================================= */

// POST /api/admin/fees
func (ctl *StudentController) SetFees(c *fiber.Ctx) error {
	var req dto.FeeRequest
	if err := helper.BindJSON(c, ctl.Validate, &req); err != nil {
		return helper.FromStoreError(c, err)
	}
	if err := ctl.Store.SetFees(c.UserContext(), req.StudentKey, req.TotalFee, req.Paid, req.DueDate, req.Breakdown); err != nil {
		return helper.FromStoreError(c, err)
	}
	return helper.JsonUpdated(c, "Fees updated successfully", nil)
}

// POST /api/admin/fees/payment/:key?amount=&mode=
func (ctl *StudentController) AddPayment(c *fiber.Ctx) error {
	var q dto.PaymentQuery
	if err := helper.BindQuery(c, ctl.Validate, &q); err != nil {
		return helper.FromStoreError(c, err)
	}
	p, err := ctl.Store.AddPayment(c.UserContext(), helper.PathParam(c, "key"), q.Amount, q.Mode)
	if err != nil {
		return helper.FromStoreError(c, err)
	}
	return helper.JsonCreated(c, fmt.Sprintf("Payment of ₹%d recorded", p.Amount), p)
}

/* =========================================================
   LIBRARY
========================================================= */

// POST /api/admin/library/book
func (ctl *StudentController) AddBook(c *fiber.Ctx) error {
	var req dto.LibraryBookRequest
	if err := helper.BindJSON(c, ctl.Validate, &req); err != nil {
		return helper.FromStoreError(c, err)
	}
	if err := ctl.Store.AddBook(c.UserContext(), req.StudentKey, req.ToModel()); err != nil {
		return helper.FromStoreError(c, err)
	}
	return helper.JsonCreated(c, fmt.Sprintf("Book '%s' added", req.Title), nil)
}

// DELETE /api/admin/library/book/:key/:title
func (ctl *StudentController) ReturnBook(c *fiber.Ctx) error {
	title := helper.PathParam(c, "title")
	if err := ctl.Store.ReturnBook(c.UserContext(), helper.PathParam(c, "key"), title); err != nil {
		return helper.FromStoreError(c, err)
	}
	return helper.JsonDeleted(c, fmt.Sprintf("Book '%s' returned", title), nil)
}

// PATCH /api/admin/library/book/:key/:title
func (ctl *StudentController) UpdateBook(c *fiber.Ctx) error {
	var req dto.BookStatusRequest
	if err := helper.BindJSON(c, ctl.Validate, &req); err != nil {
		return helper.FromStoreError(c, err)
	}
	title := helper.PathParam(c, "title")
	if err := ctl.Store.UpdateBook(c.UserContext(), helper.PathParam(c, "key"), title, req.Status, req.Fine); err != nil {
		return helper.FromStoreError(c, err)
	}
	return helper.JsonUpdated(c, fmt.Sprintf("Book '%s' updated", title), nil)
}

/* =========================================================
   COURSES
========================================================= */

// POST /api/admin/course/:key
func (ctl *StudentController) AddCourse(c *fiber.Ctx) error {
	var req dto.CourseRequest
	if err := helper.BindJSON(c, ctl.Validate, &req); err != nil {
		return helper.FromStoreError(c, err)
	}
	if err := ctl.Store.AddCourse(c.UserContext(), helper.PathParam(c, "key"), req.ToModel()); err != nil {
		return helper.FromStoreError(c, err)
	}
	return helper.JsonCreated(c, fmt.Sprintf("Course %s added", req.Code), nil)
}

// DELETE /api/admin/course/:key/:code
func (ctl *StudentController) RemoveCourse(c *fiber.Ctx) error {
	code := helper.PathParam(c, "code")
	if err := ctl.Store.RemoveCourse(c.UserContext(), helper.PathParam(c, "key"), code); err != nil {
		return helper.FromStoreError(c, err)
	}
	return helper.JsonDeleted(c, fmt.Sprintf("Course %s removed", code), nil)
}
