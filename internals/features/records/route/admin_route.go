package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	recordsController "educonnect_backend/internals/features/records/controller"
	"educonnect_backend/internals/features/records/store"
)

/*
Admin routes: student records and campus reference data.
Mount on a group that already carries RequireAdmin, e.g.
RecordsAdminRoutes(app.Group("/api/admin", auth.RequireAdmin(sessions)), st, v, "lakshya sharma")
*/
func RecordsAdminRoutes(r fiber.Router, st *store.Store, v *validator.Validate, defaultStudent string) {
	students := recordsController.NewStudentController(st, v)
	campus := recordsController.NewCampusController(st, v, defaultStudent)

	// ====== STUDENTS ======
	r.Get("/students", students.List)
	r.Post("/student", students.Create)
	r.Get("/student/:key", students.Get)
	r.Put("/student/:key", students.Update)
	r.Delete("/student/:key", students.Delete)

	// ====== ACADEMICS ======
	r.Post("/attendance", students.UpsertAttendance)
	r.Delete("/attendance/:key/:subject", students.DeleteAttendance)
	r.Post("/grade", students.UpsertGrade)
	r.Delete("/grade/:key/:subject", students.DeleteGrade)
	r.Post("/exam", students.AddExam)
	r.Delete("/exam/:key/:subject", students.DeleteExams)

	// ====== FEES ======
	r.Post("/fees", students.SetFees)
	r.Post("/fees/payment/:key", students.AddPayment)

	// ====== LIBRARY / COURSES ======
	r.Post("/library/book", students.AddBook)
	r.Delete("/library/book/:key/:title", students.ReturnBook)
	r.Patch("/library/book/:key/:title", students.UpdateBook)
	r.Post("/course/:key", students.AddCourse)
	r.Delete("/course/:key/:code", students.RemoveCourse)

	// ====== NOTICES / TIMETABLE ======
	r.Get("/notices", campus.ListNotices)
	r.Post("/notice", campus.CreateNotice)
	r.Delete("/notice/:id", campus.DeleteNotice)
	r.Get("/timetable", campus.Timetable)
	r.Post("/timetable/:day", campus.AddClass)

	// ====== CAFETERIA ======
	r.Get("/cafeteria/orders", campus.AllOrders)
	r.Post("/cafeteria/order/status", campus.UpdateOrderStatus)
	r.Post("/cafeteria/menu", campus.AddMenuItem)
	r.Delete("/cafeteria/menu/:id", campus.DeleteMenuItem)

	// ====== PLACEMENTS / EVENTS / FACULTY ======
	r.Post("/placement", campus.AddPlacement)
	r.Post("/event", campus.AddEvent)
	r.Post("/faculty", campus.AddFaculty)
}
