package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	recordsController "educonnect_backend/internals/features/records/controller"
	"educonnect_backend/internals/features/records/store"
)

// RecordsPublicRoutes: campus reads plus student self-service (orders, appointments).
func RecordsPublicRoutes(r fiber.Router, st *store.Store, v *validator.Validate, defaultStudent string) {
	campus := recordsController.NewCampusController(st, v, defaultStudent)

	r.Get("/placements", campus.Placements)
	r.Get("/events", campus.Events)
	r.Get("/faculty", campus.Faculty)
	r.Get("/cafeteria", campus.Menu)

	r.Get("/orders", campus.MyOrders)
	r.Post("/order", campus.PlaceOrder)
	r.Post("/appointment", campus.BookAppointment)
}
