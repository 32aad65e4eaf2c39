// file: internals/features/records/controller/campus_controller.go
package controller

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"educonnect_backend/internals/features/records/dto"
	"educonnect_backend/internals/features/records/store"
	helper "educonnect_backend/internals/helpers"
)

// CampusController serves shared reference data (notices, timetable,
// cafeteria, placements, events, faculty) and the student self-service
// endpoints for orders and appointments.
type CampusController struct {
	Store          *store.Store
	Validate       *validator.Validate
	DefaultStudent string
}

func NewCampusController(s *store.Store, v *validator.Validate, defaultStudent string) *CampusController {
	return &CampusController{Store: s, Validate: v, DefaultStudent: defaultStudent}
}

/* =========================================================
   NOTICES
========================================================= */

// GET /api/admin/notices
func (ctl *CampusController) ListNotices(c *fiber.Ctx) error {
	list := ctl.Store.Notices()
	return helper.JsonList(c, "ok", list, len(list))
}

// POST /api/admin/notice
func (ctl *CampusController) CreateNotice(c *fiber.Ctx) error {
	var req dto.NoticeRequest
	if err := helper.BindJSON(c, ctl.Validate, &req); err != nil {
		return helper.FromStoreError(c, err)
	}
	n, err := ctl.Store.CreateNotice(c.UserContext(), req.ToModel())
	if err != nil {
		return helper.FromStoreError(c, err)
	}
	return helper.JsonCreated(c, "Notice created", n)
}

// DELETE /api/admin/notice/:id
func (ctl *CampusController) DeleteNotice(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid notice id")
	}
	if err := ctl.Store.DeleteNotice(c.UserContext(), id); err != nil {
		return helper.FromStoreError(c, err)
	}
	return helper.JsonDeleted(c, "Notice deleted", nil)
}

/* =========================================================
   TIMETABLE
========================================================= */

// GET /api/admin/timetable
func (ctl *CampusController) Timetable(c *fiber.Ctx) error {
	return helper.JsonOK(c, "ok", ctl.Store.Timetable())
}

// POST /api/admin/timetable/:day
// Slot fields come from the JSON body, or from the query string when the
// body is empty.
func (ctl *CampusController) AddClass(c *fiber.Ctx) error {
	var req dto.ClassRequest
	bind := helper.BindJSON
	if len(c.Body()) == 0 {
		bind = helper.BindQuery
	}
	if err := bind(c, ctl.Validate, &req); err != nil {
		return helper.FromStoreError(c, err)
	}
	day := strings.ToLower(helper.PathParam(c, "day"))
	if err := ctl.Store.AddClass(c.UserContext(), day, req.ToModel()); err != nil {
		return helper.FromStoreError(c, err)
	}
	return helper.JsonCreated(c, fmt.Sprintf("Class added to %s", day), nil)
}

/* =========================================================
   CAFETERIA (admin)
========================================================= */

// GET /api/admin/cafeteria/orders
func (ctl *CampusController) AllOrders(c *fiber.Ctx) error {
	list := ctl.Store.AllOrders()
	return helper.JsonList(c, "ok", list, len(list))
}

// POST /api/admin/cafeteria/order/status
func (ctl *CampusController) UpdateOrderStatus(c *fiber.Ctx) error {
	var req dto.OrderStatusRequest
	if err := helper.BindJSON(c, ctl.Validate, &req); err != nil {
		return helper.FromStoreError(c, err)
	}
	if err := ctl.Store.UpdateOrderStatus(c.UserContext(), req.StudentKey, req.OrderID, req.Status); err != nil {
		return helper.FromStoreError(c, err)
	}
	return helper.JsonUpdated(c, "Order status updated", nil)
}

// POST /api/admin/cafeteria/menu
func (ctl *CampusController) AddMenuItem(c *fiber.Ctx) error {
	var req dto.MenuItemRequest
	if err := helper.BindJSON(c, ctl.Validate, &req); err != nil {
		return helper.FromStoreError(c, err)
	}
	item, err := ctl.Store.AddMenuItem(c.UserContext(), req.ToModel())
	if err != nil {
		return helper.FromStoreError(c, err)
	}
	return helper.JsonCreated(c, "Menu item added", item)
}

// DELETE /api/admin/cafeteria/menu/:id
func (ctl *CampusController) DeleteMenuItem(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid menu item id")
	}
	if err := ctl.Store.DeleteMenuItem(c.UserContext(), id); err != nil {
		return helper.FromStoreError(c, err)
	}
	return helper.JsonDeleted(c, "Menu item deleted", nil)
}

/* =========================================================
   PLACEMENTS / EVENTS / FACULTY (admin)
========================================================= */

// POST /api/admin/placement
func (ctl *CampusController) AddPlacement(c *fiber.Ctx) error {
	var req dto.PlacementRequest
	if err := helper.BindJSON(c, ctl.Validate, &req); err != nil {
		return helper.FromStoreError(c, err)
	}
	p := req.ToModel()
	if err := ctl.Store.AddPlacement(c.UserContext(), p); err != nil {
		return helper.FromStoreError(c, err)
	}
	return helper.JsonCreated(c, "Placement added", p)
}

// POST /api/admin/event
func (ctl *CampusController) AddEvent(c *fiber.Ctx) error {
	var req dto.EventRequest
	if err := helper.BindJSON(c, ctl.Validate, &req); err != nil {
		return helper.FromStoreError(c, err)
	}
	e := req.ToModel()
	if err := ctl.Store.AddEvent(c.UserContext(), e); err != nil {
		return helper.FromStoreError(c, err)
	}
	return helper.JsonCreated(c, "Event added", e)
}

// POST /api/admin/faculty
func (ctl *CampusController) AddFaculty(c *fiber.Ctx) error {
	var req dto.FacultyRequest
	if err := helper.BindJSON(c, ctl.Validate, &req); err != nil {
		return helper.FromStoreError(c, err)
	}
	f := req.ToModel()
	if err := ctl.Store.AddFaculty(c.UserContext(), f); err != nil {
		return helper.FromStoreError(c, err)
	}
	return helper.JsonCreated(c, "Faculty added", f)
}

/* =========================================================
   PUBLIC READS
========================================================= */

func (ctl *CampusController) Placements(c *fiber.Ctx) error {
	list := ctl.Store.Placements()
	return helper.JsonList(c, "ok", list, len(list))
}

func (ctl *CampusController) Events(c *fiber.Ctx) error {
	list := ctl.Store.Events()
	return helper.JsonList(c, "ok", list, len(list))
}

func (ctl *CampusController) Faculty(c *fiber.Ctx) error {
	list := ctl.Store.Faculty()
	return helper.JsonList(c, "ok", list, len(list))
}

func (ctl *CampusController) Menu(c *fiber.Ctx) error {
	list := ctl.Store.Menu()
	return helper.JsonList(c, "ok", list, len(list))
}

// GET /api/orders?student_key=
// Unknown students get an empty list, not a 404.
func (ctl *CampusController) MyOrders(c *fiber.Ctx) error {
	key := strings.TrimSpace(c.Query("student_key"))
	if key == "" {
		key = ctl.DefaultStudent
	}
	list := ctl.Store.Orders(key)
	return helper.JsonList(c, "ok", list, len(list))
}

/* =========================================================
   PUBLIC WRITES
========================================================= */

// POST /api/order
func (ctl *CampusController) PlaceOrder(c *fiber.Ctx) error {
	var req dto.OrderRequest
	if err := helper.BindJSON(c, ctl.Validate, &req); err != nil {
		return helper.FromStoreError(c, err)
	}
	o, err := ctl.Store.PlaceOrder(c.UserContext(), req.StudentKey, req.Items, req.TotalAmount)
	if err != nil {
		return helper.FromStoreError(c, err)
	}
	return helper.JsonCreated(c, "Order placed successfully", o)
}

// POST /api/appointment
func (ctl *CampusController) BookAppointment(c *fiber.Ctx) error {
	var req dto.AppointmentRequest
	if err := helper.BindJSON(c, ctl.Validate, &req); err != nil {
		return helper.FromStoreError(c, err)
	}
	a, err := ctl.Store.BookAppointment(c.UserContext(), req.StudentKey, req.ToModel())
	if err != nil {
		return helper.FromStoreError(c, err)
	}
	return helper.JsonCreated(c, "Appointment request sent", a)
}
