package store

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/google/uuid"

	"educonnect_backend/internals/features/records/model"
)

const (
	OrderStatusPreparing     = "Preparing"
	AppointmentStatusPending = "Pending Approval"
)

/* ===================== CAFETERIA ORDERS ===================== */

// PlaceOrder puts a new order at the front of the student's orders.
func (s *Store) PlaceOrder(ctx context.Context, identifier string, items []string, total int) (model.CafeteriaOrder, error) {
	var o model.CafeteriaOrder
	err := s.update(ctx, "order.place", func(t *txn) error {
		_, r, err := t.student(identifier)
		if err != nil {
			return err
		}
		o = model.CafeteriaOrder{
			ID:     newOrderID(),
			Items:  slices.Clone(items),
			Total:  total,
			Status: OrderStatusPreparing,
			Date:   t.date(),
		}
		r.CafeteriaOrders = slices.Insert(r.CafeteriaOrders, 0, o)
		return nil
	})
	return o, err
}

func newOrderID() string {
	return "ORD" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}

// UpdateOrderStatus sets the status of one of the student's orders.
func (s *Store) UpdateOrderStatus(ctx context.Context, identifier, orderID, status string) error {
	return s.update(ctx, "order.status", func(t *txn) error {
		_, r, err := t.student(identifier)
		if err != nil {
			return err
		}
		for i := range r.CafeteriaOrders {
			if r.CafeteriaOrders[i].ID == orderID {
				r.CafeteriaOrders[i].Status = status
				return nil
			}
		}
		return fmt.Errorf("order %q: %w", orderID, ErrNotFound)
	})
}

// StudentOrder is an order annotated with its owner, for the admin view.
type StudentOrder struct {
	model.CafeteriaOrder
	StudentName string `json:"student_name"`
	StudentKey  string `json:"student_key"`
}

// AllOrders lists every student's orders, students in key order.
func (s *Store) AllOrders() []StudentOrder {
	doc := s.Snapshot()
	out := []StudentOrder{}
	for _, key := range slices.Sorted(maps.Keys(doc.Students)) {
		r := doc.Students[key]
		for _, o := range r.CafeteriaOrders {
			out = append(out, StudentOrder{CafeteriaOrder: o, StudentName: r.Name, StudentKey: key})
		}
	}
	return out
}

// Orders returns the student's orders, or an empty list for unknown students.
func (s *Store) Orders(identifier string) []model.CafeteriaOrder {
	_, r, err := s.Student(identifier)
	if err != nil || r.CafeteriaOrders == nil {
		return []model.CafeteriaOrder{}
	}
	return r.CafeteriaOrders
}

/* ===================== FACULTY APPOINTMENTS ===================== */

func (s *Store) BookAppointment(ctx context.Context, identifier string, a model.Appointment) (model.Appointment, error) {
	err := s.update(ctx, "appointment.book", func(t *txn) error {
		_, r, err := t.student(identifier)
		if err != nil {
			return err
		}
		a.Status = AppointmentStatusPending
		r.FacultyAppointments = append(r.FacultyAppointments, a)
		return nil
	})
	return a, err
}
