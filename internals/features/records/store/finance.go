package store

import (
	"context"
	"fmt"

	"educonnect_backend/internals/features/records/model"
)

const DefaultPaymentMode = "Online"

// SetFees replaces total, paid and due date; breakdown is replaced only when given.
func (s *Store) SetFees(ctx context.Context, identifier string, total, paid int, dueDate string, breakdown map[string]int) error {
	return s.update(ctx, "fees.set", func(t *txn) error {
		_, r, err := t.student(identifier)
		if err != nil {
			return err
		}
		r.Fees.TotalFee = total
		r.Fees.Paid = paid
		r.Fees.DueDate = dueDate
		if breakdown != nil {
			r.Fees.Breakdown = breakdown
		}
		recomputeFees(&r.Fees)
		return nil
	})
}

// AddPayment records a payment and returns the appended history entry.
func (s *Store) AddPayment(ctx context.Context, identifier string, amount int, mode string) (model.Payment, error) {
	var p model.Payment
	err := s.update(ctx, "fees.payment", func(t *txn) error {
		_, r, err := t.student(identifier)
		if err != nil {
			return err
		}
		p = applyPayment(t, r, amount, mode)
		return nil
	})
	return p, err
}

func applyPayment(t *txn, r *model.StudentRecord, amount int, mode string) model.Payment {
	if mode == "" {
		mode = DefaultPaymentMode
	}
	r.Fees.Paid += amount
	recomputeFees(&r.Fees)
	p := model.Payment{
		Date:    t.date(),
		Amount:  amount,
		Mode:    mode,
		Receipt: fmt.Sprintf("REC%03d", len(r.Fees.PaymentHistory)+1),
	}
	r.Fees.PaymentHistory = append(r.Fees.PaymentHistory, p)
	return p
}

/* ===================== ONLINE CHECKOUT ===================== */

// CheckoutAmount returns the amount to charge: the requested amount, or the
// whole pending balance when amount <= 0.
func CheckoutAmount(r *model.StudentRecord, amount int) (int, error) {
	if r.Fees.Pending <= 0 {
		return 0, ErrNothingPending
	}
	if amount <= 0 {
		return r.Fees.Pending, nil
	}
	return amount, nil
}

// AddCheckout records a pending gateway transaction for the student.
func (s *Store) AddCheckout(ctx context.Context, identifier, orderID string, amount int) error {
	return s.update(ctx, "fees.checkout", func(t *txn) error {
		_, r, err := t.student(identifier)
		if err != nil {
			return err
		}
		r.Fees.Checkouts = append(r.Fees.Checkouts, model.Checkout{
			OrderID: orderID,
			Amount:  amount,
			Status:  model.CheckoutPending,
			Created: t.date(),
		})
		return nil
	})
}

// SettleCheckout moves a checkout to status. Moving a pending checkout to
// paid also records the payment. Settling an already-settled checkout is a
// no-op, so gateway retries are safe.
func (s *Store) SettleCheckout(ctx context.Context, orderID, status, mode string) error {
	return s.update(ctx, "fees.checkout.settle", func(t *txn) error {
		key, idx := findCheckout(t.doc, orderID)
		if idx < 0 {
			return fmt.Errorf("checkout %q: %w", orderID, ErrNotFound)
		}
		_, r, err := t.student(key)
		if err != nil {
			return err
		}
		co := &r.Fees.Checkouts[idx]
		if co.Status != model.CheckoutPending || status == model.CheckoutPending {
			return errUnchanged
		}
		co.Status = status
		if status == model.CheckoutPaid {
			applyPayment(t, r, co.Amount, mode)
		}
		return nil
	})
}

func findCheckout(doc *model.Document, orderID string) (string, int) {
	for key, r := range doc.Students {
		for i, co := range r.Fees.Checkouts {
			if co.OrderID == orderID {
				return key, i
			}
		}
	}
	return "", -1
}
