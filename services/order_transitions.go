// services/order_transitions.go
package services

import (
	"context"
	"fmt"

	"github.com/NemesisID/PreviewOnly-Dash/entity"

	"gorm.io/gorm"
)

// CanTransition: any non-final status may move to any known status, backwards and
// same-status included. Completed and cancelled orders are frozen.
func CanTransition(from, to entity.OrderStatus) bool {
	return to.Valid() && !from.Terminal()
}

// ----- Status change -----
func (s *OrderService) Transition(ctx context.Context, orderID uint, next string) (*entity.Order, error) {
	to, ok := entity.ParseOrderStatus(next)
	if !ok {
		return nil, invalid("unknown status %q", next)
	}

	o, err := s.Repo.GetOrder(ctx, orderID)
	if err != nil {
		return nil, notFound(err, "order")
	}
	if !CanTransition(o.Status, to) {
		return nil, fmt.Errorf("%w (%s)", ErrIllegalTransition, o.Status.Label())
	}

	// single guarded statement: it applies only while the row still holds the status we read
	affected, err := s.Repo.UpdateStatusGuard(s.DB.WithContext(ctx), o.ID, o.Status, to)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, fmt.Errorf("%w: order %s was changed by someone else, reload and retry", ErrConflict, o.Code)
	}

	o.Status = to
	return o, nil
}

// ----- Delete -----
// Items go first, then the order, in one transaction. If the order row cannot be
// removed the item deletes are rolled back and ErrPartialDelete is reported.
func (s *OrderService) Delete(ctx context.Context, orderID uint) error {
	if _, err := s.Repo.GetOrder(ctx, orderID); err != nil {
		return notFound(err, "order")
	}

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.DeleteOrderItems(tx, orderID); err != nil {
			return fmt.Errorf("%w: %w", ErrDeleteItems, err)
		}
		affected, err := s.Repo.DeleteOrder(tx, orderID)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrPartialDelete, err)
		}
		if affected == 0 {
			return notFound(gormNotFound, "order")
		}
		return nil
	})
}
