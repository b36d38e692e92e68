package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/BoaventuraDBoaventura/menu-stream-sub000/entity"
	"github.com/BoaventuraDBoaventura/menu-stream-sub000/events"
)

var (
	ErrForbidden         = errors.New("forbidden")
	ErrInvalidTransition = errors.New("invalid_or_conflict")
)

// Advance moves an order one step along new → preparing → ready →
// delivered. The kitchen never skips a state and never moves backward;
// the compare-and-set guard rejects stale or concurrent requests and
// leaves the row untouched.
func (s *OrderService) Advance(userID, orderID uint) (string, error) {
	var next string
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.Repo.GetOrder(orderID)
		if err != nil {
			return err
		}
		ok, err := s.Rest.CanWorkKitchen(o.RestaurantID, userID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrForbidden
		}

		var from, to uint
		switch o.OrderStatusID {
		case s.Status.New:
			from, to, next = s.Status.New, s.Status.Preparing, entity.StatusPreparing
		case s.Status.Preparing:
			from, to, next = s.Status.Preparing, s.Status.Ready, entity.StatusReady
		case s.Status.Ready:
			from, to, next = s.Status.Ready, s.Status.Delivered, entity.StatusDelivered
		default:
			// delivered and cancelled are terminal
			return ErrInvalidTransition
		}

		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, from, to)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrInvalidTransition
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	s.notifyStatus(orderID, next)
	return next, nil
}

// Cancel abandons the happy path; only new and preparing orders can be
// cancelled.
func (s *OrderService) Cancel(userID, orderID uint) error {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.Repo.GetOrder(orderID)
		if err != nil {
			return err
		}
		ok, err := s.Rest.CanWorkKitchen(o.RestaurantID, userID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrForbidden
		}

		if o.OrderStatusID != s.Status.New && o.OrderStatusID != s.Status.Preparing {
			return ErrInvalidTransition
		}

		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, o.OrderStatusID, s.Status.Cancelled)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrInvalidTransition
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.notifyStatus(orderID, entity.StatusCancelled)
	return nil
}

func (s *OrderService) notifyStatus(orderID uint, status string) {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		return
	}
	s.publish(events.OrderEvent{
		Type:         events.EventOrderStatus,
		OrderID:      o.ID,
		Number:       o.Number,
		RestaurantID: o.RestaurantID,
		Status:       status,
		Total:        o.Total,
		At:           time.Now(),
	})
}
