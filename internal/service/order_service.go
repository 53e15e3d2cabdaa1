package service

import (
	"context"
	"errors"
	"time"

	"salon-admin/internal/model"
	"salon-admin/internal/repository"
)

// ErrUnknownUser reports an order placed for a user id with no record.
var ErrUnknownUser = errors.New("unknown user")

// OrderService places orders and retires the expired ones. Orders have no
// HTTP surface; they are reached from here only.
type OrderService struct {
	orders *repository.OrderRepository
	users  *repository.UserRepository
}

func NewOrderService(orders *repository.OrderRepository, users *repository.UserRepository) *OrderService {
	return &OrderService{orders: orders, users: users}
}

// Place creates an active order for an existing user and attaches the given
// services to it.
func (s *OrderService) Place(ctx context.Context, userID int64, begin, ends *time.Time, serviceIDs []uint) (*model.Order, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUnknownUser
	}

	order := &model.Order{
		UserID:   userID,
		BeginAt:  begin,
		EndsAt:   ends,
		IsActive: true,
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}
	if err := s.orders.AttachServices(ctx, order, serviceIDs); err != nil {
		return nil, err
	}
	return order, nil
}

// Services resolves the services attached to an order.
func (s *OrderService) Services(ctx context.Context, orderID uint) ([]model.Service, error) {
	return s.orders.ListServices(ctx, orderID)
}

// ExpireOverdue deactivates active orders whose end time has passed.
func (s *OrderService) ExpireOverdue(ctx context.Context, now time.Time) (int64, error) {
	return s.orders.DeactivateExpired(ctx, now)
}
