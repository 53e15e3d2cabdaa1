package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"salon-admin/internal/model"
)

// OrderRepository handles orders and their service associations.
type OrderRepository struct {
	crud[model.Order, uint]
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{crud: crud[model.Order, uint]{db: db}}
}

func (r *OrderRepository) Create(ctx context.Context, order *model.Order) error {
	if err := r.db.WithContext(ctx).Create(order).Error; err != nil {
		return fmt.Errorf("create order: %w", err)
	}
	return nil
}

// AttachServices links the given services to an order through the join
// table. Every id must resolve to an existing service.
func (r *OrderRepository) AttachServices(ctx context.Context, order *model.Order, serviceIDs []uint) error {
	if len(serviceIDs) == 0 {
		return nil
	}
	var services []model.Service
	if err := r.db.WithContext(ctx).Find(&services, serviceIDs).Error; err != nil {
		return fmt.Errorf("load services: %w", err)
	}
	if len(services) != len(serviceIDs) {
		return fmt.Errorf("attach services: %d of %d ids unknown", len(serviceIDs)-len(services), len(serviceIDs))
	}
	if err := r.db.WithContext(ctx).Model(order).Association("Services").Append(&services); err != nil {
		return fmt.Errorf("attach services: %w", err)
	}
	return nil
}

// ListServices resolves an order's services with an explicit join query.
func (r *OrderRepository) ListServices(ctx context.Context, orderID uint) ([]model.Service, error) {
	var services []model.Service
	err := r.db.WithContext(ctx).
		Joins("JOIN order_services ON order_services.service_id = services.id").
		Where("order_services.order_id = ?", orderID).
		Find(&services).Error
	if err != nil {
		return nil, fmt.Errorf("list order services: %w", err)
	}
	return services, nil
}

// ListByUser returns every order owned by the given user.
func (r *OrderRepository) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	var orders []model.Order
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// DeactivateExpired clears the active flag on orders whose end time has
// passed and reports how many rows changed.
func (r *OrderRepository) DeactivateExpired(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("is_active = ? AND ends_at IS NOT NULL AND ends_at < ?", true, now).
		Update("is_active", false)
	if res.Error != nil {
		return 0, fmt.Errorf("deactivate expired orders: %w", res.Error)
	}
	return res.RowsAffected, nil
}
