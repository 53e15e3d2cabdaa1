package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"salon-admin/internal/model"
)

// ServiceRepository handles CRUD for bookable services.
type ServiceRepository struct {
	crud[model.Service, uint]
}

func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{crud: crud[model.Service, uint]{db: db}}
}

func (r *ServiceRepository) Create(ctx context.Context, svc *model.Service) error {
	if err := r.db.WithContext(ctx).Create(svc).Error; err != nil {
		return fmt.Errorf("create service: %w", err)
	}
	return nil
}

func (r *ServiceRepository) Update(ctx context.Context, svc *model.Service) error {
	if err := r.db.WithContext(ctx).Save(svc).Error; err != nil {
		return fmt.Errorf("update service: %w", err)
	}
	return nil
}
