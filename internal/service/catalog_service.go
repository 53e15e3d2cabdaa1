package service

import (
	"context"

	"salon-admin/internal/model"
	"salon-admin/internal/repository"
)

// ServiceCatalog manages the bookable services offered to clients.
type ServiceCatalog struct {
	repo *repository.ServiceRepository
}

func NewServiceCatalog(repo *repository.ServiceRepository) *ServiceCatalog {
	return &ServiceCatalog{repo: repo}
}

func (s *ServiceCatalog) GetByID(ctx context.Context, id uint) (*model.Service, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ServiceCatalog) ListAll(ctx context.Context) ([]model.Service, error) {
	return s.repo.ListAll(ctx)
}

// Add persists a new service and returns it with the generated id and
// timestamps filled in.
func (s *ServiceCatalog) Add(ctx context.Context, name string, cost, duration int) (*model.Service, error) {
	svc := &model.Service{
		Name:     name,
		Cost:     cost,
		Duration: duration,
	}
	if err := s.repo.Create(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

// UpdateDetails overwrites the editable fields of a service record.
func (s *ServiceCatalog) UpdateDetails(ctx context.Context, svc *model.Service, name string, cost, duration int) error {
	svc.Name = name
	svc.Cost = cost
	svc.Duration = duration
	return s.repo.Update(ctx, svc)
}
