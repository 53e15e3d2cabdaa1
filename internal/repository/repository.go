package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// crud carries the lookups shared by every entity repository. A missing row
// is reported as (nil, nil), never as an error.
type crud[T any, ID comparable] struct {
	db *gorm.DB
}

func (c crud[T, ID]) GetByID(ctx context.Context, id ID) (*T, error) {
	var entity T
	err := c.db.WithContext(ctx).First(&entity, "id = ?", id).Error
	switch {
	case err == nil:
		return &entity, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, nil
	default:
		return nil, fmt.Errorf("find by id: %w", err)
	}
}

// ListAll returns every row in store-native order; callers must not rely on
// any particular ordering.
func (c crud[T, ID]) ListAll(ctx context.Context) ([]T, error) {
	var entities []T
	if err := c.db.WithContext(ctx).Find(&entities).Error; err != nil {
		return nil, fmt.Errorf("list all: %w", err)
	}
	return entities, nil
}
