package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"salon-admin/internal/model"
)

// UserRepository handles CRUD for users.
type UserRepository struct {
	crud[model.User, int64]
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{crud: crud[model.User, int64]{db: db}}
}

// Create persists a user under its caller-supplied Telegram id. The row is
// committed before return so a duplicate-registration check immediately
// after sees it.
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// Update saves every field of the record; the last writer wins.
func (r *UserRepository) Update(ctx context.Context, user *model.User) error {
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}
