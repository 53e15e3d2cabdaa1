package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"salon-admin/internal/model"
	"salon-admin/internal/repository"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Service{}, &model.Order{}))
	return db
}

func TestRegisterIdempotent(t *testing.T) {
	userRepo := repository.NewUserRepository(newTestDB(t))
	users := NewUserService(userRepo)
	ctx := context.Background()

	first, existed, err := users.Register(ctx, 7, "bob", "Bob", "Gray")
	require.NoError(t, err)
	require.False(t, existed)
	require.Equal(t, int64(7), first.ID)

	// Second contact must return the stored record, not create or error.
	second, existed, err := users.Register(ctx, 7, "changed", "Changed", "Name")
	require.NoError(t, err)
	require.True(t, existed)
	require.Equal(t, "bob", second.Username)

	all, err := userRepo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
}

func TestUpdateProfile(t *testing.T) {
	userRepo := repository.NewUserRepository(newTestDB(t))
	users := NewUserService(userRepo)
	ctx := context.Background()

	user, _, err := users.Register(ctx, 7, "bob", "Bob", "Gray")
	require.NoError(t, err)

	require.NoError(t, users.UpdateProfile(ctx, user, "rob", "Rob", "Grey", true))

	got, err := users.GetByID(ctx, 7)
	require.NoError(t, err)
	require.Equal(t, "rob", got.Username)
	require.True(t, got.IsAdmin)
}
