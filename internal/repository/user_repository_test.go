package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"salon-admin/internal/model"
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

func TestUserGetByIDAbsent(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	user, err := repo.GetByID(context.Background(), 42)
	require.NoError(t, err)
	require.Nil(t, user)
}

func TestUserCreateKeepsSuppliedID(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	err := repo.Create(ctx, &model.User{ID: 123456789, Username: "ann", FirstName: "Ann", LastName: "Lee"})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, 123456789)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, int64(123456789), got.ID)
	require.Equal(t, "ann", got.Username)
	require.False(t, got.IsAdmin)
	require.False(t, got.CreatedAt.IsZero())
}

func TestUserUpdateLastWriterWins(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &model.User{ID: 1, Username: "old"}))

	first, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	second, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)

	first.Username = "first"
	require.NoError(t, repo.Update(ctx, first))
	second.Username = "second"
	require.NoError(t, repo.Update(ctx, second))

	got, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, "second", got.Username)
}

func TestUserListAll(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &model.User{ID: 1, Username: "a"}))
	require.NoError(t, repo.Create(ctx, &model.User{ID: 2, Username: "b"}))

	users, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
}
