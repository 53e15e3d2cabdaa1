package service

import (
	"context"

	"salon-admin/internal/model"
	"salon-admin/internal/repository"
)

// UserService carries registration and profile management on top of the
// user repository.
type UserService struct {
	repo *repository.UserRepository
}

func NewUserService(repo *repository.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// Register persists a first-time caller and reports whether the id was
// already known. Re-registration is not an error: the stored record comes
// back untouched with the flag set.
func (s *UserService) Register(ctx context.Context, id int64, username, firstName, lastName string) (*model.User, bool, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, true, nil
	}

	user := &model.User{
		ID:        id,
		Username:  username,
		FirstName: firstName,
		LastName:  lastName,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, false, err
	}
	return user, false, nil
}

func (s *UserService) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *UserService) ListAll(ctx context.Context) ([]model.User, error) {
	return s.repo.ListAll(ctx)
}

// UpdateProfile overwrites the editable fields of a user record.
func (s *UserService) UpdateProfile(ctx context.Context, user *model.User, username, firstName, lastName string, isAdmin bool) error {
	user.Username = username
	user.FirstName = firstName
	user.LastName = lastName
	user.IsAdmin = isAdmin
	return s.repo.Update(ctx, user)
}
