package user

import (
	"context"

	"autohub/models"
)

func (s *DefaultUserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.Users.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i] = users[i].Public()
	}
	return users, nil
}

func (s *DefaultUserService) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	pub := u.Public()
	return &pub, nil
}

// ToggleUserActive flips the active flag. Existing sessions stay valid until they expire.
func (s *DefaultUserService) ToggleUserActive(ctx context.Context, userID string) (*models.User, error) {
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	next := !u.Active
	updated, err := s.Users.Update(ctx, userID, models.UserUpdateRequest{Active: &next})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrUserNotFound
	}
	pub := updated.Public()
	return &pub, nil
}
