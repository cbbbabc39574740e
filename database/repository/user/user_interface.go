package userRepo

import (
	"context"
	"errors"

	"autohub/models"
)

var (
	// ErrDuplicateEmail is returned by Create when the email is already registered.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrDuplicateID is returned by Create when another user holds the same id.
	ErrDuplicateID = errors.New("user id already taken")
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetAll retrieves all users.
	GetAll(ctx context.Context) ([]models.User, error)
	// GetByID retrieves a user by its unique ID; nil when absent.
	GetByID(ctx context.Context, id string) (*models.User, error)
	// GetByEmail matches email case-insensitively; nil when absent.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// GetByExactEmail matches email byte for byte; nil when absent.
	GetByExactEmail(ctx context.Context, email string) (*models.User, error)
	// Create appends a new user unless the email or the id is taken.
	Create(ctx context.Context, user models.User) (models.User, error)
	// Update applies the fields present in patch; nil when absent.
	Update(ctx context.Context, id string, patch models.UserUpdateRequest) (*models.User, error)
}
