package user

import (
	"context"
	"time"

	"autohub/database/repository"
	"autohub/models"
)

type UserService interface {
	// Authentication
	Register(ctx context.Context, payload models.RegistrationData) (*AuthResponse, error)
	Login(ctx context.Context, email, password string) (*AuthResponse, error)
	LoginAs(ctx context.Context, email string) (*AuthResponse, error)
	Logout(ctx context.Context, token string) error

	// Session lookup
	CurrentUser(ctx context.Context, token string) (*models.User, error)
	CurrentSession(ctx context.Context, token string) (*models.Session, error)
	IsAuthenticated(ctx context.Context, token string) bool

	// Admin / Utility
	GetAllUsers(ctx context.Context) ([]models.User, error)
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	ToggleUserActive(ctx context.Context, userID string) (*models.User, error)
}

// DefaultUserService is the store-backed implementation.
type DefaultUserService struct {
	Users    repository.UserRepository
	Sessions repository.SessionRepository
	// SessionTTL bounds the lifetime of issued tokens.
	SessionTTL time.Duration
	// AllowLoginAs enables password-less dev logins.
	AllowLoginAs bool
	now          func() time.Time
}

// NewUserService wires the user service over the given repositories.
func NewUserService(repos *repository.Repositories, sessionTTL time.Duration, allowLoginAs bool) *DefaultUserService {
	return &DefaultUserService{
		Users:        repos.Users,
		Sessions:     repos.Sessions,
		SessionTTL:   sessionTTL,
		AllowLoginAs: allowLoginAs,
		now:          time.Now,
	}
}

// AuthResponse carries the signed-in user and their bearer token.
type AuthResponse struct {
	User      models.User `json:"user"`
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expiresAt"`
}
