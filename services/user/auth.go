package user

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	userRepo "autohub/database/repository/user"
	"autohub/models"
	"autohub/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const defaultSessionTTL = 72 * time.Hour

const maxIDAttempts = 1000

// userID keeps the last six digits of a unix-millis timestamp.
func userID(millis int64) string {
	digits := strconv.FormatInt(millis, 10)
	if len(digits) > 6 {
		digits = digits[len(digits)-6:]
	}
	return "u" + digits
}

func (s *DefaultUserService) clock() time.Time {
	if s.now == nil {
		return time.Now()
	}
	return s.now()
}

// Register creates a customer (or a provider, when asked) and signs it in.
func (s *DefaultUserService) Register(ctx context.Context, payload models.RegistrationData) (*AuthResponse, error) {
	payload.Name = strings.TrimSpace(payload.Name)
	payload.Email = strings.TrimSpace(payload.Email)
	if err := utils.ValidateStruct(payload); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := payload.Role
	if role == "" {
		role = models.RoleCustomer
	}
	newUser := models.User{
		Name:         payload.Name,
		Email:        payload.Email,
		Phone:        payload.Phone,
		Role:         role,
		Active:       true,
		PasswordHash: string(hash),
	}

	// Ids wrap every 1000s; on a clash try the following milliseconds.
	millis := s.clock().UnixMilli()
	var created models.User
	for attempt := 0; ; attempt++ {
		newUser.ID = userID(millis + int64(attempt))
		created, err = s.Users.Create(ctx, newUser)
		if errors.Is(err, userRepo.ErrDuplicateID) && attempt < maxIDAttempts-1 {
			continue
		}
		break
	}
	if errors.Is(err, userRepo.ErrDuplicateEmail) {
		return nil, ErrEmailTaken
	}
	if err != nil {
		utils.GetLogger().Error("Register: failed to persist user", zap.Error(err))
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	utils.GetLogger().Info("User registered", zap.String("userID", created.ID), zap.String("role", string(created.Role)))

	return s.startSession(ctx, created)
}

// Login checks the password against the stored bcrypt hash and opens a session.
func (s *DefaultUserService) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	userRec, err := s.Users.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		utils.GetLogger().Error("Login: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if userRec == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(userRec.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !userRec.Active {
		return nil, ErrUserInactive
	}
	return s.startSession(ctx, *userRec)
}

// LoginAs opens a session for the exact email without a password. Development only.
func (s *DefaultUserService) LoginAs(ctx context.Context, email string) (*AuthResponse, error) {
	if !s.AllowLoginAs {
		return nil, ErrLoginAsDisabled
	}
	userRec, err := s.Users.GetByExactEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if userRec == nil {
		return nil, ErrUserNotFound
	}
	utils.GetLogger().Warn("LoginAs used", zap.String("userID", userRec.ID))
	return s.startSession(ctx, *userRec)
}

// Logout removes the session named by token. Unknown or invalid tokens are ignored.
func (s *DefaultUserService) Logout(ctx context.Context, token string) error {
	sid, err := utils.ExtractSessionID(token)
	if err != nil {
		return nil
	}
	return s.Sessions.Delete(ctx, sid)
}

// CurrentSession resolves token to its stored session, or nil.
func (s *DefaultUserService) CurrentSession(ctx context.Context, token string) (*models.Session, error) {
	if token == "" {
		return nil, nil
	}
	sid, err := utils.ExtractSessionID(token)
	if err != nil {
		utils.GetLogger().Debug("CurrentSession: rejected token", zap.Error(err))
		return nil, nil
	}
	return s.Sessions.Get(ctx, sid)
}

// CurrentUser returns the signed-in user recorded for token, or nil.
func (s *DefaultUserService) CurrentUser(ctx context.Context, token string) (*models.User, error) {
	sess, err := s.CurrentSession(ctx, token)
	if err != nil || sess == nil {
		return nil, err
	}
	u := sess.User
	return &u, nil
}

func (s *DefaultUserService) IsAuthenticated(ctx context.Context, token string) bool {
	u, err := s.CurrentUser(ctx, token)
	return err == nil && u != nil
}

func (s *DefaultUserService) startSession(ctx context.Context, u models.User) (*AuthResponse, error) {
	ttl := s.SessionTTL
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	now := s.clock()
	sess := models.Session{
		ID:        uuid.NewString(),
		User:      u.Public(),
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
	token, err := utils.GenerateSessionToken(sess.ID, u.ID, ttl)
	if err != nil {
		return nil, fmt.Errorf("failed to sign session token: %w", err)
	}
	if err := s.Sessions.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	return &AuthResponse{User: sess.User, Token: token, ExpiresAt: sess.ExpiresAt}, nil
}
