package sessionRepo

import (
	"context"
	"time"

	"autohub/database"
	"autohub/models"
	"autohub/utils"

	"go.uber.org/zap"
)

// SessionRepository stores one "current user" record per login under current_user:<id>.
type SessionRepository interface {
	Save(ctx context.Context, s models.Session) error
	// Get returns nil when the session is missing, expired or its record is corrupt.
	// Expired records are deleted.
	Get(ctx context.Context, id string) (*models.Session, error)
	Delete(ctx context.Context, id string) error
}

type storeSessionRepo struct {
	store database.Store
	now   func() time.Time
}

func NewStoreSessionRepo(store database.Store) SessionRepository {
	return &storeSessionRepo{store: store, now: time.Now}
}

func (r *storeSessionRepo) Save(ctx context.Context, s models.Session) error {
	s.User = s.User.Public()
	return database.SetJSON(ctx, r.store, utils.SessionKey(s.ID), s)
}

func (r *storeSessionRepo) Get(ctx context.Context, id string) (*models.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s := database.GetJSON(ctx, r.store, utils.SessionKey(id), models.Session{})
	if s.ID == "" || s.User.ID == "" {
		return nil, nil
	}
	if !s.ExpiresAt.IsZero() && !r.now().Before(s.ExpiresAt) {
		if err := r.Delete(ctx, id); err != nil {
			utils.GetLogger().Warn("Failed to drop expired session", zap.String("sessionID", id), zap.Error(err))
		}
		return nil, nil
	}
	return &s, nil
}

func (r *storeSessionRepo) Delete(ctx context.Context, id string) error {
	return database.DeleteKey(ctx, r.store, utils.SessionKey(id))
}
