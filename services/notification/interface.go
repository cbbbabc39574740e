package notification

import (
	"context"
	"errors"
	"time"

	"autohub/database/repository"
	"autohub/models"
)

var (
	ErrUnknownChannel     = errors.New("unknown notification channel")
	ErrChannelDisabled    = errors.New("notification channel is disabled")
	ErrEmailNotConfigured = errors.New("email delivery is not configured")
)

// NotificationService manages the in-app feed, channel preferences and outbound test messages.
type NotificationService interface {
	List(ctx context.Context) ([]models.Notification, error)
	Push(ctx context.Context, title, body string, channel models.NotificationChannel) (*models.Notification, error)
	MarkAllRead(ctx context.Context) (int, error)
	Prefs(ctx context.Context) (models.NotificationPrefs, error)
	TogglePref(ctx context.Context, channel models.NotificationChannel) (models.NotificationPrefs, error)
	SendTest(ctx context.Context, channel models.NotificationChannel, to, body string) error
}

// Sender delivers a message over one outbound channel.
type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// DefaultNotificationService is the store-backed implementation.
type DefaultNotificationService struct {
	Repo    repository.NotificationRepository
	Senders map[models.NotificationChannel]Sender
	now     func() time.Time
}

func NewDefaultNotificationService(repo repository.NotificationRepository, senders map[models.NotificationChannel]Sender) *DefaultNotificationService {
	if senders == nil {
		senders = map[models.NotificationChannel]Sender{}
	}
	return &DefaultNotificationService{
		Repo:    repo,
		Senders: senders,
		now:     func() time.Time { return time.Now().UTC() },
	}
}
