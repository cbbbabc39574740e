package notification

import (
	"context"
	"fmt"
	"strings"

	"autohub/models"
	"autohub/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (s *DefaultNotificationService) List(ctx context.Context) ([]models.Notification, error) {
	return s.Repo.GetAll(ctx)
}

func (s *DefaultNotificationService) Push(ctx context.Context, title, body string, channel models.NotificationChannel) (*models.Notification, error) {
	if !channel.Valid() {
		return nil, ErrUnknownChannel
	}
	if strings.TrimSpace(title) == "" {
		return nil, utils.NewValidationError("title", "title is required")
	}
	n := models.Notification{
		ID:        uuid.NewString(),
		Title:     title,
		Body:      body,
		Channel:   channel,
		CreatedAt: s.now(),
	}
	created, err := s.Repo.Create(ctx, n)
	if err != nil {
		return nil, fmt.Errorf("failed to store notification: %w", err)
	}
	return &created, nil
}

func (s *DefaultNotificationService) MarkAllRead(ctx context.Context) (int, error) {
	return s.Repo.MarkAllRead(ctx)
}

func (s *DefaultNotificationService) Prefs(ctx context.Context) (models.NotificationPrefs, error) {
	return s.Repo.GetPrefs(ctx)
}

func (s *DefaultNotificationService) TogglePref(ctx context.Context, channel models.NotificationChannel) (models.NotificationPrefs, error) {
	if !channel.Valid() {
		return nil, ErrUnknownChannel
	}
	prefs, err := s.Repo.GetPrefs(ctx)
	if err != nil {
		return nil, err
	}
	prefs[channel] = !prefs[channel]
	if err := s.Repo.SavePrefs(ctx, prefs); err != nil {
		return nil, err
	}
	return prefs, nil
}

// SendTest delivers body over channel when the channel is enabled. In-app tests land in the feed.
func (s *DefaultNotificationService) SendTest(ctx context.Context, channel models.NotificationChannel, to, body string) error {
	if !channel.Valid() {
		return ErrUnknownChannel
	}
	prefs, err := s.Repo.GetPrefs(ctx)
	if err != nil {
		return err
	}
	if !prefs[channel] {
		return ErrChannelDisabled
	}
	if body == "" {
		body = "This is a test notification from Ahmedabad Auto Hub."
	}

	if channel == models.ChannelInApp {
		_, err := s.Push(ctx, "Test notification", body, channel)
		return err
	}

	sender, ok := s.Senders[channel]
	if !ok {
		if channel == models.ChannelEmail {
			return ErrEmailNotConfigured
		}
		sender = logSender{channel: channel}
	}
	if err := sender.Send(ctx, to, "Test notification", body); err != nil {
		utils.GetLogger().Warn("Test notification failed", zap.String("channel", string(channel)), zap.Error(err))
		return fmt.Errorf("failed to send %s notification: %w", channel, err)
	}
	return nil
}
