package notificationRepo

import (
	"context"

	"autohub/database"
	"autohub/database/repository/collection"
	"autohub/models"
	"autohub/utils"
)

// MaxNotifications bounds the stored feed; older notifications are dropped on insert.
const MaxNotifications = 100

// NotificationRepository defines methods for notification and preference data access.
type NotificationRepository interface {
	GetAll(ctx context.Context) ([]models.Notification, error)
	// Create prepends the notification, keeping at most MaxNotifications.
	Create(ctx context.Context, n models.Notification) (models.Notification, error)
	// MarkAllRead flags every unread notification and returns how many changed.
	MarkAllRead(ctx context.Context) (int, error)
	// GetPrefs returns the stored preferences merged over the defaults.
	GetPrefs(ctx context.Context) (models.NotificationPrefs, error)
	SavePrefs(ctx context.Context, prefs models.NotificationPrefs) error
}

type storeNotificationRepo struct {
	store         database.Store
	notifications *collection.Collection[models.Notification]
}

func NewStoreNotificationRepo(store database.Store) NotificationRepository {
	return &storeNotificationRepo{
		store:         store,
		notifications: collection.New[models.Notification](store, utils.KeyNotifications, collection.Prepend).Capped(MaxNotifications),
	}
}

func (r *storeNotificationRepo) GetAll(ctx context.Context) ([]models.Notification, error) {
	return r.notifications.List(ctx)
}

func (r *storeNotificationRepo) Create(ctx context.Context, n models.Notification) (models.Notification, error) {
	return r.notifications.Add(ctx, n)
}

func (r *storeNotificationRepo) MarkAllRead(ctx context.Context) (int, error) {
	return r.notifications.UpdateAll(ctx, func(n *models.Notification) bool {
		if n.Read {
			return false
		}
		n.Read = true
		return true
	})
}

func (r *storeNotificationRepo) GetPrefs(ctx context.Context) (models.NotificationPrefs, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	prefs := models.DefaultNotificationPrefs()
	stored := database.GetJSON(ctx, r.store, utils.KeyNotifPrefs, models.NotificationPrefs{})
	for ch, on := range stored {
		if ch.Valid() {
			prefs[ch] = on
		}
	}
	return prefs, nil
}

func (r *storeNotificationRepo) SavePrefs(ctx context.Context, prefs models.NotificationPrefs) error {
	return database.SetJSON(ctx, r.store, utils.KeyNotifPrefs, prefs)
}
