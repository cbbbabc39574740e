package cron

import (
	"context"
	"testing"
	"time"

	"autohub/database"
	"autohub/database/repository"
	notificationRepo "autohub/database/repository/notification"
	"autohub/models"
	"autohub/services/notification"
)

func newPoller(t *testing.T, interval time.Duration) (*NotificationPoller, *notification.DefaultNotificationService) {
	t.Helper()
	svc := notification.NewDefaultNotificationService(repository.New(database.NewMemoryStore()).Notifications, nil)
	return NewNotificationPoller(svc, interval), svc
}

func TestTickRespectsInAppPreference(t *testing.T) {
	ctx := context.Background()
	p, svc := newPoller(t, time.Minute)

	if !p.Tick(ctx) {
		t.Fatalf("tick with inapp enabled should push")
	}
	feed, _ := svc.List(ctx)
	if len(feed) != 1 || feed[0].Title != "Live update" || feed[0].Body != "Your booking is being processed." {
		t.Fatalf("unexpected feed: %+v", feed)
	}

	if _, err := svc.TogglePref(ctx, models.ChannelInApp); err != nil {
		t.Fatalf("TogglePref: %v", err)
	}
	if p.Tick(ctx) {
		t.Fatalf("tick with inapp disabled should not push")
	}
	feed, _ = svc.List(ctx)
	if len(feed) != 1 {
		t.Fatalf("feed grew while inapp disabled: %+v", feed)
	}
}

func TestPollerRunsOnScheduleAndStops(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	p, svc := newPoller(t, time.Second)

	if err := p.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		feed, _ := svc.List(context.Background())
		if len(feed) > 0 {
			break
		}
		time.Sleep(100 * time.Millisecond)
	}
	cancel()
	p.Stop()

	feed, _ := svc.List(context.Background())
	if len(feed) == 0 {
		t.Fatalf("poller never pushed")
	}
	after := len(feed)
	time.Sleep(1500 * time.Millisecond)
	feed, _ = svc.List(context.Background())
	if len(feed) != after {
		t.Fatalf("poller kept running after stop: %d -> %d", after, len(feed))
	}
}

func TestTicksKeepFeedBounded(t *testing.T) {
	ctx := context.Background()
	p, svc := newPoller(t, time.Minute)

	for i := 0; i < notificationRepo.MaxNotifications+25; i++ {
		if !p.Tick(ctx) {
			t.Fatalf("tick %d did not push", i)
		}
	}
	feed, _ := svc.List(ctx)
	if len(feed) != notificationRepo.MaxNotifications {
		t.Fatalf("feed has %d notifications, want %d", len(feed), notificationRepo.MaxNotifications)
	}
}
