package cron

import (
	"context"
	"fmt"
	"time"

	"autohub/models"
	"autohub/services/notification"
	"autohub/utils"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const (
	liveUpdateTitle = "Live update"
	liveUpdateBody  = "Your booking is being processed."
)

// NotificationPoller periodically pushes a live-update notification into the in-app feed.
type NotificationPoller struct {
	svc      notification.NotificationService
	interval time.Duration
	sched    *cron.Cron
}

func NewNotificationPoller(svc notification.NotificationService, interval time.Duration) *NotificationPoller {
	if interval <= 0 {
		interval = 20 * time.Second
	}
	return &NotificationPoller{svc: svc, interval: interval}
}

// Start schedules the poller and stops it when ctx is cancelled.
func (p *NotificationPoller) Start(ctx context.Context) error {
	p.sched = cron.New(cron.WithChain(cron.Recover(cron.DefaultLogger)))
	spec := fmt.Sprintf("@every %s", p.interval)
	if _, err := p.sched.AddFunc(spec, func() { p.Tick(ctx) }); err != nil {
		return fmt.Errorf("failed to schedule notification poller: %w", err)
	}
	p.sched.Start()
	utils.GetLogger().Info("Notification poller started", zap.Duration("interval", p.interval))

	go func() {
		<-ctx.Done()
		p.Stop()
	}()
	return nil
}

// Stop halts the schedule and waits for a running tick to finish.
func (p *NotificationPoller) Stop() {
	if p.sched == nil {
		return
	}
	<-p.sched.Stop().Done()
	utils.GetLogger().Info("Notification poller stopped")
}

// Tick pushes one live update when in-app notifications are enabled. It reports whether it pushed.
func (p *NotificationPoller) Tick(ctx context.Context) bool {
	if ctx.Err() != nil {
		return false
	}
	prefs, err := p.svc.Prefs(ctx)
	if err != nil {
		utils.GetLogger().Warn("Notification poller could not read prefs", zap.Error(err))
		return false
	}
	if !prefs[models.ChannelInApp] {
		return false
	}
	if _, err := p.svc.Push(ctx, liveUpdateTitle, liveUpdateBody, models.ChannelInApp); err != nil {
		utils.GetLogger().Warn("Notification poller push failed", zap.Error(err))
		return false
	}
	return true
}
