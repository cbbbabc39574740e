package utils

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Pinger is anything whose reachability can be probed.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthStatus represents the current status of the storage backend.
type HealthStatus struct {
	Store     bool      `json:"store"`
	Backend   string    `json:"backend"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns the latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// CheckHealth pings the store once and records the result.
func CheckHealth(ctx context.Context, store Pinger, backend string) HealthStatus {
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	err := store.Ping(pingCtx)
	if err != nil {
		GetLogger().Warn("Store health check failed", zap.String("backend", backend), zap.Error(err))
	}
	status := HealthStatus{Store: err == nil, Backend: backend, CheckedAt: time.Now()}

	healthMu.Lock()
	currentHealth = status
	healthMu.Unlock()
	return status
}

// StartHealthMonitor checks the store immediately and then every interval until ctx is done.
func StartHealthMonitor(ctx context.Context, store Pinger, backend string, interval time.Duration) {
	CheckHealth(ctx, store, backend)
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				CheckHealth(ctx, store, backend)
			}
		}
	}()
}
