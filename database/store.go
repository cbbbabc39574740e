package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"autohub/utils"

	"go.uber.org/zap"
)

// ErrUnknownBackend is returned by Open for an unsupported STORE_BACKEND.
var ErrUnknownBackend = errors.New("unknown store backend")

// Store is a string-keyed byte store. Backends give no atomicity across keys.
type Store interface {
	// Get returns the value at key and whether it exists.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set overwrites the value at key.
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Ping checks the backend is reachable.
	Ping(ctx context.Context) error
	// Close releases backend connections.
	Close(ctx context.Context) error
}

// GetJSON decodes the value at key into a T. It returns fallback when the key is
// absent, the backend fails or the stored bytes do not parse. Failures are logged, never returned.
func GetJSON[T any](ctx context.Context, s Store, key string, fallback T) T {
	raw, ok, err := s.Get(ctx, key)
	if err != nil {
		utils.GetLogger().Warn("store read failed, using fallback", zap.String("key", key), zap.Error(err))
		return fallback
	}
	if !ok {
		return fallback
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		utils.GetLogger().Warn("stored value is corrupt, using fallback", zap.String("key", key), zap.Error(err))
		return fallback
	}
	return out
}

// SetJSON encodes value and overwrites key with it.
func SetJSON(ctx context.Context, s Store, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := s.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// DeleteKey removes key from the store.
func DeleteKey(ctx context.Context, s Store, key string) error {
	if err := s.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}
