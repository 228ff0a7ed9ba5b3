package prefs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"storefront/internal/adapters"
	"storefront/internal/domain"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

const (
	DefaultWheelCooldown       = 24 * time.Hour
	DefaultInstallPromptSnooze = 7 * 24 * time.Hour
)

type Options struct {
	Location            *time.Location
	WheelCooldown       time.Duration
	InstallPromptSnooze time.Duration
}

// Service keeps the small per-user values the storefront UI persists between visits.
type Service struct {
	store  adapters.KVStore
	clock  clockwork.Clock
	random func() float64
	opts   Options

	// serializes read-modify-write sequences (claims, spins)
	mu sync.Mutex
}

func userKey(userID, name string) string {
	return "users/" + userID + "/" + name
}

func (s *Service) getJSON(ctx context.Context, key string, dst any) (bool, error) {
	raw, err := s.store.Get(ctx, key)
	if errors.Is(err, domain.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	if err = json.Unmarshal(raw, dst); err != nil {
		// unreadable values count as unset
		return false, nil
	}
	return true, nil
}

func (s *Service) setJSON(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err = s.store.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

func NewService(store adapters.KVStore, clock clockwork.Clock, opts Options) *Service {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.WheelCooldown <= 0 {
		opts.WheelCooldown = DefaultWheelCooldown
	}
	if opts.InstallPromptSnooze <= 0 {
		opts.InstallPromptSnooze = DefaultInstallPromptSnooze
	}
	return &Service{store: store, clock: clock, random: rand.Float64, opts: opts}
}
