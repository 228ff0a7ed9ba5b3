package prefs

import (
	"context"
	"errors"
	"fmt"
	"storefront/internal/domain"
	"strconv"
	"time"
)

func (s *Service) InstallPrompt(ctx context.Context, userID string) (domain.InstallPromptState, error) {
	raw, err := s.store.Get(ctx, userKey(userID, "pwa_install_dismissed"))
	if errors.Is(err, domain.ErrKeyNotFound) {
		return domain.InstallPromptState{Visible: true}, nil
	}
	if err != nil {
		return domain.InstallPromptState{}, fmt.Errorf("failed to read install prompt state: %w", err)
	}
	ms, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		return domain.InstallPromptState{Visible: true}, nil
	}

	dismissed := time.UnixMilli(ms).UTC()
	until := dismissed.Add(s.opts.InstallPromptSnooze)
	return domain.InstallPromptState{
		Visible:     !s.clock.Now().Before(until),
		DismissedAt: &dismissed,
		HiddenUntil: &until,
	}, nil
}

// DismissInstallPrompt hides the install prompt for the snooze period.
func (s *Service) DismissInstallPrompt(ctx context.Context, userID string) (domain.InstallPromptState, error) {
	now := strconv.FormatInt(s.clock.Now().UnixMilli(), 10)
	if err := s.store.Set(ctx, userKey(userID, "pwa_install_dismissed"), []byte(now)); err != nil {
		return domain.InstallPromptState{}, fmt.Errorf("failed to dismiss install prompt: %w", err)
	}
	return s.InstallPrompt(ctx, userID)
}

// MarkInstalled forgets an earlier dismissal once the app is installed.
func (s *Service) MarkInstalled(ctx context.Context, userID string) error {
	if err := s.store.Delete(ctx, userKey(userID, "pwa_install_dismissed")); err != nil {
		return fmt.Errorf("failed to reset install prompt: %w", err)
	}
	return nil
}

func (s *Service) NotificationBannerSeen(ctx context.Context, userID string) (bool, error) {
	raw, err := s.store.Get(ctx, userKey(userID, "notification_banner_seen"))
	if errors.Is(err, domain.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read notification banner flag: %w", err)
	}
	return string(raw) == "true", nil
}

func (s *Service) MarkNotificationBannerSeen(ctx context.Context, userID string) error {
	if err := s.store.Set(ctx, userKey(userID, "notification_banner_seen"), []byte("true")); err != nil {
		return fmt.Errorf("failed to mark notification banner seen: %w", err)
	}
	return nil
}
