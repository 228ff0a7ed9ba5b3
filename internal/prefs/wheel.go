package prefs

import (
	"context"
	"errors"
	"fmt"
	"storefront/internal/domain"
	"time"
)

var wheelPrizes = []domain.WheelPrize{
	{ID: 1, Label: "100₽", Value: "100₽ cashback", Probability: 30},
	{ID: 2, Label: "5%", Value: "5% off the next purchase", Probability: 25},
	{ID: 3, Label: "500₽", Value: "500₽ cashback", Probability: 15},
	{ID: 4, Label: "10%", Value: "10% off the next purchase", Probability: 15},
	{ID: 5, Label: "Game", Value: "Free game up to 1000₽", Probability: 5},
	{ID: 6, Label: "1000₽", Value: "1000₽ cashback", Probability: 3},
	{ID: 7, Label: "50₽", Value: "50₽ cashback", Probability: 7},
}

func WheelPrizes() []domain.WheelPrize {
	out := make([]domain.WheelPrize, len(wheelPrizes))
	copy(out, wheelPrizes)
	return out
}

func (s *Service) WheelState(ctx context.Context, userID string) (domain.WheelState, error) {
	last, err := s.lastSpin(ctx, userID)
	if err != nil {
		return domain.WheelState{}, err
	}
	if last == nil {
		return domain.WheelState{CanSpin: true}, nil
	}
	next := last.Add(s.opts.WheelCooldown)
	return domain.WheelState{
		CanSpin:    !s.clock.Now().Before(next),
		LastSpinAt: last,
		NextSpinAt: &next,
	}, nil
}

func (s *Service) SpinWheel(ctx context.Context, userID string) (domain.WheelSpin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.WheelState(ctx, userID)
	if err != nil {
		return domain.WheelSpin{}, err
	}
	if !state.CanSpin {
		return domain.WheelSpin{}, fmt.Errorf("next spin at %s: %w", state.NextSpinAt.Format(time.RFC3339), domain.ErrWheelCooldown)
	}

	now := s.clock.Now().UTC()
	if err = s.store.Set(ctx, userKey(userID, "last_wheel_spin"), []byte(now.Format(time.RFC3339Nano))); err != nil {
		return domain.WheelSpin{}, fmt.Errorf("failed to record wheel spin: %w", err)
	}
	return domain.WheelSpin{
		Prize:      pickPrize(s.random() * 100),
		SpunAt:     now,
		NextSpinAt: now.Add(s.opts.WheelCooldown),
	}, nil
}

// pickPrize walks the cumulative probabilities; roll is in [0, 100).
func pickPrize(roll float64) domain.WheelPrize {
	var accumulated float64
	for _, p := range wheelPrizes {
		accumulated += p.Probability
		if roll <= accumulated {
			return p
		}
	}
	return wheelPrizes[0]
}

func (s *Service) lastSpin(ctx context.Context, userID string) (*time.Time, error) {
	raw, err := s.store.Get(ctx, userKey(userID, "last_wheel_spin"))
	if errors.Is(err, domain.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read last wheel spin: %w", err)
	}
	t, err := time.Parse(time.RFC3339Nano, string(raw))
	if err != nil {
		return nil, nil
	}
	return &t, nil
}
