package prefs

import (
	"context"
	"fmt"
	"storefront/internal/domain"
	"time"
)

const dateLayout = "2006-01-02"

var dailyRewards = []domain.DailyReward{
	{Day: 1, Coins: 100},
	{Day: 2, Coins: 150},
	{Day: 3, Coins: 200, Gems: 5},
	{Day: 4, Coins: 250},
	{Day: 5, Coins: 300, Gems: 10},
	{Day: 6, Coins: 400},
	{Day: 7, Coins: 500, Gems: 25, Bonus: "🎁 Bonus chest"},
}

func DailyRewards() []domain.DailyReward {
	out := make([]domain.DailyReward, len(dailyRewards))
	copy(out, dailyRewards)
	return out
}

func (s *Service) DailyRewardStatus(ctx context.Context, userID string) (domain.DailyRewardStatus, error) {
	state, err := s.rewardState(ctx, userID)
	if err != nil {
		return domain.DailyRewardStatus{}, err
	}

	now := s.clock.Now().In(s.opts.Location)
	status := domain.DailyRewardStatus{
		Day:      state.Day,
		CanClaim: state.LastClaimDate != now.Format(dateLayout),
		Reward:   dailyRewards[state.Day-1],
	}
	if !status.CanClaim {
		next := startOfNextDay(now)
		status.NextClaimAt = &next
	}
	return status, nil
}

// ClaimDailyReward pays out the current cycle day once per calendar day. Day 7 wraps to day 1.
func (s *Service) ClaimDailyReward(ctx context.Context, userID string) (domain.DailyReward, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.rewardState(ctx, userID)
	if err != nil {
		return domain.DailyReward{}, err
	}

	today := s.clock.Now().In(s.opts.Location).Format(dateLayout)
	if state.LastClaimDate == today {
		return domain.DailyReward{}, domain.ErrAlreadyClaimed
	}

	reward := dailyRewards[state.Day-1]
	next := domain.DailyRewardState{Day: state.Day%len(dailyRewards) + 1, LastClaimDate: today}
	if err = s.setJSON(ctx, userKey(userID, "daily_reward"), next); err != nil {
		return domain.DailyReward{}, fmt.Errorf("failed to record daily reward claim: %w", err)
	}
	return reward, nil
}

func (s *Service) rewardState(ctx context.Context, userID string) (domain.DailyRewardState, error) {
	var state domain.DailyRewardState
	if _, err := s.getJSON(ctx, userKey(userID, "daily_reward"), &state); err != nil {
		return domain.DailyRewardState{}, err
	}
	if state.Day < 1 || state.Day > len(dailyRewards) {
		state.Day = 1
	}
	return state, nil
}

func startOfNextDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, t.Location())
}
