package domain

import "time"

type Preferences struct {
	Region   string   `json:"region"`
	Currency Currency `json:"currency"`
}

type DailyReward struct {
	Day   int    `json:"day"`
	Coins int    `json:"coins"`
	Gems  int    `json:"gems"`
	Bonus string `json:"bonus,omitempty"`
}

type DailyRewardState struct {
	// Day is the cycle day (1..7) the next claim pays out.
	Day           int    `json:"day"`
	LastClaimDate string `json:"last_claim_date,omitempty"` // YYYY-MM-DD in the configured location
}

type DailyRewardStatus struct {
	Day         int
	CanClaim    bool
	Reward      DailyReward
	NextClaimAt *time.Time
}

type WheelPrize struct {
	ID          int     `json:"id"`
	Label       string  `json:"label"`
	Value       string  `json:"value"`
	Probability float64 `json:"probability"` // percent
}

type WheelState struct {
	CanSpin    bool
	LastSpinAt *time.Time
	NextSpinAt *time.Time
}

type WheelSpin struct {
	Prize      WheelPrize
	SpunAt     time.Time
	NextSpinAt time.Time
}

type InstallPromptState struct {
	Visible     bool
	DismissedAt *time.Time
	HiddenUntil *time.Time
}
