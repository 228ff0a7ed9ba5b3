package domain

import "errors"

var (
	ErrKeyNotFound         = errors.New("key not found")
	ErrCurrencyUnsupported = errors.New("currency not supported")
	ErrRateUnavailable     = errors.New("rate unavailable")
	ErrRegionNotFound      = errors.New("region not found")
	ErrPurchaseNotFound    = errors.New("pending purchase not found")
	ErrAlreadyClaimed      = errors.New("daily reward already claimed today")
	ErrWheelCooldown       = errors.New("wheel spin is on cooldown")
)
