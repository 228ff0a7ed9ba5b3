package domain

import "time"

type PendingPurchase struct {
	ID            string    `json:"id"`
	GameID        int64     `json:"game_id"`
	GameName      string    `json:"game_name"`
	Price         float64   `json:"price"`
	Timestamp     time.Time `json:"timestamp"`
	UserID        *int64    `json:"user_id,omitempty"`
	PaymentMethod string    `json:"payment_method,omitempty"`
}

// PurchaseIntent is what the storefront hands over when a purchase can't be sent right away.
type PurchaseIntent struct {
	GameID        int64
	GameName      string
	Price         float64
	UserID        *int64
	PaymentMethod string
}

type SyncResult struct {
	Success int `json:"success"`
	Failed  int `json:"failed"`
}
