package adapters

import (
	"context"
	"storefront/internal/domain"
)

type RateClient interface {
	GetExchangeRates(ctx context.Context) (map[domain.Currency]float64, error)
}

// KVStore is the string-keyed persistent storage. Get returns domain.ErrKeyNotFound for a missing key.
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

type PendingPurchaseStore interface {
	Append(ctx context.Context, purchase domain.PendingPurchase) error
	List(ctx context.Context) ([]domain.PendingPurchase, error)
	Remove(ctx context.Context, id string) error
	Clear(ctx context.Context) error
}

type PurchaseSubmitter interface {
	Submit(ctx context.Context, purchase domain.PendingPurchase) error
}

type HealthChecker interface {
	Ping(ctx context.Context) error
}
