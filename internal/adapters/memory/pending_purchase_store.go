package memory

import (
	"context"
	"fmt"
	"slices"
	"storefront/internal/domain"
	"sync"
)

type PendingPurchaseStore struct {
	mu        sync.Mutex
	purchases []domain.PendingPurchase
}

func (s *PendingPurchaseStore) Append(_ context.Context, p domain.PendingPurchase) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if slices.ContainsFunc(s.purchases, func(existing domain.PendingPurchase) bool { return existing.ID == p.ID }) {
		return fmt.Errorf("pending purchase %q already queued", p.ID)
	}
	s.purchases = append(s.purchases, p)
	return nil
}

func (s *PendingPurchaseStore) List(_ context.Context) ([]domain.PendingPurchase, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.purchases), nil
}

func (s *PendingPurchaseStore) Remove(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := slices.IndexFunc(s.purchases, func(p domain.PendingPurchase) bool { return p.ID == id })
	if idx < 0 {
		return domain.ErrPurchaseNotFound
	}
	s.purchases = slices.Delete(s.purchases, idx, idx+1)
	return nil
}

func (s *PendingPurchaseStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.purchases = nil
	return nil
}

func NewPendingPurchaseStore() *PendingPurchaseStore {
	return &PendingPurchaseStore{}
}
