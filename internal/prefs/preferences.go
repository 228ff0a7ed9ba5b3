package prefs

import (
	"context"
	"fmt"
	"storefront/internal/domain"
	"storefront/internal/pricing"
)

func (s *Service) GetPreferences(ctx context.Context, userID string) (domain.Preferences, error) {
	var p domain.Preferences
	found, err := s.getJSON(ctx, userKey(userID, "preferences"), &p)
	if err != nil {
		return domain.Preferences{}, err
	}
	return withDefaults(p, found), nil
}

// UpdatePreferences applies a region and/or currency change. Choosing a region also switches
// the currency to that region's currency; an explicit currency in the same call wins.
func (s *Service) UpdatePreferences(ctx context.Context, userID, regionCode string, currency domain.Currency) (domain.Preferences, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.GetPreferences(ctx, userID)
	if err != nil {
		return domain.Preferences{}, err
	}

	if regionCode != "" {
		region, err := pricing.RegionByCode(regionCode)
		if err != nil {
			return domain.Preferences{}, err
		}
		p.Region = region.Code
		p.Currency = region.Currency
	}
	if currency != "" {
		if !supported(currency) {
			return domain.Preferences{}, fmt.Errorf("preferred currency %q: %w", currency, domain.ErrCurrencyUnsupported)
		}
		p.Currency = currency
	}

	if err = s.setJSON(ctx, userKey(userID, "preferences"), p); err != nil {
		return domain.Preferences{}, err
	}
	return p, nil
}

func withDefaults(p domain.Preferences, found bool) domain.Preferences {
	if !found || p.Region == "" {
		p.Region = pricing.DefaultRegion
	}
	if _, err := pricing.RegionByCode(p.Region); err != nil {
		p.Region = pricing.DefaultRegion
	}
	if p.Currency == "" || !supported(p.Currency) {
		region, _ := pricing.RegionByCode(p.Region)
		p.Currency = region.Currency
	}
	return p
}

func supported(c domain.Currency) bool {
	for _, code := range domain.SupportedCurrencies() {
		if code == c {
			return true
		}
	}
	return false
}
