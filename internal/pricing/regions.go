package pricing

import (
	"fmt"
	"slices"
	"storefront/internal/domain"
	"strings"
)

var regions = []domain.Region{
	{Code: "RU", DisplayName: "Russia", Flag: "🇷🇺", PriceMultiplier: 1.0, Currency: domain.RUB},
	{Code: "US", DisplayName: "United States", Flag: "🇺🇸", PriceMultiplier: 1.2, Currency: domain.USD},
	{Code: "EU", DisplayName: "European Union", Flag: "🇪🇺", PriceMultiplier: 1.15, Currency: domain.EUR},
	{Code: "GB", DisplayName: "United Kingdom", Flag: "🇬🇧", PriceMultiplier: 1.2, Currency: domain.GBP},
	{Code: "CN", DisplayName: "China", Flag: "🇨🇳", PriceMultiplier: 0.6, Currency: domain.CNY},
	{Code: "JP", DisplayName: "Japan", Flag: "🇯🇵", PriceMultiplier: 0.9, Currency: domain.JPY},
	{Code: "TR", DisplayName: "Turkey", Flag: "🇹🇷", PriceMultiplier: 0.35, Currency: domain.TRY},
	{Code: "UA", DisplayName: "Ukraine", Flag: "🇺🇦", PriceMultiplier: 0.45, Currency: domain.UAH},
	{Code: "KZ", DisplayName: "Kazakhstan", Flag: "🇰🇿", PriceMultiplier: 0.55, Currency: domain.KZT},
	{Code: "BY", DisplayName: "Belarus", Flag: "🇧🇾", PriceMultiplier: 0.7, Currency: domain.BYN},
	{Code: "AR", DisplayName: "Argentina", Flag: "🇦🇷", PriceMultiplier: 0.25, Currency: domain.USD},
}

// DefaultRegion is used when a user has no stored preference.
const DefaultRegion = "RU"

func Regions() []domain.Region {
	return slices.Clone(regions)
}

func RegionByCode(code string) (domain.Region, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	for _, r := range regions {
		if r.Code == code {
			return r, nil
		}
	}
	return domain.Region{}, fmt.Errorf("region %q: %w", code, domain.ErrRegionNotFound)
}
