package rate

import (
	"maps"
	"storefront/internal/domain"
)

// fallbackRates is served when neither a live fetch nor a tolerable cache is available.
var fallbackRates = map[domain.Currency]float64{
	domain.USD: 82.0,
	domain.EUR: 96.0,
	domain.GBP: 110.0,
	domain.CNY: 11.5,
	domain.JPY: 0.55,
	domain.TRY: 2.48,
	domain.UAH: 2.05,
	domain.KZT: 0.16,
	domain.BYN: 25.0,
}

func FallbackRates() map[domain.Currency]float64 {
	return maps.Clone(fallbackRates)
}

type CurrencyInfo struct {
	Code   domain.Currency `json:"code"`
	Symbol string          `json:"symbol"`
	Name   string          `json:"name"`
	Flag   string          `json:"flag"`
	// SymbolAfter places the symbol after the amount ("1 000 ₽" rather than "₽1,000").
	SymbolAfter bool `json:"symbol_after"`
}

var currencyInfo = map[domain.Currency]CurrencyInfo{
	domain.RUB: {Code: domain.RUB, Symbol: "₽", Name: "Russian Ruble", Flag: "🇷🇺", SymbolAfter: true},
	domain.USD: {Code: domain.USD, Symbol: "$", Name: "US Dollar", Flag: "🇺🇸"},
	domain.EUR: {Code: domain.EUR, Symbol: "€", Name: "Euro", Flag: "🇪🇺"},
	domain.GBP: {Code: domain.GBP, Symbol: "£", Name: "British Pound", Flag: "🇬🇧"},
	domain.CNY: {Code: domain.CNY, Symbol: "¥", Name: "Chinese Yuan", Flag: "🇨🇳"},
	domain.JPY: {Code: domain.JPY, Symbol: "¥", Name: "Japanese Yen", Flag: "🇯🇵"},
	domain.TRY: {Code: domain.TRY, Symbol: "₺", Name: "Turkish Lira", Flag: "🇹🇷"},
	domain.UAH: {Code: domain.UAH, Symbol: "₴", Name: "Ukrainian Hryvnia", Flag: "🇺🇦"},
	domain.KZT: {Code: domain.KZT, Symbol: "₸", Name: "Kazakhstani Tenge", Flag: "🇰🇿", SymbolAfter: true},
	domain.BYN: {Code: domain.BYN, Symbol: "Br", Name: "Belarusian Ruble", Flag: "🇧🇾", SymbolAfter: true},
}

func Info(code domain.Currency) (CurrencyInfo, bool) {
	info, ok := currencyInfo[code]
	return info, ok
}

// Currencies lists metadata for every supported currency, base currency first.
func Currencies() []CurrencyInfo {
	codes := domain.SupportedCurrencies()
	out := make([]CurrencyInfo, 0, len(codes))
	for _, code := range codes {
		out = append(out, currencyInfo[code])
	}
	return out
}
