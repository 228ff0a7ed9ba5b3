package pricing

import (
	"storefront/internal/domain"
	"storefront/internal/rate"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// FormatCurrency renders amount with the currency symbol. RUB, KZT and BYN put the symbol
// after the number with Russian digit grouping; everything else leads with the symbol
// and uses en-US grouping.
func FormatCurrency(amount float64, code domain.Currency) string {
	value := number.Decimal(amount, number.MaxFractionDigits(2))

	info, ok := rate.Info(code)
	if !ok {
		return message.NewPrinter(language.AmericanEnglish).Sprintf("%v %s", value, string(code))
	}
	if info.SymbolAfter {
		return message.NewPrinter(language.Russian).Sprintf("%v %s", value, info.Symbol)
	}
	return message.NewPrinter(language.AmericanEnglish).Sprintf("%s%v", info.Symbol, value)
}

// FormatPrice formats a price already expressed in the region's currency.
func FormatPrice(price float64, region domain.Region) string {
	return FormatCurrency(price, region.Currency)
}
