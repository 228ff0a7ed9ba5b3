package rate

import (
	"fmt"
	"storefront/internal/domain"

	"github.com/shopspring/decimal"
)

// ConvertFromBase turns a base-currency amount into code, rounded to 2 decimals.
func ConvertFromBase(amount float64, code domain.Currency, set domain.ExchangeRateSet) (float64, error) {
	if code.IsBase() {
		return amount, nil
	}
	r, err := rateFor(code, set)
	if err != nil {
		return 0, err
	}
	v, _ := decimal.NewFromFloat(amount).Div(r).Round(2).Float64()
	return v, nil
}

// ConvertToBase turns an amount in code into whole base-currency units.
func ConvertToBase(amount float64, code domain.Currency, set domain.ExchangeRateSet) (float64, error) {
	if code.IsBase() {
		return amount, nil
	}
	r, err := rateFor(code, set)
	if err != nil {
		return 0, err
	}
	v, _ := decimal.NewFromFloat(amount).Mul(r).Round(0).Float64()
	return v, nil
}

func rateFor(code domain.Currency, set domain.ExchangeRateSet) (decimal.Decimal, error) {
	if _, ok := currencyInfo[code]; !ok {
		return decimal.Zero, fmt.Errorf("convert %q: %w", code, domain.ErrCurrencyUnsupported)
	}
	v, ok := set.Rate(code)
	if !ok {
		return decimal.Zero, fmt.Errorf("convert %q: %w", code, domain.ErrRateUnavailable)
	}
	return decimal.NewFromFloat(v), nil
}

// changeBetween returns current-reference rounded to 2 decimals and that rounded change
// as a percentage of reference, also to 2 decimals.
func changeBetween(current, reference float64) (float64, float64) {
	ref := decimal.NewFromFloat(reference)
	diff := decimal.NewFromFloat(current).Sub(ref).Round(2)

	change, _ := diff.Float64()
	if ref.IsZero() {
		return change, 0
	}
	percent, _ := diff.Div(ref).Mul(decimal.NewFromInt(100)).Round(2).Float64()
	return change, percent
}
