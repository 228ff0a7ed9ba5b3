package rate

import (
	"errors"
	"maps"
	"slices"
	"storefront/internal/domain"
	"strings"
)

var (
	ErrCodeRequired    = errors.New("currency code is required")
	ErrCodeUnsupported = errors.New("currency code not supported")
)

type CurrencyValidator struct {
	supportedCodesSet map[domain.Currency]struct{} // read only
	supportedCodesLst []string                     // read only
}

// ValidateCode normalizes raw ("  usd ") and checks it against the supported set.
func (v *CurrencyValidator) ValidateCode(raw string) (domain.Currency, error) {
	code := strings.ToUpper(strings.TrimSpace(raw))
	if code == "" {
		return "", ErrCodeRequired
	}
	c := domain.Currency(code)
	if _, ok := v.supportedCodesSet[c]; !ok {
		return "", ErrCodeUnsupported
	}
	return c, nil
}

func (v *CurrencyValidator) SupportedCodes() []string {
	return slices.Clone(v.supportedCodesLst)
}

func NewValidator(supported []domain.Currency) *CurrencyValidator {
	codesSet := make(map[domain.Currency]struct{}, len(supported))
	for _, c := range supported {
		codesSet[c] = struct{}{}
	}
	codesLst := make([]string, 0, len(codesSet))
	for c := range maps.Keys(codesSet) {
		codesLst = append(codesLst, string(c))
	}
	slices.Sort(codesLst)

	return &CurrencyValidator{
		supportedCodesSet: codesSet,
		supportedCodesLst: codesLst,
	}
}
