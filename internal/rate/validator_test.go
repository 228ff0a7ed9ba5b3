package rate

import (
	"testing"

	"storefront/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestCurrencyValidator_ValidateCode_Errors(t *testing.T) {
	validator := NewValidator([]domain.Currency{domain.USD, domain.EUR})

	_, err := validator.ValidateCode("")
	require.Equal(t, ErrCodeRequired, err)

	_, err = validator.ValidateCode("   ")
	require.Equal(t, ErrCodeRequired, err)

	_, err = validator.ValidateCode("ZZZ")
	require.Equal(t, ErrCodeUnsupported, err)
}

func TestCurrencyValidator_ValidateCode_Normalizes(t *testing.T) {
	validator := NewValidator([]domain.Currency{domain.USD, domain.EUR})

	code, err := validator.ValidateCode(" usd ")
	require.NoError(t, err)
	require.Equal(t, domain.USD, code)
}

func TestNewValidator_CopiesInput(t *testing.T) {
	source := []domain.Currency{domain.USD, domain.EUR}
	validator := NewValidator(source)

	// mutate source after creation
	source[0] = "XXX"

	_, err := validator.ValidateCode("USD")
	require.NoError(t, err)
}

func TestCurrencyValidator_SupportedCodes(t *testing.T) {
	validator := NewValidator(domain.SupportedCurrencies())

	got := validator.SupportedCodes()

	require.Len(t, got, 10)
	require.Equal(t, "BYN", got[0])
	require.Contains(t, got, "RUB")

	// ensure caller modifications do not affect validator internal state
	got[0] = "XXX"
	require.NotContains(t, validator.SupportedCodes(), "XXX")
}
