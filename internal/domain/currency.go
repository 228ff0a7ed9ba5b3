package domain

type Currency string

const (
	RUB Currency = "RUB"
	USD Currency = "USD"
	EUR Currency = "EUR"
	GBP Currency = "GBP"
	CNY Currency = "CNY"
	JPY Currency = "JPY"
	TRY Currency = "TRY"
	UAH Currency = "UAH"
	KZT Currency = "KZT"
	BYN Currency = "BYN"
)

// BaseCurrency is the currency all catalog prices and rates are expressed in.
const BaseCurrency = RUB

// QuotedCurrencies are the currencies carried in an ExchangeRateSet.
var QuotedCurrencies = []Currency{USD, EUR, GBP, CNY, JPY, TRY, UAH, KZT, BYN}

// SupportedCurrencies is QuotedCurrencies plus the base currency.
func SupportedCurrencies() []Currency {
	return append([]Currency{BaseCurrency}, QuotedCurrencies...)
}

func (c Currency) IsBase() bool { return c == BaseCurrency }

func (c Currency) String() string { return string(c) }
