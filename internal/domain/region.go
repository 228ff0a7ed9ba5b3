package domain

type Region struct {
	Code            string
	DisplayName     string
	Flag            string
	PriceMultiplier float64
	Currency        Currency
}
