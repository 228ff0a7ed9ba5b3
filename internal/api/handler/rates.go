package handler

import (
	"errors"
	"net/http"
	"storefront/internal/domain"
	"storefront/internal/rate"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

type RatesResponse struct {
	Base        string             `json:"base" example:"RUB"`
	Rates       map[string]float64 `json:"rates"`
	LastUpdated time.Time          `json:"last_updated" example:"2025-01-02T15:04:05Z"`
	Source      string             `json:"source" example:"cache"`
}

func newRatesResponse(set domain.ExchangeRateSet) RatesResponse {
	rates := make(map[string]float64, len(set.Rates))
	for code, v := range set.Rates {
		rates[string(code)] = v
	}
	return RatesResponse{
		Base:        string(domain.BaseCurrency),
		Rates:       rates,
		LastUpdated: set.LastUpdated.UTC(),
		Source:      string(set.Source),
	}
}

// GetRates godoc
// @Summary Current exchange rates
// @Description Base-currency units per one unit of each currency. Served from cache, a live fetch or the fallback table
// @Tags Rates
// @Produce json
// @Success 200 {object} RatesResponse
// @Router /rates [get]
func (h *Handler) GetRates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, newRatesResponse(h.rates.GetExchangeRates(r.Context())))
}

// RefreshRates godoc
// @Summary Force a rate refresh
// @Tags Rates
// @Produce json
// @Success 200 {object} RatesResponse
// @Router /rates/refresh [post]
func (h *Handler) RefreshRates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, newRatesResponse(h.rates.RefreshRates(r.Context())))
}

type RateChangeResponse struct {
	Currency   string  `json:"currency" example:"USD"`
	Current    float64 `json:"current" example:"84.05"`
	Reference  float64 `json:"reference" example:"82"`
	Change     float64 `json:"change" example:"2.05"`
	Percent    float64 `json:"percent" example:"2.5"`
	IsPositive bool    `json:"is_positive"`
	Baseline   string  `json:"baseline" example:"fallback"`
}

// GetRateChange godoc
// @Summary Rate change against a baseline
// @Description Compares the current rate with the static fallback table or with the previous live rates
// @Tags Rates
// @Produce json
// @Param code path string true "Currency code"
// @Param baseline query string false "fallback or previous"
// @Success 200 {object} RateChangeResponse
// @Failure 400 {object} errorResponse
// @Router /rates/{code}/change [get]
func (h *Handler) GetRateChange(w http.ResponseWriter, r *http.Request) {
	code, err := h.validator.ValidateCode(chi.URLParam(r, "code"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	baseline := domain.RateBaseline(r.URL.Query().Get("baseline"))
	switch baseline {
	case "", domain.BaselineFallback, domain.BaselinePrevious:
	default:
		writeError(w, http.StatusBadRequest, "baseline must be fallback or previous")
		return
	}

	change, err := h.rates.GetRateChange(r.Context(), code, baseline)
	if err != nil {
		if errors.Is(err, domain.ErrCurrencyUnsupported) {
			writeError(w, http.StatusBadRequest, rate.ErrCodeUnsupported.Error())
			return
		}
		msg := "ups, couldn't compute rate change this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "GetRateChange", "code": code}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	writeJSON(w, http.StatusOK, RateChangeResponse{
		Currency:   string(change.Currency),
		Current:    change.Current,
		Reference:  change.Reference,
		Change:     change.Change,
		Percent:    change.Percent,
		IsPositive: change.IsPositive,
		Baseline:   string(change.Baseline),
	})
}

type ConvertResponse struct {
	Amount     float64 `json:"amount" example:"600"`
	Code       string  `json:"code" example:"USD"`
	Direction  string  `json:"direction" example:"from_base"`
	Result     float64 `json:"result" example:"7.32"`
	RateSource string  `json:"rate_source" example:"live"`
}

// Convert godoc
// @Summary Convert an amount between the base currency and another currency
// @Tags Rates
// @Produce json
// @Param amount query number true "Amount"
// @Param code query string true "Currency code"
// @Param direction query string false "from_base (default) or to_base"
// @Success 200 {object} ConvertResponse
// @Failure 400 {object} errorResponse
// @Failure 503 {object} errorResponse
// @Router /rates/convert [get]
func (h *Handler) Convert(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	amount, err := strconv.ParseFloat(q.Get("amount"), 64)
	if err != nil || amount < 0 {
		writeError(w, http.StatusBadRequest, "amount must be a non-negative number")
		return
	}
	code, err := h.validator.ValidateCode(q.Get("code"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	direction := q.Get("direction")
	if direction == "" {
		direction = "from_base"
	}

	set := h.rates.GetExchangeRates(r.Context())
	var result float64
	switch direction {
	case "from_base":
		result, err = rate.ConvertFromBase(amount, code, set)
	case "to_base":
		result, err = rate.ConvertToBase(amount, code, set)
	default:
		writeError(w, http.StatusBadRequest, "direction must be from_base or to_base")
		return
	}
	if err != nil {
		if errors.Is(err, domain.ErrRateUnavailable) {
			writeError(w, http.StatusServiceUnavailable, "rate unavailable")
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, ConvertResponse{
		Amount:     amount,
		Code:       string(code),
		Direction:  direction,
		Result:     result,
		RateSource: string(set.Source),
	})
}

type CurrencyResponse struct {
	rate.CurrencyInfo
	Rate float64 `json:"rate"`
}

type GetCurrenciesResponse struct {
	Currencies []CurrencyResponse `json:"currencies"`
	Source     string             `json:"source"`
}

// GetCurrencies godoc
// @Summary List supported currencies
// @Description Symbols, names and current rate of every supported currency
// @Tags Rates
// @Produce json
// @Success 200 {object} GetCurrenciesResponse
// @Router /currencies [get]
func (h *Handler) GetCurrencies(w http.ResponseWriter, r *http.Request) {
	set := h.rates.GetExchangeRates(r.Context())

	all := rate.Currencies()
	out := make([]CurrencyResponse, 0, len(all))
	for _, info := range all {
		if _, err := h.validator.ValidateCode(string(info.Code)); err != nil {
			continue
		}
		v, _ := set.Rate(info.Code)
		out = append(out, CurrencyResponse{CurrencyInfo: info, Rate: v})
	}
	writeJSON(w, http.StatusOK, GetCurrenciesResponse{Currencies: out, Source: string(set.Source)})
}
