package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/internal/domain"
	"storefront/internal/rate"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedTime = time.Date(2025, 10, 4, 11, 30, 0, 0, time.UTC)

func liveSet() domain.ExchangeRateSet {
	return domain.ExchangeRateSet{
		Rates:       map[domain.Currency]float64{domain.USD: 82.0, domain.EUR: 96.0},
		LastUpdated: fixedTime,
		Source:      domain.SourceLive,
	}
}

// --- GetRates / RefreshRates ---

func TestHandler_GetRates(t *testing.T) {
	h, m := newTestHandler()
	m.rates.On("GetExchangeRates", mock.Anything).Return(liveSet()).Once()
	rr := httptest.NewRecorder()

	h.GetRates(rr, newRequest(http.MethodGet, "/api/v1/rates", "", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var res RatesResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	require.Equal(t, "RUB", res.Base)
	require.Equal(t, "live", res.Source)
	require.InDelta(t, 82.0, res.Rates["USD"], 1e-9)
	require.True(t, fixedTime.Equal(res.LastUpdated))
	m.rates.AssertExpectations(t)
}

func TestHandler_RefreshRates(t *testing.T) {
	h, m := newTestHandler()
	m.rates.On("RefreshRates", mock.Anything).Return(liveSet()).Once()
	rr := httptest.NewRecorder()

	h.RefreshRates(rr, newRequest(http.MethodPost, "/api/v1/rates/refresh", "", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	m.rates.AssertExpectations(t)
	m.rates.AssertNotCalled(t, "GetExchangeRates", mock.Anything)
}

// --- GetRateChange ---

func TestHandler_GetRateChange_Success(t *testing.T) {
	h, m := newTestHandler()
	m.rates.On("GetRateChange", mock.Anything, domain.USD, domain.BaselinePrevious).Return(domain.RateChange{
		Currency: domain.USD, Current: 84.05, Reference: 82, Change: 2.05, Percent: 2.5, IsPositive: true,
		Baseline: domain.BaselinePrevious,
	}, nil).Once()
	rr := httptest.NewRecorder()

	h.GetRateChange(rr, newRequest(http.MethodGet, "/api/v1/rates/usd/change?baseline=previous", "", map[string]string{"code": "usd"}))

	require.Equal(t, http.StatusOK, rr.Code)
	var res RateChangeResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	require.Equal(t, "USD", res.Currency)
	require.InDelta(t, 2.05, res.Change, 1e-9)
	require.True(t, res.IsPositive)
	require.Equal(t, "previous", res.Baseline)
	m.rates.AssertExpectations(t)
}

func TestHandler_GetRateChange_ValidationErrors(t *testing.T) {
	cases := []struct {
		name   string
		target string
		code   string
		want   string
	}{
		{name: "unsupported code", target: "/api/v1/rates/xyz/change", code: "xyz", want: rate.ErrCodeUnsupported.Error()},
		{name: "bad baseline", target: "/api/v1/rates/usd/change?baseline=trend", code: "usd", want: "baseline must be"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h, m := newTestHandler()
			rr := httptest.NewRecorder()

			h.GetRateChange(rr, newRequest(http.MethodGet, tc.target, "", map[string]string{"code": tc.code}))

			requireError(t, rr, http.StatusBadRequest, tc.want)
			m.rates.AssertNotCalled(t, "GetRateChange", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestHandler_GetRateChange_InternalError(t *testing.T) {
	h, m := newTestHandler()
	m.rates.On("GetRateChange", mock.Anything, domain.EUR, domain.RateBaseline("")).Return(domain.RateChange{}, errors.New("boom")).Once()
	rr := httptest.NewRecorder()

	h.GetRateChange(rr, newRequest(http.MethodGet, "/api/v1/rates/EUR/change", "", map[string]string{"code": "EUR"}))

	requireError(t, rr, http.StatusInternalServerError, "couldn't compute rate change")
}

// --- Convert ---

func TestHandler_Convert(t *testing.T) {
	cases := []struct {
		name   string
		target string
		want   float64
	}{
		{name: "from base", target: "/api/v1/rates/convert?amount=600&code=usd", want: 7.32},
		{name: "to base", target: "/api/v1/rates/convert?amount=7.32&code=USD&direction=to_base", want: 600},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h, m := newTestHandler()
			m.rates.On("GetExchangeRates", mock.Anything).Return(liveSet()).Once()
			rr := httptest.NewRecorder()

			h.Convert(rr, newRequest(http.MethodGet, tc.target, "", nil))

			require.Equal(t, http.StatusOK, rr.Code)
			var res ConvertResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
			require.InDelta(t, tc.want, res.Result, 1e-9)
			require.Equal(t, "USD", res.Code)
			require.Equal(t, "live", res.RateSource)
		})
	}
}

func TestHandler_Convert_BadInput(t *testing.T) {
	cases := []struct {
		name   string
		target string
		want   string
	}{
		{name: "missing amount", target: "/api/v1/rates/convert?code=USD", want: "amount must be"},
		{name: "negative amount", target: "/api/v1/rates/convert?amount=-1&code=USD", want: "amount must be"},
		{name: "missing code", target: "/api/v1/rates/convert?amount=1", want: rate.ErrCodeRequired.Error()},
		{name: "bad direction", target: "/api/v1/rates/convert?amount=1&code=USD&direction=sideways", want: "direction must be"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h, m := newTestHandler()
			m.rates.On("GetExchangeRates", mock.Anything).Return(liveSet()).Maybe()
			rr := httptest.NewRecorder()

			h.Convert(rr, newRequest(http.MethodGet, tc.target, "", nil))

			requireError(t, rr, http.StatusBadRequest, tc.want)
		})
	}
}

func TestHandler_Convert_RateUnavailable(t *testing.T) {
	h, m := newTestHandler()
	m.rates.On("GetExchangeRates", mock.Anything).Return(liveSet()).Once()
	rr := httptest.NewRecorder()

	h.Convert(rr, newRequest(http.MethodGet, "/api/v1/rates/convert?amount=10&code=JPY", "", nil))

	requireError(t, rr, http.StatusServiceUnavailable, "rate unavailable")
}

// --- GetCurrencies ---

func TestHandler_GetCurrencies(t *testing.T) {
	h, m := newTestHandler()
	m.rates.On("GetExchangeRates", mock.Anything).Return(liveSet()).Once()
	rr := httptest.NewRecorder()

	h.GetCurrencies(rr, newRequest(http.MethodGet, "/api/v1/currencies", "", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var res GetCurrenciesResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	require.Len(t, res.Currencies, 10)
	require.Equal(t, domain.RUB, res.Currencies[0].Code)
	require.InDelta(t, 1.0, res.Currencies[0].Rate, 1e-9)
	require.True(t, res.Currencies[0].SymbolAfter)
	require.Equal(t, "live", res.Source)
}
