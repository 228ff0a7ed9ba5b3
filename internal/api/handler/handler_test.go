package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/internal/domain"
	"storefront/internal/pricing"
	"storefront/internal/rate"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Testify mocks ---

type MockRateService struct{ mock.Mock }

func (m *MockRateService) GetExchangeRates(ctx context.Context) domain.ExchangeRateSet {
	args := m.Called(ctx)
	set, _ := args.Get(0).(domain.ExchangeRateSet)
	return set
}

func (m *MockRateService) RefreshRates(ctx context.Context) domain.ExchangeRateSet {
	args := m.Called(ctx)
	set, _ := args.Get(0).(domain.ExchangeRateSet)
	return set
}

func (m *MockRateService) GetRateChange(ctx context.Context, code domain.Currency, baseline domain.RateBaseline) (domain.RateChange, error) {
	args := m.Called(ctx, code, baseline)
	c, _ := args.Get(0).(domain.RateChange)
	return c, args.Error(1)
}

type MockPricingService struct{ mock.Mock }

func (m *MockPricingService) Quote(ctx context.Context, basePrice float64, region domain.Region) pricing.Quote {
	args := m.Called(ctx, basePrice, region)
	q, _ := args.Get(0).(pricing.Quote)
	return q
}

func (m *MockPricingService) QuoteAll(ctx context.Context, basePrice float64) []pricing.Quote {
	args := m.Called(ctx, basePrice)
	q, _ := args.Get(0).([]pricing.Quote)
	return q
}

type MockPurchaseQueue struct{ mock.Mock }

func (m *MockPurchaseQueue) Save(ctx context.Context, intent domain.PurchaseIntent) (domain.PendingPurchase, error) {
	args := m.Called(ctx, intent)
	p, _ := args.Get(0).(domain.PendingPurchase)
	return p, args.Error(1)
}

func (m *MockPurchaseQueue) List(ctx context.Context) ([]domain.PendingPurchase, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]domain.PendingPurchase)
	return list, args.Error(1)
}

func (m *MockPurchaseQueue) Sync(ctx context.Context) (domain.SyncResult, error) {
	args := m.Called(ctx)
	res, _ := args.Get(0).(domain.SyncResult)
	return res, args.Error(1)
}

func (m *MockPurchaseQueue) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockPrefsService struct{ mock.Mock }

func (m *MockPrefsService) GetPreferences(ctx context.Context, userID string) (domain.Preferences, error) {
	args := m.Called(ctx, userID)
	p, _ := args.Get(0).(domain.Preferences)
	return p, args.Error(1)
}

func (m *MockPrefsService) UpdatePreferences(ctx context.Context, userID, regionCode string, currency domain.Currency) (domain.Preferences, error) {
	args := m.Called(ctx, userID, regionCode, currency)
	p, _ := args.Get(0).(domain.Preferences)
	return p, args.Error(1)
}

func (m *MockPrefsService) DailyRewardStatus(ctx context.Context, userID string) (domain.DailyRewardStatus, error) {
	args := m.Called(ctx, userID)
	s, _ := args.Get(0).(domain.DailyRewardStatus)
	return s, args.Error(1)
}

func (m *MockPrefsService) ClaimDailyReward(ctx context.Context, userID string) (domain.DailyReward, error) {
	args := m.Called(ctx, userID)
	r, _ := args.Get(0).(domain.DailyReward)
	return r, args.Error(1)
}

func (m *MockPrefsService) WheelState(ctx context.Context, userID string) (domain.WheelState, error) {
	args := m.Called(ctx, userID)
	s, _ := args.Get(0).(domain.WheelState)
	return s, args.Error(1)
}

func (m *MockPrefsService) SpinWheel(ctx context.Context, userID string) (domain.WheelSpin, error) {
	args := m.Called(ctx, userID)
	s, _ := args.Get(0).(domain.WheelSpin)
	return s, args.Error(1)
}

func (m *MockPrefsService) InstallPrompt(ctx context.Context, userID string) (domain.InstallPromptState, error) {
	args := m.Called(ctx, userID)
	s, _ := args.Get(0).(domain.InstallPromptState)
	return s, args.Error(1)
}

func (m *MockPrefsService) DismissInstallPrompt(ctx context.Context, userID string) (domain.InstallPromptState, error) {
	args := m.Called(ctx, userID)
	s, _ := args.Get(0).(domain.InstallPromptState)
	return s, args.Error(1)
}

func (m *MockPrefsService) MarkInstalled(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *MockPrefsService) NotificationBannerSeen(ctx context.Context, userID string) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPrefsService) MarkNotificationBannerSeen(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

type errorJSON struct {
	Error string `json:"error"`
}

type mocks struct {
	rates     *MockRateService
	pricing   *MockPricingService
	purchases *MockPurchaseQueue
	prefs     *MockPrefsService
}

func newTestHandler() (*Handler, mocks) {
	m := mocks{
		rates:     new(MockRateService),
		pricing:   new(MockPricingService),
		purchases: new(MockPurchaseQueue),
		prefs:     new(MockPrefsService),
	}
	validator := rate.NewValidator(domain.SupportedCurrencies())
	return NewHandler(m.rates, validator, m.pricing, m.purchases, m.prefs), m
}

// newRequest builds a request with chi URL params already attached.
func newRequest(method, target, body string, params map[string]string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func requireError(t *testing.T, rr *httptest.ResponseRecorder, status int, contains string) {
	t.Helper()
	require.Equal(t, status, rr.Code)
	require.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	var ej errorJSON
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &ej))
	require.Contains(t, ej.Error, contains)
}
