package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"storefront/internal/domain"
	"storefront/internal/pricing"

	"github.com/go-playground/validator/v10"
)

type RateService interface {
	GetExchangeRates(ctx context.Context) domain.ExchangeRateSet
	RefreshRates(ctx context.Context) domain.ExchangeRateSet
	GetRateChange(ctx context.Context, code domain.Currency, baseline domain.RateBaseline) (domain.RateChange, error)
}

type CurrencyValidator interface {
	ValidateCode(raw string) (domain.Currency, error)
	SupportedCodes() []string
}

type PricingService interface {
	Quote(ctx context.Context, basePrice float64, region domain.Region) pricing.Quote
	QuoteAll(ctx context.Context, basePrice float64) []pricing.Quote
}

type PurchaseQueue interface {
	Save(ctx context.Context, intent domain.PurchaseIntent) (domain.PendingPurchase, error)
	List(ctx context.Context) ([]domain.PendingPurchase, error)
	Sync(ctx context.Context) (domain.SyncResult, error)
	Clear(ctx context.Context) error
}

type PrefsService interface {
	GetPreferences(ctx context.Context, userID string) (domain.Preferences, error)
	UpdatePreferences(ctx context.Context, userID, regionCode string, currency domain.Currency) (domain.Preferences, error)
	DailyRewardStatus(ctx context.Context, userID string) (domain.DailyRewardStatus, error)
	ClaimDailyReward(ctx context.Context, userID string) (domain.DailyReward, error)
	WheelState(ctx context.Context, userID string) (domain.WheelState, error)
	SpinWheel(ctx context.Context, userID string) (domain.WheelSpin, error)
	InstallPrompt(ctx context.Context, userID string) (domain.InstallPromptState, error)
	DismissInstallPrompt(ctx context.Context, userID string) (domain.InstallPromptState, error)
	MarkInstalled(ctx context.Context, userID string) error
	NotificationBannerSeen(ctx context.Context, userID string) (bool, error)
	MarkNotificationBannerSeen(ctx context.Context, userID string) error
}

type Handler struct {
	rates     RateService
	validator CurrencyValidator
	pricing   PricingService
	purchases PurchaseQueue
	prefs     PrefsService
	validate  *validator.Validate
}

func NewHandler(
	rates RateService,
	currencyValidator CurrencyValidator,
	pricingService PricingService,
	purchases PurchaseQueue,
	prefs PrefsService,
) *Handler {
	return &Handler{
		rates:     rates,
		validator: currencyValidator,
		pricing:   pricingService,
		purchases: purchases,
		prefs:     prefs,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, statusCode int, errorMsg string) {
	writeJSON(w, statusCode, errorResponse{
		Error: errorMsg,
	})
}

func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// decodeBody reads a small JSON body into dst and runs struct validation on it.
// On failure it writes the 400 response and returns false.
func (h *Handler) decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, 4<<10)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		writeError(w, http.StatusBadRequest, "validation failed: "+err.Error())
		return false
	}
	return true
}
