package handler

import (
	"errors"
	"net/http"
	"storefront/internal/domain"
	"storefront/internal/prefs"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

type UpdatePreferencesRequest struct {
	Region   string `json:"region,omitempty" validate:"required_without=Currency,omitempty,len=2,alpha"`
	Currency string `json:"currency,omitempty" validate:"required_without=Region,omitempty,len=3,alpha"`
}

func userID(r *http.Request) string {
	return chi.URLParam(r, "userID")
}

func internalError(w http.ResponseWriter, handler, userID string, err error) {
	msg := "ups, something went wrong this time"
	logrus.WithError(err).WithFields(logrus.Fields{"handler": handler, "user_id": userID}).Error(msg)
	writeError(w, http.StatusInternalServerError, msg)
}

// GetPreferences godoc
// @Summary User region and currency
// @Tags Users
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} domain.Preferences
// @Router /users/{userID}/preferences [get]
func (h *Handler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	id := userID(r)
	p, err := h.prefs.GetPreferences(r.Context(), id)
	if err != nil {
		internalError(w, "GetPreferences", id, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// UpdatePreferences godoc
// @Summary Change user region and/or currency
// @Description Choosing a region also switches the currency to the region's currency
// @Tags Users
// @Accept json
// @Produce json
// @Param userID path string true "User ID"
// @Param request body UpdatePreferencesRequest true "Preferences"
// @Success 200 {object} domain.Preferences
// @Failure 400 {object} errorResponse
// @Router /users/{userID}/preferences [put]
func (h *Handler) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	id := userID(r)
	var req UpdatePreferencesRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	var currency domain.Currency
	if req.Currency != "" {
		c, err := h.validator.ValidateCode(req.Currency)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		currency = c
	}

	p, err := h.prefs.UpdatePreferences(r.Context(), id, req.Region, currency)
	if err != nil {
		if errors.Is(err, domain.ErrRegionNotFound) || errors.Is(err, domain.ErrCurrencyUnsupported) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		internalError(w, "UpdatePreferences", id, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

type DailyRewardResponse struct {
	Day         int                  `json:"day"`
	CanClaim    bool                 `json:"can_claim"`
	Reward      domain.DailyReward   `json:"reward"`
	NextClaimAt *time.Time           `json:"next_claim_at,omitempty"`
	Rewards     []domain.DailyReward `json:"rewards"`
}

// GetDailyReward godoc
// @Summary Daily reward streak
// @Tags Users
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} DailyRewardResponse
// @Router /users/{userID}/daily-reward [get]
func (h *Handler) GetDailyReward(w http.ResponseWriter, r *http.Request) {
	id := userID(r)
	status, err := h.prefs.DailyRewardStatus(r.Context(), id)
	if err != nil {
		internalError(w, "GetDailyReward", id, err)
		return
	}
	writeJSON(w, http.StatusOK, DailyRewardResponse{
		Day:         status.Day,
		CanClaim:    status.CanClaim,
		Reward:      status.Reward,
		NextClaimAt: status.NextClaimAt,
		Rewards:     prefs.DailyRewards(),
	})
}

// ClaimDailyReward godoc
// @Summary Claim today's reward
// @Tags Users
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} domain.DailyReward
// @Failure 409 {object} errorResponse "already claimed today"
// @Router /users/{userID}/daily-reward/claim [post]
func (h *Handler) ClaimDailyReward(w http.ResponseWriter, r *http.Request) {
	id := userID(r)
	reward, err := h.prefs.ClaimDailyReward(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyClaimed) {
			writeError(w, http.StatusConflict, domain.ErrAlreadyClaimed.Error())
			return
		}
		internalError(w, "ClaimDailyReward", id, err)
		return
	}
	writeJSON(w, http.StatusOK, reward)
}

type WheelResponse struct {
	CanSpin    bool                `json:"can_spin"`
	LastSpinAt *time.Time          `json:"last_spin_at,omitempty"`
	NextSpinAt *time.Time          `json:"next_spin_at,omitempty"`
	Prizes     []domain.WheelPrize `json:"prizes"`
}

type SpinResponse struct {
	Prize      domain.WheelPrize `json:"prize"`
	SpunAt     time.Time         `json:"spun_at"`
	NextSpinAt time.Time         `json:"next_spin_at"`
}

// GetWheel godoc
// @Summary Fortune wheel state
// @Tags Users
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} WheelResponse
// @Router /users/{userID}/wheel [get]
func (h *Handler) GetWheel(w http.ResponseWriter, r *http.Request) {
	id := userID(r)
	state, err := h.prefs.WheelState(r.Context(), id)
	if err != nil {
		internalError(w, "GetWheel", id, err)
		return
	}
	writeJSON(w, http.StatusOK, WheelResponse{
		CanSpin:    state.CanSpin,
		LastSpinAt: state.LastSpinAt,
		NextSpinAt: state.NextSpinAt,
		Prizes:     prefs.WheelPrizes(),
	})
}

// SpinWheel godoc
// @Summary Spin the fortune wheel
// @Tags Users
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} SpinResponse
// @Failure 429 {object} errorResponse "cooldown"
// @Router /users/{userID}/wheel/spin [post]
func (h *Handler) SpinWheel(w http.ResponseWriter, r *http.Request) {
	id := userID(r)
	spin, err := h.prefs.SpinWheel(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrWheelCooldown) {
			writeError(w, http.StatusTooManyRequests, err.Error())
			return
		}
		internalError(w, "SpinWheel", id, err)
		return
	}
	writeJSON(w, http.StatusOK, SpinResponse{Prize: spin.Prize, SpunAt: spin.SpunAt, NextSpinAt: spin.NextSpinAt})
}

type InstallPromptResponse struct {
	Visible     bool       `json:"visible"`
	DismissedAt *time.Time `json:"dismissed_at,omitempty"`
	HiddenUntil *time.Time `json:"hidden_until,omitempty"`
}

func newInstallPromptResponse(s domain.InstallPromptState) InstallPromptResponse {
	return InstallPromptResponse{Visible: s.Visible, DismissedAt: s.DismissedAt, HiddenUntil: s.HiddenUntil}
}

// GetInstallPrompt godoc
// @Summary Whether the install prompt may be shown
// @Tags Users
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} InstallPromptResponse
// @Router /users/{userID}/install-prompt [get]
func (h *Handler) GetInstallPrompt(w http.ResponseWriter, r *http.Request) {
	id := userID(r)
	state, err := h.prefs.InstallPrompt(r.Context(), id)
	if err != nil {
		internalError(w, "GetInstallPrompt", id, err)
		return
	}
	writeJSON(w, http.StatusOK, newInstallPromptResponse(state))
}

// DismissInstallPrompt godoc
// @Summary Hide the install prompt for the snooze period
// @Tags Users
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} InstallPromptResponse
// @Router /users/{userID}/install-prompt/dismiss [post]
func (h *Handler) DismissInstallPrompt(w http.ResponseWriter, r *http.Request) {
	id := userID(r)
	state, err := h.prefs.DismissInstallPrompt(r.Context(), id)
	if err != nil {
		internalError(w, "DismissInstallPrompt", id, err)
		return
	}
	writeJSON(w, http.StatusOK, newInstallPromptResponse(state))
}

// MarkInstalled godoc
// @Summary Record that the app was installed
// @Description Clears an earlier dismissal
// @Tags Users
// @Param userID path string true "User ID"
// @Success 204
// @Router /users/{userID}/install-prompt/installed [post]
func (h *Handler) MarkInstalled(w http.ResponseWriter, r *http.Request) {
	id := userID(r)
	if err := h.prefs.MarkInstalled(r.Context(), id); err != nil {
		internalError(w, "MarkInstalled", id, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type NotificationBannerResponse struct {
	Seen bool `json:"seen"`
}

// GetNotificationBanner godoc
// @Summary Whether the notification banner was already seen
// @Tags Users
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} NotificationBannerResponse
// @Router /users/{userID}/notification-banner [get]
func (h *Handler) GetNotificationBanner(w http.ResponseWriter, r *http.Request) {
	id := userID(r)
	seen, err := h.prefs.NotificationBannerSeen(r.Context(), id)
	if err != nil {
		internalError(w, "GetNotificationBanner", id, err)
		return
	}
	writeJSON(w, http.StatusOK, NotificationBannerResponse{Seen: seen})
}

// MarkNotificationBannerSeen godoc
// @Summary Mark the notification banner as seen
// @Tags Users
// @Param userID path string true "User ID"
// @Success 204
// @Router /users/{userID}/notification-banner/seen [post]
func (h *Handler) MarkNotificationBannerSeen(w http.ResponseWriter, r *http.Request) {
	id := userID(r)
	if err := h.prefs.MarkNotificationBannerSeen(r.Context(), id); err != nil {
		internalError(w, "MarkNotificationBannerSeen", id, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
