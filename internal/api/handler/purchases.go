package handler

import (
	"net/http"
	"storefront/internal/domain"

	"github.com/sirupsen/logrus"
)

type SavePendingRequest struct {
	GameID        int64   `json:"game_id" validate:"required,gt=0"`
	GameName      string  `json:"game_name" validate:"required,max=200"`
	Price         float64 `json:"price" validate:"gte=0"`
	UserID        *int64  `json:"user_id,omitempty" validate:"omitempty,gt=0"`
	PaymentMethod string  `json:"payment_method,omitempty" validate:"omitempty,max=32"`
}

type ListPendingResponse struct {
	Count     int                      `json:"count"`
	Purchases []domain.PendingPurchase `json:"purchases"`
}

// SavePending godoc
// @Summary Queue a purchase for later submission
// @Tags Purchases
// @Accept json
// @Produce json
// @Param request body SavePendingRequest true "Purchase"
// @Success 202 {object} domain.PendingPurchase
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /purchases/pending [post]
func (h *Handler) SavePending(w http.ResponseWriter, r *http.Request) {
	var req SavePendingRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	p, err := h.purchases.Save(r.Context(), domain.PurchaseIntent{
		GameID:        req.GameID,
		GameName:      req.GameName,
		Price:         req.Price,
		UserID:        req.UserID,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "SavePending", "game_id": req.GameID}).Error("purchase wasn't queued")
		writeError(w, http.StatusInternalServerError, "failed to queue purchase")
		return
	}
	writeJSON(w, http.StatusAccepted, p)
}

// ListPending godoc
// @Summary List queued purchases
// @Tags Purchases
// @Produce json
// @Success 200 {object} ListPendingResponse
// @Router /purchases/pending [get]
func (h *Handler) ListPending(w http.ResponseWriter, r *http.Request) {
	list, err := h.purchases.List(r.Context())
	if err != nil {
		msg := "ups, couldn't list pending purchases this time"
		logrus.WithError(err).WithField("handler", "ListPending").Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}
	if list == nil {
		list = []domain.PendingPurchase{}
	}
	writeJSON(w, http.StatusOK, ListPendingResponse{Count: len(list), Purchases: list})
}

// SyncPending godoc
// @Summary Submit queued purchases now
// @Description Runs the sync; a request arriving while a sync is running gets that run's result
// @Tags Purchases
// @Produce json
// @Success 200 {object} domain.SyncResult
// @Failure 500 {object} errorResponse
// @Router /purchases/pending/sync [post]
func (h *Handler) SyncPending(w http.ResponseWriter, r *http.Request) {
	res, err := h.purchases.Sync(r.Context())
	if err != nil {
		msg := "ups, couldn't sync pending purchases this time"
		logrus.WithError(err).WithField("handler", "SyncPending").Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// ClearPending godoc
// @Summary Drop every queued purchase
// @Description Destructive, requires confirm=true
// @Tags Purchases
// @Param confirm query bool true "Must be true"
// @Success 204
// @Failure 400 {object} errorResponse
// @Router /purchases/pending [delete]
func (h *Handler) ClearPending(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("confirm") != "true" {
		writeError(w, http.StatusBadRequest, "confirm=true is required to clear pending purchases")
		return
	}
	if err := h.purchases.Clear(r.Context()); err != nil {
		msg := "ups, couldn't clear pending purchases this time"
		logrus.WithError(err).WithField("handler", "ClearPending").Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
