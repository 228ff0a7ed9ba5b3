package handler

import (
	"errors"
	"net/http"
	"storefront/internal/domain"
	"storefront/internal/pricing"
	"strconv"

	"github.com/go-chi/chi/v5"
)

type RegionResponse struct {
	Code            string  `json:"code" example:"TR"`
	DisplayName     string  `json:"display_name" example:"Turkey"`
	Flag            string  `json:"flag"`
	PriceMultiplier float64 `json:"price_multiplier" example:"0.35"`
	Currency        string  `json:"currency" example:"TRY"`
}

// GetRegions godoc
// @Summary List pricing regions
// @Tags Pricing
// @Produce json
// @Success 200 {array} RegionResponse
// @Router /regions [get]
func (h *Handler) GetRegions(w http.ResponseWriter, _ *http.Request) {
	regions := pricing.Regions()
	out := make([]RegionResponse, 0, len(regions))
	for _, r := range regions {
		out = append(out, RegionResponse{
			Code:            r.Code,
			DisplayName:     r.DisplayName,
			Flag:            r.Flag,
			PriceMultiplier: r.PriceMultiplier,
			Currency:        string(r.Currency),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func parseBasePrice(r *http.Request) (float64, error) {
	v, err := strconv.ParseFloat(r.URL.Query().Get("base_price"), 64)
	if err != nil || v < 0 {
		return 0, errors.New("base_price must be a non-negative number")
	}
	return v, nil
}

// GetRegionPrice godoc
// @Summary Price of a catalog item in one region
// @Description Applies the regional multiplier and converts into the region currency. Falls back to the base currency when no rate is usable
// @Tags Pricing
// @Produce json
// @Param region path string true "Region code"
// @Param base_price query number true "Base price"
// @Success 200 {object} pricing.Quote
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /prices/{region} [get]
func (h *Handler) GetRegionPrice(w http.ResponseWriter, r *http.Request) {
	basePrice, err := parseBasePrice(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	region, err := pricing.RegionByCode(chi.URLParam(r, "region"))
	if err != nil {
		if errors.Is(err, domain.ErrRegionNotFound) {
			writeError(w, http.StatusNotFound, "region not found")
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, h.pricing.Quote(r.Context(), basePrice, region))
}

// GetAllPrices godoc
// @Summary Price of a catalog item in every region
// @Tags Pricing
// @Produce json
// @Param base_price query number true "Base price"
// @Success 200 {array} pricing.Quote
// @Failure 400 {object} errorResponse
// @Router /prices [get]
func (h *Handler) GetAllPrices(w http.ResponseWriter, r *http.Request) {
	basePrice, err := parseBasePrice(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, h.pricing.QuoteAll(r.Context(), basePrice))
}
