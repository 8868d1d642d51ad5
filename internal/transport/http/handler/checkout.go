package handler

import (
	"encoding/json"
	"net/http"

	"github.com/HarmanGIT10/Ironic-gym-backend/internal/application/checkout"
	stripeinfra "github.com/HarmanGIT10/Ironic-gym-backend/internal/infrastructure/stripe"
)

// CheckoutHandler creates hosted Stripe checkout sessions.
type CheckoutHandler struct {
	svc checkout.Service
}

func NewCheckoutHandler(svc checkout.Service) *CheckoutHandler {
	return &CheckoutHandler{svc: svc}
}

type checkoutRequest struct {
	Products []struct {
		Name         string `json:"name"`
		CartImageURL string `json:"cart_image_url"`
		Price        int64  `json:"price"` // cents
		Quantity     int64  `json:"quantity"`
	} `json:"products"`
}

func (h *CheckoutHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	lines := make([]stripeinfra.CartLine, 0, len(req.Products))
	for _, p := range req.Products {
		lines = append(lines, stripeinfra.CartLine{
			Name:     p.Name,
			Image:    p.CartImageURL,
			Price:    p.Price,
			Quantity: p.Quantity,
		})
	}
	url, err := h.svc.CreateSession(lines)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, CheckoutEnvelope{URL: url})
}
