package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/velora/storefront/internal/checkout"
	"github.com/velora/storefront/internal/domain"
)

type CheckoutHandler struct {
	orchestrator *checkout.Orchestrator
}

func NewCheckoutHandler(orchestrator *checkout.Orchestrator) *CheckoutHandler {
	return &CheckoutHandler{orchestrator: orchestrator}
}

type CheckoutResponseDTO struct {
	Message string       `json:"message"`
	Order   domain.Order `json:"order"`
}

// Submit runs the full checkout flow. The handler deliberately does not set
// a request timeout shorter than the simulated payment latency.
func (h *CheckoutHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var input domain.CheckoutInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if input.PaymentMethod != "" && !input.PaymentMethod.IsValid() {
		respondError(w, http.StatusBadRequest, "invalid_payment_method", "unknown payment method")
		return
	}

	result, err := h.orchestrator.Submit(r.Context(), input)
	if err != nil {
		handleCheckoutError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, CheckoutResponseDTO{
		Message: result.Message,
		Order:   result.Order,
	})
}

func handleCheckoutError(w http.ResponseWriter, err error) {
	var validationErr *checkout.ValidationError
	switch {
	case errors.As(err, &validationErr):
		respondError(w, http.StatusUnprocessableEntity, "validation_failed", validationErr.Cause)
	case errors.Is(err, checkout.ErrPaymentInProgress):
		respondError(w, http.StatusConflict, "payment_in_progress", "A payment is already being processed.")
	default:
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
