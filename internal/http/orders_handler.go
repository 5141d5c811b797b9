package http

import (
	"net/http"

	"github.com/velora/storefront/internal/domain"
	"github.com/velora/storefront/internal/orders"
)

type OrdersHandler struct {
	ledger *orders.Ledger
}

func NewOrdersHandler(ledger *orders.Ledger) *OrdersHandler {
	return &OrdersHandler{ledger: ledger}
}

type OrdersResponse struct {
	Orders []domain.Order `json:"orders"`
}

// List returns the order history, newest first.
func (h *OrdersHandler) List(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, OrdersResponse{Orders: h.ledger.List()})
}
