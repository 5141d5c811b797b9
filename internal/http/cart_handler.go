package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/velora/storefront/internal/cart"
	"github.com/velora/storefront/internal/catalog"
	"github.com/velora/storefront/internal/domain"
)

type CartHandler struct {
	catalog *catalog.Service
	cart    *cart.Manager
	timeout time.Duration
}

func NewCartHandler(catalogSvc *catalog.Service, cartMgr *cart.Manager, timeout time.Duration) *CartHandler {
	return &CartHandler{
		catalog: catalogSvc,
		cart:    cartMgr,
		timeout: timeout,
	}
}

type AddItemRequestDTO struct {
	ProductID int64 `json:"product_id"`
}

type CartResponse struct {
	Items    []domain.CartLine `json:"items"`
	Count    int               `json:"count"`
	Subtotal float64           `json:"subtotal"`
}

func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.cartResponse())
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.ProductID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id must be positive")
		return
	}

	product, err := h.catalog.GetProduct(ctx, req.ProductID)
	if err != nil && !errors.Is(err, catalog.ErrProductNotFound) {
		respondError(w, http.StatusServiceUnavailable, "catalog_unavailable", "Unable to load products. Please refresh the page.")
		return
	}

	// A vanished product falls through as nil and surfaces as out of stock.
	if err := h.cart.Add(ctx, product); err != nil {
		handleCartError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, h.cartResponse())
}

func (h *CartHandler) IncreaseQty(w http.ResponseWriter, r *http.Request) {
	h.adjust(w, r, h.cart.Increase)
}

func (h *CartHandler) DecreaseQty(w http.ResponseWriter, r *http.Request) {
	h.adjust(w, r, h.cart.Decrease)
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	h.adjust(w, r, h.cart.Remove)
}

func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	h.cart.Clear(ctx)
	respondJSON(w, http.StatusOK, h.cartResponse())
}

func (h *CartHandler) adjust(w http.ResponseWriter, r *http.Request, op func(context.Context, int64)) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product id must be numeric")
		return
	}

	op(ctx, id)
	respondJSON(w, http.StatusOK, h.cartResponse())
}

func (h *CartHandler) cartResponse() CartResponse {
	return CartResponse{
		Items:    h.cart.Lines(),
		Count:    h.cart.Count(),
		Subtotal: h.cart.Subtotal(),
	}
}

func handleCartError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, cart.ErrOutOfStock):
		respondError(w, http.StatusConflict, "out_of_stock", "This product is currently out of stock.")
	case errors.Is(err, cart.ErrStockLimitReached):
		respondError(w, http.StatusConflict, "stock_limit_reached", "You have reached the available stock limit in your cart.")
	default:
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
