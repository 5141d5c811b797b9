package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/velora/storefront/internal/cart"
	"github.com/velora/storefront/internal/catalog"
)

type CatalogHandler struct {
	catalog *catalog.Service
	cart    *cart.Manager
	timeout time.Duration
}

func NewCatalogHandler(catalogSvc *catalog.Service, cartMgr *cart.Manager, timeout time.Duration) *CatalogHandler {
	return &CatalogHandler{
		catalog: catalogSvc,
		cart:    cartMgr,
		timeout: timeout,
	}
}

// List serves the browsable catalog. Query params mirror the shop page:
// category, q (name search), max (price cap), sort, page, per_page.
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	products, err := h.catalog.ListProducts(ctx, false)
	if err != nil {
		respondError(w, http.StatusServiceUnavailable, "catalog_unavailable", "Unable to load products. Please refresh the page.")
		return
	}

	filter := catalog.Filter{
		Category: r.URL.Query().Get("category"),
		Query:    r.URL.Query().Get("q"),
		SortBy:   r.URL.Query().Get("sort"),
	}
	if max, err := strconv.ParseFloat(r.URL.Query().Get("max"), 64); err == nil {
		filter.MaxPrice = max
	}
	if page, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil {
		filter.Page = page
	}
	if perPage, err := strconv.Atoi(r.URL.Query().Get("per_page")); err == nil {
		filter.PerPage = perPage
	}

	respondJSON(w, http.StatusOK, catalog.Apply(products, filter))
}

// Get serves a single product by id.
func (h *CatalogHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product id must be numeric")
		return
	}

	product, err := h.catalog.GetProduct(ctx, id)
	if errors.Is(err, catalog.ErrProductNotFound) {
		respondError(w, http.StatusNotFound, "not_found", "product not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusServiceUnavailable, "catalog_unavailable", "Unable to load products. Please refresh the page.")
		return
	}

	respondJSON(w, http.StatusOK, product)
}

// Refresh reloads the catalog from its source and reconciles the cart
// against the new stock levels. A failed refresh leaves cart state alone.
func (h *CatalogHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	products, err := h.catalog.ListProducts(ctx, true)
	if err != nil {
		respondError(w, http.StatusServiceUnavailable, "catalog_unavailable", "Unable to load products. Please refresh the page.")
		return
	}

	reconciled := h.cart.Reconcile(ctx, products)
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"products":   products,
		"reconciled": reconciled,
	})
}
