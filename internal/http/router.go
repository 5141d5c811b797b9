package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// NewRouter assembles the storefront API. The request timeout must exceed
// the simulated payment latency or checkout submissions get cut off.
func NewRouter(catalogH *CatalogHandler, cartH *CartHandler, checkoutH *CheckoutHandler, ordersH *OrdersHandler, requestTimeout time.Duration) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(middleware.Compress(5))
	r.Use(otelhttp.NewMiddleware("storefront"))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", catalogH.List)
			r.Post("/refresh", catalogH.Refresh)
			r.Get("/{id}", catalogH.Get)
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartH.Get)
			r.Delete("/", cartH.Clear)
			r.Post("/items", cartH.AddItem)
			r.Post("/items/{id}/increase", cartH.IncreaseQty)
			r.Post("/items/{id}/decrease", cartH.DecreaseQty)
			r.Delete("/items/{id}", cartH.RemoveItem)
		})

		r.Post("/checkout", checkoutH.Submit)
		r.Get("/orders", ordersH.List)
	})

	return r
}
