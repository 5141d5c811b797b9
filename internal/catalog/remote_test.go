package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velora/storefront/internal/domain"
)

func newCatalogServer(t *testing.T, products []domain.Product) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/products", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(products)
	})
	mux.HandleFunc("/products/", func(w http.ResponseWriter, r *http.Request) {
		for _, p := range products {
			if r.URL.Path == "/products/1" && p.ID == 1 {
				w.Header().Set("Content-Type", "application/json")
				_ = json.NewEncoder(w).Encode(p)
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestRemoteListProducts_Success(t *testing.T) {
	srv := newCatalogServer(t, DefaultProducts())
	src := NewRemoteSource(srv.URL, 5*time.Second)

	products, err := src.ListProducts(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, 12)
	assert.Equal(t, "MUP-GLD-001", products[0].SKU)
}

func TestRemoteListProducts_ServerDown(t *testing.T) {
	srv := newCatalogServer(t, nil)
	url := srv.URL
	srv.Close()

	src := NewRemoteSource(url, time.Second)
	products, err := src.ListProducts(context.Background())
	assert.Nil(t, products)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestRemoteListProducts_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	src := NewRemoteSource(srv.URL, time.Second)
	_, err := src.ListProducts(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestRemoteListProducts_BreakerOpensAfterFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	src := NewRemoteSource(srv.URL, time.Second)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := src.ListProducts(ctx)
		assert.ErrorIs(t, err, ErrUnavailable)
	}
}

func TestRemoteGetProduct_Found(t *testing.T) {
	srv := newCatalogServer(t, DefaultProducts())
	src := NewRemoteSource(srv.URL, 5*time.Second)

	product, err := src.GetProduct(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), product.ID)
}

func TestRemoteGetProduct_NotFound(t *testing.T) {
	srv := newCatalogServer(t, DefaultProducts())
	src := NewRemoteSource(srv.URL, 5*time.Second)

	_, err := src.GetProduct(context.Background(), 999)
	assert.ErrorIs(t, err, ErrProductNotFound)
}
