package catalog

import (
	"context"
	"errors"

	"github.com/velora/storefront/internal/domain"
)

// Source supplies the ordered product catalog. Implementations: StaticSource
// (embedded fixture), SQLiteSource (embedded database) and RemoteSource
// (HTTP endpoint). The source is selected at construction, not by a runtime
// conditional.
type Source interface {
	// ListProducts returns the full catalog in stable order.
	ListProducts(ctx context.Context) ([]domain.Product, error)

	// GetProduct returns a single product or ErrProductNotFound.
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
}

var (
	ErrProductNotFound = errors.New("product not found")

	// ErrUnavailable means the catalog could not be loaded. Cart and order
	// state must not be mutated in response to it.
	ErrUnavailable = errors.New("unable to load products")
)
