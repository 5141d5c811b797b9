package catalog

import (
	"context"
	"time"

	"github.com/velora/storefront/internal/domain"
)

// StaticSource serves a fixed product list from memory. An optional delay
// stands in for transport latency so the rest of the stack exercises the
// same async path as a real source.
type StaticSource struct {
	products []domain.Product
	delay    time.Duration
}

func NewStaticSource(products []domain.Product, delay time.Duration) *StaticSource {
	return &StaticSource{products: products, delay: delay}
}

func (s *StaticSource) ListProducts(ctx context.Context) ([]domain.Product, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out, nil
}

func (s *StaticSource) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	for _, p := range s.products {
		if p.ID == id {
			found := p
			return &found, nil
		}
	}
	return nil, ErrProductNotFound
}

func (s *StaticSource) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return nil
	}
	timer := time.NewTimer(s.delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
