package catalog

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/velora/storefront/internal/domain"
)

// Service caches the catalog in front of a Source. Reads serve the cache;
// a refresh replaces it wholesale. A failed refresh leaves the previous
// cache intact so cart reconciliation never runs against corrupt data.
type Service struct {
	source Source

	mu     sync.RWMutex
	cache  []domain.Product
	loaded bool

	sfg singleflight.Group // Prevents concurrent refreshes hitting the source
}

func NewService(source Source) *Service {
	return &Service{source: source}
}

// ListProducts returns the cached catalog, refreshing it from the source
// when forceRefresh is set or nothing has been loaded yet.
func (s *Service) ListProducts(ctx context.Context, forceRefresh bool) ([]domain.Product, error) {
	s.mu.RLock()
	loaded := s.loaded
	s.mu.RUnlock()

	if loaded && !forceRefresh {
		return s.cached(), nil
	}

	_, err, _ := s.sfg.Do("catalog-refresh", func() (interface{}, error) {
		products, errList := s.source.ListProducts(ctx)
		if errList != nil {
			return nil, errList
		}

		s.mu.Lock()
		s.cache = products
		s.loaded = true
		s.mu.Unlock()
		return nil, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	return s.cached(), nil
}

// GetProduct serves from the cache when loaded, otherwise asks the source.
func (s *Service) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	s.mu.RLock()
	if s.loaded {
		for _, p := range s.cache {
			if p.ID == id {
				found := p
				s.mu.RUnlock()
				return &found, nil
			}
		}
		s.mu.RUnlock()
		return nil, ErrProductNotFound
	}
	s.mu.RUnlock()

	return s.source.GetProduct(ctx, id)
}

// ClearCache drops the cached catalog; the next read hits the source again.
func (s *Service) ClearCache() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache = nil
	s.loaded = false
}

func (s *Service) cached() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Product, len(s.cache))
	copy(out, s.cache)
	return out
}
