package cart

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"

	"github.com/velora/storefront/internal/domain"
	"github.com/velora/storefront/internal/kvstore"
)

// StorageKey is the persistent store entry holding the serialized cart.
const StorageKey = "velora-cart-items"

var (
	ErrOutOfStock        = errors.New("this product is currently out of stock")
	ErrStockLimitReached = errors.New("you have reached the available stock limit in your cart")
)

// Manager owns the active cart: at most one line per product id, every line
// holding 1 <= qty <= the stock seen at the last reconciliation. Each
// successful mutation commits the full snapshot to the store before
// returning; commit failures are logged and swallowed, in-memory state stays
// authoritative for the session.
type Manager struct {
	mu    sync.Mutex
	store kvstore.Store
	lines []domain.CartLine
}

// NewManager restores the persisted cart from the store. A missing or
// unparsable entry yields an empty cart.
func NewManager(ctx context.Context, store kvstore.Store) *Manager {
	m := &Manager{store: store}

	raw, err := store.Get(ctx, StorageKey)
	if err != nil {
		if !errors.Is(err, kvstore.ErrNotFound) {
			log.Printf("cart: load failed, starting empty: %v", err)
		}
		return m
	}

	var lines []domain.CartLine
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		log.Printf("cart: unparsable persisted cart, starting empty: %v", err)
		return m
	}
	m.lines = lines
	return m
}

// Add puts one unit of product into the cart. Returns ErrOutOfStock when the
// product is absent or has no stock, ErrStockLimitReached when the existing
// line already holds the full stock; state is unchanged in both cases.
func (m *Manager) Add(ctx context.Context, product *domain.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if product == nil || product.Stock <= 0 {
		return ErrOutOfStock
	}

	for i := range m.lines {
		if m.lines[i].ID != product.ID {
			continue
		}
		if m.lines[i].Qty >= product.Stock {
			return ErrStockLimitReached
		}
		m.lines[i].Qty++
		m.commit(ctx)
		return nil
	}

	m.lines = append(m.lines, domain.CartLine{Product: *product, Qty: 1})
	m.commit(ctx)
	return nil
}

// Increase bumps a line's quantity by one, capped at the snapshot stock.
// Unknown id or a line already at its cap is a no-op.
func (m *Manager) Increase(ctx context.Context, id int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.lines {
		if m.lines[i].ID != id || m.lines[i].Qty >= m.lines[i].Stock {
			continue
		}
		m.lines[i].Qty++
		m.commit(ctx)
		return
	}
}

// Decrease lowers a line's quantity by one; a line that would drop below one
// is removed entirely. Unknown id is a no-op.
func (m *Manager) Decrease(ctx context.Context, id int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.lines {
		if m.lines[i].ID != id {
			continue
		}
		if m.lines[i].Qty-1 <= 0 {
			m.lines = append(m.lines[:i], m.lines[i+1:]...)
		} else {
			m.lines[i].Qty--
		}
		m.commit(ctx)
		return
	}
}

// Remove drops a line unconditionally. Unknown id is a no-op.
func (m *Manager) Remove(ctx context.Context, id int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.lines {
		if m.lines[i].ID != id {
			continue
		}
		m.lines = append(m.lines[:i], m.lines[i+1:]...)
		m.commit(ctx)
		return
	}
}

// Reconcile re-syncs the cart against a refreshed catalog: lines whose
// product disappeared or ran out of stock are dropped, quantities are
// clamped to current stock, and snapshot fields are refreshed. State is
// persisted only when something actually changed. Reports whether the cart
// changed.
func (m *Manager) Reconcile(ctx context.Context, catalog []domain.Product) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	byID := make(map[int64]domain.Product, len(catalog))
	for _, p := range catalog {
		byID[p.ID] = p
	}

	changed := false
	synced := make([]domain.CartLine, 0, len(m.lines))
	for _, line := range m.lines {
		latest, ok := byID[line.ID]
		if !ok || latest.Stock <= 0 {
			changed = true
			continue
		}

		qty := line.Qty
		if qty > latest.Stock {
			qty = latest.Stock
			changed = true
		}
		if latest != line.Product {
			changed = true
		}
		synced = append(synced, domain.CartLine{Product: latest, Qty: qty})
	}

	if !changed {
		return false
	}
	m.lines = synced
	m.commit(ctx)
	return true
}

// Count returns the total quantity across all lines.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	sum := 0
	for _, line := range m.lines {
		sum += line.Qty
	}
	return sum
}

// Subtotal returns the sum of price times quantity across all lines.
func (m *Manager) Subtotal() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	var sum float64
	for _, line := range m.lines {
		sum += line.Subtotal()
	}
	return sum
}

// Lines returns a copy of the current cart lines.
func (m *Manager) Lines() []domain.CartLine {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]domain.CartLine, len(m.lines))
	copy(out, m.lines)
	return out
}

// Clear empties the cart and removes the persisted entry.
func (m *Manager) Clear(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lines = nil
	if err := m.store.Remove(ctx, StorageKey); err != nil {
		log.Printf("cart: persist clear failed: %v", err)
	}
}

// commit mirrors the full cart to the store. Must be called with the lock
// held. Storage failures do not fail the mutation.
func (m *Manager) commit(ctx context.Context) {
	data, err := json.Marshal(m.lines)
	if err != nil {
		log.Printf("cart: marshal failed: %v", err)
		return
	}
	if err := m.store.Set(ctx, StorageKey, string(data)); err != nil {
		log.Printf("cart: persist failed: %v", err)
	}
}
