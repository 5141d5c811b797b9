package orders

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"

	"github.com/velora/storefront/internal/domain"
	"github.com/velora/storefront/internal/kvstore"
)

// StorageKey is the persistent store entry holding the serialized order history.
const StorageKey = "velora-order-history"

// Ledger is the append-only order history, newest first. Orders are recorded
// at settlement and never updated or deleted; the full sequence is mirrored
// to the store on every change.
type Ledger struct {
	mu     sync.Mutex
	store  kvstore.Store
	orders []domain.Order
}

// NewLedger restores persisted order history from the store. A missing or
// unparsable entry yields an empty ledger.
func NewLedger(ctx context.Context, store kvstore.Store) *Ledger {
	l := &Ledger{store: store}

	raw, err := store.Get(ctx, StorageKey)
	if err != nil {
		if !errors.Is(err, kvstore.ErrNotFound) {
			log.Printf("orders: load failed, starting empty: %v", err)
		}
		return l
	}

	var orders []domain.Order
	if err := json.Unmarshal([]byte(raw), &orders); err != nil {
		log.Printf("orders: unparsable persisted history, starting empty: %v", err)
		return l
	}
	l.orders = orders
	return l
}

// Record prepends the order and persists the full sequence.
func (l *Ledger) Record(ctx context.Context, order domain.Order) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.orders = append([]domain.Order{order}, l.orders...)

	data, err := json.Marshal(l.orders)
	if err != nil {
		log.Printf("orders: marshal failed: %v", err)
		return
	}
	if err := l.store.Set(ctx, StorageKey, string(data)); err != nil {
		log.Printf("orders: persist failed: %v", err)
	}
}

// List returns a copy of the history, newest first.
func (l *Ledger) List() []domain.Order {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]domain.Order, len(l.orders))
	copy(out, l.orders)
	return out
}

// Len returns the number of recorded orders.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.orders)
}
