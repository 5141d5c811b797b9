package events

import (
	"encoding/json"
	"time"

	"github.com/velora/storefront/internal/domain"
)

const (
	EventOrderSettled = "OrderSettled"

	TopicOrderSettled = "storefront.order.settled"
)

// Envelope is the versioned wrapper around every published event.
type Envelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	EventVersion  int             `json:"event_version"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Producer      string          `json:"producer"`
	CorrelationID string          `json:"correlation_id,omitempty"`
	Payload       json.RawMessage `json:"payload"`
}

type SettledItem struct {
	ProductID int64   `json:"product_id"`
	SKU       string  `json:"sku"`
	Qty       int     `json:"qty"`
	Price     float64 `json:"price"`
}

type OrderSettledPayload struct {
	OrderID       string        `json:"order_id"`
	CustomerName  string        `json:"customer_name"`
	PaymentMethod string        `json:"payment_method"`
	Total         float64       `json:"total"`
	Items         []SettledItem `json:"items"`
	SettledAt     time.Time     `json:"settled_at"`
}

// NewOrderSettledPayload flattens an order into its event payload.
func NewOrderSettledPayload(order domain.Order) OrderSettledPayload {
	items := make([]SettledItem, 0, len(order.Items))
	for _, line := range order.Items {
		items = append(items, SettledItem{
			ProductID: line.ID,
			SKU:       line.SKU,
			Qty:       line.Qty,
			Price:     line.Price,
		})
	}
	return OrderSettledPayload{
		OrderID:       order.ID,
		CustomerName:  order.CustomerName,
		PaymentMethod: string(order.PaymentMethod),
		Total:         order.Total,
		Items:         items,
		SettledAt:     order.CreatedAt,
	}
}

func MustMarshal(v any) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}
