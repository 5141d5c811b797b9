package payment

import (
	"context"
	"fmt"
	"time"
)

// Gateway charges the customer at settlement. The storefront ships with a
// simulated gateway only; a real integration would plug in here and add a
// declined path.
type Gateway interface {
	Charge(ctx context.Context, amount float64) (*Receipt, error)
}

// Receipt confirms a completed charge.
type Receipt struct {
	TransactionID string
	Amount        float64
	ChargedAt     time.Time
}

// SimulatedGateway stands in for a payment provider: it waits a fixed
// latency and always succeeds. Context cancellation aborts the wait.
type SimulatedGateway struct {
	Latency time.Duration
}

func NewSimulatedGateway(latency time.Duration) *SimulatedGateway {
	return &SimulatedGateway{Latency: latency}
}

func (g *SimulatedGateway) Charge(ctx context.Context, amount float64) (*Receipt, error) {
	if g.Latency > 0 {
		timer := time.NewTimer(g.Latency)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	now := time.Now().UTC()
	return &Receipt{
		TransactionID: fmt.Sprintf("TXN-%d", now.UnixNano()),
		Amount:        amount,
		ChargedAt:     now,
	}, nil
}
