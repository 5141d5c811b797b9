package payment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCharge_Succeeds(t *testing.T) {
	gateway := NewSimulatedGateway(0)

	receipt, err := gateway.Charge(context.Background(), 42.5)
	require.NoError(t, err)
	assert.Contains(t, receipt.TransactionID, "TXN-")
	assert.Equal(t, 42.5, receipt.Amount)
	assert.False(t, receipt.ChargedAt.IsZero())
}

func TestCharge_WaitsLatency(t *testing.T) {
	gateway := NewSimulatedGateway(50 * time.Millisecond)

	start := time.Now()
	_, err := gateway.Charge(context.Background(), 10)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
}

func TestCharge_ContextCanceled(t *testing.T) {
	gateway := NewSimulatedGateway(time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	receipt, err := gateway.Charge(ctx, 10)
	assert.Nil(t, receipt)
	assert.ErrorIs(t, err, context.Canceled)
}
