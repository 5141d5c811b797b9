package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionTo_HappyPath(t *testing.T) {
	assert.True(t, CanTransitionTo(CheckoutStatusIdle, CheckoutStatusValidating))
	assert.True(t, CanTransitionTo(CheckoutStatusValidating, CheckoutStatusPaying))
	assert.True(t, CanTransitionTo(CheckoutStatusPaying, CheckoutStatusSettled))
	assert.True(t, CanTransitionTo(CheckoutStatusSettled, CheckoutStatusIdle))
}

func TestCanTransitionTo_RejectionPath(t *testing.T) {
	assert.True(t, CanTransitionTo(CheckoutStatusValidating, CheckoutStatusRejected))
	assert.True(t, CanTransitionTo(CheckoutStatusRejected, CheckoutStatusIdle))
}

func TestCanTransitionTo_IllegalJumps(t *testing.T) {
	assert.False(t, CanTransitionTo(CheckoutStatusIdle, CheckoutStatusPaying))
	assert.False(t, CanTransitionTo(CheckoutStatusIdle, CheckoutStatusSettled))
	assert.False(t, CanTransitionTo(CheckoutStatusPaying, CheckoutStatusValidating))
	assert.False(t, CanTransitionTo(CheckoutStatusSettled, CheckoutStatusPaying))
}

func TestPaymentMethod_IsValid(t *testing.T) {
	assert.True(t, PaymentBankTransfer.IsValid())
	assert.True(t, PaymentEWallet.IsValid())
	assert.True(t, PaymentVirtualAccount.IsValid())
	assert.False(t, PaymentMethod("Cash On Delivery").IsValid())
	assert.False(t, PaymentMethod("").IsValid())
}

func TestCheckoutStatus_IsTerminal(t *testing.T) {
	assert.True(t, CheckoutStatusSettled.IsTerminal())
	assert.True(t, CheckoutStatusRejected.IsTerminal())
	assert.False(t, CheckoutStatusPaying.IsTerminal())
	assert.False(t, CheckoutStatusIdle.IsTerminal())
}
