package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/velora/storefront/internal/cart"
	"github.com/velora/storefront/internal/domain"
	"github.com/velora/storefront/internal/orders"
	"github.com/velora/storefront/internal/payment"
)

var (
	// ErrPaymentInProgress rejects a submit while another one is paying.
	ErrPaymentInProgress = errors.New("a payment is already being processed")

	ErrIllegalTransition = errors.New("illegal transition of checkout status")
)

const (
	msgIncompleteDetails = "Please complete your checkout details first."
	msgEmptyCart         = "Your cart is empty. Add products before checkout."
)

// ValidationError blocks a checkout submission with a user-facing cause.
type ValidationError struct {
	Cause string
}

func (e *ValidationError) Error() string {
	return e.Cause
}

// Publisher emits an event after an order settles. A nil publisher disables
// publishing.
type Publisher interface {
	PublishOrderSettled(order domain.Order)
}

// Result is the outcome of a settled checkout.
type Result struct {
	Order   domain.Order
	Receipt *payment.Receipt
	Message string
}

// Orchestrator drives a checkout through IDLE, VALIDATING, PAYING and
// SETTLED (or REJECTED back to IDLE). Exactly one submission may be paying
// at a time; concurrent submissions are rejected, not queued.
type Orchestrator struct {
	cart      *cart.Manager
	ledger    *orders.Ledger
	gateway   payment.Gateway
	publisher Publisher

	mu       sync.Mutex
	status   domain.CheckoutStatus
	isPaying bool
}

func NewOrchestrator(cartMgr *cart.Manager, ledger *orders.Ledger, gateway payment.Gateway, publisher Publisher) *Orchestrator {
	return &Orchestrator{
		cart:      cartMgr,
		ledger:    ledger,
		gateway:   gateway,
		publisher: publisher,
		status:    domain.CheckoutStatusIdle,
	}
}

// Status returns the current checkout status.
func (o *Orchestrator) Status() domain.CheckoutStatus {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.status
}

// IsPaying reports whether a payment is currently in flight.
func (o *Orchestrator) IsPaying() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.isPaying
}

// Submit validates the checkout input against the live cart, charges the
// simulated gateway and, on success, atomically records the order, clears
// the cart and reports a success message. Validation failure and context
// cancellation leave cart and ledger untouched.
func (o *Orchestrator) Submit(ctx context.Context, input domain.CheckoutInput) (*Result, error) {
	lines, total, err := o.beginPaying(input)
	if err != nil {
		return nil, err
	}

	receipt, err := o.gateway.Charge(ctx, total)
	if err != nil {
		// The caller went away mid-payment; drop the attempt, keep the cart.
		o.abandon()
		return nil, err
	}

	return o.settle(ctx, input, lines, total, receipt)
}

// beginPaying runs the VALIDATING step and moves to PAYING, capturing a
// frozen copy of the cart. The total is computed from that frozen copy so
// it always matches the captured items, even if the cart mutates while the
// payment is in flight.
func (o *Orchestrator) beginPaying(input domain.CheckoutInput) ([]domain.CartLine, float64, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.isPaying {
		return nil, 0, ErrPaymentInProgress
	}
	if err := o.advance(domain.CheckoutStatusValidating); err != nil {
		return nil, 0, err
	}

	if cause := validate(input, o.cart.Count()); cause != "" {
		_ = o.advance(domain.CheckoutStatusRejected)
		_ = o.advance(domain.CheckoutStatusIdle)
		return nil, 0, &ValidationError{Cause: cause}
	}

	if err := o.advance(domain.CheckoutStatusPaying); err != nil {
		return nil, 0, err
	}
	o.isPaying = true

	lines := o.cart.Lines()
	var total float64
	for _, line := range lines {
		total += line.Subtotal()
	}
	return lines, total, nil
}

func validate(input domain.CheckoutInput, cartCount int) string {
	if strings.TrimSpace(input.CustomerName) == "" ||
		strings.TrimSpace(input.Email) == "" ||
		strings.TrimSpace(input.Address) == "" {
		return msgIncompleteDetails
	}
	if cartCount == 0 {
		return msgEmptyCart
	}
	return ""
}

// settle builds the immutable order, records it, clears the cart and
// publishes the settlement event. There is no failure path here: once the
// charge succeeded the order always lands in the ledger.
func (o *Orchestrator) settle(ctx context.Context, input domain.CheckoutInput, lines []domain.CartLine, total float64, receipt *payment.Receipt) (*Result, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.advance(domain.CheckoutStatusSettled); err != nil {
		return nil, err
	}

	method := input.PaymentMethod
	if method == "" {
		method = domain.PaymentBankTransfer
	}

	order := domain.Order{
		ID:            uuid.NewString(),
		CustomerName:  input.CustomerName,
		Email:         input.Email,
		Address:       input.Address,
		PaymentMethod: method,
		Items:         lines,
		Total:         total,
		CreatedAt:     time.Now().UTC(),
	}

	// Persistence must outlive the request that triggered it.
	persistCtx := context.WithoutCancel(ctx)
	o.ledger.Record(persistCtx, order)
	o.cart.Clear(persistCtx)

	if o.publisher != nil {
		o.publisher.PublishOrderSettled(order)
	}

	o.isPaying = false
	_ = o.advance(domain.CheckoutStatusIdle)

	return &Result{
		Order:   order,
		Receipt: receipt,
		Message: fmt.Sprintf("Payment successful for %s via %s.", order.CustomerName, order.PaymentMethod),
	}, nil
}

// abandon resets to IDLE after a payment that never completed.
func (o *Orchestrator) abandon() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.isPaying = false
	o.status = domain.CheckoutStatusIdle
}

// advance moves the state machine or fails with ErrIllegalTransition.
// Must be called with the lock held.
func (o *Orchestrator) advance(to domain.CheckoutStatus) error {
	if !domain.CanTransitionTo(o.status, to) {
		return ErrIllegalTransition
	}
	o.status = to
	return nil
}
