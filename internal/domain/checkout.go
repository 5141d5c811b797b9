package domain

// PaymentMethod is one of the payment options offered at checkout.
type PaymentMethod string

const (
	PaymentBankTransfer   PaymentMethod = "Bank Transfer"
	PaymentEWallet        PaymentMethod = "E-Wallet"
	PaymentVirtualAccount PaymentMethod = "Virtual Account"
)

// IsValid reports whether m is one of the offered payment methods.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentBankTransfer, PaymentEWallet, PaymentVirtualAccount:
		return true
	}
	return false
}

// CheckoutInput carries the customer details submitted with a checkout.
type CheckoutInput struct {
	CustomerName  string        `json:"customerName"`
	Email         string        `json:"email"`
	Address       string        `json:"address"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
}

type CheckoutStatus string

const (
	CheckoutStatusIdle       CheckoutStatus = "IDLE"
	CheckoutStatusValidating CheckoutStatus = "VALIDATING"
	CheckoutStatusPaying     CheckoutStatus = "PAYING"
	CheckoutStatusSettled    CheckoutStatus = "SETTLED"
	CheckoutStatusRejected   CheckoutStatus = "REJECTED"
)

// validTransitions maps each status to the statuses it may move to.
var validTransitions = map[CheckoutStatus][]CheckoutStatus{
	CheckoutStatusIdle:       {CheckoutStatusValidating},
	CheckoutStatusValidating: {CheckoutStatusPaying, CheckoutStatusRejected},
	CheckoutStatusPaying:     {CheckoutStatusSettled},
	CheckoutStatusRejected:   {CheckoutStatusIdle},
	CheckoutStatusSettled:    {CheckoutStatusIdle},
}

// CanTransitionTo reports whether moving from one checkout status to another
// is a legal transition.
func CanTransitionTo(from, to CheckoutStatus) bool {
	for _, next := range validTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the status ends a checkout attempt.
func (s CheckoutStatus) IsTerminal() bool {
	return s == CheckoutStatusSettled || s == CheckoutStatusRejected
}

// String representation (for logging)
func (s CheckoutStatus) String() string {
	return string(s)
}
