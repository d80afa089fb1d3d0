package order

import (
	"errors"
	"strings"
	"time"

	"resto/internal/core/domain/model/kernel"
	"resto/internal/pkg/errs"
)

// Domain errors for payment settlement.
var (
	// ErrOrderAlreadyPaid is returned when settling an order whose payment
	// is already marked paid. Payment status is monotonic and never reverts.
	ErrOrderAlreadyPaid = errors.New("order is already paid")

	// ErrInsufficientCash is returned when the received cash does not cover
	// the order total. No settlement fields are recorded on rejection.
	ErrInsufficientCash = errors.New("received cash does not cover the order total")

	// ErrReferenceIsRequired is returned when a transfer settlement carries
	// no operation reference.
	ErrReferenceIsRequired = errs.NewValueIsRequiredError("transfer reference")
)

// Method identifies how an order is paid.
type Method int

const (
	// MethodUnknown represents an undeclared payment method. Orders start
	// here until settlement chooses the actual method.
	MethodUnknown Method = iota

	// MethodCash is settled against received bills with change computed.
	MethodCash

	// MethodCard is settled unconditionally; no gateway call is modeled.
	MethodCard

	// MethodTransfer is settled unconditionally against an operation reference.
	MethodTransfer
)

// String returns the human-readable name of the payment method.
func (m Method) String() string {
	switch m {
	case MethodCash:
		return "Cash"
	case MethodCard:
		return "Card"
	case MethodTransfer:
		return "Transfer"
	default:
		return "Unknown"
	}
}

// MethodFromString parses an operator-facing method name. Matching is
// case-insensitive; an unrecognized name reports a validation error.
func MethodFromString(raw string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "cash":
		return MethodCash, nil
	case "card":
		return MethodCard, nil
	case "transfer":
		return MethodTransfer, nil
	default:
		return MethodUnknown, errs.NewValueIsInvalidError("payment method")
	}
}

// PaymentStatus tracks settlement progress. Transitions are monotonic:
// Pending -> Paid, never back.
type PaymentStatus int

const (
	// PaymentStatusUnknown represents an invalid payment status.
	PaymentStatusUnknown PaymentStatus = iota

	// PaymentPending means the account has not been settled.
	PaymentPending

	// PaymentPaid means settlement completed and its fields are recorded.
	PaymentPaid
)

// String returns the human-readable name of the payment status.
func (s PaymentStatus) String() string {
	switch s {
	case PaymentPending:
		return "Pending"
	case PaymentPaid:
		return "Paid"
	default:
		return "Unknown"
	}
}

// Payment holds the settlement state of an order: the chosen method, the
// monotonic pending/paid status and the method-specific fields recorded
// at settlement time (cash received and change, or transfer reference).
//
// Payment is owned by the Order aggregate; all transitions go through the
// aggregate's Settle methods.
type Payment struct {
	method       Method
	status       PaymentStatus
	cashReceived *kernel.Money
	change       *kernel.Money
	reference    string
	paidAt       *time.Time
}

// newPendingPayment is the initial payment state of a fresh order.
func newPendingPayment() Payment {
	return Payment{
		method: MethodUnknown,
		status: PaymentPending,
	}
}

// RestorePayment reconstructs a payment record from persistence.
func RestorePayment(
	method Method,
	status PaymentStatus,
	cashReceived *kernel.Money,
	change *kernel.Money,
	reference string,
	paidAt *time.Time,
) Payment {
	return Payment{
		method:       method,
		status:       status,
		cashReceived: cashReceived,
		change:       change,
		reference:    reference,
		paidAt:       paidAt,
	}
}

// Method returns the payment method (MethodUnknown until settlement).
func (p Payment) Method() Method {
	return p.method
}

// Status returns the settlement status.
func (p Payment) Status() PaymentStatus {
	return p.status
}

// IsPaid reports whether the account has been settled.
func (p Payment) IsPaid() bool {
	return p.status == PaymentPaid
}

// CashReceived returns the recorded received amount (nil unless settled in cash).
func (p Payment) CashReceived() *kernel.Money {
	return p.cashReceived
}

// Change returns the computed change due (nil unless settled in cash).
func (p Payment) Change() *kernel.Money {
	return p.change
}

// Reference returns the transfer operation reference ("" unless settled by transfer).
func (p Payment) Reference() string {
	return p.reference
}

// PaidAt returns the settlement timestamp (nil while pending).
func (p Payment) PaidAt() *time.Time {
	return p.paidAt
}

// settleCash marks the payment paid in cash, recording the received
// amount and the change against the given total. Rejected without any
// mutation when already paid or when received does not cover the total.
func (p *Payment) settleCash(total, received kernel.Money, now time.Time) error {
	if p.IsPaid() {
		return ErrOrderAlreadyPaid
	}
	if err := received.Validate(); err != nil {
		return err
	}
	if !received.Covers(total) {
		return ErrInsufficientCash
	}

	change, err := received.Sub(total)
	if err != nil {
		return err
	}

	p.method = MethodCash
	p.status = PaymentPaid
	p.cashReceived = &received
	p.change = &change
	p.paidAt = &now
	return nil
}

// settleCard marks the payment paid by card. Accepted unconditionally;
// no external gateway call is modeled.
func (p *Payment) settleCard(now time.Time) error {
	if p.IsPaid() {
		return ErrOrderAlreadyPaid
	}

	p.method = MethodCard
	p.status = PaymentPaid
	p.paidAt = &now
	return nil
}

// settleTransfer marks the payment paid by bank transfer, recording the
// operation reference.
func (p *Payment) settleTransfer(reference string, now time.Time) error {
	if p.IsPaid() {
		return ErrOrderAlreadyPaid
	}

	reference = strings.TrimSpace(reference)
	if reference == "" {
		return ErrReferenceIsRequired
	}

	p.method = MethodTransfer
	p.status = PaymentPaid
	p.reference = reference
	p.paidAt = &now
	return nil
}
