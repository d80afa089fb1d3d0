package commands

import (
	"errors"
	"time"

	"resto/internal/core/domain/model/kernel"
	"resto/internal/core/domain/model/order"
	"resto/internal/pkg/guard"
)

var (
	ErrSettlePaymentCommandIsNotConstructed = errors.New(
		"SettlePaymentCommand must be created via NewSettlePaymentCommand constructor",
	)
	ErrMethodIsInvalid = errors.New("payment method is invalid")
)

// SettlePaymentCommand represents settling an order's account with a
// chosen method. For cash the operator-entered received amount is carried
// as raw text and parsed during handling, so malformed input surfaces as
// a validation failure without touching the ledger. For table orders the
// owning waiter's secret must accompany the command.
//
// Example:
//
//	cmd, err := NewSettlePaymentCommand(
//	    ticketID, order.MethodCash, "200", "", waiterSecret, time.Now(),
//	)
type SettlePaymentCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.TicketID
	method       order.Method
	cashReceived string
	reference    string
	credential   string
	now          time.Time

	guard guard.ConstructorGuard
}

// NewSettlePaymentCommand creates a settlement command.
func NewSettlePaymentCommand(
	orderID kernel.TicketID,
	method order.Method,
	cashReceived string,
	reference string,
	credential string,
	now time.Time,
) (SettlePaymentCommand, error) {
	cmd := SettlePaymentCommand{
		cashReceived: cashReceived,
		reference:    reference,
		credential:   credential,
		now:          now,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setMethod(method),
	); err != nil {
		return SettlePaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SettlePaymentCommand) Validate() error {
	return c.guard.Validate(ErrSettlePaymentCommandIsNotConstructed)
}

// OrderID returns the ticket identifier of the order to settle.
func (c SettlePaymentCommand) OrderID() kernel.TicketID {
	return c.orderID
}

// Method returns the chosen payment method.
func (c SettlePaymentCommand) Method() order.Method {
	return c.method
}

// CashReceived returns the raw operator-entered received amount.
func (c SettlePaymentCommand) CashReceived() string {
	return c.cashReceived
}

// Reference returns the transfer operation reference.
func (c SettlePaymentCommand) Reference() string {
	return c.reference
}

// Credential returns the presented waiter secret for table orders.
func (c SettlePaymentCommand) Credential() string {
	return c.credential
}

// Now returns the settlement timestamp.
func (c SettlePaymentCommand) Now() time.Time {
	return c.now
}

func (c *SettlePaymentCommand) setOrderID(orderID kernel.TicketID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *SettlePaymentCommand) setMethod(method order.Method) error {
	if method != order.MethodCash && method != order.MethodCard && method != order.MethodTransfer {
		return ErrMethodIsInvalid
	}
	c.method = method
	return nil
}
