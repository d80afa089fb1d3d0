package commands

import (
	"errors"

	"resto/internal/core/domain/model/kernel"
	"resto/internal/pkg/errs"
	"resto/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"cancel order command must be created via NewCancelOrderCommand",
)

// CancelOrderCommand voids an order on the admin's authority. The
// credential is the admin's own secret, verified before any state moves.
//
//nolint:recvcheck //using for validation
type CancelOrderCommand struct {
	orderID    kernel.TicketID
	adminID    kernel.UUID
	credential string

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a cancellation command, validating input data.
func NewCancelOrderCommand(orderID kernel.TicketID, adminID kernel.UUID, credential string) (CancelOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return CancelOrderCommand{}, err
	}

	if err := adminID.Validate(); err != nil {
		return CancelOrderCommand{}, err
	}

	if credential == "" {
		return CancelOrderCommand{}, errs.NewValueIsRequiredError("credential")
	}

	return CancelOrderCommand{
		orderID:    orderID,
		adminID:    adminID,
		credential: credential,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

func (c CancelOrderCommand) OrderID() kernel.TicketID {
	return c.orderID
}

func (c CancelOrderCommand) AdminID() kernel.UUID {
	return c.adminID
}

func (c CancelOrderCommand) Credential() string {
	return c.credential
}
