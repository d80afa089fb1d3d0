package commands

import (
	"context"
	"errors"

	"resto/internal/core/domain/model/kernel"
	"resto/internal/core/domain/model/order"
	"resto/internal/core/ports"
)

// ErrWaiterGateFailed is returned when the presented secret does not
// verify against the owning waiter's credential. Settling or managing a
// table account requires the owning waiter specifically, so one waiter
// cannot settle another's table without reauthentication.
var ErrWaiterGateFailed = errors.New("owning waiter credential required")

// SettlePaymentCommandHandler settles an order's account.
//
// Method rules:
//   - cash: the received amount must parse non-negative and cover the
//     total; change is computed and recorded
//   - card and transfer: accepted unconditionally (no gateway modeled)
//
// Side effects on success: counter orders waiting at Ready complete
// service immediately; table orders become eligible for the delayed
// auto-release sweep once the grace delay elapses.
type SettlePaymentCommandHandler struct {
	uowFactory OrderStaffUoWFactory
	verifier   ports.CredentialVerifier
	publisher  ports.OrderPublisher
}

// NewSettlePaymentCommandHandler creates a settlement handler.
func NewSettlePaymentCommandHandler(
	uowFactory OrderStaffUoWFactory,
	verifier ports.CredentialVerifier,
	publisher ports.OrderPublisher,
) SettlePaymentCommandHandler {
	return SettlePaymentCommandHandler{
		uowFactory: uowFactory,
		verifier:   verifier,
		publisher:  publisher,
	}
}

// Handle processes the settlement command. For table orders the owning
// waiter's credential is verified before anything else; on any rejection
// the ledger is left untouched.
func (h SettlePaymentCommandHandler) Handle(ctx context.Context, cmd SettlePaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	ord, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if ord.Destination().IsTable() {
		if gateErr := h.verifyOwningWaiter(ctx, uow, ord, cmd.Credential()); gateErr != nil {
			return gateErr
		}
	}

	switch cmd.Method() {
	case order.MethodCash:
		received, parseErr := kernel.ParseMoney(cmd.CashReceived())
		if parseErr != nil {
			return parseErr
		}
		err = ord.SettleCash(received, cmd.Now())
	case order.MethodCard:
		err = ord.SettleCard(cmd.Now())
	case order.MethodTransfer:
		err = ord.SettleTransfer(cmd.Reference(), cmd.Now())
	default:
		err = ErrMethodIsInvalid
	}
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.PublishOrderChanged(ord.ID())
	return nil
}

// verifyOwningWaiter resolves the order's owning waiter and checks the
// presented secret against their stored credential hash.
func (h SettlePaymentCommandHandler) verifyOwningWaiter(
	ctx context.Context,
	uow OrderStaffUoW,
	ord *order.Order,
	credential string,
) error {
	waiterID := ord.Waiter()
	if waiterID == nil {
		return ErrWaiterGateFailed
	}

	waiter, err := uow.StaffRepository().Get(ctx, *waiterID)
	if err != nil {
		return err
	}

	if err = h.verifier.Verify(waiter.CredentialHash(), credential); err != nil {
		return ErrWaiterGateFailed
	}

	return nil
}
