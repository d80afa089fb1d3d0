package commands

import (
	"context"
	"errors"

	"resto/internal/core/domain/model/order"
	"resto/internal/core/domain/model/staff"
	"resto/internal/core/ports"
)

// ErrAdminGateFailed is returned when the presented credential does not
// belong to an active admin. The caller only learns the gate failed, never
// which staff record or check tripped it.
var ErrAdminGateFailed = errors.New("admin gate failed")

// CancelOrderCommandHandler voids an order behind the admin gate. A
// cancelled mid-delivery order frees its driver immediately.
type CancelOrderCommandHandler struct {
	uowFactory FullUoWFactory
	verifier   ports.CredentialVerifier
	publisher  ports.OrderPublisher
}

// NewCancelOrderCommandHandler creates a cancellation handler.
func NewCancelOrderCommandHandler(
	uowFactory FullUoWFactory,
	verifier ports.CredentialVerifier,
	publisher ports.OrderPublisher,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		verifier:   verifier,
		publisher:  publisher,
	}
}

// Handle processes the cancellation command.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	if err := h.verifyAdmin(ctx, uow, cmd); err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()

	ord, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	// Repeated cancellation is accepted without touching the ledger.
	if ord.Status() == order.Cancelled {
		return nil
	}

	wasOut := ord.Status() == order.Delivery
	driverID := ord.Driver()

	if err = ord.Cancel(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return err
	}

	if wasOut && driverID != nil {
		driverRepo := uow.DriverRepository()

		drv, drvErr := driverRepo.Get(ctx, *driverID)
		if drvErr != nil {
			return drvErr
		}

		if drvErr = drv.AbortDelivery(); drvErr != nil {
			return drvErr
		}

		if drvErr = driverRepo.Update(ctx, drv); drvErr != nil {
			return drvErr
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.PublishOrderChanged(ord.ID())
	return nil
}

func (h CancelOrderCommandHandler) verifyAdmin(ctx context.Context, uow FullUoW, cmd CancelOrderCommand) error {
	member, err := uow.StaffRepository().Get(ctx, cmd.AdminID())
	if err != nil {
		return errors.Join(ErrAdminGateFailed, err)
	}

	if member.Role() != staff.RoleAdmin || !member.IsActive() {
		return ErrAdminGateFailed
	}

	if err = h.verifier.Verify(member.CredentialHash(), cmd.Credential()); err != nil {
		return errors.Join(ErrAdminGateFailed, err)
	}

	return nil
}
