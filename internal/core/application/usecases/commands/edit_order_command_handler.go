package commands

import (
	"context"

	"resto/internal/core/domain/model/kernel"
	"resto/internal/core/domain/model/staff"
	"resto/internal/core/ports"
)

// EditOrderCommandHandler replaces an order's line items. Table orders
// are gated: the acting staff member must be the owning waiter or an
// admin, verified by credential. Items not present before the edit come
// back flagged stale so the kitchen sees what was added mid-service.
type EditOrderCommandHandler struct {
	uowFactory OrderStaffUoWFactory
	verifier   ports.CredentialVerifier
	publisher  ports.OrderPublisher
}

// NewEditOrderCommandHandler creates an edit handler.
func NewEditOrderCommandHandler(
	uowFactory OrderStaffUoWFactory,
	verifier ports.CredentialVerifier,
	publisher ports.OrderPublisher,
) EditOrderCommandHandler {
	return EditOrderCommandHandler{
		uowFactory: uowFactory,
		verifier:   verifier,
		publisher:  publisher,
	}
}

// Handle processes the edit command. Terminal orders are rejected by the
// aggregate; on any rejection the ledger is left untouched.
func (h EditOrderCommandHandler) Handle(ctx context.Context, cmd EditOrderCommand) error {
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
		if gateErr := h.verifyActingStaff(ctx, uow, ord.Waiter(), cmd); gateErr != nil {
			return gateErr
		}
	}

	if err = ord.ReplaceItems(cmd.Items()); err != nil {
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

// verifyActingStaff admits the owning waiter with a matching credential,
// or any active admin. Everyone else is turned away without detail.
func (h EditOrderCommandHandler) verifyActingStaff(
	ctx context.Context,
	uow OrderStaffUoW,
	waiterID *kernel.UUID,
	cmd EditOrderCommand,
) error {
	if cmd.StaffID() == nil {
		return ErrWaiterGateFailed
	}

	member, err := uow.StaffRepository().Get(ctx, *cmd.StaffID())
	if err != nil {
		return ErrWaiterGateFailed
	}

	if !member.IsActive() {
		return ErrWaiterGateFailed
	}

	isAdmin := member.Role() == staff.RoleAdmin
	isOwner := waiterID != nil && member.ID().IsEqual(*waiterID)
	if !isAdmin && !isOwner {
		return ErrWaiterGateFailed
	}

	if err = h.verifier.Verify(member.CredentialHash(), cmd.Credential()); err != nil {
		return ErrWaiterGateFailed
	}

	return nil
}
