package commands_test

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"resto/internal/core/application/usecases/commands"
	"resto/internal/core/domain/model/kernel"
	"resto/internal/core/domain/model/order"
	"resto/internal/core/ports"
)

func editedItems(t *testing.T) []order.LineItem {
	t.Helper()
	price, err := kernel.NewMoney(3000)
	require.NoError(t, err)
	extra, err := order.NewLineItem("Horchata", "Large", price, 1)
	require.NoError(t, err)
	return append(testItems(t), extra)
}

func TestEditOrderCommandHandler_Handle_CounterOrderWithoutGate(t *testing.T) {
	ctx := t.Context()
	ord := testCounterOrder(t, 701)
	cmd, err := commands.NewEditOrderCommand(ord.ID(), editedItems(t), nil, "")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockFullUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, ord.ID()).Return(ord, nil).Once(),
		repo.On("Update", mock.Anything, ord).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderStaffUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockOrderPublisher)
	publisher.On("PublishOrderChanged", ord.ID()).Once()

	h := commands.NewEditOrderCommandHandler(factory, new(MockCredentialVerifier), publisher)
	require.NoError(t, h.Handle(ctx, cmd))

	items := ord.Items()
	require.Len(t, items, 2)
	require.False(t, items[0].IsStale())
	require.True(t, items[1].IsStale())
	repo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestEditOrderCommandHandler_Handle_TableOrderGate(t *testing.T) {
	ctx := t.Context()
	waiterID := kernel.NewUUID()
	waiter := testWaiter(t, waiterID)

	t.Run("should admit the owning waiter", func(t *testing.T) {
		ord := testTableOrder(t, 702, waiterID)
		cmd, err := commands.NewEditOrderCommand(ord.ID(), editedItems(t), &waiterID, "waiter-secret")
		require.NoError(t, err)

		repo := new(MockOrderRepository)
		staffRepo := new(MockStaffRepository)
		uow := new(MockFullUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("OrderRepository").Return(repo).Once()
		uow.On("StaffRepository").Return(staffRepo).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		repo.On("Get", ctx, ord.ID()).Return(ord, nil).Once()
		repo.On("Update", mock.Anything, ord).Return(nil).Once()
		staffRepo.On("Get", ctx, waiterID).Return(waiter, nil).Once()

		verifier := new(MockCredentialVerifier)
		verifier.On("Verify", waiter.CredentialHash(), "waiter-secret").Return(nil).Once()

		factory := new(MockOrderStaffUoWFactory)
		factory.On("Create").Return(uow).Once()

		publisher := new(MockOrderPublisher)
		publisher.On("PublishOrderChanged", ord.ID()).Once()

		h := commands.NewEditOrderCommandHandler(factory, verifier, publisher)
		require.NoError(t, h.Handle(ctx, cmd))
		require.Len(t, ord.Items(), 2)
	})

	t.Run("should admit an active admin for any table", func(t *testing.T) {
		adminID := kernel.NewUUID()
		admin := testAdmin(t, adminID)
		ord := testTableOrder(t, 703, waiterID)
		cmd, err := commands.NewEditOrderCommand(ord.ID(), editedItems(t), &adminID, "admin-secret")
		require.NoError(t, err)

		repo := new(MockOrderRepository)
		staffRepo := new(MockStaffRepository)
		uow := new(MockFullUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("OrderRepository").Return(repo).Once()
		uow.On("StaffRepository").Return(staffRepo).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		repo.On("Get", ctx, ord.ID()).Return(ord, nil).Once()
		repo.On("Update", mock.Anything, ord).Return(nil).Once()
		staffRepo.On("Get", ctx, adminID).Return(admin, nil).Once()

		verifier := new(MockCredentialVerifier)
		verifier.On("Verify", admin.CredentialHash(), "admin-secret").Return(nil).Once()

		factory := new(MockOrderStaffUoWFactory)
		factory.On("Create").Return(uow).Once()

		publisher := new(MockOrderPublisher)
		publisher.On("PublishOrderChanged", ord.ID()).Once()

		h := commands.NewEditOrderCommandHandler(factory, verifier, publisher)
		require.NoError(t, h.Handle(ctx, cmd))
	})

	t.Run("should turn away another waiter", func(t *testing.T) {
		otherID := kernel.NewUUID()
		other := testWaiter(t, otherID)
		ord := testTableOrder(t, 704, waiterID)
		cmd, err := commands.NewEditOrderCommand(ord.ID(), editedItems(t), &otherID, "other-secret")
		require.NoError(t, err)

		repo := new(MockOrderRepository)
		staffRepo := new(MockStaffRepository)
		uow := new(MockFullUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("OrderRepository").Return(repo).Once()
		uow.On("StaffRepository").Return(staffRepo).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		repo.On("Get", ctx, ord.ID()).Return(ord, nil).Once()
		staffRepo.On("Get", ctx, otherID).Return(other, nil).Once()

		factory := new(MockOrderStaffUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewEditOrderCommandHandler(factory, new(MockCredentialVerifier), new(MockOrderPublisher))
		err = h.Handle(ctx, cmd)
		require.ErrorIs(t, err, commands.ErrWaiterGateFailed)
		require.Len(t, ord.Items(), 1)
	})

	t.Run("should turn away wrong credential", func(t *testing.T) {
		ord := testTableOrder(t, 705, waiterID)
		cmd, err := commands.NewEditOrderCommand(ord.ID(), editedItems(t), &waiterID, "wrong")
		require.NoError(t, err)

		repo := new(MockOrderRepository)
		staffRepo := new(MockStaffRepository)
		uow := new(MockFullUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("OrderRepository").Return(repo).Once()
		uow.On("StaffRepository").Return(staffRepo).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		repo.On("Get", ctx, ord.ID()).Return(ord, nil).Once()
		staffRepo.On("Get", ctx, waiterID).Return(waiter, nil).Once()

		verifier := new(MockCredentialVerifier)
		verifier.On("Verify", waiter.CredentialHash(), "wrong").Return(ports.ErrCredentialMismatch).Once()

		factory := new(MockOrderStaffUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewEditOrderCommandHandler(factory, verifier, new(MockOrderPublisher))
		err = h.Handle(ctx, cmd)
		require.ErrorIs(t, err, commands.ErrWaiterGateFailed)
	})

	t.Run("should turn away edits carrying no staff identity", func(t *testing.T) {
		ord := testTableOrder(t, 706, waiterID)
		cmd, err := commands.NewEditOrderCommand(ord.ID(), editedItems(t), nil, "")
		require.NoError(t, err)

		repo := new(MockOrderRepository)
		uow := new(MockFullUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("OrderRepository").Return(repo).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		repo.On("Get", ctx, ord.ID()).Return(ord, nil).Once()

		factory := new(MockOrderStaffUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewEditOrderCommandHandler(factory, new(MockCredentialVerifier), new(MockOrderPublisher))
		err = h.Handle(ctx, cmd)
		require.ErrorIs(t, err, commands.ErrWaiterGateFailed)
	})
}

func TestEditOrderCommandHandler_Handle_TerminalOrder(t *testing.T) {
	ctx := t.Context()
	ord := testCounterOrder(t, 707)
	require.NoError(t, ord.Cancel())
	cmd, err := commands.NewEditOrderCommand(ord.ID(), editedItems(t), nil, "")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockFullUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	repo.On("Get", ctx, ord.ID()).Return(ord, nil).Once()

	factory := new(MockOrderStaffUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewEditOrderCommandHandler(factory, new(MockCredentialVerifier), new(MockOrderPublisher))
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, order.ErrOrderIsTerminal)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestEditOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.EditOrderCommand{} // not constructed properly
	h := commands.NewEditOrderCommandHandler(
		new(MockOrderStaffUoWFactory), new(MockCredentialVerifier), new(MockOrderPublisher))
	require.Error(t, h.Handle(ctx, cmd))
}
