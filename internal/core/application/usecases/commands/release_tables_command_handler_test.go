package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"resto/internal/core/application/usecases/commands"
	"resto/internal/core/domain/model/kernel"
	"resto/internal/core/domain/model/order"
)

func settledTableOrderAt(t *testing.T, number int64, paidAt time.Time) *order.Order {
	t.Helper()
	ord := testTableOrder(t, number, kernel.NewUUID())
	require.NoError(t, ord.MarkReady())
	require.NoError(t, ord.SettleCard(paidAt))
	return ord
}

func TestReleaseTablesCommandHandler_Handle_ReleasesElapsedOrders(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2026, 3, 14, 14, 0, 0, 0, time.UTC)
	grace := 5 * time.Second

	elapsed := settledTableOrderAt(t, 601, now.Add(-time.Minute))
	fresh := settledTableOrderAt(t, 602, now.Add(-time.Second))

	cmd, err := commands.NewReleaseTablesCommand(now, grace)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockFullUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	repo.On("GetReleasable", ctx).Return([]*order.Order{elapsed, fresh}, nil).Once()
	repo.On("Update", mock.Anything, elapsed).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockOrderPublisher)
	publisher.On("PublishOrderChanged", elapsed.ID()).Once()

	h := commands.NewReleaseTablesCommandHandler(factory, publisher)
	require.NoError(t, h.Handle(ctx, cmd))

	require.Equal(t, order.Delivered, elapsed.Status())
	require.Equal(t, order.Ready, fresh.Status())
	repo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestReleaseTablesCommandHandler_Handle_SkipsOrderSettledWhileInKitchen(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2026, 3, 14, 14, 0, 0, 0, time.UTC)
	grace := 5 * time.Second

	// Settled by the waiter before the kitchen marked it ready. It must
	// wait for MarkReady and never stall the sweep for other tables.
	early := testTableOrder(t, 604, kernel.NewUUID())
	require.NoError(t, early.SettleCard(now.Add(-time.Minute)))
	require.Equal(t, order.Kitchen, early.Status())

	elapsed := settledTableOrderAt(t, 605, now.Add(-time.Minute))

	cmd, err := commands.NewReleaseTablesCommand(now, grace)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockFullUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	repo.On("GetReleasable", ctx).Return([]*order.Order{early, elapsed}, nil).Once()
	repo.On("Update", mock.Anything, elapsed).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockOrderPublisher)
	publisher.On("PublishOrderChanged", elapsed.ID()).Once()

	h := commands.NewReleaseTablesCommandHandler(factory, publisher)
	require.NoError(t, h.Handle(ctx, cmd))

	require.Equal(t, order.Kitchen, early.Status())
	require.Equal(t, order.Delivered, elapsed.Status())
	repo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestReleaseTablesCommandHandler_Handle_NothingEligible(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2026, 3, 14, 14, 0, 0, 0, time.UTC)
	grace := 5 * time.Second

	fresh := settledTableOrderAt(t, 603, now.Add(-time.Second))

	cmd, err := commands.NewReleaseTablesCommand(now, grace)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockFullUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Twice()
	repo.On("GetReleasable", ctx).Return([]*order.Order{fresh}, nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReleaseTablesCommandHandler(factory, new(MockOrderPublisher))
	require.NoError(t, h.Handle(ctx, cmd))

	require.Equal(t, order.Ready, fresh.Status())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestReleaseTablesCommandHandler_Handle_EmptySweep(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewReleaseTablesCommand(time.Now(), 5*time.Second)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockFullUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Twice()
	repo.On("GetReleasable", ctx).Return([]*order.Order{}, nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReleaseTablesCommandHandler(factory, new(MockOrderPublisher))
	require.NoError(t, h.Handle(ctx, cmd))
}

func TestReleaseTablesCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.ReleaseTablesCommand{} // not constructed properly
	h := commands.NewReleaseTablesCommandHandler(new(MockOrderUoWFactory), new(MockOrderPublisher))
	require.Error(t, h.Handle(ctx, cmd))
}
