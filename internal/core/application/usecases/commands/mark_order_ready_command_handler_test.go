package commands_test

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"resto/internal/core/application/usecases/commands"
	"resto/internal/core/domain/model/order"
	"resto/internal/pkg/errs"
)

func TestMarkOrderReadyCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	ord := testCounterOrder(t, 801)
	cmd, err := commands.NewMarkOrderReadyCommand(ord.ID())
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

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockOrderPublisher)
	publisher.On("PublishOrderChanged", ord.ID()).Once()

	h := commands.NewMarkOrderReadyCommandHandler(factory, publisher)
	require.NoError(t, h.Handle(ctx, cmd))

	require.Equal(t, order.Ready, ord.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestMarkOrderReadyCommandHandler_Handle_NotInKitchen(t *testing.T) {
	ctx := t.Context()
	ord := testCounterOrder(t, 802)
	require.NoError(t, ord.MarkReady())
	cmd, err := commands.NewMarkOrderReadyCommand(ord.ID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockFullUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, ord.ID()).Return(ord, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkOrderReadyCommandHandler(factory, new(MockOrderPublisher))
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestMarkOrderReadyCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	ord := testCounterOrder(t, 803)
	cmd, err := commands.NewMarkOrderReadyCommand(ord.ID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockFullUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, ord.ID()).
			Return(nil, errs.NewObjectNotFoundError("order", ord.ID())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkOrderReadyCommandHandler(factory, new(MockOrderPublisher))
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestMarkOrderReadyCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.MarkOrderReadyCommand{} // not constructed properly
	h := commands.NewMarkOrderReadyCommandHandler(new(MockOrderUoWFactory), new(MockOrderPublisher))
	require.Error(t, h.Handle(ctx, cmd))
}
