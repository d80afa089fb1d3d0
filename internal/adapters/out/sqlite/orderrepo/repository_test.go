package orderrepo_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"resto/internal/adapters/out/sqlite"
	"resto/internal/adapters/out/sqlite/orderrepo"
	"resto/internal/core/domain/model/kernel"
	"resto/internal/core/domain/model/order"
	"resto/internal/pkg/errs"
)

type noopTracker struct{}

func (noopTracker) TrackAggregate(string, any) {}

type OrderRepositorySuite struct {
	suite.Suite
	db   *gorm.DB
	repo *orderrepo.GormOrderRepository
}

func TestOrderRepositorySuite(t *testing.T) {
	suite.Run(t, new(OrderRepositorySuite))
}

func (s *OrderRepositorySuite) SetupTest() {
	db, err := sqlite.OpenDB(":memory:")
	s.Require().NoError(err)
	s.db = db
	s.repo = orderrepo.NewGormOrderRepository(db, noopTracker{})
}

func (s *OrderRepositorySuite) newCounterOrder(number int64) *order.Order {
	id, err := kernel.NextTicketID(number)
	s.Require().NoError(err)
	price, err := kernel.NewMoney(2500)
	s.Require().NoError(err)
	item, err := order.NewLineItem("Pastor Taco", "", price, 2)
	s.Require().NoError(err)

	ord, err := order.NewOrder(
		id, "Ana", "555-0101",
		kernel.NewCounterDestination(), order.ChannelCounterOfSale,
		[]order.LineItem{item}, nil, time.Now().UTC().Truncate(time.Second),
	)
	s.Require().NoError(err)
	return ord
}

func (s *OrderRepositorySuite) newTableOrder(number int64, table int) *order.Order {
	id, err := kernel.NextTicketID(number)
	s.Require().NoError(err)
	dest, err := kernel.NewTableDestination(table)
	s.Require().NoError(err)
	price, err := kernel.NewMoney(1500)
	s.Require().NoError(err)
	item, err := order.NewLineItem("Lemonade", "", price, 2)
	s.Require().NoError(err)
	waiterID := kernel.NewUUID()

	ord, err := order.NewOrder(
		id, "Marta", "",
		dest, order.ChannelCounterOfSale,
		[]order.LineItem{item}, &waiterID, time.Now().UTC().Truncate(time.Second),
	)
	s.Require().NoError(err)
	return ord
}

func (s *OrderRepositorySuite) TestNextSequence() {
	ctx := s.T().Context()

	first, err := s.repo.NextSequence(ctx)
	s.Require().NoError(err)
	s.Equal(int64(1), first)

	second, err := s.repo.NextSequence(ctx)
	s.Require().NoError(err)
	s.Equal(int64(2), second)

	third, err := s.repo.NextSequence(ctx)
	s.Require().NoError(err)
	s.Equal(int64(3), third)
}

func (s *OrderRepositorySuite) TestAddAndGetRoundTrip() {
	ctx := s.T().Context()
	ord := s.newCounterOrder(101)
	s.Require().NoError(s.repo.Add(ctx, ord))

	loaded, err := s.repo.Get(ctx, ord.ID())
	s.Require().NoError(err)

	s.True(loaded.ID().IsEqual(ord.ID()))
	s.Equal(ord.CustomerName(), loaded.CustomerName())
	s.Equal(ord.Status(), loaded.Status())
	s.Equal(ord.Total(), loaded.Total())
	s.Equal(ord.Version(), loaded.Version())
	s.Require().Len(loaded.Items(), 1)
	s.Equal("Pastor Taco", loaded.Items()[0].Name())
}

func (s *OrderRepositorySuite) TestGetNotFound() {
	id, err := kernel.NextTicketID(999)
	s.Require().NoError(err)

	_, err = s.repo.Get(s.T().Context(), id)
	s.ErrorIs(err, errs.ErrObjectNotFound)
}

func (s *OrderRepositorySuite) TestUpdatePersistsTransition() {
	ctx := s.T().Context()
	ord := s.newCounterOrder(102)
	s.Require().NoError(s.repo.Add(ctx, ord))

	s.Require().NoError(ord.MarkReady())
	s.Require().NoError(s.repo.Update(ctx, ord))

	loaded, err := s.repo.Get(ctx, ord.ID())
	s.Require().NoError(err)
	s.Equal(order.Ready, loaded.Status())
	s.Equal(ord.Version(), loaded.Version())
}

func (s *OrderRepositorySuite) TestUpdateRejectsStaleWrite() {
	ctx := s.T().Context()
	ord := s.newCounterOrder(103)
	s.Require().NoError(s.repo.Add(ctx, ord))

	// One station reads, transitions and writes.
	winner, err := s.repo.Get(ctx, ord.ID())
	s.Require().NoError(err)
	s.Require().NoError(winner.MarkReady())
	s.Require().NoError(s.repo.Update(ctx, winner))

	// A second station working from the older read loses.
	loser, err := order.RestoreOrder(
		ord.ID(), ord.CustomerName(), ord.CustomerPhone(), ord.Destination(),
		ord.Channel(), ord.Items(), ord.Status(), ord.Payment(),
		nil, nil, ord.CreatedAt(), nil, ord.Version(),
	)
	s.Require().NoError(err)
	s.Require().NoError(loser.MarkReady())

	err = s.repo.Update(ctx, loser)
	s.ErrorIs(err, errs.ErrVersionIsInvalid)
}

func (s *OrderRepositorySuite) TestUpdateReplacesLineItems() {
	ctx := s.T().Context()
	ord := s.newCounterOrder(104)
	s.Require().NoError(s.repo.Add(ctx, ord))

	price, err := kernel.NewMoney(3000)
	s.Require().NoError(err)
	extra, err := order.NewLineItem("Horchata", "Large", price, 1)
	s.Require().NoError(err)
	s.Require().NoError(ord.ReplaceItems(append(ord.Items(), extra)))
	s.Require().NoError(s.repo.Update(ctx, ord))

	loaded, err := s.repo.Get(ctx, ord.ID())
	s.Require().NoError(err)
	s.Require().Len(loaded.Items(), 2)
	s.False(loaded.Items()[0].IsStale())
	s.True(loaded.Items()[1].IsStale())
	s.Equal(ord.Total(), loaded.Total())
}

func (s *OrderRepositorySuite) TestGetActiveByTable() {
	ctx := s.T().Context()
	ord := s.newTableOrder(105, 4)
	s.Require().NoError(s.repo.Add(ctx, ord))

	occupied, err := s.repo.GetActiveByTable(ctx, 4)
	s.Require().NoError(err)
	s.True(occupied.ID().IsEqual(ord.ID()))

	_, err = s.repo.GetActiveByTable(ctx, 5)
	s.ErrorIs(err, errs.ErrObjectNotFound)

	// A closed order frees its table.
	s.Require().NoError(ord.Cancel())
	s.Require().NoError(s.repo.Update(ctx, ord))
	_, err = s.repo.GetActiveByTable(ctx, 4)
	s.ErrorIs(err, errs.ErrObjectNotFound)
}

func (s *OrderRepositorySuite) TestGetAllActiveSkipsTerminalOrders() {
	ctx := s.T().Context()
	open := s.newCounterOrder(106)
	s.Require().NoError(s.repo.Add(ctx, open))

	closed := s.newCounterOrder(107)
	s.Require().NoError(closed.Cancel())
	s.Require().NoError(s.repo.Add(ctx, closed))

	active, err := s.repo.GetAllActive(ctx)
	s.Require().NoError(err)
	s.Require().Len(active, 1)
	s.True(active[0].ID().IsEqual(open.ID()))
}

func (s *OrderRepositorySuite) TestGetAllInStatus() {
	ctx := s.T().Context()
	kitchen := s.newCounterOrder(108)
	s.Require().NoError(s.repo.Add(ctx, kitchen))

	ready := s.newCounterOrder(109)
	s.Require().NoError(ready.MarkReady())
	s.Require().NoError(s.repo.Add(ctx, ready))

	inKitchen, err := s.repo.GetAllInStatus(ctx, order.Kitchen)
	s.Require().NoError(err)
	s.Require().Len(inKitchen, 1)
	s.True(inKitchen[0].ID().IsEqual(kitchen.ID()))
}

func (s *OrderRepositorySuite) TestGetReleasable() {
	ctx := s.T().Context()

	paidTable := s.newTableOrder(110, 2)
	s.Require().NoError(paidTable.MarkReady())
	s.Require().NoError(paidTable.SettleCard(time.Now().UTC().Truncate(time.Second)))
	s.Require().NoError(s.repo.Add(ctx, paidTable))

	unpaidTable := s.newTableOrder(111, 3)
	s.Require().NoError(s.repo.Add(ctx, unpaidTable))

	paidCounter := s.newCounterOrder(112)
	s.Require().NoError(paidCounter.SettleCard(time.Now().UTC().Truncate(time.Second)))
	s.Require().NoError(s.repo.Add(ctx, paidCounter))

	releasable, err := s.repo.GetReleasable(ctx)
	s.Require().NoError(err)
	s.Require().Len(releasable, 1)
	s.True(releasable[0].ID().IsEqual(paidTable.ID()))
}

func (s *OrderRepositorySuite) TestPaymentRoundTrip() {
	ctx := s.T().Context()
	ord := s.newCounterOrder(113)
	received, err := kernel.ParseMoney("100")
	s.Require().NoError(err)
	s.Require().NoError(ord.SettleCash(received, time.Now().UTC().Truncate(time.Second)))
	s.Require().NoError(s.repo.Add(ctx, ord))

	loaded, err := s.repo.Get(ctx, ord.ID())
	s.Require().NoError(err)
	payment := loaded.Payment()
	s.Equal(order.MethodCash, payment.Method())
	s.True(payment.IsPaid())
	s.Require().NotNil(payment.CashReceived())
	s.Equal(received, *payment.CashReceived())
	s.Require().NotNil(payment.Change())
	s.Require().NotNil(payment.PaidAt())
}
