package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"resto/internal/core/application/usecases/commands"
	"resto/internal/core/domain/model/driver"
	"resto/internal/core/domain/model/kernel"
	"resto/internal/core/domain/model/order"
	"resto/internal/core/domain/model/staff"
	"resto/internal/core/ports"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) NextSequence(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.TicketID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*order.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) GetAllActive(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]*order.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) GetActiveByTable(ctx context.Context, table int) (*order.Order, error) {
	args := m.Called(ctx, table)
	if v := args.Get(0); v != nil {
		return v.(*order.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	args := m.Called(ctx, status)
	if v := args.Get(0); v != nil {
		return v.([]*order.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) GetReleasable(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]*order.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockDriverRepository struct{ mock.Mock }

func (m *MockDriverRepository) Add(ctx context.Context, d *driver.Driver) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDriverRepository) Update(ctx context.Context, d *driver.Driver) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDriverRepository) Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*driver.Driver), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDriverRepository) GetAllAvailable(ctx context.Context) ([]*driver.Driver, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]*driver.Driver), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockStaffRepository struct{ mock.Mock }

func (m *MockStaffRepository) Get(ctx context.Context, id kernel.UUID) (*staff.Staff, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*staff.Staff), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockFullUoW satisfies every unit of work interface the handlers take,
// so one mock type serves all of them.
type MockFullUoW struct{ mock.Mock }

func (m *MockFullUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockFullUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockFullUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockFullUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockFullUoW) DriverRepository() ports.DriverRepository {
	args := m.Called()
	return args.Get(0).(ports.DriverRepository)
}

func (m *MockFullUoW) StaffRepository() ports.StaffRepository {
	args := m.Called()
	return args.Get(0).(ports.StaffRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockOrderStaffUoWFactory struct{ mock.Mock }

func (m *MockOrderStaffUoWFactory) Create() commands.OrderStaffUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderStaffUoW)
}

type MockOrderDriverUoWFactory struct{ mock.Mock }

func (m *MockOrderDriverUoWFactory) Create() commands.OrderDriverUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderDriverUoW)
}

type MockFullUoWFactory struct{ mock.Mock }

func (m *MockFullUoWFactory) Create() commands.FullUoW {
	args := m.Called()
	return args.Get(0).(commands.FullUoW)
}

type MockOrderPublisher struct{ mock.Mock }

func (m *MockOrderPublisher) PublishOrderChanged(id kernel.TicketID) {
	m.Called(id)
}

type MockCredentialVerifier struct{ mock.Mock }

func (m *MockCredentialVerifier) Verify(hash, secret string) error {
	args := m.Called(hash, secret)
	return args.Error(0)
}

type MockTokenIssuer struct{ mock.Mock }

func (m *MockTokenIssuer) Issue(surface string, ttl time.Duration) (string, error) {
	args := m.Called(surface, ttl)
	return args.String(0), args.Error(1)
}

func (m *MockTokenIssuer) Verify(token string) (string, error) {
	args := m.Called(token)
	return args.String(0), args.Error(1)
}

// Test fixtures shared across the handler tests.

func testTicket(t *testing.T, number int64) kernel.TicketID {
	t.Helper()
	id, err := kernel.NextTicketID(number)
	require.NoError(t, err)
	return id
}

func testItems(t *testing.T) []order.LineItem {
	t.Helper()
	price, err := kernel.NewMoney(14000)
	require.NoError(t, err)
	item, err := order.NewLineItem("Family Pizza", "Large", price, 1)
	require.NoError(t, err)
	return []order.LineItem{item}
}

func testCounterOrder(t *testing.T, number int64) *order.Order {
	t.Helper()
	ord, err := order.NewOrder(
		testTicket(t, number), "Ana", "555-0101",
		kernel.NewCounterDestination(), order.ChannelCounterOfSale,
		testItems(t), nil, time.Now(),
	)
	require.NoError(t, err)
	return ord
}

func testTableOrder(t *testing.T, number int64, waiterID kernel.UUID) *order.Order {
	t.Helper()
	dest, err := kernel.NewTableDestination(4)
	require.NoError(t, err)
	ord, err := order.NewOrder(
		testTicket(t, number), "Marta", "",
		dest, order.ChannelCounterOfSale,
		testItems(t), &waiterID, time.Now(),
	)
	require.NoError(t, err)
	return ord
}

func testAddressOrder(t *testing.T, number int64) *order.Order {
	t.Helper()
	dest, err := kernel.NewAddressDestination("Av. Juarez 15", "")
	require.NoError(t, err)
	ord, err := order.NewOrder(
		testTicket(t, number), "Luis", "555-0102",
		dest, order.ChannelOnline,
		testItems(t), nil, time.Now(),
	)
	require.NoError(t, err)
	return ord
}

func testDispatchedOrder(t *testing.T, number int64, driverID kernel.UUID) *order.Order {
	t.Helper()
	ord := testAddressOrder(t, number)
	require.NoError(t, ord.MarkReady())
	require.NoError(t, ord.Dispatch(driverID, ord.ID().String(), time.Now()))
	return ord
}

func testBusyDriver(t *testing.T, id kernel.UUID) *driver.Driver {
	t.Helper()
	drv, err := driver.RestoreDriver(id, "Marco", "555-0201", driver.Busy, driver.Motorcycle, 3, 4.5)
	require.NoError(t, err)
	return drv
}

func testWaiter(t *testing.T, id kernel.UUID) *staff.Staff {
	t.Helper()
	member, err := staff.NewStaff(id, "Carla", staff.RoleWaiter, true, "$2a$10$waiterhash")
	require.NoError(t, err)
	return member
}

func testAdmin(t *testing.T, id kernel.UUID) *staff.Staff {
	t.Helper()
	member, err := staff.NewStaff(id, "Diego", staff.RoleAdmin, true, "$2a$10$adminhash")
	require.NoError(t, err)
	return member
}
