package queries_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"resto/internal/core/application/usecases/queries"
)

func TestGetDriverRoutesQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	db := openTestDB(t)
	orders := orderRepo(t, db)
	drivers := driverRepo(t, db)
	now := time.Date(2026, 3, 14, 13, 30, 0, 0, time.UTC)

	onRoute := rosterDriver(t, "Alba")
	require.NoError(t, drivers.Add(ctx, onRoute))

	ord := addressOrderAt(t, 301, now.Add(-time.Hour))
	require.NoError(t, ord.MarkReady())
	require.NoError(t, ord.Dispatch(onRoute.ID(), ord.ID().String(), now.Add(-25*time.Minute)))
	require.NoError(t, onRoute.BeginDelivery())
	require.NoError(t, orders.Add(ctx, ord))
	require.NoError(t, drivers.Update(ctx, onRoute))

	idle := rosterDriver(t, "Marco")
	require.NoError(t, drivers.Add(ctx, idle))

	query, err := queries.NewGetDriverRoutesQuery(now)
	require.NoError(t, err)

	routes, err := queries.NewGetDriverRoutesQueryHandler(db).Handle(ctx, query)
	require.NoError(t, err)

	// Only busy drivers appear.
	require.Len(t, routes, 1)
	route := routes[0]
	require.Equal(t, onRoute.ID().String(), route.DriverID)
	require.Equal(t, "Alba", route.DriverName)
	require.Equal(t, "Motorcycle", route.Vehicle)
	require.Equal(t, "ORD-0301", route.OrderID)
	require.Equal(t, "Av. Juarez 15", route.Address)
	require.Equal(t, "Luis", route.CustomerName)
	require.Equal(t, 25, route.RouteMinutes)
}

func TestGetDriverRoutesQueryHandler_Handle_NoBusyDrivers(t *testing.T) {
	ctx := t.Context()
	db := openTestDB(t)
	drivers := driverRepo(t, db)

	idle := rosterDriver(t, "Marco")
	require.NoError(t, drivers.Add(ctx, idle))

	query, err := queries.NewGetDriverRoutesQuery(time.Now())
	require.NoError(t, err)

	routes, err := queries.NewGetDriverRoutesQueryHandler(db).Handle(ctx, query)
	require.NoError(t, err)
	require.Empty(t, routes)
}
