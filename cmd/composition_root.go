package cmd

import (
	"time"

	"gorm.io/gorm"

	httpin "resto/internal/adapters/in/http"
	"resto/internal/adapters/out/bcryptverify"
	"resto/internal/adapters/out/jwtauth"
	"resto/internal/adapters/out/notify"
	"resto/internal/adapters/out/sqlite"
	"resto/internal/core/application/usecases/commands"
	"resto/internal/core/application/usecases/queries"
)

// CompositionRoot wires adapters into use case handlers. Handlers are
// created per call; the database connection, verifier, token issuer,
// and notification hub are process-wide singletons.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory sqlite.GormUnitOfWorkFactory
	verifier   bcryptverify.Verifier
	issuer     jwtauth.Issuer
	hub        *notify.Hub
}

// NewCompositionRoot creates the composition root over an opened ledger.
func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *sqlite.NewGormUnitOfWorkFactory(gormDB),
		verifier:   bcryptverify.NewVerifier(),
		issuer:     jwtauth.NewIssuer([]byte(config.JWTSigningKey)),
		hub:        notify.NewHub(),
	}
}

// Hub returns the ledger-change notification hub.
func (c *CompositionRoot) Hub() *notify.Hub {
	return c.hub
}

// TableReleaseGrace returns the configured settlement-to-release delay.
func (c *CompositionRoot) TableReleaseGrace() time.Duration {
	return time.Duration(c.config.TableReleaseGraceSeconds) * time.Second
}

// UrgentWaitThreshold returns the dispatch board urgency cutoff.
func (c *CompositionRoot) UrgentWaitThreshold() time.Duration {
	return time.Duration(c.config.UrgentWaitThresholdMinutes) * time.Minute
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f, c.hub)
}

func (c *CompositionRoot) CreateEditOrderCommandHandler() commands.EditOrderCommandHandler {
	var f commands.OrderStaffUoWFactory = FuncOrderStaffUoWFactory(func() commands.OrderStaffUoW {
		return c.uowFactory.Create()
	})
	return commands.NewEditOrderCommandHandler(f, c.verifier, c.hub)
}

func (c *CompositionRoot) CreateMarkOrderReadyCommandHandler() commands.MarkOrderReadyCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkOrderReadyCommandHandler(f, c.hub)
}

func (c *CompositionRoot) CreateSettlePaymentCommandHandler() commands.SettlePaymentCommandHandler {
	var f commands.OrderStaffUoWFactory = FuncOrderStaffUoWFactory(func() commands.OrderStaffUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSettlePaymentCommandHandler(f, c.verifier, c.hub)
}

func (c *CompositionRoot) CreateDispatchOrderCommandHandler() commands.DispatchOrderCommandHandler {
	var f commands.OrderDriverUoWFactory = FuncOrderDriverUoWFactory(func() commands.OrderDriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDispatchOrderCommandHandler(f, c.hub)
}

func (c *CompositionRoot) CreateCompleteDeliveryCommandHandler() commands.CompleteDeliveryCommandHandler {
	var f commands.OrderDriverUoWFactory = FuncOrderDriverUoWFactory(func() commands.OrderDriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteDeliveryCommandHandler(f, c.hub)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.FullUoWFactory = FuncFullUoWFactory(func() commands.FullUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f, c.verifier, c.hub)
}

func (c *CompositionRoot) CreateReleaseTablesCommandHandler() commands.ReleaseTablesCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReleaseTablesCommandHandler(f, c.hub)
}

func (c *CompositionRoot) CreateUnlockStationCommandHandler() commands.UnlockStationCommandHandler {
	hashes := map[string]string{
		commands.SurfaceKitchen:   c.config.KitchenSecretHash,
		commands.SurfaceLogistics: c.config.LogisticsSecretHash,
	}
	return commands.NewUnlockStationCommandHandler(hashes, c.verifier, c.issuer)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDispatchBoardQueryHandler() queries.GetDispatchBoardQueryHandler {
	return queries.NewGetDispatchBoardQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDriverRoutesQueryHandler() queries.GetDriverRoutesQueryHandler {
	return queries.NewGetDriverRoutesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTableBoardQueryHandler() queries.GetTableBoardQueryHandler {
	return queries.NewGetTableBoardQueryHandler(c.gormDB)
}

// CreateHTTPServer assembles the echo-facing server over the handlers.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreatePlaceOrderCommandHandler(),
		c.CreateEditOrderCommandHandler(),
		c.CreateMarkOrderReadyCommandHandler(),
		c.CreateSettlePaymentCommandHandler(),
		c.CreateDispatchOrderCommandHandler(),
		c.CreateCompleteDeliveryCommandHandler(),
		c.CreateCancelOrderCommandHandler(),
		c.CreateUnlockStationCommandHandler(),
		c.CreateGetActiveOrdersQueryHandler(),
		c.CreateGetDispatchBoardQueryHandler(),
		c.CreateGetDriverRoutesQueryHandler(),
		c.CreateGetTableBoardQueryHandler(),
		c.issuer,
		c.hub,
		c.config.TableCount,
		c.UrgentWaitThreshold(),
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncOrderStaffUoWFactory func() commands.OrderStaffUoW

func (f FuncOrderStaffUoWFactory) Create() commands.OrderStaffUoW {
	return f()
}

type FuncOrderDriverUoWFactory func() commands.OrderDriverUoW

func (f FuncOrderDriverUoWFactory) Create() commands.OrderDriverUoW {
	return f()
}

type FuncFullUoWFactory func() commands.FullUoW

func (f FuncFullUoWFactory) Create() commands.FullUoW {
	return f()
}
