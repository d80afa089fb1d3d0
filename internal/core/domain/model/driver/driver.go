package driver

import (
	"errors"
	"fmt"
	"strings"

	"resto/internal/core/domain/model/kernel"
	"resto/internal/pkg/errs"
	"resto/internal/pkg/guard"
)

// Domain errors for driver operations.
var (
	// ErrDriverIsNotConstructed is returned when using an improperly
	// initialized Driver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver or RestoreDriver")

	// ErrNameIsRequired is returned when creating a driver without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")

	// ErrDriverIsNotAvailable is returned when starting a delivery with a
	// driver who is busy or offline.
	ErrDriverIsNotAvailable = errors.New("driver is not available")

	// ErrDriverIsNotBusy is returned when completing a delivery for a
	// driver who has none in progress.
	ErrDriverIsNotBusy = errors.New("driver has no delivery in progress")
)

// Driver represents a delivery driver on the roster.
// It is an aggregate root managing driver identity and the busy/available
// cycle driven by dispatch and completion events.
//
// Business rules:
//   - Status toggles busy <-> available only through BeginDelivery and
//     CompleteDelivery; nothing else flips these states.
//   - The active order is not stored on the driver: it is derived by
//     scanning the ledger for a Delivery-status order carrying the
//     driver's ID, avoiding a second source of truth.
//   - CompleteDelivery increments the lifetime completed-deliveries counter.
type Driver struct {
	// id uniquely identifies the driver
	id kernel.UUID
	// name is the driver's displayed name
	name string
	// phone is the driver's contact number
	phone string
	// status is the roster availability state
	status Status
	// vehicle is what the driver rides
	vehicle VehicleType
	// completedDeliveries counts lifetime finished routes
	completedDeliveries int
	// rating is the customer score, 0 to 5
	rating float64
	// guard ensures the driver was properly constructed
	guard guard.ConstructorGuard
}

// NewDriver creates a roster driver starting in Available status with no
// completed deliveries.
//
// Parameters:
//   - id: unique driver identifier
//   - name: displayed name (required)
//   - phone: contact number
//   - vehicle: vehicle type (must be valid)
//
// Returns a validation error when any parameter is invalid; multiple
// violations are aggregated.
func NewDriver(id kernel.UUID, name, phone string, vehicle VehicleType) (*Driver, error) {
	d := &Driver{
		status: Available,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setPhone(phone),
		d.setVehicle(vehicle),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDriver reconstructs a driver from persistence with the roster
// state at the time it was saved.
func RestoreDriver(
	id kernel.UUID,
	name string,
	phone string,
	status Status,
	vehicle VehicleType,
	completedDeliveries int,
	rating float64,
) (*Driver, error) {
	d := &Driver{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setPhone(phone),
		d.setStatus(status),
		d.setVehicle(vehicle),
		d.setCompletedDeliveries(completedDeliveries),
		d.setRating(rating),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// Validate checks the Driver was created through a constructor.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// IsEqual compares two drivers by their unique identifiers.
func (d *Driver) IsEqual(other *Driver) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the driver's unique identifier.
func (d *Driver) ID() kernel.UUID {
	return d.id
}

// Name returns the driver's displayed name.
func (d *Driver) Name() string {
	return d.name
}

// Phone returns the driver's contact number.
func (d *Driver) Phone() string {
	return d.phone
}

// Status returns the roster availability state.
func (d *Driver) Status() Status {
	return d.status
}

// Vehicle returns the driver's vehicle type.
func (d *Driver) Vehicle() VehicleType {
	return d.vehicle
}

// CompletedDeliveries returns the lifetime completed-route counter.
func (d *Driver) CompletedDeliveries() int {
	return d.completedDeliveries
}

// Rating returns the customer score, 0 to 5.
func (d *Driver) Rating() float64 {
	return d.rating
}

// IsAvailable reports whether the driver can take a delivery.
func (d *Driver) IsAvailable() bool {
	return d.status == Available
}

// BeginDelivery marks the driver busy when a delivery order is dispatched
// to them. Only available drivers may start a route.
func (d *Driver) BeginDelivery() error {
	if d.status != Available {
		return ErrDriverIsNotAvailable
	}

	d.status = Busy
	return nil
}

// CompleteDelivery returns the driver to the available pool and counts
// the finished route.
func (d *Driver) CompleteDelivery() error {
	if d.status != Busy {
		return ErrDriverIsNotBusy
	}

	d.status = Available
	d.completedDeliveries++
	return nil
}

// AbortDelivery returns the driver to the available pool without counting
// the route, used when the order is cancelled mid-delivery.
func (d *Driver) AbortDelivery() error {
	if d.status != Busy {
		return ErrDriverIsNotBusy
	}

	d.status = Available
	return nil
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	d.name = name
	return nil
}

func (d *Driver) setPhone(phone string) error {
	d.phone = strings.TrimSpace(phone)
	return nil
}

func (d *Driver) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	d.status = status
	return nil
}

func (d *Driver) setVehicle(vehicle VehicleType) error {
	if err := vehicle.Validate(); err != nil {
		return err
	}
	d.vehicle = vehicle
	return nil
}

func (d *Driver) setCompletedDeliveries(count int) error {
	if count < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"completed deliveries",
			fmt.Errorf("%d is negative", count),
		)
	}
	d.completedDeliveries = count
	return nil
}

func (d *Driver) setRating(rating float64) error {
	if rating < 0 || rating > 5 {
		return errs.NewValueIsOutOfRangeError("rating", rating, 0, 5)
	}
	d.rating = rating
	return nil
}
