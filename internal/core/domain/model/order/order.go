package order

import (
	"errors"
	"time"

	"resto/internal/core/domain/model/kernel"
	"resto/internal/pkg/errs"
	"resto/internal/pkg/guard"
)

// Domain errors for order lifecycle operations.
var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrItemsAreRequired is returned when an order carries no line items.
	ErrItemsAreRequired = errs.NewValueIsRequiredError("line items")

	// ErrWaiterIsRequired is returned when a table order has no owning waiter.
	ErrWaiterIsRequired = errs.NewValueIsRequiredError("waiter")

	// ErrOrderIsTerminal is returned when mutating a delivered or cancelled order.
	ErrOrderIsTerminal = errors.New("order is in a terminal status")

	// ErrOrderIsNotPaid is returned when closing an order straight from Ready
	// while its account is still pending. Orders out for delivery close
	// regardless; the route was only dispatched after explicit confirmation.
	ErrOrderIsNotPaid = errors.New("order is not paid")

	// ErrTicketMismatch is returned when the operator-entered ticket does not
	// confirm the order identifier. The order is left untouched.
	ErrTicketMismatch = errors.New("entered ticket does not match the order id")

	// ErrNotDeliverable is returned when dispatching an order whose
	// destination is a table or the counter.
	ErrNotDeliverable = errors.New("order destination is not eligible for delivery")

	// ErrDriverIsRequired is returned when dispatching without a chosen driver.
	ErrDriverIsRequired = errs.NewValueIsRequiredError("driver")
)

// Order is the central ledger entity: one customer order moving through
// kitchen preparation, service or dispatch, payment settlement and
// completion. It is the aggregate root for line items and payment state.
//
// Order maintains these invariants:
//   - The total always equals the sum of line extensions; it is recomputed
//     on every edit and never supplied from outside.
//   - At most one driver is assigned, and assignment happens only on the
//     Ready -> Delivery transition after ticket verification.
//   - Payment status is monotonic: pending -> paid, never back.
//   - Status moves forward along the station workflow; Cancel is the only
//     terminal escape, and Deliver on an already-delivered order is a
//     no-op so delayed transitions stay idempotent.
//   - Every mutation bumps the version counter; repositories use it to
//     reject stale concurrent writes instead of blindly overwriting.
type Order struct {
	// id is the human-displayed ticket identifier
	id kernel.TicketID

	// customerName and customerPhone identify who ordered
	customerName  string
	customerPhone string

	// destination is where the order is served: table, counter or address
	destination kernel.Destination

	// channel tags the intake origin (staff counter vs public storefront)
	channel Channel

	// items are the ordered dishes; total is derived from them
	items []LineItem
	total kernel.Money

	// status is the current state in the station workflow
	status Status

	// payment is the settlement state
	payment Payment

	// driverID is the assigned delivery driver (nil until dispatched)
	driverID *kernel.UUID

	// waiterID is the owning waiter for table orders (nil otherwise)
	waiterID *kernel.UUID

	createdAt    time.Time
	dispatchedAt *time.Time

	// version counts mutations for optimistic stale-write detection
	version int64

	guard guard.ConstructorGuard
}

// NewOrder creates a new order entering the kitchen.
//
// Parameters:
//   - id: the displayed ticket identifier
//   - customerName, customerPhone: who ordered (name required)
//   - destination: table, counter or delivery address
//   - channel: intake origin
//   - items: ordered dishes (at least one)
//   - waiterID: owning waiter, required for table orders
//   - now: creation timestamp
//
// The total is computed from the items; the order starts in Kitchen
// status with payment pending.
func NewOrder(
	id kernel.TicketID,
	customerName string,
	customerPhone string,
	destination kernel.Destination,
	channel Channel,
	items []LineItem,
	waiterID *kernel.UUID,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:    Kitchen,
		payment:   newPendingPayment(),
		createdAt: now,
		version:   1,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomer(customerName, customerPhone),
		o.setDestination(destination),
		o.setChannel(channel),
		o.setItems(items),
		o.setWaiter(waiterID),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence with its full
// lifecycle state. The total is recomputed from the items so the derived
// invariant holds even for restored records.
func RestoreOrder(
	id kernel.TicketID,
	customerName string,
	customerPhone string,
	destination kernel.Destination,
	channel Channel,
	items []LineItem,
	status Status,
	payment Payment,
	driverID *kernel.UUID,
	waiterID *kernel.UUID,
	createdAt time.Time,
	dispatchedAt *time.Time,
	version int64,
) (*Order, error) {
	o := &Order{
		payment:      payment,
		createdAt:    createdAt,
		dispatchedAt: dispatchedAt,
		version:      version,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomer(customerName, customerPhone),
		o.setDestination(destination),
		o.setChannel(channel),
		o.setItems(items),
		o.setWaiter(waiterID),
		o.setStatus(status),
		o.setDriver(driverID),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their ticket identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the displayed ticket identifier.
func (o *Order) ID() kernel.TicketID {
	return o.id
}

// CustomerName returns the ordering customer's name.
func (o *Order) CustomerName() string {
	return o.customerName
}

// CustomerPhone returns the ordering customer's phone ("" when unknown).
func (o *Order) CustomerPhone() string {
	return o.customerPhone
}

// Destination returns where the order is served.
func (o *Order) Destination() kernel.Destination {
	return o.destination
}

// Channel returns the intake origin tag.
func (o *Order) Channel() Channel {
	return o.channel
}

// Items returns a copy of the ordered line items.
func (o *Order) Items() []LineItem {
	out := make([]LineItem, len(o.items))
	copy(out, o.items)
	return out
}

// Total returns the order total, always the sum of line extensions.
func (o *Order) Total() kernel.Money {
	return o.total
}

// Status returns the current workflow status.
func (o *Order) Status() Status {
	return o.status
}

// Payment returns the settlement state.
func (o *Order) Payment() Payment {
	return o.payment
}

// Driver returns the assigned driver's ID, nil when not dispatched.
func (o *Order) Driver() *kernel.UUID {
	return o.driverID
}

// Waiter returns the owning waiter's ID, nil for non-table orders.
func (o *Order) Waiter() *kernel.UUID {
	return o.waiterID
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// DispatchedAt returns the dispatch timestamp, nil until dispatched.
func (o *Order) DispatchedAt() *time.Time {
	return o.dispatchedAt
}

// Version returns the mutation counter used for stale-write detection.
func (o *Order) Version() int64 {
	return o.version
}

// IsActive reports whether the order is in a non-terminal status.
func (o *Order) IsActive() bool {
	return !o.status.IsTerminal()
}

// MarkReady moves the order from Kitchen to Ready. This is the kitchen
// station's transition and has no payment precondition.
func (o *Order) MarkReady() error {
	newStatus, err := o.status.MarkReady()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// Dispatch releases the order to a delivery driver.
//
// Preconditions, all checked before any mutation:
//   - the destination is off-premises (ErrNotDeliverable)
//   - a driver is chosen (ErrDriverIsRequired)
//   - the operator-entered confirmation matches the ticket identifier,
//     case-insensitively (ErrTicketMismatch)
//   - the order is in Ready status
//
// On success the order moves to Delivery, the driver is assigned and the
// dispatch timestamp is stamped.
func (o *Order) Dispatch(driverID kernel.UUID, confirmation string, now time.Time) error {
	if !o.destination.IsOffPremises() {
		return ErrNotDeliverable
	}
	if err := driverID.Validate(); err != nil {
		return ErrDriverIsRequired
	}
	if !o.id.Matches(confirmation) {
		return ErrTicketMismatch
	}

	newStatus, err := o.status.Dispatch()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.driverID = &driverID
	o.dispatchedAt = &now
	o.touch()
	return nil
}

// Deliver closes the order as handed over. Valid from Ready (on-premises
// service, settled accounts only) and Delivery (route completed).
// Delivering an already delivered order is a no-op: the delayed table
// auto-release may fire after the order was independently closed, and
// must not fail. Completion drops any driver reference so an assignment
// exists only while the order is out for delivery.
func (o *Order) Deliver() error {
	if o.status == Delivered {
		return nil
	}

	if o.status == Ready && !o.payment.IsPaid() {
		return ErrOrderIsNotPaid
	}

	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.driverID = nil
	o.touch()
	return nil
}

// Cancel voids the order from any non-terminal status. Cancelling an
// already cancelled order is a no-op; a delivered order cannot be voided.
// Any driver assignment is released.
func (o *Order) Cancel() error {
	if o.status == Cancelled {
		return nil
	}

	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.driverID = nil
	o.touch()
	return nil
}

// SettleCash settles the account in cash. The received amount must cover
// the total; change is computed and recorded. On a counter order in Ready
// status, settlement completes service as a side effect.
func (o *Order) SettleCash(received kernel.Money, now time.Time) error {
	if o.status == Cancelled {
		return ErrOrderIsTerminal
	}

	if err := o.payment.settleCash(o.total, received, now); err != nil {
		return err
	}

	o.touch()
	return o.afterSettlement()
}

// SettleCard settles the account by card. Accepted unconditionally; no
// external gateway call is modeled.
func (o *Order) SettleCard(now time.Time) error {
	if o.status == Cancelled {
		return ErrOrderIsTerminal
	}

	if err := o.payment.settleCard(now); err != nil {
		return err
	}

	o.touch()
	return o.afterSettlement()
}

// SettleTransfer settles the account by bank transfer, recording the
// operation reference.
func (o *Order) SettleTransfer(reference string, now time.Time) error {
	if o.status == Cancelled {
		return ErrOrderIsTerminal
	}

	if err := o.payment.settleTransfer(reference, now); err != nil {
		return err
	}

	o.touch()
	return o.afterSettlement()
}

// afterSettlement applies the status side effects of a successful
// settlement. Counter orders waiting at Ready are served immediately.
// Table orders are not closed here: the table stays occupied until the
// auto-release sweep fires after the grace delay.
func (o *Order) afterSettlement() error {
	if o.destination.IsCounter() && o.status == Ready {
		return o.Deliver()
	}
	return nil
}

// ReplaceItems re-opens the order and swaps its line items. Items that do
// not match a pre-edit dish (by name and variation) are flagged stale so
// the kitchen display calls out late additions. The total is recomputed.
// Editing never changes the order status.
func (o *Order) ReplaceItems(items []LineItem) error {
	if o.status.IsTerminal() {
		return ErrOrderIsTerminal
	}

	flagged := make([]LineItem, 0, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}

		known := false
		for _, existing := range o.items {
			if existing.isSameDish(item) {
				known = true
				break
			}
		}

		if known {
			flagged = append(flagged, item)
		} else {
			flagged = append(flagged, item.AsStale())
		}
	}

	if err := o.setItems(flagged); err != nil {
		return err
	}

	o.touch()
	return nil
}

// ReadyForTableRelease reports whether the delayed auto-release may close
// this order: a settled table order in Ready status whose payment is at
// least grace old. An order settled while still in the kitchen waits for
// MarkReady before it qualifies; terminal orders are never eligible, which
// makes the sweep a safe no-op when the order was independently closed.
func (o *Order) ReadyForTableRelease(now time.Time, grace time.Duration) bool {
	if !o.destination.IsTable() || o.status != Ready {
		return false
	}

	paidAt := o.payment.PaidAt()
	if !o.payment.IsPaid() || paidAt == nil {
		return false
	}

	return !now.Before(paidAt.Add(grace))
}

// touch records a mutation for optimistic stale-write detection.
func (o *Order) touch() {
	o.version++
}

func (o *Order) setID(id kernel.TicketID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomer(name, phone string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	o.customerName = name
	o.customerPhone = phone
	return nil
}

func (o *Order) setDestination(destination kernel.Destination) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	o.destination = destination
	return nil
}

func (o *Order) setChannel(channel Channel) error {
	if err := channel.Validate(); err != nil {
		return err
	}
	o.channel = channel
	return nil
}

// setItems validates the items and recomputes the derived total.
func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	total, err := kernel.NewMoney(0)
	if err != nil {
		return err
	}

	for _, item := range items {
		if itemErr := item.Validate(); itemErr != nil {
			return itemErr
		}
		total = total.Add(item.Extension())
	}

	o.items = make([]LineItem, len(items))
	copy(o.items, items)
	o.total = total
	return nil
}

// setWaiter requires an owning waiter for table orders, whose individual
// credential gates managing and settling the table.
func (o *Order) setWaiter(waiterID *kernel.UUID) error {
	if o.destination.IsTable() && waiterID == nil {
		return ErrWaiterIsRequired
	}

	if waiterID != nil {
		if err := waiterID.Validate(); err != nil {
			return err
		}
	}

	o.waiterID = waiterID
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// setDriver enforces that a driver reference exists only while the order
// is out for delivery.
func (o *Order) setDriver(driverID *kernel.UUID) error {
	if driverID == nil {
		return nil
	}

	if err := driverID.Validate(); err != nil {
		return err
	}

	if o.status != Delivery {
		return errs.NewValueIsInvalidError("driver is only assignable while out for delivery")
	}

	o.driverID = driverID
	return nil
}
