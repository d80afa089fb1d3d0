package services

import (
	"errors"
	"time"

	"resto/internal/core/domain/model/driver"
	"resto/internal/core/domain/model/order"
)

// ErrDriverHasActiveDelivery is returned when the chosen driver is already
// carrying a delivery-status order. A driver runs at most one route at a
// time; the check scans the active deliveries rather than trusting a
// back-reference on the driver record.
var ErrDriverHasActiveDelivery = errors.New("driver already has a delivery in progress")

// DispatchService is the domain service releasing a ready delivery order
// to a driver. It coordinates the two aggregates involved: the order
// (ticket verification, status transition, dispatch stamp) and the driver
// (availability and the busy toggle).
//
// Business rules:
//   - The order and driver must be valid aggregates.
//   - The driver must be available and hold no active delivery; the
//     active-delivery check is a derived join over the ledger.
//   - The order's own Dispatch preconditions apply: off-premises
//     destination, Ready status, and the operator-entered confirmation
//     matching the ticket identifier case-insensitively.
//
// Example usage:
//
//	svc := services.NewDispatchService()
//	err := svc.Dispatch(ord, drv, activeDeliveries, "ord-101", time.Now())
//	if errors.Is(err, order.ErrTicketMismatch) {
//	    // Operator mistyped the ticket; nothing changed.
//	}
type DispatchService struct{}

// NewDispatchService creates a new DispatchService instance.
func NewDispatchService() DispatchService {
	return DispatchService{}
}

// Dispatch verifies the dispatch ticket and, on success, moves the order
// out for delivery and marks the driver busy.
//
// Parameters:
//   - ord: the ready delivery order
//   - drv: the chosen driver
//   - activeDeliveries: all ledger orders currently in Delivery status,
//     used for the one-route-per-driver check
//   - confirmation: the operator-entered ticket text
//   - now: the dispatch timestamp
//
// No aggregate is mutated unless every precondition passes.
func (s DispatchService) Dispatch(
	ord *order.Order,
	drv *driver.Driver,
	activeDeliveries []*order.Order,
	confirmation string,
	now time.Time,
) error {
	if err := ord.Validate(); err != nil {
		return err
	}
	if err := drv.Validate(); err != nil {
		return err
	}

	if !drv.IsAvailable() {
		return driver.ErrDriverIsNotAvailable
	}

	for _, active := range activeDeliveries {
		if assigned := active.Driver(); assigned != nil && assigned.IsEqual(drv.ID()) {
			return ErrDriverHasActiveDelivery
		}
	}

	if err := ord.Dispatch(drv.ID(), confirmation, now); err != nil {
		return err
	}

	return drv.BeginDelivery()
}
