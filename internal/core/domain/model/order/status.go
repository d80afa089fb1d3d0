package order

import (
	"fmt"

	"resto/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct station workflow.
//
// State transitions:
//
//	Kitchen ──> Ready ──┬──> Delivery ──> Delivered
//	                    │                    ^
//	                    └────────────────────┘
//	              (direct for table/counter orders)
//
// Cancelled is terminal and reachable from any non-terminal state.
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Kitchen is the initial status: the order is being prepared.
	Kitchen

	// Ready indicates preparation is finished. The order is waiting to be
	// served, picked up, or dispatched to a driver.
	Ready

	// Delivery indicates the order is out for delivery with a driver.
	// Only off-premises orders reach this status.
	Delivery

	// Delivered indicates the order has been handed over. Terminal.
	Delivered

	// Cancelled indicates the order was voided. Terminal, not re-enterable.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Kitchen:   "Kitchen",
		Ready:     "Ready",
		Delivery:  "Delivery",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Kitchen:   "Kitchen",
		Ready:     "Ready",
		Delivery:  "Delivery",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

// Validate checks if the Status value is valid.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// MarkReady transitions the status from Kitchen to Ready.
// This is the kitchen station's transition and is unconditional: there is
// no payment precondition on finishing preparation.
//
// Returns:
//   - (Ready, nil) on valid transition
//   - (0, error) if the order is not in Kitchen status
func (s Status) MarkReady() (Status, error) {
	if s != Kitchen {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to mark ready", s),
		)
	}

	return Ready, nil
}

// Dispatch transitions the status from Ready to Delivery.
// Only the dispatch station performs this transition, and only after the
// driver and ticket-verification preconditions checked by the aggregate.
//
// Returns:
//   - (Delivery, nil) on valid transition
//   - (0, error) if the order is not in Ready status
func (s Status) Dispatch() (Status, error) {
	if s != Ready {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to dispatch", s),
		)
	}

	return Delivery, nil
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - Ready -> Delivered (table and counter orders served on premises)
//   - Delivery -> Delivered (delivery completed)
//   - Delivered -> Delivered (no-op, so the delayed table auto-release can
//     fire after an order was independently closed)
//
// Invalid transitions:
//   - Kitchen -> Delivered (must pass through Ready)
//   - Cancelled -> Delivered (terminal, not re-enterable)
func (s Status) Deliver() (Status, error) {
	if s == Delivered {
		return Delivered, nil
	}

	if s != Ready && s != Delivery {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to deliver", s),
		)
	}

	return Delivered, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - any non-terminal status -> Cancelled
//   - Cancelled -> Cancelled (no-op)
//
// Invalid transitions:
//   - Delivered -> Cancelled (completed orders cannot be voided)
func (s Status) Cancel() (Status, error) {
	if s == Cancelled {
		return Cancelled, nil
	}

	if s == Delivered {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to cancel", s),
		)
	}

	if err := s.Validate(); err != nil {
		return 0, err
	}

	return Cancelled, nil
}
