package driver

import (
	"fmt"

	"resto/internal/pkg/errs"
)

// Status is the driver's roster availability state.
//
// State transitions:
//
//	Available ──> Busy ──> Available
//
// Offline drivers are roster-managed externally and never picked for
// dispatch; the busy/available toggle is driven only by delivery
// begin/completion events.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// Available means the driver can be matched to a ready delivery order.
	Available

	// Busy means the driver has a delivery in progress.
	Busy

	// Offline means the driver is off shift.
	Offline
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "Unknown",
		Available:     "Available",
		Busy:          "Busy",
		Offline:       "Offline",
	}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if s != Available && s != Busy && s != Offline {
		return errs.NewValueIsInvalidErrorWithCause("driver status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// VehicleType is what the driver rides on routes.
type VehicleType int

const (
	// VehicleUnknown represents an invalid or undefined vehicle type.
	VehicleUnknown VehicleType = iota

	// Motorcycle is the default delivery vehicle.
	Motorcycle

	// Bicycle is used for short-range routes.
	Bicycle

	// Car is used for large orders.
	Car
)

// Validate checks if the VehicleType value is valid.
func (v VehicleType) Validate() error {
	if v != Motorcycle && v != Bicycle && v != Car {
		return errs.NewValueIsInvalidErrorWithCause("vehicle type", fmt.Errorf("%d is not a valid vehicle type", v))
	}
	return nil
}

// String returns the human-readable name of the vehicle type.
func (v VehicleType) String() string {
	switch v {
	case Motorcycle:
		return "Motorcycle"
	case Bicycle:
		return "Bicycle"
	case Car:
		return "Car"
	default:
		return "Unknown"
	}
}
