package vehicle

import (
	"fmt"

	"github.com/anton-yakubau-innowise/VehicleService/internal/pkg/errs"
)

// Status represents the lifecycle state of a vehicle in the inventory.
// It implements a state machine with defined transitions:
//
//	Available ──> Reserved ──> Sold
//	    │    <──      │   ───────┘
//	    └────────────────────────> Sold (direct sale without reservation)
//
// Sold is effectively terminal for the guarded transitions; only the
// explicitly named administrative override can leave it.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusAvailable is the initial status of every registered vehicle.
	StatusAvailable

	// StatusReserved indicates the vehicle is held for a prospective buyer.
	StatusReserved

	// StatusSold indicates the sale has closed.
	StatusSold
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "Unknown",
		StatusAvailable: "Available",
		StatusReserved:  "Reserved",
		StatusSold:      "Sold",
	}
}

// getValidStatusStrings returns only the statuses a vehicle may legitimately hold.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusAvailable: "Available",
		StatusReserved:  "Reserved",
		StatusSold:      "Sold",
	}
}

// Validate checks if the Status value is one of Available, Reserved, Sold.
// Values from external sources (database, API) must pass this before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer; safe to call on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromString parses a status from its textual form, as persisted by the
// storage adapter or received at the transport boundary.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Reserve transitions the status to Reserved.
//
// Valid transitions:
//   - Available -> Reserved
//
// Any other current status fails with an InvalidStateTransitionError.
func (s Status) Reserve() (Status, error) {
	if s != StatusAvailable {
		return StatusUnknown, errs.NewInvalidStateTransitionError("reserve", s.String())
	}

	return StatusReserved, nil
}

// Sell transitions the status to Sold.
//
// Valid transitions:
//   - Available -> Sold (direct sale)
//   - Reserved  -> Sold (reservation converted)
//
// Selling an already Sold vehicle fails with an InvalidStateTransitionError.
func (s Status) Sell() (Status, error) {
	if s != StatusAvailable && s != StatusReserved {
		return StatusUnknown, errs.NewInvalidStateTransitionError("sell", s.String())
	}

	return StatusSold, nil
}

// MakeAvailable transitions the status back to Available.
//
// Valid transitions:
//   - Available -> Available (idempotent release)
//   - Reserved  -> Available (reservation dropped)
//
// There is no direct un-sell path: a Sold vehicle fails with an
// InvalidStateTransitionError.
func (s Status) MakeAvailable() (Status, error) {
	if s == StatusSold || s.Validate() != nil {
		return StatusUnknown, errs.NewInvalidStateTransitionError("make available", s.String())
	}

	return StatusAvailable, nil
}
