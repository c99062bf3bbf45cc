package order

import (
	"fmt"

	"grubdash/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct fulfillment workflow.
//
// State transitions:
//
//	pending <──> preparing <──> out-for-delivery ──> delivered
//	   (any non-terminal state may be overwritten by update)
//
// A new order carries no status at all; pending is implicit and is only
// ever written explicitly by an update. delivered is terminal: once a
// stored order reaches it, no further update is accepted. Deletion is
// permitted only while the order is pending.
//
// The machine is an update-time gate, not a standing invariant: records
// restored from storage are not re-validated against it.
type Status string

const (
	// Unknown is the zero value. A freshly created order has this status
	// until the first update supplies one; it is serialized as an absent
	// field.
	Unknown Status = ""

	// Pending is the implicit initial state and the only state from which
	// an order may be deleted.
	Pending Status = "pending"

	// Preparing indicates the kitchen has started on the order.
	Preparing Status = "preparing"

	// OutForDelivery indicates the order has left the restaurant.
	OutForDelivery Status = "out-for-delivery"

	// Delivered is the terminal state. A delivered order cannot be changed.
	Delivered Status = "delivered"
)

// IsUpdateTarget reports whether an update may write s as the new status.
// Only the three forward-progress values qualify; Delivered is a valid
// stored state but never a valid target of further mutation.
func (s Status) IsUpdateTarget() bool {
	switch s {
	case Pending, Preparing, OutForDelivery:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether s admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered
}

// AllowsDeletion reports whether an order in state s may be deleted.
func (s Status) AllowsDeletion() bool {
	return s == Pending
}

// Validate checks that s is one of the four defined states or the unset
// zero value. Used when restoring orders from external storage.
func (s Status) Validate() error {
	switch s {
	case Unknown, Pending, Preparing, OutForDelivery, Delivered:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", string(s)))
	}
}
