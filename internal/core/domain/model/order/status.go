package order

import (
	"fmt"

	"burgercounter/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions so orders follow
// the kitchen workflow.
//
// State transitions:
//
//	Accepted ──> Preparing ──> OutForDelivery ──> Completed
//	    │            │                │
//	    └────────────┴────────────────┴──> Cancelled
//
// Completed and Cancelled are terminal: no transition leaves them.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Accepted is the initial status when an order is created.
	Accepted

	// Preparing indicates the kitchen has started on the order.
	Preparing

	// OutForDelivery indicates the order has left the counter.
	OutForDelivery

	// Completed indicates the order was delivered. Terminal.
	Completed

	// Cancelled indicates the order was called off. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "Unknown",
		Accepted:       "Accepted",
		Preparing:      "Preparing",
		OutForDelivery: "OutForDelivery",
		Completed:      "Completed",
		Cancelled:      "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Accepted:       "Accepted",
		Preparing:      "Preparing",
		OutForDelivery: "OutForDelivery",
		Completed:      "Completed",
		Cancelled:      "Cancelled",
	}
}

// ParseStatus converts a wire string into a Status.
// Unknown values are rejected with a validation error, so bad input never
// reaches the state machine.
func ParseStatus(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is one of the defined states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the wire name of the status, or "Unknown" for invalid values.
// Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no transition leaves this status.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// next returns the single forward step in the kitchen workflow.
func (s Status) next() (Status, bool) {
	switch s {
	case Accepted:
		return Preparing, true
	case Preparing:
		return OutForDelivery, true
	case OutForDelivery:
		return Completed, true
	default:
		return Unknown, false
	}
}

// CanTransitionTo reports whether the state machine permits moving from s
// to target in one step. Permitted moves are the single forward step plus
// cancellation from any non-terminal state.
func (s Status) CanTransitionTo(target Status) bool {
	if s.Validate() != nil || target.Validate() != nil {
		return false
	}

	if target == Cancelled {
		return !s.IsTerminal()
	}

	forward, ok := s.next()
	return ok && forward == target
}

// TransitionTo performs the state change, returning the new status.
// Illegal moves fail with an InvalidStatusTransitionError.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}

	if !s.CanTransitionTo(target) {
		return Unknown, errs.NewInvalidStatusTransitionError(s.String(), target.String())
	}

	return target, nil
}
