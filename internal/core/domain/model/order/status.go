package order

import (
	"fmt"
	"strings"

	"tableside/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a strictly linear state machine:
//
//	Ordered ──> Ready ──> Delivered ──> Paid
//
// An order only ever advances one step forward. Paid is terminal. Each step
// is performed by exactly one role (see AuthorizedRole).
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Ordered is the initial status assigned when a cart is submitted.
	// Orders in this status are waiting for the kitchen.
	Ordered

	// Ready indicates the kitchen has finished preparing the order.
	Ready

	// Delivered indicates the order has been brought to the table.
	Delivered

	// Paid indicates the order has been settled.
	// This is the terminal state with no further transitions.
	Paid
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Ordered:   "Ordered",
		Ready:     "Ready",
		Delivered: "Delivered",
		Paid:      "Paid",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Ordered:   "Ordered",
		Ready:     "Ready",
		Delivered: "Delivered",
		Paid:      "Paid",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are: Ordered, Ready, Delivered, Paid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Invalid values are reported as "Unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromString parses a status from its wire representation.
// Matching is case-insensitive because the remote store is known to carry
// both "Ordered" and "ordered" spellings.
func StatusFromString(raw string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if strings.EqualFold(raw, str) {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", raw),
	)
}

// IsTerminal reports whether the status has no successor.
func (s Status) IsTerminal() bool {
	return s == Paid
}

// Next returns the unique successor of the status.
//
// Returns an error wrapping ErrIllegalTransition if the status is terminal
// or not a valid lifecycle state.
func (s Status) Next() (Status, error) {
	switch s {
	case Ordered:
		return Ready, nil
	case Ready:
		return Delivered, nil
	case Delivered:
		return Paid, nil
	default:
		return Unknown, fmt.Errorf("%w: %s has no successor", ErrIllegalTransition, s)
	}
}
