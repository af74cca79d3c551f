package delivery

import (
	"fmt"
	"strings"

	"deliveryscheduler/internal/pkg/errs"
)

// Status is the lifecycle state of a delivery schedule.
//
// State transitions:
//
//	Pending   -> Scheduled, Cancelled
//	Scheduled -> InTransit, Delayed, Cancelled
//	InTransit -> Delivered, Delayed
//	Delayed   -> Scheduled, Delivered, Cancelled
//
// Delivered and Cancelled are terminal. Staying in the same status is always allowed.
type Status int

const (
	// Unknown (0) catches uninitialized values.
	Unknown Status = iota
	Pending
	Scheduled
	InTransit
	Delayed
	Delivered
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Scheduled: "scheduled",
		InTransit: "in_transit",
		Delayed:   "delayed",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// getTransitions is the table of legal moves for non-privileged actors.
func getTransitions() map[Status][]Status {
	//nolint:exhaustive // terminal and Unknown statuses have no outgoing edges
	return map[Status][]Status{
		Pending:   {Scheduled, Cancelled},
		Scheduled: {InTransit, Delayed, Cancelled},
		InTransit: {Delivered, Delayed},
		Delayed:   {Scheduled, Delivered, Cancelled},
	}
}

// legacyStatuses maps every delivery_status spelling found on source rows to
// its canonical status. It is consulted only at the normalization boundary.
func legacyStatuses() map[string]Status {
	return map[string]Status{
		"":                 Pending,
		"pending":          Pending,
		"order received":   Pending,
		"scheduled":        Scheduled,
		"confirmed":        Scheduled,
		"in_transit":       InTransit,
		"in-transit":       InTransit,
		"shipped":          InTransit,
		"out_for_delivery": InTransit,
		"delayed":          Delayed,
		"failed":           Delayed,
		"delivered":        Delivered,
		"completed":        Delivered,
		"cancelled":        Cancelled,
		"canceled":         Cancelled,
		"removed":          Cancelled,
	}
}

// ParseStatus accepts only canonical status names.
func ParseStatus(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if status != Unknown && str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a delivery status", s))
}

// ParseLegacyStatus maps a raw mirror value from a source table onto the
// canonical vocabulary. Matching is case-insensitive and ignores surrounding spaces.
func ParseLegacyStatus(raw string) (Status, error) {
	if s, ok := legacyStatuses()[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return s, nil
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("delivery status", fmt.Errorf("%q has no canonical mapping", raw))
}

func (s Status) Validate() error {
	if s <= Unknown || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal is true for Delivered and Cancelled.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// IsProgression reports whether a status implies the delivery has moved past
// pending, which is enough to materialize a schedule that does not exist yet.
func (s Status) IsProgression() bool {
	return s == Scheduled || s == InTransit || s == Delayed || s == Delivered
}

// CanTransitionTo reports whether to is reachable from s without privileges.
func (s Status) CanTransitionTo(to Status) bool {
	if s == to {
		return true
	}
	for _, next := range getTransitions()[s] {
		if next == to {
			return true
		}
	}
	return false
}

// TransitionTo validates s -> to. Privileged actors may force an edge that is
// not in the table; the returned warning is then non-empty and must be audited.
func (s Status) TransitionTo(to Status, privileged bool) (Status, string, error) {
	if err := to.Validate(); err != nil {
		return Unknown, "", err
	}
	if s.CanTransitionTo(to) {
		return to, "", nil
	}
	if !privileged {
		return Unknown, "", errs.NewInvalidTransitionError(s.String(), to.String())
	}
	return to, fmt.Sprintf("forced transition %s -> %s outside the delivery lifecycle", s, to), nil
}
