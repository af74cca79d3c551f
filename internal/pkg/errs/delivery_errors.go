package errs

import (
	"errors"
	"fmt"
)

var (
	ErrCapacityExceeded     = errors.New("delivery capacity exceeded")
	ErrInvalidTransition    = errors.New("invalid status transition")
	ErrNotEligible          = errors.New("source record is not eligible for delivery")
	ErrConsistencyViolation = errors.New("delivery status consistency violation")
)

// CapacityExceededError is returned when a date already holds Max active bookings.
type CapacityExceededError struct {
	Date    string
	Current int
	Max     int
}

func NewCapacityExceededError(date string, current, maxDeliveries int) *CapacityExceededError {
	return &CapacityExceededError{
		Date:    date,
		Current: current,
		Max:     maxDeliveries,
	}
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("%s: %s has %d of %d deliveries booked", ErrCapacityExceeded, e.Date, e.Current, e.Max)
}

func (e *CapacityExceededError) Unwrap() error {
	return ErrCapacityExceeded
}

// InvalidTransitionError is returned when a delivery status change is not in the lifecycle table.
type InvalidTransitionError struct {
	From string
	To   string
}

func NewInvalidTransitionError(from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{
		From: from,
		To:   to,
	}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// NotEligibleError names the source record and the gate it failed.
type NotEligibleError struct {
	Kind   string
	ID     string
	Reason string
}

func NewNotEligibleError(kind, id, reason string) *NotEligibleError {
	return &NotEligibleError{
		Kind:   kind,
		ID:     id,
		Reason: reason,
	}
}

func (e *NotEligibleError) Error() string {
	return fmt.Sprintf("%s: %s %s (%s)", ErrNotEligible, e.Kind, e.ID, e.Reason)
}

func (e *NotEligibleError) Unwrap() error {
	return ErrNotEligible
}

// ConsistencyViolationError describes a schedule whose status disagrees with the source mirror.
type ConsistencyViolationError struct {
	Kind           string
	ID             string
	ScheduleStatus string
	MirrorStatus   string
}

func NewConsistencyViolationError(kind, id, scheduleStatus, mirrorStatus string) *ConsistencyViolationError {
	return &ConsistencyViolationError{
		Kind:           kind,
		ID:             id,
		ScheduleStatus: scheduleStatus,
		MirrorStatus:   mirrorStatus,
	}
}

func (e *ConsistencyViolationError) Error() string {
	return fmt.Sprintf("%s: %s %s schedule is %q, mirror is %q",
		ErrConsistencyViolation, e.Kind, e.ID, e.ScheduleStatus, e.MirrorStatus)
}

func (e *ConsistencyViolationError) Unwrap() error {
	return ErrConsistencyViolation
}
