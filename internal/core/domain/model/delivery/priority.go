package delivery

import (
	"fmt"
	"strings"

	"deliveryscheduler/internal/pkg/errs"
)

// Priority orders deliveries booked on the same day.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// ParsePriority defaults an empty value to PriorityNormal.
func ParsePriority(s string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(s)))
	if p == "" {
		return PriorityNormal, nil
	}
	if err := p.Validate(); err != nil {
		return "", err
	}
	return p, nil
}

func (p Priority) Validate() error {
	switch p {
	case PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("priority", fmt.Errorf("%q is not one of low, normal, high, urgent", string(p)))
	}
}

func (p Priority) String() string {
	return string(p)
}
