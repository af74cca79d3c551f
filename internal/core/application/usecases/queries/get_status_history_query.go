package queries

import (
	"errors"

	"deliveryscheduler/internal/core/domain/model/kernel"
	"deliveryscheduler/internal/pkg/guard"
)

var ErrGetStatusHistoryQueryIsNotConstructed = errors.New(
	"GetStatusHistoryQuery must be created via NewGetStatusHistoryQuery constructor",
)

// GetStatusHistoryQuery asks for the audit trail of one schedule.
type GetStatusHistoryQuery struct {
	scheduleID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetStatusHistoryQuery(scheduleID kernel.UUID) (GetStatusHistoryQuery, error) {
	if err := scheduleID.Validate(); err != nil {
		return GetStatusHistoryQuery{}, err
	}
	return GetStatusHistoryQuery{
		scheduleID: scheduleID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q GetStatusHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetStatusHistoryQueryIsNotConstructed)
}

func (q GetStatusHistoryQuery) ScheduleID() kernel.UUID {
	return q.scheduleID
}
