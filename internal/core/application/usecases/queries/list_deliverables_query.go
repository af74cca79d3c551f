package queries

import (
	"errors"

	"deliveryscheduler/internal/core/domain/model/deliverable"
	"deliveryscheduler/internal/core/domain/model/source"
	"deliveryscheduler/internal/pkg/guard"
)

var ErrListDeliverablesQueryIsNotConstructed = errors.New(
	"ListDeliverablesQuery must be created via NewListDeliverablesQuery constructor",
)

// ListDeliverablesQuery lists every eligible deliverable of the given kinds,
// or of all kinds when none are given, together with its current schedule.
type ListDeliverablesQuery struct {
	kinds []source.Kind

	guard guard.ConstructorGuard
}

func NewListDeliverablesQuery(kinds ...source.Kind) (ListDeliverablesQuery, error) {
	if len(kinds) == 0 {
		kinds = source.Kinds()
	}
	for _, k := range kinds {
		if err := k.Validate(); err != nil {
			return ListDeliverablesQuery{}, err
		}
	}

	return ListDeliverablesQuery{
		kinds: append([]source.Kind(nil), kinds...),
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q ListDeliverablesQuery) Validate() error {
	return q.guard.Validate(ErrListDeliverablesQueryIsNotConstructed)
}

func (q ListDeliverablesQuery) Kinds() []source.Kind {
	return append([]source.Kind(nil), q.kinds...)
}

type ListDeliverablesQueryResponse struct {
	Items   []DeliverableView
	Summary DeliverablesSummary
}

// DeliverableView pairs a deliverable with its most recent schedule, which
// is nil for deliverables that were never scheduled.
type DeliverableView struct {
	Deliverable deliverable.Deliverable
	Schedule    *ScheduleView
}

// DeliverablesSummary counts deliverables by kind. Scheduled counts those with
// a schedule that is not cancelled; Pending counts the rest.
type DeliverablesSummary struct {
	Total     int
	ByKind    map[source.Kind]int
	Scheduled int
	Pending   int
}
