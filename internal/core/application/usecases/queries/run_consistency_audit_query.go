package queries

import (
	"errors"
	"fmt"

	"deliveryscheduler/internal/core/domain/model/delivery"
	"deliveryscheduler/internal/core/domain/model/kernel"
	"deliveryscheduler/internal/core/domain/model/source"
	"deliveryscheduler/internal/pkg/errs"
	"deliveryscheduler/internal/pkg/guard"
)

var ErrRunConsistencyAuditQueryIsNotConstructed = errors.New(
	"RunConsistencyAuditQuery must be created via NewRunConsistencyAuditQuery constructor",
)

// RunConsistencyAuditQuery compares every source's most recent schedule with
// the delivery mirror on the source row. With no kinds given, all kinds are audited.
type RunConsistencyAuditQuery struct {
	kinds []source.Kind

	guard guard.ConstructorGuard
}

func NewRunConsistencyAuditQuery(kinds ...source.Kind) (RunConsistencyAuditQuery, error) {
	if len(kinds) == 0 {
		kinds = source.Kinds()
	}
	for _, k := range kinds {
		if err := k.Validate(); err != nil {
			return RunConsistencyAuditQuery{}, err
		}
	}

	return RunConsistencyAuditQuery{
		kinds: append([]source.Kind(nil), kinds...),
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q RunConsistencyAuditQuery) Validate() error {
	return q.guard.Validate(ErrRunConsistencyAuditQueryIsNotConstructed)
}

func (q RunConsistencyAuditQuery) Kinds() []source.Kind {
	return append([]source.Kind(nil), q.kinds...)
}

// Mismatch is one schedule whose status is not what its source row shows.
// MirrorStatus is the raw column value; CanonicalMirror is its mapping, or
// Unknown for values without one.
type Mismatch struct {
	ScheduleID      kernel.UUID
	Source          source.Ref
	PublicReference string
	ScheduleStatus  delivery.Status
	MirrorStatus    string
	CanonicalMirror delivery.Status
	SourceMissing   bool
	SuggestedRepair string
}

// Violation converts the mismatch into the error reported to operators.
func (m Mismatch) Violation() *errs.ConsistencyViolationError {
	mirror := m.MirrorStatus
	if m.SourceMissing {
		mirror = "<missing source row>"
	}
	return errs.NewConsistencyViolationError(m.Source.Kind.String(), m.Source.ID, m.ScheduleStatus.String(), mirror)
}

func suggestRepair(m Mismatch, table string) string {
	if m.SourceMissing {
		return fmt.Sprintf("source row %s no longer exists; cancel schedule %s", m.Source, m.ScheduleID)
	}
	return fmt.Sprintf("set %s.delivery_status = '%s' where id = %s", table, m.ScheduleStatus, m.Source.ID)
}
