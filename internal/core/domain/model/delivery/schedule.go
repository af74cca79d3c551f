package delivery

import (
	"errors"
	"strings"
	"time"

	"deliveryscheduler/internal/core/domain/model/kernel"
	"deliveryscheduler/internal/core/domain/model/source"
	"deliveryscheduler/internal/pkg/errs"
)

var (
	// ErrScheduleIsNotConstructed is returned when a Schedule was not built by one of its constructors.
	ErrScheduleIsNotConstructed = errors.New("Schedule must be created via NewSchedule, NewPendingSchedule or RestoreSchedule")

	ErrPublicReferenceIsRequired = errs.NewValueIsRequiredError("public reference")
)

// Booking carries the date, slot and assignment requested when a delivery is
// scheduled or rescheduled. Empty Notes and a nil CourierID keep the values
// already on the schedule; an empty Priority keeps the current priority.
type Booking struct {
	Date      kernel.Date
	TimeSlot  string
	CourierID *kernel.UUID
	Notes     string
	Priority  Priority
}

func (b Booking) validate() error {
	var courierErr, priorityErr error
	if b.CourierID != nil {
		courierErr = b.CourierID.Validate()
	}
	if b.Priority != "" {
		priorityErr = b.Priority.Validate()
	}
	return errors.Join(b.Date.Validate(), courierErr, priorityErr)
}

// Transition records one accepted status change.
type Transition struct {
	From    Status
	To      Status
	Forced  bool
	Warning string
}

// Mirror is the denormalized view of a schedule written back onto its source row.
type Mirror struct {
	Status Status
	Notes  string
	Date   *kernel.Date
}

// Schedule binds one deliverable to a delivery date and tracks its status.
// It is the aggregate root of the delivery package.
//
// Invariants:
//   - at most one non-terminal schedule exists per source Ref (enforced by storage)
//   - a schedule created through NewSchedule always has a delivery date
//   - DispatchedAt and DeliveredAt are set only when entering InTransit and Delivered
type Schedule struct {
	id              kernel.UUID
	source          source.Ref
	publicReference string
	deliveryDate    *kernel.Date
	timeSlot        string
	status          Status
	courierID       *kernel.UUID
	notes           string
	priority        Priority
	createdAt       time.Time
	updatedAt       time.Time
	dispatchedAt    *time.Time
	deliveredAt     *time.Time
	isConstructed   bool
}

// NewSchedule creates a schedule in Scheduled status for an explicit booking.
//
// Example:
//
//	date, _ := kernel.ParseDate("2025-03-10")
//	s, err := delivery.NewSchedule(kernel.NewUUID(), ref, "ORD-1001",
//	    delivery.Booking{Date: date, TimeSlot: "morning"}, time.Now())
func NewSchedule(
	id kernel.UUID,
	ref source.Ref,
	publicReference string,
	booking Booking,
	now time.Time,
) (*Schedule, error) {
	s := &Schedule{
		status:        Scheduled,
		priority:      PriorityNormal,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setSource(ref),
		s.setPublicReference(publicReference),
		booking.validate(),
	); err != nil {
		return nil, err
	}

	s.applyBooking(booking)
	return s, nil
}

// NewPendingSchedule creates a schedule in Pending status. It backs status
// changes requested for a source that was never explicitly scheduled; date may be nil.
func NewPendingSchedule(
	id kernel.UUID,
	ref source.Ref,
	publicReference string,
	date *kernel.Date,
	now time.Time,
) (*Schedule, error) {
	s := &Schedule{
		status:        Pending,
		priority:      PriorityNormal,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	var dateErr error
	if date != nil {
		dateErr = date.Validate()
	}
	if err := errors.Join(
		s.setID(id),
		s.setSource(ref),
		s.setPublicReference(publicReference),
		dateErr,
	); err != nil {
		return nil, err
	}

	s.deliveryDate = date
	return s, nil
}

// Snapshot is the full persisted state of a schedule.
type Snapshot struct {
	ID              kernel.UUID
	Source          source.Ref
	PublicReference string
	DeliveryDate    *kernel.Date
	TimeSlot        string
	Status          Status
	CourierID       *kernel.UUID
	Notes           string
	Priority        Priority
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DispatchedAt    *time.Time
	DeliveredAt     *time.Time
}

// RestoreSchedule rebuilds a schedule from storage without applying lifecycle rules.
func RestoreSchedule(snap Snapshot) (*Schedule, error) {
	s := &Schedule{
		deliveryDate:  snap.DeliveryDate,
		timeSlot:      snap.TimeSlot,
		courierID:     snap.CourierID,
		notes:         snap.Notes,
		createdAt:     snap.CreatedAt,
		updatedAt:     snap.UpdatedAt,
		dispatchedAt:  snap.DispatchedAt,
		deliveredAt:   snap.DeliveredAt,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(snap.ID),
		s.setSource(snap.Source),
		s.setPublicReference(snap.PublicReference),
		s.setStatus(snap.Status),
		s.setPriority(snap.Priority),
	); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Schedule) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrScheduleIsNotConstructed
	}
	return nil
}

func (s *Schedule) ID() kernel.UUID {
	return s.id
}

func (s *Schedule) Source() source.Ref {
	return s.source
}

func (s *Schedule) PublicReference() string {
	return s.publicReference
}

// DeliveryDate is nil only for a pending schedule created without a date.
func (s *Schedule) DeliveryDate() *kernel.Date {
	return s.deliveryDate
}

func (s *Schedule) TimeSlot() string {
	return s.timeSlot
}

func (s *Schedule) Status() Status {
	return s.status
}

func (s *Schedule) CourierID() *kernel.UUID {
	return s.courierID
}

func (s *Schedule) Notes() string {
	return s.notes
}

func (s *Schedule) Priority() Priority {
	return s.priority
}

func (s *Schedule) CreatedAt() time.Time {
	return s.createdAt
}

func (s *Schedule) UpdatedAt() time.Time {
	return s.updatedAt
}

func (s *Schedule) DispatchedAt() *time.Time {
	return s.dispatchedAt
}

func (s *Schedule) DeliveredAt() *time.Time {
	return s.deliveredAt
}

// IsActive is true while the schedule is not terminal.
func (s *Schedule) IsActive() bool {
	return !s.status.IsTerminal()
}

// OccupiesCapacity reports whether the schedule counts against its day's cap.
func (s *Schedule) OccupiesCapacity() bool {
	return s.deliveryDate != nil && s.status != Cancelled
}

// Mirror returns what the source row must show for this schedule.
func (s *Schedule) Mirror() Mirror {
	return Mirror{
		Status: s.status,
		Notes:  s.notes,
		Date:   s.deliveryDate,
	}
}

// Reschedule moves an active schedule to a new booking and back to Scheduled.
// A delivery already in transit cannot be rescheduled.
func (s *Schedule) Reschedule(booking Booking, now time.Time) (Transition, error) {
	if err := booking.validate(); err != nil {
		return Transition{}, err
	}
	if s.status == InTransit || s.status.IsTerminal() {
		return Transition{}, errs.NewInvalidTransitionError(s.status.String(), Scheduled.String())
	}

	tr := Transition{From: s.status, To: Scheduled}
	s.status = Scheduled
	s.applyBooking(booking)
	s.updatedAt = now
	return tr, nil
}

// ChangeStatus applies a lifecycle transition on behalf of actor. Non-empty
// notes replace the schedule notes.
func (s *Schedule) ChangeStatus(to Status, notes string, actor Actor, now time.Time) (Transition, error) {
	next, warning, err := s.status.TransitionTo(to, actor.IsPrivileged())
	if err != nil {
		return Transition{}, err
	}

	tr := Transition{
		From:    s.status,
		To:      next,
		Forced:  warning != "",
		Warning: warning,
	}

	if next != s.status {
		switch next {
		case InTransit:
			s.dispatchedAt = &now
		case Delivered:
			s.deliveredAt = &now
		default:
		}
	}

	s.status = next
	if n := strings.TrimSpace(notes); n != "" {
		s.notes = n
	}
	s.updatedAt = now
	return tr, nil
}

func (s *Schedule) applyBooking(b Booking) {
	date := b.Date
	s.deliveryDate = &date
	s.timeSlot = strings.TrimSpace(b.TimeSlot)
	if b.CourierID != nil {
		id := *b.CourierID
		s.courierID = &id
	}
	if n := strings.TrimSpace(b.Notes); n != "" {
		s.notes = n
	}
	if b.Priority != "" {
		s.priority = b.Priority
	}
}

func (s *Schedule) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Schedule) setSource(ref source.Ref) error {
	if err := ref.Validate(); err != nil {
		return err
	}
	s.source = ref
	return nil
}

func (s *Schedule) setPublicReference(ref string) error {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ErrPublicReferenceIsRequired
	}
	s.publicReference = ref
	return nil
}

func (s *Schedule) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	s.status = status
	return nil
}

func (s *Schedule) setPriority(p Priority) error {
	if p == "" {
		s.priority = PriorityNormal
		return nil
	}
	if err := p.Validate(); err != nil {
		return err
	}
	s.priority = p
	return nil
}
