package commands

import (
	"errors"
	"strings"

	"deliveryscheduler/internal/core/domain/model/delivery"
	"deliveryscheduler/internal/core/domain/model/kernel"
	"deliveryscheduler/internal/core/domain/model/source"
	"deliveryscheduler/internal/pkg/errs"
	"deliveryscheduler/internal/pkg/guard"
)

var (
	ErrUpdateStatusCommandIsNotConstructed = errors.New(
		"UpdateStatusCommand must be created via NewUpdateStatusByIDCommand or NewUpdateStatusBySourceCommand",
	)
	ErrActorIsRequired = errs.NewValueIsRequiredError("actor id")
)

// UpdateStatusCommand moves a delivery to a new status. It targets either a
// schedule id or a source reference; in the latter case the most recent
// schedule of the source is used, and one is created when the source has none
// and the new status implies the delivery has progressed.
type UpdateStatusCommand struct { //nolint:recvcheck //using for validation
	scheduleID *kernel.UUID
	source     *source.Ref
	status     delivery.Status
	notes      string
	actor      delivery.Actor

	guard guard.ConstructorGuard
}

// NewUpdateStatusByIDCommand targets an existing schedule.
//
// Example:
//
//	cmd, err := NewUpdateStatusByIDCommand(id, delivery.Delivered, "left with guard",
//	    delivery.Actor{ID: "u-7", Name: "Ana", Role: "staff"})
func NewUpdateStatusByIDCommand(
	scheduleID kernel.UUID,
	status delivery.Status,
	notes string,
	actor delivery.Actor,
) (UpdateStatusCommand, error) {
	cmd := newUpdateStatusCommand(notes, actor)

	var idErr error
	if idErr = scheduleID.Validate(); idErr == nil {
		cmd.scheduleID = &scheduleID
	}

	if err := errors.Join(idErr, cmd.setStatus(status), cmd.validateActor()); err != nil {
		return UpdateStatusCommand{}, err
	}
	return cmd, nil
}

// NewUpdateStatusBySourceCommand targets the schedule of a source row.
func NewUpdateStatusBySourceCommand(
	ref source.Ref,
	status delivery.Status,
	notes string,
	actor delivery.Actor,
) (UpdateStatusCommand, error) {
	cmd := newUpdateStatusCommand(notes, actor)

	var refErr error
	if refErr = ref.Validate(); refErr == nil {
		cmd.source = &ref
	}

	if err := errors.Join(refErr, cmd.setStatus(status), cmd.validateActor()); err != nil {
		return UpdateStatusCommand{}, err
	}
	return cmd, nil
}

func newUpdateStatusCommand(notes string, actor delivery.Actor) UpdateStatusCommand {
	return UpdateStatusCommand{
		notes: strings.TrimSpace(notes),
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}
}

func (c UpdateStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateStatusCommandIsNotConstructed)
}

// ScheduleID reports the targeted schedule, if the command targets one.
func (c UpdateStatusCommand) ScheduleID() (kernel.UUID, bool) {
	if c.scheduleID == nil {
		return kernel.UUID{}, false
	}
	return *c.scheduleID, true
}

// Source reports the targeted source, if the command targets one.
func (c UpdateStatusCommand) Source() (source.Ref, bool) {
	if c.source == nil {
		return source.Ref{}, false
	}
	return *c.source, true
}

func (c UpdateStatusCommand) Status() delivery.Status {
	return c.status
}

func (c UpdateStatusCommand) Notes() string {
	return c.notes
}

func (c UpdateStatusCommand) Actor() delivery.Actor {
	return c.actor
}

func (c *UpdateStatusCommand) setStatus(status delivery.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}

func (c *UpdateStatusCommand) validateActor() error {
	if strings.TrimSpace(c.actor.ID) == "" {
		return ErrActorIsRequired
	}
	return nil
}
