package commands

import (
	"errors"
	"strings"

	"deliveryscheduler/internal/core/domain/model/delivery"
	"deliveryscheduler/internal/core/domain/model/kernel"
	"deliveryscheduler/internal/core/domain/model/source"
	"deliveryscheduler/internal/pkg/guard"
)

var ErrScheduleDeliveryCommandIsNotConstructed = errors.New(
	"ScheduleDeliveryCommand must be created via NewScheduleDeliveryCommand constructor",
)

// ScheduleDeliveryCommand books a deliverable onto a date. Booking the same
// source again moves its active schedule instead of creating a second one.
//
// Example:
//
//	date, _ := kernel.ParseDate("2025-03-10")
//	cmd, err := NewScheduleDeliveryCommand(
//	    source.Ref{Kind: source.Standard, ID: "42"},
//	    date, "09:00-12:00", nil, "", delivery.PriorityNormal, actor,
//	)
//	if err != nil {
//	    return err
//	}
//	result, err := handler.Handle(ctx, cmd)
type ScheduleDeliveryCommand struct { //nolint:recvcheck //using for validation
	source   source.Ref
	date     kernel.Date
	timeSlot string
	courier  *kernel.UUID
	notes    string
	priority delivery.Priority
	actor    delivery.Actor

	guard guard.ConstructorGuard
}

// NewScheduleDeliveryCommand validates the reference, the date, the optional
// courier and the priority. An empty priority means normal.
func NewScheduleDeliveryCommand(
	ref source.Ref,
	date kernel.Date,
	timeSlot string,
	courierID *kernel.UUID,
	notes string,
	priority delivery.Priority,
	actor delivery.Actor,
) (ScheduleDeliveryCommand, error) {
	cmd := ScheduleDeliveryCommand{
		timeSlot: strings.TrimSpace(timeSlot),
		notes:    strings.TrimSpace(notes),
		actor:    actor,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSource(ref),
		cmd.setDate(date),
		cmd.setCourier(courierID),
		cmd.setPriority(priority),
	); err != nil {
		return ScheduleDeliveryCommand{}, err
	}

	return cmd, nil
}

func (c ScheduleDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrScheduleDeliveryCommandIsNotConstructed)
}

func (c ScheduleDeliveryCommand) Source() source.Ref {
	return c.source
}

func (c ScheduleDeliveryCommand) Date() kernel.Date {
	return c.date
}

func (c ScheduleDeliveryCommand) TimeSlot() string {
	return c.timeSlot
}

// CourierID is nil when no courier is assigned.
func (c ScheduleDeliveryCommand) CourierID() *kernel.UUID {
	return c.courier
}

func (c ScheduleDeliveryCommand) Notes() string {
	return c.notes
}

func (c ScheduleDeliveryCommand) Priority() delivery.Priority {
	return c.priority
}

func (c ScheduleDeliveryCommand) Actor() delivery.Actor {
	return c.actor
}

// Booking is the domain booking requested by the command.
func (c ScheduleDeliveryCommand) Booking() delivery.Booking {
	return delivery.Booking{
		Date:      c.date,
		TimeSlot:  c.timeSlot,
		CourierID: c.courier,
		Notes:     c.notes,
		Priority:  c.priority,
	}
}

func (c *ScheduleDeliveryCommand) setSource(ref source.Ref) error {
	if err := ref.Validate(); err != nil {
		return err
	}
	c.source = ref
	return nil
}

func (c *ScheduleDeliveryCommand) setDate(date kernel.Date) error {
	if err := date.Validate(); err != nil {
		return err
	}
	c.date = date
	return nil
}

func (c *ScheduleDeliveryCommand) setCourier(id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return err
	}
	courierID := *id
	c.courier = &courierID
	return nil
}

func (c *ScheduleDeliveryCommand) setPriority(p delivery.Priority) error {
	if p == "" {
		c.priority = delivery.PriorityNormal
		return nil
	}
	if err := p.Validate(); err != nil {
		return err
	}
	c.priority = p
	return nil
}
