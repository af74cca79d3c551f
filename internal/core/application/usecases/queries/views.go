// Package queries contains the read side of the engine. Handlers run plain
// SQL against the engine and source tables and return read models; they never
// lock rows and never write.
package queries

import (
	"database/sql"
	"time"

	"deliveryscheduler/internal/core/domain/model/delivery"
	"deliveryscheduler/internal/core/domain/model/kernel"
	"deliveryscheduler/internal/core/domain/model/source"

	"github.com/google/uuid"
)

// ScheduleView is the read model of a delivery schedule.
type ScheduleView struct {
	ID              kernel.UUID
	Source          source.Ref
	PublicReference string
	DeliveryDate    *kernel.Date
	TimeSlot        string
	Status          delivery.Status
	Priority        delivery.Priority
	Notes           string
	Courier         *CourierView
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type CourierView struct {
	ID          kernel.UUID
	Name        string
	PhoneNumber string
	VehicleType string
}

// scheduleColumns is the select list read by scanSchedule. It expects
// delivery_schedules aliased as s and couriers left joined as c.
const scheduleColumns = `
	s.id,
	s.source_kind,
	s.source_id,
	s.public_reference,
	s.delivery_date,
	s.time_slot,
	s.status,
	s.priority,
	s.notes,
	s.created_at,
	s.updated_at,
	c.id,
	c.name,
	c.phone_number,
	c.vehicle_type`

type scanner interface {
	Scan(dest ...any) error
}

func scanSchedule(row scanner) (ScheduleView, error) {
	var (
		view                               ScheduleView
		id                                 uuid.UUID
		kind, status, priority             string
		deliveryDate                       sql.NullTime
		courierID                          uuid.NullUUID
		courierName, courierPhone, vehicle sql.NullString
	)

	if err := row.Scan(
		&id,
		&kind,
		&view.Source.ID,
		&view.PublicReference,
		&deliveryDate,
		&view.TimeSlot,
		&status,
		&priority,
		&view.Notes,
		&view.CreatedAt,
		&view.UpdatedAt,
		&courierID,
		&courierName,
		&courierPhone,
		&vehicle,
	); err != nil {
		return ScheduleView{}, err
	}

	scheduleID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return ScheduleView{}, err
	}
	view.ID = scheduleID
	view.Source.Kind = source.Kind(kind)

	if view.Status, err = delivery.ParseStatus(status); err != nil {
		return ScheduleView{}, err
	}
	view.Priority = delivery.Priority(priority)

	if deliveryDate.Valid {
		d := kernel.DateFromTime(deliveryDate.Time)
		view.DeliveryDate = &d
	}

	if courierID.Valid {
		cID, idErr := kernel.UUIDFromBytes(courierID.UUID[:])
		if idErr != nil {
			return ScheduleView{}, idErr
		}
		view.Courier = &CourierView{
			ID:          cID,
			Name:        courierName.String,
			PhoneNumber: courierPhone.String,
			VehicleType: vehicle.String,
		}
	}

	return view, nil
}
