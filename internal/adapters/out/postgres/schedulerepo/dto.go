// Package schedulerepo persists delivery schedules in the delivery_schedules
// table and maps rows back onto the delivery.Schedule aggregate.
package schedulerepo

import (
	"time"

	"deliveryscheduler/internal/core/domain/model/delivery"
	"deliveryscheduler/internal/core/domain/model/kernel"
	"deliveryscheduler/internal/core/domain/model/source"

	"github.com/google/uuid"
)

// ActiveSourceIndex is the partial unique index that keeps one non-terminal
// schedule per source row. AutoMigrate cannot express it; see postgres.Migrate.
const ActiveSourceIndex = "ux_delivery_schedules_active_source"

// ScheduleDTO is the row of delivery_schedules. Status and priority are stored
// as their canonical strings so the table stays readable from SQL.
type ScheduleDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	SourceKind      string     `gorm:"type:varchar(32);not null;index:idx_delivery_schedules_source,priority:1"`
	SourceID        string     `gorm:"type:varchar(64);not null;index:idx_delivery_schedules_source,priority:2"`
	PublicReference string     `gorm:"type:varchar(128);not null"`
	DeliveryDate    *time.Time `gorm:"type:date;index"`
	TimeSlot        string     `gorm:"type:varchar(64)"`
	Status          string     `gorm:"type:varchar(32);not null;index"`
	CourierID       *uuid.UUID `gorm:"type:uuid;index"`
	Notes           string     `gorm:"type:text"`
	Priority        string     `gorm:"type:varchar(16);not null"`
	CreatedAt       time.Time  `gorm:"not null;autoCreateTime:false"`
	UpdatedAt       time.Time  `gorm:"not null;autoUpdateTime:false"`
	DispatchedAt    *time.Time
	DeliveredAt     *time.Time
}

func (ScheduleDTO) TableName() string {
	return "delivery_schedules"
}

func fromDomain(s *delivery.Schedule) ScheduleDTO {
	var courierID *uuid.UUID
	if id := s.CourierID(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	var deliveryDate *time.Time
	if d := s.DeliveryDate(); d != nil {
		t := d.Time()
		deliveryDate = &t
	}

	return ScheduleDTO{
		ID:              s.ID().Bytes(),
		SourceKind:      s.Source().Kind.String(),
		SourceID:        s.Source().ID,
		PublicReference: s.PublicReference(),
		DeliveryDate:    deliveryDate,
		TimeSlot:        s.TimeSlot(),
		Status:          s.Status().String(),
		CourierID:       courierID,
		Notes:           s.Notes(),
		Priority:        s.Priority().String(),
		CreatedAt:       s.CreatedAt(),
		UpdatedAt:       s.UpdatedAt(),
		DispatchedAt:    s.DispatchedAt(),
		DeliveredAt:     s.DeliveredAt(),
	}
}

func toDomain(dto ScheduleDTO) (*delivery.Schedule, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}
		courierID = &cID
	}

	var deliveryDate *kernel.Date
	if dto.DeliveryDate != nil {
		d := kernel.DateFromTime(*dto.DeliveryDate)
		deliveryDate = &d
	}

	status, err := delivery.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return delivery.RestoreSchedule(delivery.Snapshot{
		ID:              id,
		Source:          source.Ref{Kind: source.Kind(dto.SourceKind), ID: dto.SourceID},
		PublicReference: dto.PublicReference,
		DeliveryDate:    deliveryDate,
		TimeSlot:        dto.TimeSlot,
		Status:          status,
		CourierID:       courierID,
		Notes:           dto.Notes,
		Priority:        delivery.Priority(dto.Priority),
		CreatedAt:       dto.CreatedAt,
		UpdatedAt:       dto.UpdatedAt,
		DispatchedAt:    dto.DispatchedAt,
		DeliveredAt:     dto.DeliveredAt,
	})
}
