// Package historyrepo appends status history entries to status_history and
// reads them back. No update or delete path exists.
package historyrepo

import (
	"time"

	"deliveryscheduler/internal/core/domain/model/delivery"
	"deliveryscheduler/internal/core/domain/model/kernel"
	"deliveryscheduler/internal/core/domain/model/source"

	"github.com/google/uuid"
)

type EntryDTO struct {
	ID             int64     `gorm:"primaryKey"`
	ScheduleID     uuid.UUID `gorm:"type:uuid;not null;index"`
	SourceKind     string    `gorm:"type:varchar(32);not null"`
	SourceID       string    `gorm:"type:varchar(64);not null"`
	PreviousStatus string    `gorm:"type:varchar(32);not null"`
	NewStatus      string    `gorm:"type:varchar(32);not null"`
	Notes          string    `gorm:"type:text"`
	ActorID        string    `gorm:"type:varchar(64)"`
	ActorName      string    `gorm:"type:varchar(255)"`
	ActorRole      string    `gorm:"type:varchar(32)"`
	Forced         bool      `gorm:"not null"`
	Warning        string    `gorm:"type:text"`
	CreatedAt      time.Time `gorm:"not null;autoCreateTime:false"`
}

func (EntryDTO) TableName() string {
	return "status_history"
}

func fromDomain(e delivery.HistoryEntry) EntryDTO {
	return EntryDTO{
		ScheduleID:     e.ScheduleID.Bytes(),
		SourceKind:     e.Source.Kind.String(),
		SourceID:       e.Source.ID,
		PreviousStatus: e.PreviousStatus.String(),
		NewStatus:      e.NewStatus.String(),
		Notes:          e.Notes,
		ActorID:        e.Actor.ID,
		ActorName:      e.Actor.Name,
		ActorRole:      e.Actor.Role,
		Forced:         e.Forced,
		Warning:        e.Warning,
		CreatedAt:      e.CreatedAt,
	}
}

func toDomain(dto EntryDTO) (delivery.HistoryEntry, error) {
	scheduleID, err := kernel.UUIDFromBytes(dto.ScheduleID[:])
	if err != nil {
		return delivery.HistoryEntry{}, err
	}
	previous, err := delivery.ParseStatus(dto.PreviousStatus)
	if err != nil {
		return delivery.HistoryEntry{}, err
	}
	next, err := delivery.ParseStatus(dto.NewStatus)
	if err != nil {
		return delivery.HistoryEntry{}, err
	}

	return delivery.HistoryEntry{
		ScheduleID:     scheduleID,
		Source:         source.Ref{Kind: source.Kind(dto.SourceKind), ID: dto.SourceID},
		PreviousStatus: previous,
		NewStatus:      next,
		Notes:          dto.Notes,
		Actor:          delivery.Actor{ID: dto.ActorID, Name: dto.ActorName, Role: dto.ActorRole},
		Forced:         dto.Forced,
		Warning:        dto.Warning,
		CreatedAt:      dto.CreatedAt,
	}, nil
}
