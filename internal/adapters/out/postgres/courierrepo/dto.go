// Package courierrepo reads courier reference data from the couriers table.
package courierrepo

import (
	"deliveryscheduler/internal/core/domain/model/courier"
	"deliveryscheduler/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CourierDTO is a row of couriers.
type CourierDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(255);not null"`
	PhoneNumber string    `gorm:"type:varchar(64)"`
	VehicleType string    `gorm:"type:varchar(64)"`
}

func (CourierDTO) TableName() string {
	return "couriers"
}

func fromDomain(c *courier.Courier) CourierDTO {
	return CourierDTO{
		ID:          c.ID().Bytes(),
		Name:        c.Name(),
		PhoneNumber: c.PhoneNumber(),
		VehicleType: c.VehicleType(),
	}
}

func toDomain(dto CourierDTO) (*courier.Courier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return courier.NewCourier(id, dto.Name, dto.PhoneNumber, dto.VehicleType)
}
