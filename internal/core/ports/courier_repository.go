package ports

import (
	"context"

	"deliveryscheduler/internal/core/domain/model/courier"
	"deliveryscheduler/internal/core/domain/model/kernel"
)

// CourierRepository reads courier reference data. Couriers are managed
// elsewhere; the engine only resolves them.
type CourierRepository interface {
	// Get returns the courier or an ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error)
}
