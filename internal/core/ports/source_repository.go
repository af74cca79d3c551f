package ports

import (
	"context"

	"deliveryscheduler/internal/core/domain/model/delivery"
	"deliveryscheduler/internal/core/domain/model/source"
)

// SourceRepository reads the three collaborator-owned order tables. The only
// write it offers is the delivery mirror.
type SourceRepository interface {
	// GetForUpdate locks and returns the row of ref, or an ObjectNotFoundError.
	GetForUpdate(ctx context.Context, ref source.Ref) (source.Record, error)

	// List returns every row of kind, oldest first.
	List(ctx context.Context, kind source.Kind) ([]source.Record, error)

	// FindByPublicReference resolves an order number, custom order id or
	// design id within kind.
	FindByPublicReference(ctx context.Context, kind source.Kind, publicReference string) (source.Ref, error)

	// UpdateMirror is the single path that writes delivery fields onto a source row.
	UpdateMirror(ctx context.Context, ref source.Ref, mirror delivery.Mirror) error
}
