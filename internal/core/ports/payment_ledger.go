package ports

import (
	"context"

	"deliveryscheduler/internal/core/domain/model/source"
)

// PaymentLedger is notified after a delivery reaches a terminal status. It is
// called outside the transaction; failures never undo the status change.
type PaymentLedger interface {
	MarkCompleted(ctx context.Context, ref source.Ref) error
	MarkCancelled(ctx context.Context, ref source.Ref) error
}
