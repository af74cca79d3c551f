package deliverable

import (
	"strings"

	"deliveryscheduler/internal/core/domain/model/delivery"
	"deliveryscheduler/internal/core/domain/model/kernel"
	"deliveryscheduler/internal/core/domain/model/source"
)

// Deliverable is the source-agnostic view of one eligible unit of work. It is
// built on demand from a source row and never stored.
type Deliverable struct {
	Source          source.Ref
	PublicReference string
	Customer        Customer
	Address         Address
	Amount          float64
	PaymentVerified bool
	Items           []LineItem
	// DeliveryStatus is the source mirror mapped onto the canonical lifecycle.
	DeliveryStatus delivery.Status
	// MirrorDate is the delivery date stored on the source row, if its table has one.
	MirrorDate *kernel.Date
}

type Customer struct {
	Name  string
	Email string
	Phone string
}

// Address keeps both the single-line form and the components it was derived from.
type Address struct {
	Line       string
	Street     string
	City       string
	Province   string
	PostalCode string
}

type LineItem struct {
	Name     string
	Color    string
	Size     string
	Quantity int
}

// ComposeAddress joins the non-empty components with ", ".
func ComposeAddress(components ...string) string {
	parts := make([]string, 0, len(components))
	for _, c := range components {
		if c = strings.TrimSpace(c); c != "" {
			parts = append(parts, c)
		}
	}
	return strings.Join(parts, ", ")
}
