package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"deliveryscheduler/internal/core/domain/model/deliverable"
	"deliveryscheduler/internal/core/domain/model/delivery"
	"deliveryscheduler/internal/core/domain/model/kernel"
	"deliveryscheduler/internal/core/domain/model/source"
	"deliveryscheduler/internal/pkg/errs"
)

// adminApprovalMarker is appended to a standard order's notes when an admin
// approves its payment without recording confirmed_by.
const adminApprovalMarker = "Payment approved by admin"

const paymentVerified = "verified"

var ErrUnsupportedRecord = errors.New("unsupported source record")

// Normalizer maps source records onto Deliverables and is the only place
// where delivery eligibility is decided. It is pure and safe for concurrent use.
//
// Eligibility rules:
//   - standard order: status is confirmed, processing or "Order Received", and payment
//     approval is evidenced by confirmed_by, by the "Order Received" status, or by the
//     admin approval marker in the notes of a confirmed order
//   - custom fabrication order: status is confirmed, approved or completed, payment
//     status is verified and the verification time is recorded
//   - custom design order: status is approved, in_production, ready_for_pickup or completed
//
// Example:
//
//	n := services.NewNormalizer()
//	d, err := n.Normalize(record)
//	if errors.Is(err, errs.ErrNotEligible) {
//	    // not schedulable yet
//	}
type Normalizer struct{}

func NewNormalizer() Normalizer {
	return Normalizer{}
}

// Normalize returns a NotEligibleError for rows that fail their kind's gate.
func (n Normalizer) Normalize(record source.Record) (deliverable.Deliverable, error) {
	switch r := record.(type) {
	case source.StandardOrder:
		return n.normalizeStandard(r)
	case *source.StandardOrder:
		return n.normalizeStandard(*r)
	case source.CustomFabricationOrder:
		return n.normalizeFabrication(r)
	case *source.CustomFabricationOrder:
		return n.normalizeFabrication(*r)
	case source.CustomDesignOrder:
		return n.normalizeDesign(r)
	case *source.CustomDesignOrder:
		return n.normalizeDesign(*r)
	default:
		return deliverable.Deliverable{}, fmt.Errorf("%w: %T", ErrUnsupportedRecord, record)
	}
}

// NormalizeAll keeps only the eligible records, preserving input order.
func (n Normalizer) NormalizeAll(records []source.Record) []deliverable.Deliverable {
	out := make([]deliverable.Deliverable, 0, len(records))
	for _, r := range records {
		d, err := n.Normalize(r)
		if err != nil {
			continue
		}
		out = append(out, d)
	}
	return out
}

func (n Normalizer) normalizeStandard(o source.StandardOrder) (deliverable.Deliverable, error) {
	status := strings.TrimSpace(o.Status)
	switch status {
	case "confirmed", "processing", "Order Received":
	default:
		return deliverable.Deliverable{}, notEligible(o, fmt.Sprintf("order status %q", o.Status))
	}

	approved := (o.ConfirmedBy != nil && strings.TrimSpace(*o.ConfirmedBy) != "") ||
		status == "Order Received" ||
		(status == "confirmed" && strings.Contains(o.Notes, adminApprovalMarker))
	if !approved {
		return deliverable.Deliverable{}, notEligible(o, "payment approval is not recorded")
	}

	items := make([]deliverable.LineItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, deliverable.LineItem{
			Name:     it.ProductName,
			Color:    it.Color,
			Size:     it.Size,
			Quantity: it.Quantity,
		})
	}

	phone := o.CustomerPhone
	if phone == "" {
		phone = o.ShippingPhone
	}

	return deliverable.Deliverable{
		Source:          o.Ref(),
		PublicReference: firstNonEmpty(o.OrderNumber, o.ID),
		Customer: deliverable.Customer{
			Name:  o.CustomerName,
			Email: o.CustomerEmail,
			Phone: phone,
		},
		Address: deliverable.Address{
			Line: firstNonEmpty(
				o.ShippingAddress,
				deliverable.ComposeAddress(o.ShippingCity, o.ShippingProvince, o.ShippingPostalCode),
			),
			Street:     o.ShippingAddress,
			City:       o.ShippingCity,
			Province:   o.ShippingProvince,
			PostalCode: o.ShippingPostalCode,
		},
		Amount:          o.TotalAmount,
		PaymentVerified: true,
		Items:           items,
		DeliveryStatus:  mirrorStatus(o),
	}, nil
}

func (n Normalizer) normalizeFabrication(o source.CustomFabricationOrder) (deliverable.Deliverable, error) {
	switch strings.TrimSpace(o.Status) {
	case "confirmed", "approved", "completed":
	default:
		return deliverable.Deliverable{}, notEligible(o, fmt.Sprintf("order status %q", o.Status))
	}
	if !strings.EqualFold(strings.TrimSpace(o.PaymentStatus), paymentVerified) || o.PaymentVerifiedAt == nil {
		return deliverable.Deliverable{}, notEligible(o, "payment is not verified")
	}

	return deliverable.Deliverable{
		Source:          o.Ref(),
		PublicReference: firstNonEmpty(o.CustomOrderID, o.ID),
		Customer: deliverable.Customer{
			Name:  o.CustomerName,
			Email: o.CustomerEmail,
			Phone: o.CustomerPhone,
		},
		Address: deliverable.Address{
			Line: firstNonEmpty(
				o.ShippingAddress,
				deliverable.ComposeAddress(o.HouseNumber, o.StreetNumber, o.Barangay, o.Municipality, o.Province, o.PostalCode),
			),
			Street:     deliverable.ComposeAddress(o.HouseNumber, o.StreetNumber, o.Barangay),
			City:       o.Municipality,
			Province:   o.Province,
			PostalCode: o.PostalCode,
		},
		Amount:          o.FinalPrice,
		PaymentVerified: true,
		Items:           []deliverable.LineItem{customItem(o.ProductName, o.ProductType, o.Color, o.Size, o.Quantity)},
		DeliveryStatus:  mirrorStatus(o),
		MirrorDate:      mirrorDate(o.DeliveryDate),
	}, nil
}

func (n Normalizer) normalizeDesign(o source.CustomDesignOrder) (deliverable.Deliverable, error) {
	switch strings.TrimSpace(o.Status) {
	case "approved", "in_production", "ready_for_pickup", "completed":
	default:
		return deliverable.Deliverable{}, notEligible(o, fmt.Sprintf("design status %q", o.Status))
	}

	return deliverable.Deliverable{
		Source:          o.Ref(),
		PublicReference: firstNonEmpty(o.DesignID, o.ID),
		Customer: deliverable.Customer{
			Name:  o.CustomerName,
			Email: o.CustomerEmail,
			Phone: o.CustomerPhone,
		},
		Address: deliverable.Address{
			Line:       deliverable.ComposeAddress(o.HouseNumber, o.StreetAddress, o.Barangay, o.City, o.Province, o.PostalCode),
			Street:     deliverable.ComposeAddress(o.HouseNumber, o.StreetAddress, o.Barangay),
			City:       o.City,
			Province:   o.Province,
			PostalCode: o.PostalCode,
		},
		Amount:          o.FinalPrice,
		PaymentVerified: true,
		Items: []deliverable.LineItem{
			customItem(o.ProductName, o.ProductType, o.ProductColor, o.ProductSize, o.Quantity),
		},
		DeliveryStatus: mirrorStatus(o),
		MirrorDate:     mirrorDate(o.DeliveryDate),
	}, nil
}

// mirrorStatus maps the raw mirror once; spellings without a mapping surface as Unknown.
func mirrorStatus(r source.Record) delivery.Status {
	s, err := delivery.ParseLegacyStatus(r.MirrorStatus())
	if err != nil {
		return delivery.Unknown
	}
	return s
}

func mirrorDate(t *time.Time) *kernel.Date {
	if t == nil || t.IsZero() {
		return nil
	}
	d := kernel.DateFromTime(*t)
	return &d
}

func customItem(name, productType, color, size string, quantity int) deliverable.LineItem {
	if quantity < 1 {
		quantity = 1
	}
	return deliverable.LineItem{
		Name:     firstNonEmpty(name, strings.TrimSpace("Custom "+productType)),
		Color:    color,
		Size:     size,
		Quantity: quantity,
	}
}

func notEligible(r source.Record, reason string) error {
	ref := r.Ref()
	return errs.NewNotEligibleError(ref.Kind.String(), ref.ID, reason)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
