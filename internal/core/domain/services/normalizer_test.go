package services_test

import (
	"testing"
	"time"

	"deliveryscheduler/internal/core/domain/model/delivery"
	"deliveryscheduler/internal/core/domain/model/source"
	"deliveryscheduler/internal/core/domain/services"
	"deliveryscheduler/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func TestNormalizer_StandardOrder(t *testing.T) {
	n := services.NewNormalizer()

	base := source.StandardOrder{
		ID:               "42",
		OrderNumber:      "ORD17517233654614104",
		CustomerName:     "Dana Cruz",
		CustomerEmail:    "dana@example.com",
		ShippingPhone:    "09171234567",
		TotalAmount:      1499.5,
		ShippingCity:     "Marikina",
		ShippingProvince: "NCR",
		Items: []source.StandardOrderItem{
			{ProductName: "Classic Tee", Color: "Black", Size: "M", Quantity: 2},
		},
	}

	t.Run("confirmed with admin approval note and no confirmer is eligible", func(t *testing.T) {
		o := base
		o.Status = "confirmed"
		o.Notes = "Payment approved by admin on 2025-03-01"

		d, err := n.Normalize(o)

		require.NoError(t, err)
		assert.Equal(t, source.Ref{Kind: source.Standard, ID: "42"}, d.Source)
		assert.Equal(t, "ORD17517233654614104", d.PublicReference)
		assert.True(t, d.PaymentVerified)
		assert.Equal(t, "09171234567", d.Customer.Phone)
		assert.Equal(t, "Marikina, NCR", d.Address.Line)
		assert.Equal(t, delivery.Pending, d.DeliveryStatus)
		require.Len(t, d.Items, 1)
		assert.Equal(t, 2, d.Items[0].Quantity)
	})

	t.Run("order received is eligible without confirmer", func(t *testing.T) {
		o := base
		o.Status = "Order Received"

		_, err := n.Normalize(o)

		require.NoError(t, err)
	})

	t.Run("processing with confirmer is eligible", func(t *testing.T) {
		o := base
		o.Status = "processing"
		o.ConfirmedBy = ptr("admin-1")
		o.DeliveryStatus = "shipped"

		d, err := n.Normalize(o)

		require.NoError(t, err)
		assert.Equal(t, delivery.InTransit, d.DeliveryStatus)
	})

	t.Run("approval marker only counts for confirmed orders", func(t *testing.T) {
		o := base
		o.Status = "processing"
		o.Notes = "Payment approved by admin"

		_, err := n.Normalize(o)

		require.ErrorIs(t, err, errs.ErrNotEligible)
	})

	t.Run("confirmed without any approval evidence is not eligible", func(t *testing.T) {
		o := base
		o.Status = "confirmed"

		_, err := n.Normalize(o)

		var notEligible *errs.NotEligibleError
		require.ErrorAs(t, err, &notEligible)
		assert.Equal(t, "regular", notEligible.Kind)
		assert.Equal(t, "42", notEligible.ID)
	})

	t.Run("pending order is not eligible", func(t *testing.T) {
		o := base
		o.Status = "pending"
		o.ConfirmedBy = ptr("admin-1")

		_, err := n.Normalize(o)

		require.ErrorIs(t, err, errs.ErrNotEligible)
	})
}

func TestNormalizer_CustomFabricationOrder(t *testing.T) {
	n := services.NewNormalizer()
	verifiedAt := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	base := source.CustomFabricationOrder{
		ID:                "7",
		CustomOrderID:     "CUST-2025-007",
		Status:            "approved",
		PaymentStatus:     "verified",
		PaymentVerifiedAt: &verifiedAt,
		FinalPrice:        2500,
		ProductType:       "hoodie",
		Color:             "Navy",
		Size:              "L",
		Quantity:          0,
		HouseNumber:       "12",
		StreetNumber:      "Rizal St",
		Barangay:          "San Roque",
		Municipality:      "Marikina",
		Province:          "NCR",
		PostalCode:        "1800",
		DeliveryStatus:    "scheduled",
	}

	t.Run("verified approved order is eligible with composed address", func(t *testing.T) {
		d, err := n.Normalize(base)

		require.NoError(t, err)
		assert.Equal(t, "CUST-2025-007", d.PublicReference)
		assert.Equal(t, "12, Rizal St, San Roque, Marikina, NCR, 1800", d.Address.Line)
		assert.Equal(t, "Marikina", d.Address.City)
		assert.InDelta(t, 2500, d.Amount, 0.001)
		assert.Equal(t, delivery.Scheduled, d.DeliveryStatus)
		require.Len(t, d.Items, 1)
		assert.Equal(t, "Custom hoodie", d.Items[0].Name)
		assert.Equal(t, 1, d.Items[0].Quantity)
	})

	t.Run("delivery date mirror is carried", func(t *testing.T) {
		o := base
		mirrored := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)
		o.DeliveryDate = &mirrored

		d, err := n.Normalize(o)

		require.NoError(t, err)
		require.NotNil(t, d.MirrorDate)
		assert.Equal(t, "2025-03-12", d.MirrorDate.String())
	})

	t.Run("single line address wins", func(t *testing.T) {
		o := base
		o.ShippingAddress = "Unit 5, Tower 2, Pasig"

		d, err := n.Normalize(o)

		require.NoError(t, err)
		assert.Equal(t, "Unit 5, Tower 2, Pasig", d.Address.Line)
	})

	t.Run("unverified payment is not eligible", func(t *testing.T) {
		o := base
		o.PaymentStatus = "pending"

		_, err := n.Normalize(o)

		require.ErrorIs(t, err, errs.ErrNotEligible)
	})

	t.Run("missing verification time is not eligible", func(t *testing.T) {
		o := base
		o.PaymentVerifiedAt = nil

		_, err := n.Normalize(o)

		require.ErrorIs(t, err, errs.ErrNotEligible)
	})

	t.Run("pending order is not eligible", func(t *testing.T) {
		o := base
		o.Status = "pending"

		_, err := n.Normalize(o)

		require.ErrorIs(t, err, errs.ErrNotEligible)
	})
}

func TestNormalizer_CustomDesignOrder(t *testing.T) {
	n := services.NewNormalizer()

	for _, status := range []string{"approved", "in_production", "ready_for_pickup", "completed"} {
		t.Run(status+" is eligible", func(t *testing.T) {
			d, err := n.Normalize(source.CustomDesignOrder{
				ID:            "3",
				DesignID:      "DES-3",
				Status:        status,
				ProductName:   "Varsity Jacket",
				Quantity:      4,
				StreetAddress: "Rizal St",
				City:          "Marikina",
			})

			require.NoError(t, err)
			assert.Equal(t, "Rizal St, Marikina", d.Address.Line)
			assert.Equal(t, "Varsity Jacket", d.Items[0].Name)
			assert.Equal(t, 4, d.Items[0].Quantity)
		})
	}

	t.Run("pending design is not eligible", func(t *testing.T) {
		_, err := n.Normalize(source.CustomDesignOrder{ID: "3", Status: "pending"})

		require.ErrorIs(t, err, errs.ErrNotEligible)
	})
}

func TestNormalizer_NormalizeAll(t *testing.T) {
	n := services.NewNormalizer()
	verifiedAt := time.Now()

	records := []source.Record{
		source.StandardOrder{ID: "1", Status: "Order Received"},
		source.StandardOrder{ID: "2", Status: "pending"},
		source.CustomFabricationOrder{ID: "3", Status: "confirmed", PaymentStatus: "verified", PaymentVerifiedAt: &verifiedAt},
		source.CustomFabricationOrder{ID: "4", Status: "confirmed", PaymentStatus: "rejected"},
		source.CustomDesignOrder{ID: "5", Status: "completed"},
	}

	result := n.NormalizeAll(records)

	require.Len(t, result, 3)
	assert.Equal(t, "1", result[0].Source.ID)
	assert.Equal(t, "3", result[1].Source.ID)
	assert.Equal(t, "5", result[2].Source.ID)
}
