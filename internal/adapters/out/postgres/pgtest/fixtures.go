package pgtest

import (
	"time"

	"deliveryscheduler/internal/adapters/out/postgres/sourcerepo"

	"gorm.io/gorm"
)

// EligibleStandardOrder returns a confirmed order approved through the admin
// note, with one line item.
func EligibleStandardOrder(orderNumber string) *sourcerepo.StandardOrderDTO {
	return &sourcerepo.StandardOrderDTO{
		OrderNumber:      orderNumber,
		Status:           "confirmed",
		Notes:            "Payment approved by admin",
		CustomerName:     "Dana Cruz",
		CustomerEmail:    "dana@example.com",
		CustomerPhone:    "09171234567",
		TotalAmount:      1499.5,
		ShippingAddress:  "12 Rizal St",
		ShippingCity:     "Marikina",
		ShippingProvince: "NCR",
		DeliveryStatus:   "pending",
		Items: []sourcerepo.StandardOrderItemDTO{
			{ProductName: "Classic Tee", Color: "Black", Size: "M", Quantity: 2},
		},
	}
}

// EligibleFabricationOrder returns an approved custom order with verified payment.
func EligibleFabricationOrder(customOrderID string) *sourcerepo.CustomFabricationOrderDTO {
	verifiedAt := time.Now().UTC().Add(-time.Hour)
	return &sourcerepo.CustomFabricationOrderDTO{
		CustomOrderID:     customOrderID,
		Status:            "approved",
		PaymentStatus:     "verified",
		PaymentVerifiedAt: &verifiedAt,
		FinalPrice:        2500,
		ProductType:       "hoodie",
		Color:             "Navy",
		Size:              "L",
		Quantity:          1,
		CustomerName:      "Ria Santos",
		HouseNumber:       "5",
		StreetNumber:      "Mabini St",
		Barangay:          "San Roque",
		Municipality:      "Marikina",
		Province:          "NCR",
		PostalCode:        "1800",
	}
}

// EligibleDesignOrder returns a design in production.
func EligibleDesignOrder(designID string) *sourcerepo.CustomDesignOrderDTO {
	return &sourcerepo.CustomDesignOrderDTO{
		DesignID:      designID,
		Status:        "in_production",
		FinalPrice:    3200,
		ProductType:   "jacket",
		ProductName:   "Varsity Jacket",
		Quantity:      1,
		CustomerName:  "Lea Reyes",
		StreetAddress: "Bonifacio Ave",
		City:          "Pasig",
		Province:      "NCR",
	}
}

// Insert creates rows and returns the first error.
func Insert(db *gorm.DB, rows ...any) error {
	for _, row := range rows {
		if err := db.Create(row).Error; err != nil {
			return err
		}
	}
	return nil
}
