// Package sourcerepo reads the three order tables owned by the order,
// custom order and design workflows, and writes their delivery mirror columns.
// The DTOs describe only the columns the engine uses.
package sourcerepo

import (
	"strconv"
	"time"

	"deliveryscheduler/internal/core/domain/model/source"
)

// StandardOrderDTO is a row of orders.
type StandardOrderDTO struct {
	ID                 int64   `gorm:"primaryKey"`
	OrderNumber        string  `gorm:"type:varchar(64);uniqueIndex"`
	UserID             *int64  `gorm:"index"`
	Status             string  `gorm:"type:varchar(32);not null"`
	ConfirmedBy        *string `gorm:"type:varchar(64)"`
	Notes              string  `gorm:"type:text"`
	CustomerName       string  `gorm:"type:varchar(255)"`
	CustomerEmail      string  `gorm:"type:varchar(255)"`
	CustomerPhone      string  `gorm:"type:varchar(64)"`
	TotalAmount        float64 `gorm:"type:numeric(12,2)"`
	ShippingAddress    string  `gorm:"type:text"`
	ShippingCity       string  `gorm:"type:varchar(128)"`
	ShippingProvince   string  `gorm:"type:varchar(128)"`
	ShippingPostalCode string  `gorm:"type:varchar(16)"`
	ShippingPhone      string  `gorm:"type:varchar(64)"`
	DeliveryStatus     string  `gorm:"type:varchar(32)"`
	DeliveryNotes      string  `gorm:"type:text"`
	UpdatedAt          time.Time
	Items              []StandardOrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (StandardOrderDTO) TableName() string {
	return "orders"
}

type StandardOrderItemDTO struct {
	ID          int64  `gorm:"primaryKey"`
	OrderID     int64  `gorm:"not null;index"`
	ProductName string `gorm:"type:varchar(255)"`
	Color       string `gorm:"type:varchar(64)"`
	Size        string `gorm:"type:varchar(32)"`
	Quantity    int
}

func (StandardOrderItemDTO) TableName() string {
	return "order_items"
}

// CustomFabricationOrderDTO is a row of custom_orders.
type CustomFabricationOrderDTO struct {
	ID                int64   `gorm:"primaryKey"`
	CustomOrderID     string  `gorm:"type:varchar(64);uniqueIndex"`
	Status            string  `gorm:"type:varchar(32);not null"`
	PaymentStatus     string  `gorm:"type:varchar(32)"`
	PaymentVerifiedAt *time.Time
	FinalPrice        float64 `gorm:"type:numeric(12,2)"`
	ProductType       string  `gorm:"type:varchar(64)"`
	ProductName       string  `gorm:"type:varchar(255)"`
	Color             string  `gorm:"type:varchar(64)"`
	Size              string  `gorm:"type:varchar(32)"`
	Quantity          int
	CustomerName      string `gorm:"type:varchar(255)"`
	CustomerEmail     string `gorm:"type:varchar(255)"`
	CustomerPhone     string `gorm:"type:varchar(64)"`
	ShippingAddress   string `gorm:"type:text"`
	HouseNumber       string `gorm:"type:varchar(64)"`
	StreetNumber      string `gorm:"type:varchar(128)"`
	Barangay          string `gorm:"type:varchar(128)"`
	Municipality      string `gorm:"type:varchar(128)"`
	Province          string `gorm:"type:varchar(128)"`
	PostalCode        string `gorm:"type:varchar(16)"`
	DeliveryStatus    string `gorm:"type:varchar(32)"`
	DeliveryDate      *time.Time `gorm:"type:date"`
	DeliveryNotes     string     `gorm:"type:text"`
	UpdatedAt         time.Time
}

func (CustomFabricationOrderDTO) TableName() string {
	return "custom_orders"
}

// CustomDesignOrderDTO is a row of custom_designs.
type CustomDesignOrderDTO struct {
	ID             int64   `gorm:"primaryKey"`
	DesignID       string  `gorm:"type:varchar(64);uniqueIndex"`
	Status         string  `gorm:"type:varchar(32);not null"`
	FinalPrice     float64 `gorm:"type:numeric(12,2)"`
	ProductType    string  `gorm:"type:varchar(64)"`
	ProductName    string  `gorm:"type:varchar(255)"`
	ProductColor   string  `gorm:"type:varchar(64)"`
	ProductSize    string  `gorm:"type:varchar(32)"`
	Quantity       int
	CustomerName   string     `gorm:"type:varchar(255)"`
	CustomerEmail  string     `gorm:"type:varchar(255)"`
	CustomerPhone  string     `gorm:"type:varchar(64)"`
	StreetAddress  string     `gorm:"type:text"`
	HouseNumber    string     `gorm:"type:varchar(64)"`
	Barangay       string     `gorm:"type:varchar(128)"`
	City           string     `gorm:"type:varchar(128)"`
	Province       string     `gorm:"type:varchar(128)"`
	PostalCode     string     `gorm:"type:varchar(16)"`
	DeliveryStatus string     `gorm:"type:varchar(32)"`
	DeliveryDate   *time.Time `gorm:"type:date"`
	DeliveryNotes  string     `gorm:"type:text"`
	UpdatedAt      time.Time
}

func (CustomDesignOrderDTO) TableName() string {
	return "custom_designs"
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

func (dto StandardOrderDTO) toRecord() source.StandardOrder {
	items := make([]source.StandardOrderItem, 0, len(dto.Items))
	for _, it := range dto.Items {
		items = append(items, source.StandardOrderItem{
			ProductName: it.ProductName,
			Color:       it.Color,
			Size:        it.Size,
			Quantity:    it.Quantity,
		})
	}

	return source.StandardOrder{
		ID:                 formatID(dto.ID),
		OrderNumber:        dto.OrderNumber,
		Status:             dto.Status,
		ConfirmedBy:        dto.ConfirmedBy,
		Notes:              dto.Notes,
		CustomerName:       dto.CustomerName,
		CustomerEmail:      dto.CustomerEmail,
		CustomerPhone:      dto.CustomerPhone,
		TotalAmount:        dto.TotalAmount,
		ShippingAddress:    dto.ShippingAddress,
		ShippingCity:       dto.ShippingCity,
		ShippingProvince:   dto.ShippingProvince,
		ShippingPostalCode: dto.ShippingPostalCode,
		ShippingPhone:      dto.ShippingPhone,
		DeliveryStatus:     dto.DeliveryStatus,
		Items:              items,
	}
}

func (dto CustomFabricationOrderDTO) toRecord() source.CustomFabricationOrder {
	return source.CustomFabricationOrder{
		ID:                formatID(dto.ID),
		CustomOrderID:     dto.CustomOrderID,
		Status:            dto.Status,
		PaymentStatus:     dto.PaymentStatus,
		PaymentVerifiedAt: dto.PaymentVerifiedAt,
		FinalPrice:        dto.FinalPrice,
		ProductType:       dto.ProductType,
		ProductName:       dto.ProductName,
		Color:             dto.Color,
		Size:              dto.Size,
		Quantity:          dto.Quantity,
		CustomerName:      dto.CustomerName,
		CustomerEmail:     dto.CustomerEmail,
		CustomerPhone:     dto.CustomerPhone,
		ShippingAddress:   dto.ShippingAddress,
		HouseNumber:       dto.HouseNumber,
		StreetNumber:      dto.StreetNumber,
		Barangay:          dto.Barangay,
		Municipality:      dto.Municipality,
		Province:          dto.Province,
		PostalCode:        dto.PostalCode,
		DeliveryStatus:    dto.DeliveryStatus,
		DeliveryDate:      dto.DeliveryDate,
	}
}

func (dto CustomDesignOrderDTO) toRecord() source.CustomDesignOrder {
	return source.CustomDesignOrder{
		ID:             formatID(dto.ID),
		DesignID:       dto.DesignID,
		Status:         dto.Status,
		FinalPrice:     dto.FinalPrice,
		ProductType:    dto.ProductType,
		ProductName:    dto.ProductName,
		ProductColor:   dto.ProductColor,
		ProductSize:    dto.ProductSize,
		Quantity:       dto.Quantity,
		CustomerName:   dto.CustomerName,
		CustomerEmail:  dto.CustomerEmail,
		CustomerPhone:  dto.CustomerPhone,
		StreetAddress:  dto.StreetAddress,
		HouseNumber:    dto.HouseNumber,
		Barangay:       dto.Barangay,
		City:           dto.City,
		Province:       dto.Province,
		PostalCode:     dto.PostalCode,
		DeliveryStatus: dto.DeliveryStatus,
		DeliveryDate:   dto.DeliveryDate,
	}
}
