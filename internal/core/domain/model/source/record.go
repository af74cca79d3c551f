package source

import "time"

// Record is one row of a source table. The concrete types form a closed set;
// only the deliverable Normalizer inspects their kind-specific fields.
type Record interface {
	Ref() Ref
	// MirrorStatus is the raw delivery_status value denormalized on the row.
	MirrorStatus() string
	isRecord()
}

// StandardOrder is a row of the regular orders table with its line items.
type StandardOrder struct {
	ID                 string
	OrderNumber        string
	Status             string
	ConfirmedBy        *string
	Notes              string
	CustomerName       string
	CustomerEmail      string
	CustomerPhone      string
	TotalAmount        float64
	ShippingAddress    string
	ShippingCity       string
	ShippingProvince   string
	ShippingPostalCode string
	ShippingPhone      string
	DeliveryStatus     string
	Items              []StandardOrderItem
}

type StandardOrderItem struct {
	ProductName string
	Color       string
	Size        string
	Quantity    int
}

func (o StandardOrder) Ref() Ref             { return Ref{Kind: Standard, ID: o.ID} }
func (o StandardOrder) MirrorStatus() string { return o.DeliveryStatus }
func (StandardOrder) isRecord()              {}

// CustomFabricationOrder is a row of custom_orders. Payment is verified
// upstream and arrives here as PaymentStatus plus a verification timestamp.
type CustomFabricationOrder struct {
	ID                string
	CustomOrderID     string
	Status            string
	PaymentStatus     string
	PaymentVerifiedAt *time.Time
	FinalPrice        float64
	ProductType       string
	ProductName       string
	Color             string
	Size              string
	Quantity          int
	CustomerName      string
	CustomerEmail     string
	CustomerPhone     string
	ShippingAddress   string
	HouseNumber       string
	StreetNumber      string
	Barangay          string
	Municipality      string
	Province          string
	PostalCode        string
	DeliveryStatus    string
	DeliveryDate      *time.Time
}

func (o CustomFabricationOrder) Ref() Ref             { return Ref{Kind: CustomFabrication, ID: o.ID} }
func (o CustomFabricationOrder) MirrorStatus() string { return o.DeliveryStatus }
func (CustomFabricationOrder) isRecord()              {}

// CustomDesignOrder is a row of custom_designs.
type CustomDesignOrder struct {
	ID             string
	DesignID       string
	Status         string
	FinalPrice     float64
	ProductType    string
	ProductName    string
	ProductColor   string
	ProductSize    string
	Quantity       int
	CustomerName   string
	CustomerEmail  string
	CustomerPhone  string
	StreetAddress  string
	HouseNumber    string
	Barangay       string
	City           string
	Province       string
	PostalCode     string
	DeliveryStatus string
	DeliveryDate   *time.Time
}

func (o CustomDesignOrder) Ref() Ref             { return Ref{Kind: CustomDesign, ID: o.ID} }
func (o CustomDesignOrder) MirrorStatus() string { return o.DeliveryStatus }
func (CustomDesignOrder) isRecord()              {}
