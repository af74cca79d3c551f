package courier

import (
	"errors"
	"strings"

	"deliveryscheduler/internal/core/domain/model/kernel"
	"deliveryscheduler/internal/pkg/errs"
	"deliveryscheduler/internal/pkg/guard"
)

var (
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")
)

// Courier is reference data about a person who carries deliveries. The
// engine reads couriers to validate assignments and to render the calendar;
// it never changes them.
type Courier struct {
	id          kernel.UUID
	name        string
	phoneNumber string
	vehicleType string
	guard       guard.ConstructorGuard
}

// NewCourier validates and builds a Courier.
//
// Example:
//
//	c, err := courier.NewCourier(kernel.NewUUID(), "Juan Dela Cruz", "+63 917 000 0000", "motorcycle")
func NewCourier(id kernel.UUID, name, phoneNumber, vehicleType string) (*Courier, error) {
	c := &Courier{
		phoneNumber: strings.TrimSpace(phoneNumber),
		vehicleType: strings.TrimSpace(vehicleType),
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
	); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

func (c *Courier) ID() kernel.UUID {
	return c.id
}

func (c *Courier) Name() string {
	return c.name
}

func (c *Courier) PhoneNumber() string {
	return c.phoneNumber
}

func (c *Courier) VehicleType() string {
	return c.vehicleType
}

func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Courier) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}
