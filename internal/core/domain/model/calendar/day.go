package calendar

import (
	"errors"
	"strings"
	"time"

	"deliveryscheduler/internal/core/domain/model/kernel"
	"deliveryscheduler/internal/pkg/errs"
)

const (
	// DefaultMaxDeliveries is the cap of a day nobody has configured.
	DefaultMaxDeliveries = 3
	// MaxDeliveriesLimit bounds what an operator may configure for one day.
	MaxDeliveriesLimit = 100
)

var ErrDayIsNotConstructed = errors.New("Day must be created via DefaultDay, NewDay or RestoreDay")

// Settings are the operator-editable properties of a delivery day.
type Settings struct {
	MaxDeliveries int
	IsAvailable   bool
	IsHoliday     bool
	SpecialNotes  string
}

// DefaultSettings returns the settings of an unconfigured day.
func DefaultSettings() Settings {
	return Settings{
		MaxDeliveries: DefaultMaxDeliveries,
		IsAvailable:   true,
	}
}

func (s Settings) validate() error {
	if s.MaxDeliveries < 0 || s.MaxDeliveries > MaxDeliveriesLimit {
		return errs.NewValueIsOutOfRangeError("max deliveries", s.MaxDeliveries, 0, MaxDeliveriesLimit)
	}
	return nil
}

// Day is the capacity record of one delivery date. A Day either mirrors a
// stored calendar row (IsExplicit) or is the deterministic default for a date
// nobody configured; defaults are never persisted.
type Day struct {
	date          kernel.Date
	settings      Settings
	isExplicit    bool
	updatedAt     time.Time
	isConstructed bool
}

// DefaultDay synthesizes the settings of an unconfigured date.
func DefaultDay(date kernel.Date) *Day {
	return &Day{
		date:          date,
		settings:      DefaultSettings(),
		isConstructed: true,
	}
}

// NewDay creates an explicit day from operator settings.
func NewDay(date kernel.Date, settings Settings, now time.Time) (*Day, error) {
	if err := errors.Join(date.Validate(), settings.validate()); err != nil {
		return nil, err
	}

	settings.SpecialNotes = strings.TrimSpace(settings.SpecialNotes)
	return &Day{
		date:          date,
		settings:      settings,
		isExplicit:    true,
		updatedAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreDay rebuilds a stored calendar row.
func RestoreDay(date kernel.Date, settings Settings, updatedAt time.Time) (*Day, error) {
	return NewDay(date, settings, updatedAt)
}

func (d *Day) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDayIsNotConstructed
	}
	return nil
}

func (d *Day) Date() kernel.Date {
	return d.date
}

func (d *Day) Settings() Settings {
	return d.settings
}

func (d *Day) MaxDeliveries() int {
	return d.settings.MaxDeliveries
}

func (d *Day) IsAvailable() bool {
	return d.settings.IsAvailable
}

func (d *Day) IsHoliday() bool {
	return d.settings.IsHoliday
}

func (d *Day) SpecialNotes() string {
	return d.settings.SpecialNotes
}

func (d *Day) IsWeekend() bool {
	return d.date.IsWeekend()
}

// IsExplicit is true when the day comes from a stored calendar row.
func (d *Day) IsExplicit() bool {
	return d.isExplicit
}

func (d *Day) UpdatedAt() time.Time {
	return d.updatedAt
}

// EffectiveMax is the number of bookings the day accepts; 0 when unavailable.
func (d *Day) EffectiveMax() int {
	if !d.settings.IsAvailable {
		return 0
	}
	return d.settings.MaxDeliveries
}

// HasCapacity reports whether one more booking fits next to bookings.
func (d *Day) HasCapacity(bookings int) bool {
	return bookings < d.EffectiveMax()
}

// CheckCapacity returns a CapacityExceededError when the day is full.
func (d *Day) CheckCapacity(bookings int) error {
	if d.HasCapacity(bookings) {
		return nil
	}
	return errs.NewCapacityExceededError(d.date.String(), bookings, d.EffectiveMax())
}

// Update replaces the settings and makes the day explicit.
func (d *Day) Update(settings Settings, now time.Time) error {
	if err := settings.validate(); err != nil {
		return err
	}
	settings.SpecialNotes = strings.TrimSpace(settings.SpecialNotes)
	d.settings = settings
	d.isExplicit = true
	d.updatedAt = now
	return nil
}
