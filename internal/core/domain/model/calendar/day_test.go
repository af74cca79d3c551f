package calendar_test

import (
	"testing"
	"time"

	"deliveryscheduler/internal/core/domain/model/calendar"
	"deliveryscheduler/internal/core/domain/model/kernel"
	"deliveryscheduler/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(t *testing.T, s string) kernel.Date {
	t.Helper()
	d, err := kernel.ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestDefaultDay(t *testing.T) {
	t.Run("should synthesize default settings", func(t *testing.T) {
		day := calendar.DefaultDay(date(t, "2025-03-10"))

		require.NoError(t, day.Validate())
		assert.Equal(t, 3, day.MaxDeliveries())
		assert.True(t, day.IsAvailable())
		assert.False(t, day.IsHoliday())
		assert.False(t, day.IsWeekend())
		assert.False(t, day.IsExplicit())
	})

	t.Run("should derive weekend flag", func(t *testing.T) {
		assert.True(t, calendar.DefaultDay(date(t, "2025-03-09")).IsWeekend())
	})

	t.Run("should be deterministic", func(t *testing.T) {
		d := date(t, "2025-12-25")
		assert.Equal(t, calendar.DefaultDay(d).Settings(), calendar.DefaultDay(d).Settings())
	})
}

func TestDay_CheckCapacity(t *testing.T) {
	day := calendar.DefaultDay(date(t, "2025-03-10"))

	for bookings := 0; bookings < 3; bookings++ {
		require.NoError(t, day.CheckCapacity(bookings))
	}

	err := day.CheckCapacity(3)

	var capacityErr *errs.CapacityExceededError
	require.ErrorAs(t, err, &capacityErr)
	assert.Equal(t, 3, capacityErr.Current)
	assert.Equal(t, 3, capacityErr.Max)
	assert.Equal(t, "2025-03-10", capacityErr.Date)
}

func TestDay_Unavailable(t *testing.T) {
	day, err := calendar.NewDay(date(t, "2025-12-25"), calendar.Settings{
		MaxDeliveries: 5,
		IsAvailable:   false,
		IsHoliday:     true,
		SpecialNotes:  " Christmas ",
	}, time.Now())

	require.NoError(t, err)
	assert.True(t, day.IsExplicit())
	assert.Equal(t, "Christmas", day.SpecialNotes())
	assert.Equal(t, 0, day.EffectiveMax())
	assert.False(t, day.HasCapacity(0))
	assert.ErrorIs(t, day.CheckCapacity(0), errs.ErrCapacityExceeded)
}

func TestDay_Update(t *testing.T) {
	day := calendar.DefaultDay(date(t, "2025-03-10"))

	t.Run("should reject out of range cap", func(t *testing.T) {
		err := day.Update(calendar.Settings{MaxDeliveries: -1}, time.Now())

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.False(t, day.IsExplicit())
	})

	t.Run("should apply new settings", func(t *testing.T) {
		err := day.Update(calendar.Settings{MaxDeliveries: 6, IsAvailable: true}, time.Now())

		require.NoError(t, err)
		assert.True(t, day.IsExplicit())
		assert.Equal(t, 6, day.EffectiveMax())
	})
}
