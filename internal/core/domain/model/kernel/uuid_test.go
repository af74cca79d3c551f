package kernel_test

import (
	"testing"

	"deliveryscheduler/internal/core/domain/model/kernel"
	"deliveryscheduler/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const courierIDText = "3b241101-e2bb-4255-8caf-4136c566a962"

func TestNewUUID(t *testing.T) {
	seen := make(map[string]struct{}, 100)
	for range 100 {
		id := kernel.NewUUID()
		require.NoError(t, id.Validate())

		_, dup := seen[id.String()]
		require.False(t, dup, "NewUUID returned %s twice", id)
		seen[id.String()] = struct{}{}
	}
}

func TestUUIDFromString(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"canonical", courierIDText},
		{"braced", "{" + courierIDText + "}"},
		{"urn", "urn:uuid:" + courierIDText},
		{"without hyphens", "3b241101e2bb42558caf4136c566a962"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			id, err := kernel.UUIDFromString(tc.input)

			require.NoError(t, err)
			assert.Equal(t, courierIDText, id.String())
		})
	}

	t.Run("rejects malformed input", func(t *testing.T) {
		for _, input := range []string{"", "courier-1", "3b241101-e2bb-4255-8caf", courierIDText + "0"} {
			_, err := kernel.UUIDFromString(input)
			assert.Error(t, err, "input %q", input)
		}
	})
}

func TestUUIDFromBytes(t *testing.T) {
	t.Run("accepts the stored form of a schedule id", func(t *testing.T) {
		stored := uuid.MustParse(courierIDText)

		id, err := kernel.UUIDFromBytes(stored[:])

		require.NoError(t, err)
		assert.Equal(t, courierIDText, id.String())
	})

	t.Run("rejects wrong length", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes([]byte{1, 2, 3})
		require.Error(t, err)
	})

	t.Run("rejects the nil uuid", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes(make([]byte, 16))

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestUUID_IsEqual(t *testing.T) {
	a, err := kernel.UUIDFromString(courierIDText)
	require.NoError(t, err)
	b, err := kernel.UUIDFromString("{" + courierIDText + "}")
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(kernel.NewUUID()))
	assert.True(t, kernel.UUID{}.IsEqual(kernel.UUID{}))
}

func TestUUID_Validate(t *testing.T) {
	var unset struct {
		CourierID kernel.UUID
	}

	require.ErrorIs(t, unset.CourierID.Validate(), kernel.ErrUUIDIsNotConstructed)
	require.NoError(t, kernel.NewUUID().Validate())
}

func TestUUID_BytesReturnsACopy(t *testing.T) {
	scheduleID := kernel.NewUUID()
	before := scheduleID.String()

	raw := scheduleID.Bytes()
	raw[0] ^= 0xFF

	assert.Equal(t, before, scheduleID.String())
	assert.NotEqual(t, uuid.UUID(raw).String(), scheduleID.String())

	stored := scheduleID.Bytes()
	restored, err := kernel.UUIDFromBytes(stored[:])
	require.NoError(t, err)
	assert.True(t, scheduleID.IsEqual(restored))
}
