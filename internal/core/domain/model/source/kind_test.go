package source_test

import (
	"testing"

	"deliveryscheduler/internal/core/domain/model/source"
	"deliveryscheduler/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	t.Run("should accept persisted values", func(t *testing.T) {
		for _, raw := range []string{"regular", "custom_order", " CUSTOM_DESIGN "} {
			k, err := source.ParseKind(raw)
			require.NoError(t, err, raw)
			assert.NoError(t, k.Validate())
		}
	})

	t.Run("should reject unknown kind", func(t *testing.T) {
		_, err := source.ParseKind("wholesale")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestKind_HasDateMirror(t *testing.T) {
	assert.False(t, source.Standard.HasDateMirror())
	assert.True(t, source.CustomFabrication.HasDateMirror())
	assert.True(t, source.CustomDesign.HasDateMirror())
}

func TestNewRef(t *testing.T) {
	t.Run("should build ref", func(t *testing.T) {
		ref, err := source.NewRef(source.CustomDesign, " 17 ")

		require.NoError(t, err)
		assert.Equal(t, "17", ref.ID)
		assert.Equal(t, "custom_design/17", ref.String())
	})

	t.Run("should require id", func(t *testing.T) {
		_, err := source.NewRef(source.Standard, "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("records expose their ref", func(t *testing.T) {
		var rec source.Record = source.CustomFabricationOrder{ID: "9", DeliveryStatus: "shipped"}

		assert.Equal(t, source.Ref{Kind: source.CustomFabrication, ID: "9"}, rec.Ref())
		assert.Equal(t, "shipped", rec.MirrorStatus())
	})
}
