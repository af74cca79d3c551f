package queries_test

import (
	"testing"
	"time"

	"deliveryscheduler/internal/core/application/usecases/queries"
	"deliveryscheduler/internal/core/domain/model/delivery"
	"deliveryscheduler/internal/core/domain/model/kernel"
	"deliveryscheduler/internal/core/domain/model/source"
	"deliveryscheduler/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetCalendarQuery(t *testing.T) {
	q, err := queries.NewGetCalendarQuery(2025, time.March)

	require.NoError(t, err)
	require.NoError(t, q.Validate())
	assert.Equal(t, 2025, q.Year())
	assert.Equal(t, time.March, q.Month())
}

func TestNewGetCalendarQuery_OutOfRange(t *testing.T) {
	testCases := []struct {
		name  string
		year  int
		month time.Month
	}{
		{"month zero", 2025, 0},
		{"month thirteen", 2025, 13},
		{"year too early", 1999, time.March},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := queries.NewGetCalendarQuery(tc.year, tc.month)
			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		})
	}
}

func TestQueries_Validate_ZeroValue(t *testing.T) {
	require.ErrorIs(t, queries.GetCalendarQuery{}.Validate(), queries.ErrGetCalendarQueryIsNotConstructed)
	require.ErrorIs(t, queries.RunConsistencyAuditQuery{}.Validate(), queries.ErrRunConsistencyAuditQueryIsNotConstructed)
	require.ErrorIs(t, queries.ListDeliverablesQuery{}.Validate(), queries.ErrListDeliverablesQueryIsNotConstructed)
	require.ErrorIs(t, queries.GetStatusHistoryQuery{}.Validate(), queries.ErrGetStatusHistoryQueryIsNotConstructed)
}

func TestNewRunConsistencyAuditQuery(t *testing.T) {
	t.Run("defaults to every kind", func(t *testing.T) {
		q, err := queries.NewRunConsistencyAuditQuery()
		require.NoError(t, err)
		assert.Equal(t, source.Kinds(), q.Kinds())
	})

	t.Run("rejects unknown kinds", func(t *testing.T) {
		_, err := queries.NewRunConsistencyAuditQuery("wholesale")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewGetStatusHistoryQuery_ZeroID(t *testing.T) {
	_, err := queries.NewGetStatusHistoryQuery(kernel.UUID{})

	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestMismatch_Violation(t *testing.T) {
	m := queries.Mismatch{
		ScheduleID:     kernel.NewUUID(),
		Source:         source.Ref{Kind: source.CustomDesign, ID: "9"},
		ScheduleStatus: delivery.Delivered,
		MirrorStatus:   "shipped",
	}

	v := m.Violation()

	require.ErrorIs(t, v, errs.ErrConsistencyViolation)
	assert.Contains(t, v.Error(), "shipped")
}
