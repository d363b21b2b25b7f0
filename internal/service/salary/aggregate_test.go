package salary

import (
	"testing"
	"time"

	"github.com/bavaria-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/bavaria-hr/attendance-backend-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func presentRow(day, lateMinutes, earlyMinutes int, breakMinutes *int) attendance.Attendance {
	checkIn := time.Date(2025, 2, day, 9, 0, 0, 0, time.UTC)
	checkOut := checkIn.Add(8 * time.Hour)
	return attendance.Attendance{
		Date:              time.Date(2025, 2, day, 0, 0, 0, 0, time.UTC),
		CheckIn:           &checkIn,
		CheckOut:          &checkOut,
		BreakMinutes:      breakMinutes,
		Status:            attendance.StatusPresent,
		LateMinutes:       lateMinutes,
		EarlyLeaveMinutes: earlyMinutes,
	}
}

func TestReduce_CountsByStatus(t *testing.T) {
	rows := []attendance.Attendance{
		presentRow(3, 10, 0, nil),
		presentRow(4, 20, 15, nil),
		{Date: time.Date(2025, 2, 5, 0, 0, 0, 0, time.UTC), Status: attendance.StatusAbsent},
		{Date: time.Date(2025, 2, 6, 0, 0, 0, 0, time.UTC), Status: attendance.StatusOnLeave},
	}

	stats := Reduce(rows, nil)

	assert.Equal(t, 2, stats.PresentDays)
	assert.Equal(t, 1, stats.AbsentDays)
	assert.Equal(t, 30, stats.LateMinutesTotal)
	assert.Equal(t, 15, stats.EarlyLeaveMinutesTotal)
	assert.InDelta(t, 16.0, stats.DoneDutyHours, 0.001)
	// Leave days come from the leave rows, not attendance mirrors.
	assert.Equal(t, 0, stats.LeaveDays)
}

func TestReduce_BreakLateMinutes(t *testing.T) {
	ninety := 90
	sixty := 60
	thirty := 30

	stats := Reduce([]attendance.Attendance{
		presentRow(3, 0, 0, &ninety),
		presentRow(4, 0, 0, &sixty),
		presentRow(5, 0, 0, &thirty),
		presentRow(6, 0, 0, nil),
	}, nil)

	// Only the portion beyond the allowed hour counts.
	assert.Equal(t, 30, stats.BreakLateMinutes)
}

func TestReduce_LeaveSummaryAlwaysCarriesAllTypes(t *testing.T) {
	stats := Reduce(nil, nil)

	require.Len(t, stats.LeaveSummary, 6)
	for _, lt := range leave.AllTypes {
		count, ok := stats.LeaveSummary[lt]
		require.True(t, ok)
		assert.Equal(t, 0, count)
	}
}

func TestReduce_OnlyApprovedLeavesCount(t *testing.T) {
	leaves := []leave.Leave{
		{Type: leave.TypeSick, Status: leave.StatusApproved},
		{Type: leave.TypeSick, Status: leave.StatusPending},
		{Type: leave.TypeCasual, Status: leave.StatusRejected},
		{Type: leave.TypeUnpaid, Status: leave.StatusApproved},
		{Type: leave.TypeUnpaid, Status: leave.StatusApproved},
	}

	stats := Reduce(nil, leaves)

	assert.Equal(t, 3, stats.LeaveDays)
	assert.Equal(t, 2, stats.LWPDays)
	assert.Equal(t, 1, stats.LeaveSummary[leave.TypeSick])
	assert.Equal(t, 0, stats.LeaveSummary[leave.TypeCasual])
	assert.Equal(t, 2, stats.LeaveSummary[leave.TypeUnpaid])
}
