package holiday

import (
	"testing"
	"time"

	"github.com/bavaria-hr/attendance-backend-go/internal/domain/holiday"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountWeeklyRestDays(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month int
		want  int
	}{
		{"february 2025 has four fridays", 2025, 2, 4},
		{"august 2025 has five fridays", 2025, 8, 5},
		{"may 2025 has five fridays", 2025, 5, 5},
		{"leap february 2024 has four fridays", 2024, 2, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CountWeeklyRestDays(tt.year, tt.month))
		})
	}
}

func TestBuildMonthSet_MergesRestDays(t *testing.T) {
	set := BuildMonthSet(2025, 3, nil)

	// March 2025 Fridays: 7, 14, 21, 28.
	require.Len(t, set, 4)
	info, ok := set["2025-03-07"]
	require.True(t, ok)
	assert.Equal(t, holiday.TypeWeeklyRestDay, info.Type)
	assert.Equal(t, "Weekly Rest Day", info.Name)
}

func TestBuildMonthSet_PersistedWinsOnCollision(t *testing.T) {
	persisted := []holiday.Holiday{
		{
			Date: time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC),
			Type: holiday.TypePublicHoliday,
			Name: "Independence Day",
		},
	}

	set := BuildMonthSet(2025, 3, persisted)

	require.Len(t, set, 4)
	info := set["2025-03-07"]
	assert.Equal(t, holiday.TypePublicHoliday, info.Type)
	assert.Equal(t, "Independence Day", info.Name)
}

func TestBuildMonthSet_RecurringReanchoredToRequestedYear(t *testing.T) {
	persisted := []holiday.Holiday{
		{
			Date:        time.Date(2022, 3, 21, 0, 0, 0, 0, time.UTC),
			Type:        holiday.TypeReligiousDay,
			Name:        "Nowruz",
			IsRecurring: true,
		},
	}

	set := BuildMonthSet(2025, 3, persisted)

	info, ok := set["2025-03-21"]
	require.True(t, ok)
	assert.Equal(t, "Nowruz", info.Name)
	_, staleYear := set["2022-03-21"]
	assert.False(t, staleYear)
}

func TestBuildMonthSet_IgnoresOutOfMonthRows(t *testing.T) {
	persisted := []holiday.Holiday{
		{Date: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), Type: holiday.TypeCompanyOff, Name: "Offsite"},
	}

	set := BuildMonthSet(2025, 3, persisted)

	_, ok := set["2025-04-01"]
	assert.False(t, ok)
}

func TestCountNonRestHolidays(t *testing.T) {
	persisted := []holiday.Holiday{
		{Date: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), Type: holiday.TypePublicHoliday, Name: "Public"},
		// Friday-dated: the typed entry wins the calendar slot and still
		// reduces working days.
		{Date: time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), Type: holiday.TypeCompanyOff, Name: "Offsite"},
	}

	set := BuildMonthSet(2025, 3, persisted)

	assert.Equal(t, 2, CountNonRestHolidays(set))
}
