package holiday

import (
	"time"

	"github.com/bavaria-hr/attendance-backend-go/internal/domain/holiday"
)

// weeklyRestWeekday is the structural non-working day of the week. It is
// computed, never persisted.
const weeklyRestWeekday = time.Friday

// IsWeeklyRestDay reports whether the date falls on the weekly rest day.
func IsWeeklyRestDay(date time.Time) bool {
	return date.Weekday() == weeklyRestWeekday
}

// CountWeeklyRestDays counts the weekly rest days in a month.
func CountWeeklyRestDays(year int, month int) int {
	count := 0
	for _, day := range monthDates(year, month) {
		if IsWeeklyRestDay(day) {
			count++
		}
	}
	return count
}

// BuildMonthSet merges persisted holidays with the computed weekly rest days
// into one map keyed by YYYY-MM-DD. Persisted entries win when a holiday
// lands on a rest day, so each date appears exactly once. Recurring rows are
// re-anchored onto the requested year.
func BuildMonthSet(year int, month int, persisted []holiday.Holiday) map[string]holiday.Info {
	set := make(map[string]holiday.Info, len(persisted))

	for _, h := range persisted {
		date := h.Date
		if h.IsRecurring {
			date = time.Date(year, h.Date.Month(), h.Date.Day(), 0, 0, 0, 0, time.UTC)
		}
		if date.Year() != year || int(date.Month()) != month {
			continue
		}
		set[date.Format("2006-01-02")] = holiday.Info{
			Name:        h.Name,
			Type:        h.Type,
			Description: h.Description,
		}
	}

	for _, day := range monthDates(year, month) {
		if !IsWeeklyRestDay(day) {
			continue
		}
		key := day.Format("2006-01-02")
		if _, exists := set[key]; exists {
			continue
		}
		set[key] = holiday.Info{
			Name:        "Weekly Rest Day",
			Type:        holiday.TypeWeeklyRestDay,
			Description: "Weekly Holiday",
		}
	}

	return set
}

// CountNonRestHolidays counts the month-set entries that reduce working days
// beyond the weekly rest days: every persisted holiday whose type is not the
// weekly rest day, regardless of which weekday it lands on.
func CountNonRestHolidays(set map[string]holiday.Info) int {
	count := 0
	for _, info := range set {
		if info.Type == holiday.TypeWeeklyRestDay {
			continue
		}
		count++
	}
	return count
}

func monthDates(year int, month int) []time.Time {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	days := first.AddDate(0, 1, -1).Day()

	dates := make([]time.Time, 0, days)
	for day := 1; day <= days; day++ {
		dates = append(dates, time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC))
	}
	return dates
}
