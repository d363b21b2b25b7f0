package holiday

import "time"

type Type string

const (
	TypeWeeklyRestDay Type = "weekly_rest_day"
	TypePublicHoliday Type = "public_holiday"
	TypeReligiousDay  Type = "religious_day"
	TypeCompanyOff    Type = "company_off"
)

// Holiday is a persisted non-working day. The weekly rest day (Friday) is
// never stored; it is computed from the weekday and merged in when building a
// month's holiday set.
type Holiday struct {
	ID          string
	Date        time.Time
	Type        Type
	Name        string
	Description string
	IsRecurring bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Info is the per-date value in a month's holiday set.
type Info struct {
	Name        string `json:"name"`
	Type        Type   `json:"type"`
	Description string `json:"description,omitempty"`
}
