package attendance

import (
	"time"
)

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusOnLeave Status = "leave"
)

// Attendance is one punch record per employee per calendar day.
// LateMinutes and EarlyLeaveMinutes are derived from the punches on every
// save; they are never written independently.
type Attendance struct {
	ID                string
	EmployeeID        string
	Date              time.Time
	CheckIn           *time.Time
	CheckOut          *time.Time
	BreakMinutes      *int
	Status            Status
	LateMinutes       int
	EarlyLeaveMinutes int
	Notes             string
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// Joined for responses
	EmployeeName     *string
	EmployeeCategory *string
}
