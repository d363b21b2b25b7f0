package attendance

import (
	"math"
	"time"

	"github.com/bavaria-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/bavaria-hr/attendance-backend-go/internal/domain/employee"
)

// DeriveFields recomputes the minute fields and default status of a record
// from its punches and the employee's category rule. It is called on every
// write path so the stored values can never drift from the punches.
func DeriveFields(emp employee.Employee, a attendance.Attendance) attendance.Attendance {
	rule := employee.RuleFor(emp.Category)

	a.LateMinutes = lateMinutes(rule, a.Date, a.CheckIn)
	a.EarlyLeaveMinutes = earlyLeaveMinutes(rule.RequiredHours, a.CheckIn, a.CheckOut)

	if a.Status == "" {
		if a.CheckIn != nil {
			a.Status = attendance.StatusPresent
		} else {
			a.Status = attendance.StatusAbsent
		}
	}

	return a
}

// lateMinutes is the whole-minute gap between the official start time and a
// strictly later check-in. Checking in exactly on time is not late.
func lateMinutes(rule employee.CategoryRule, date time.Time, checkIn *time.Time) int {
	if checkIn == nil {
		return 0
	}
	start := rule.StartTimeOn(date)
	if !checkIn.After(start) {
		return 0
	}
	return int(checkIn.Sub(start).Minutes())
}

// earlyLeaveMinutes is the whole-minute shortfall against the expected
// checkout, which is the check-in plus the category's required hours. Both
// punches are needed; otherwise the shortfall is zero.
func earlyLeaveMinutes(requiredHours int, checkIn, checkOut *time.Time) int {
	if checkIn == nil || checkOut == nil {
		return 0
	}
	expected := checkIn.Add(time.Duration(requiredHours) * time.Hour)
	if !checkOut.Before(expected) {
		return 0
	}
	return int(expected.Sub(*checkOut).Minutes())
}

// WorkedHours is checkout minus check-in minus the break, in hours rounded to
// two decimals. Zero when either punch is missing.
func WorkedHours(checkIn, checkOut *time.Time, breakMinutes *int) float64 {
	if checkIn == nil || checkOut == nil {
		return 0
	}
	worked := checkOut.Sub(*checkIn)
	if breakMinutes != nil {
		worked -= time.Duration(*breakMinutes) * time.Minute
	}
	return math.Round(worked.Hours()*100) / 100
}
