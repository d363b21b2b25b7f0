package attendance

import (
	"testing"
	"time"

	"github.com/bavaria-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/bavaria-hr/attendance-backend-go/internal/domain/employee"
	"github.com/stretchr/testify/assert"
)

func punch(hour, minute int) *time.Time {
	t := time.Date(2025, 3, 10, hour, minute, 0, 0, time.UTC)
	return &t
}

func TestDeriveFields_LateMinutes(t *testing.T) {
	tests := []struct {
		name     string
		category employee.Category
		checkIn  *time.Time
		want     int
	}{
		{"on time is not late", employee.CategoryEightHour, punch(9, 0), 0},
		{"ten minutes late", employee.CategoryEightHour, punch(9, 10), 10},
		{"one minute late", employee.CategoryEightHour, punch(9, 1), 1},
		{"early check-in is not late", employee.CategoryEightHour, punch(8, 45), 0},
		{"eleven hour category starts at eight", employee.CategoryElevenHour, punch(8, 30), 30},
		{"eleven hour on time", employee.CategoryElevenHour, punch(8, 0), 0},
		{"unknown category falls back to nine", employee.Category("contract"), punch(9, 20), 20},
		{"missing check-in", employee.CategoryEightHour, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			emp := employee.Employee{ID: "emp-1", Category: tt.category}
			record := attendance.Attendance{
				EmployeeID: emp.ID,
				Date:       time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
				CheckIn:    tt.checkIn,
			}

			got := DeriveFields(emp, record)

			assert.Equal(t, tt.want, got.LateMinutes)
		})
	}
}

func TestDeriveFields_EarlyLeaveMinutes(t *testing.T) {
	tests := []struct {
		name     string
		category employee.Category
		checkIn  *time.Time
		checkOut *time.Time
		want     int
	}{
		{"full day worked", employee.CategoryEightHour, punch(9, 0), punch(17, 0), 0},
		{"left thirty minutes early", employee.CategoryEightHour, punch(9, 0), punch(16, 30), 30},
		{"late start shifts expected checkout", employee.CategoryEightHour, punch(9, 30), punch(17, 0), 30},
		{"overtime is not early", employee.CategoryEightHour, punch(9, 0), punch(18, 15), 0},
		{"eleven hour shortfall", employee.CategoryElevenHour, punch(8, 0), punch(18, 0), 60},
		{"missing check-out", employee.CategoryEightHour, punch(9, 0), nil, 0},
		{"missing check-in", employee.CategoryEightHour, nil, punch(17, 0), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			emp := employee.Employee{ID: "emp-1", Category: tt.category}
			record := attendance.Attendance{
				EmployeeID: emp.ID,
				Date:       time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
				CheckIn:    tt.checkIn,
				CheckOut:   tt.checkOut,
			}

			got := DeriveFields(emp, record)

			assert.Equal(t, tt.want, got.EarlyLeaveMinutes)
		})
	}
}

func TestDeriveFields_StatusDefault(t *testing.T) {
	emp := employee.Employee{ID: "emp-1", Category: employee.CategoryEightHour}
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	withPunch := DeriveFields(emp, attendance.Attendance{Date: date, CheckIn: punch(9, 0)})
	assert.Equal(t, attendance.StatusPresent, withPunch.Status)

	withoutPunch := DeriveFields(emp, attendance.Attendance{Date: date})
	assert.Equal(t, attendance.StatusAbsent, withoutPunch.Status)

	explicit := DeriveFields(emp, attendance.Attendance{Date: date, CheckIn: punch(9, 0), Status: attendance.StatusOnLeave})
	assert.Equal(t, attendance.StatusOnLeave, explicit.Status)
}

func TestWorkedHours(t *testing.T) {
	sixty := 60
	tests := []struct {
		name         string
		checkIn      *time.Time
		checkOut     *time.Time
		breakMinutes *int
		want         float64
	}{
		{"eight hour day no break", punch(9, 0), punch(17, 0), nil, 8},
		{"break subtracted", punch(9, 0), punch(18, 0), &sixty, 8},
		{"fractional hours", punch(9, 0), punch(16, 45), nil, 7.75},
		{"missing check-out", punch(9, 0), nil, nil, 0},
		{"missing check-in", nil, punch(17, 0), nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WorkedHours(tt.checkIn, tt.checkOut, tt.breakMinutes))
		})
	}
}
