package salary

import (
	"testing"

	"github.com/bavaria-hr/attendance-backend-go/internal/domain/employee"
	"github.com/bavaria-hr/attendance-backend-go/internal/domain/leave"
	"github.com/bavaria-hr/attendance-backend-go/internal/domain/salary"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func emptySummary() map[leave.Type]int {
	summary := make(map[leave.Type]int, len(leave.AllTypes))
	for _, t := range leave.AllTypes {
		summary[t] = 0
	}
	return summary
}

func TestCompute_StandardMonth(t *testing.T) {
	emp := employee.Employee{
		ID:          "emp-1",
		Name:        "Amira Khan",
		Category:    employee.CategoryEightHour,
		GrossSalary: decimal.RequireFromString("24000.00"),
	}
	stats := salary.MonthlyStats{
		PresentDays:      22,
		LWPDays:          1,
		LateMinutesTotal: 120,
		LeaveSummary:     emptySummary(),
	}

	// February 2025: 28 days, 4 Fridays, no holidays -> 24 working days.
	b := Compute(emp, 2025, 2, stats, 4, 0)

	assert.Equal(t, 28, b.TotalDays)
	assert.Equal(t, 24, b.WorkingDays)
	assert.True(t, b.PerDaySalary.Equal(decimal.RequireFromString("1000")), "per day = %s", b.PerDaySalary)
	assert.True(t, b.LWPDeduction.Equal(decimal.RequireFromString("1000")), "lwp = %s", b.LWPDeduction)
	assert.True(t, b.LatePenalty.Equal(decimal.RequireFromString("250.00")), "penalty = %s", b.LatePenalty)
	assert.True(t, b.FinalSalary.Equal(decimal.RequireFromString("22750")), "final = %s", b.FinalSalary)
	assert.InDelta(t, 192.0, b.DueDutyHours, 0.001)
}

func TestCompute_ZeroWorkingDays(t *testing.T) {
	emp := employee.Employee{
		ID:          "emp-1",
		Category:    employee.CategoryEightHour,
		GrossSalary: decimal.RequireFromString("24000.00"),
	}
	stats := salary.MonthlyStats{
		LWPDays:          2,
		LateMinutesTotal: 300,
		LeaveSummary:     emptySummary(),
	}

	// Every day of the month is a rest day or holiday.
	b := Compute(emp, 2025, 2, stats, 4, 28)

	assert.Equal(t, 0, b.WorkingDays)
	assert.True(t, b.PerDaySalary.IsZero())
	assert.True(t, b.LWPDeduction.IsZero())
	assert.True(t, b.LatePenalty.IsZero())
	assert.True(t, b.FinalSalary.Equal(emp.GrossSalary))
}

func TestCompute_FinalSalaryNotClamped(t *testing.T) {
	emp := employee.Employee{
		ID:          "emp-1",
		Category:    employee.CategoryEightHour,
		GrossSalary: decimal.RequireFromString("1000.00"),
	}
	stats := salary.MonthlyStats{
		LWPDays:      30,
		LeaveSummary: emptySummary(),
	}

	// Deductions larger than the gross surface as a negative result.
	b := Compute(emp, 2025, 2, stats, 4, 0)

	assert.True(t, b.FinalSalary.IsNegative(), "final = %s", b.FinalSalary)
}

func TestCompute_HolidaysReduceDenominator(t *testing.T) {
	emp := employee.Employee{
		ID:          "emp-1",
		Category:    employee.CategoryElevenHour,
		GrossSalary: decimal.RequireFromString("44000.00"),
	}
	stats := salary.MonthlyStats{LeaveSummary: emptySummary()}

	// February 2025 with two public holidays -> 22 working days.
	b := Compute(emp, 2025, 2, stats, 4, 2)

	assert.Equal(t, 22, b.WorkingDays)
	assert.True(t, b.PerDaySalary.Equal(decimal.RequireFromString("2000")))
	assert.InDelta(t, 242.0, b.DueDutyHours, 0.001)
}
