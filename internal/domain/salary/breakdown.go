package salary

import (
	"github.com/bavaria-hr/attendance-backend-go/internal/domain/leave"
	"github.com/shopspring/decimal"
)

// MonthlyStats is the one-pass reduction of an employee's attendance and
// leave rows for a month. Every statistic comes from the same snapshot.
type MonthlyStats struct {
	PresentDays            int
	AbsentDays             int
	LeaveDays              int
	LWPDays                int
	LateMinutesTotal       int
	EarlyLeaveMinutesTotal int
	BreakLateMinutes       int
	DoneDutyHours          float64
	LeaveSummary           map[leave.Type]int
}

// Breakdown is the full monthly salary result for one employee.
// Monetary fields are decimals and serialize as JSON strings.
type Breakdown struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Category     string `json:"category"`
	Year         int    `json:"year"`
	Month        int    `json:"month"`

	TotalDays      int `json:"total_days"`
	WorkingDays    int `json:"working_days"`
	WeeklyRestDays int `json:"weekly_rest_days"`
	Holidays       int `json:"holidays"`

	PresentDays int `json:"present_days"`
	AbsentDays  int `json:"absent_days"`
	LeaveDays   int `json:"leave_days"`
	LWPDays     int `json:"lwp_days"`

	LateMinutes       int `json:"late_minutes"`
	EarlyLeaveMinutes int `json:"early_leave_minutes"`
	BreakLateMinutes  int `json:"break_late_minutes"`

	DoneDutyHours float64 `json:"done_duty_hours"`
	DueDutyHours  float64 `json:"due_duty_hours"`

	GrossSalary  decimal.Decimal `json:"gross_salary"`
	PerDaySalary decimal.Decimal `json:"per_day_salary"`
	LWPDeduction decimal.Decimal `json:"lwp_deduction"`
	LatePenalty  decimal.Decimal `json:"late_penalty"`
	FinalSalary  decimal.Decimal `json:"final_salary"`

	LeaveSummary map[leave.Type]int `json:"leave_summary"`
}
