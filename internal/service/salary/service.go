package salary

import (
	"context"
	"time"

	"github.com/bavaria-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/bavaria-hr/attendance-backend-go/internal/domain/employee"
	"github.com/bavaria-hr/attendance-backend-go/internal/domain/holiday"
	"github.com/bavaria-hr/attendance-backend-go/internal/domain/leave"
	"github.com/bavaria-hr/attendance-backend-go/internal/domain/salary"
	holidaysvc "github.com/bavaria-hr/attendance-backend-go/internal/service/holiday"
	"github.com/shopspring/decimal"
)

type SalaryServiceImpl struct {
	employee.EmployeeRepository
	attendance.AttendanceRepository
	leave.LeaveRepository
	holiday.HolidayRepository
}

func NewSalaryService(
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	leaveRepo leave.LeaveRepository,
	holidayRepo holiday.HolidayRepository,
) salary.SalaryService {
	return &SalaryServiceImpl{
		EmployeeRepository:   employeeRepo,
		AttendanceRepository: attendanceRepo,
		LeaveRepository:      leaveRepo,
		HolidayRepository:    holidayRepo,
	}
}

// MonthlySalary implements salary.SalaryService.
func (s *SalaryServiceImpl) MonthlySalary(ctx context.Context, employeeID string, year int, month int) (salary.Breakdown, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return salary.Breakdown{}, err
	}

	persisted, err := s.HolidayRepository.ListForMonth(ctx, year, month)
	if err != nil {
		return salary.Breakdown{}, err
	}

	return s.breakdownFor(ctx, emp, year, month, persisted)
}

// AllEmployeesMonthlySalary implements salary.SalaryService.
func (s *SalaryServiceImpl) AllEmployeesMonthlySalary(ctx context.Context, year int, month int) ([]salary.Breakdown, error) {
	employees, err := s.EmployeeRepository.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	// One holiday fetch serves every employee; the calendar does not vary per
	// person.
	persisted, err := s.HolidayRepository.ListForMonth(ctx, year, month)
	if err != nil {
		return nil, err
	}

	breakdowns := make([]salary.Breakdown, 0, len(employees))
	for _, emp := range employees {
		breakdown, err := s.breakdownFor(ctx, emp, year, month, persisted)
		if err != nil {
			return nil, err
		}
		breakdowns = append(breakdowns, breakdown)
	}

	return breakdowns, nil
}

func (s *SalaryServiceImpl) breakdownFor(ctx context.Context, emp employee.Employee, year int, month int, persisted []holiday.Holiday) (salary.Breakdown, error) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)

	attendances, err := s.AttendanceRepository.ListByEmployeeAndRange(ctx, emp.ID, start, end)
	if err != nil {
		return salary.Breakdown{}, err
	}

	leaves, err := s.LeaveRepository.ListByEmployeeAndRange(ctx, emp.ID, start, end)
	if err != nil {
		return salary.Breakdown{}, err
	}

	stats := Reduce(attendances, leaves)
	monthSet := holidaysvc.BuildMonthSet(year, month, persisted)

	return Compute(emp, year, month, stats, holidaysvc.CountWeeklyRestDays(year, month), holidaysvc.CountNonRestHolidays(monthSet)), nil
}

// Compute assembles the monthly breakdown from the reduced statistics and the
// month's calendar shape. It is a pure function.
func Compute(emp employee.Employee, year int, month int, stats salary.MonthlyStats, restDays int, nonRestHolidays int) salary.Breakdown {
	totalDays := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, -1).Day()

	workingDays := totalDays - restDays - nonRestHolidays
	if workingDays < 0 {
		workingDays = 0
	}

	requiredHours := emp.RequiredHoursPerDay()

	perDay := decimal.Zero
	if workingDays > 0 {
		perDay = emp.GrossSalary.Div(decimal.NewFromInt(int64(workingDays)))
	}

	lwpDeduction := perDay.Mul(decimal.NewFromInt(int64(stats.LWPDays)))

	latePenalty := decimal.Zero
	if requiredMinutes := requiredHours * 60; requiredMinutes > 0 {
		latePenalty = decimal.NewFromInt(int64(stats.LateMinutesTotal)).
			Div(decimal.NewFromInt(int64(requiredMinutes))).
			Mul(perDay).
			Round(2)
	}

	finalSalary := emp.GrossSalary.Sub(lwpDeduction).Sub(latePenalty)

	return salary.Breakdown{
		EmployeeID:   emp.ID,
		EmployeeName: emp.Name,
		Category:     string(emp.Category),
		Year:         year,
		Month:        month,

		TotalDays:      totalDays,
		WorkingDays:    workingDays,
		WeeklyRestDays: restDays,
		Holidays:       nonRestHolidays,

		PresentDays: stats.PresentDays,
		AbsentDays:  stats.AbsentDays,
		LeaveDays:   stats.LeaveDays,
		LWPDays:     stats.LWPDays,

		LateMinutes:       stats.LateMinutesTotal,
		EarlyLeaveMinutes: stats.EarlyLeaveMinutesTotal,
		BreakLateMinutes:  stats.BreakLateMinutes,

		DoneDutyHours: stats.DoneDutyHours,
		DueDutyHours:  float64(workingDays * requiredHours),

		GrossSalary:  emp.GrossSalary,
		PerDaySalary: perDay,
		LWPDeduction: lwpDeduction,
		LatePenalty:  latePenalty,
		FinalSalary:  finalSalary,

		LeaveSummary: stats.LeaveSummary,
	}
}
