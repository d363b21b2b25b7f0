package cron

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bavaria-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/bavaria-hr/attendance-backend-go/internal/domain/employee"
	"github.com/bavaria-hr/attendance-backend-go/internal/domain/holiday"
)

type AttendanceJobs struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	holidayService holiday.HolidayService
}

func NewAttendanceJobs(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	holidayService holiday.HolidayService,
) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		holidayService: holidayService,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("mark_absent_employees", 1*time.Hour, j.MarkAbsentEmployees)
}

// MarkAbsentEmployees backfills an absent row for every active employee who
// has no attendance record for yesterday. Rest days and holidays are skipped;
// absence on a non-working day carries no meaning. The run is idempotent, so
// the hourly schedule catches up after restarts without double-marking.
func (j *AttendanceJobs) MarkAbsentEmployees(ctx context.Context) error {
	yesterday := time.Now().UTC().AddDate(0, 0, -1)
	day := time.Date(yesterday.Year(), yesterday.Month(), yesterday.Day(), 0, 0, 0, 0, time.UTC)

	monthSet, err := j.holidayService.MonthSet(ctx, day.Year(), int(day.Month()))
	if err != nil {
		return fmt.Errorf("failed to build holiday set: %w", err)
	}
	if _, nonWorking := monthSet.Holidays[day.Format("2006-01-02")]; nonWorking {
		slog.Debug("Cron: skipping absent marking on non-working day", "date", day.Format("2006-01-02"))
		return nil
	}

	employees, err := j.employeeRepo.ListActive(ctx)
	if err != nil {
		return fmt.Errorf("failed to list active employees: %w", err)
	}

	recordedIDs, err := j.attendanceRepo.ListEmployeeIDsWithRecordOn(ctx, day)
	if err != nil {
		return fmt.Errorf("failed to list recorded employees: %w", err)
	}
	recorded := make(map[string]struct{}, len(recordedIDs))
	for _, id := range recordedIDs {
		recorded[id] = struct{}{}
	}

	marked := 0
	for _, emp := range employees {
		if _, ok := recorded[emp.ID]; ok {
			continue
		}
		if emp.JoiningDate.After(day) {
			continue
		}

		_, err := j.attendanceRepo.Create(ctx, attendance.Attendance{
			EmployeeID: emp.ID,
			Date:       day,
			Status:     attendance.StatusAbsent,
			Notes:      "auto-marked absent",
		})
		if err != nil {
			// A concurrent run already wrote the row; the unique index on
			// (employee_id, date) makes that harmless.
			if !errors.Is(err, attendance.ErrDuplicateDate) {
				slog.Error("Cron: failed to mark employee absent", "employee_id", emp.ID, "error", err)
			}
			continue
		}
		marked++
	}

	if marked > 0 {
		slog.Info("Cron: marked absent employees", "date", day.Format("2006-01-02"), "count", marked)
	}
	return nil
}
