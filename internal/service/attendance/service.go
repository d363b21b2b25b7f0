package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/bavaria-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/bavaria-hr/attendance-backend-go/internal/domain/employee"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
	}
}

// Create implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Create(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to parse date: %w", err)
	}

	existing, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, emp.ID, date)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if existing != nil {
		return attendance.AttendanceResponse{}, attendance.ErrDuplicateDate
	}

	record := attendance.Attendance{
		EmployeeID:   emp.ID,
		Date:         date,
		CheckIn:      clockTimeOn(date, req.CheckInTime),
		CheckOut:     clockTimeOn(date, req.CheckOutTime),
		BreakMinutes: req.BreakMinutes,
		Notes:        req.Notes,
	}
	if req.Status != nil {
		record.Status = attendance.Status(*req.Status)
	}

	record = DeriveFields(emp, record)

	created, err := s.AttendanceRepository.Create(ctx, record)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	created.EmployeeName = &emp.Name
	category := string(emp.Category)
	created.EmployeeCategory = &category

	return mapToResponse(created), nil
}

// Get implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Get(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	record, err := s.AttendanceRepository.GetByID(ctx, id)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return mapToResponse(record), nil
}

// List implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) List(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}

	records, total, err := s.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, mapToResponse(record))
	}

	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))

	return attendance.ListAttendanceResponse{
		Attendances: responses,
		TotalCount:  total,
		Page:        filter.Page,
		Limit:       filter.Limit,
		TotalPages:  totalPages,
	}, nil
}

// Update implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Update(ctx context.Context, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	record, err := s.AttendanceRepository.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, record.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if req.Date != nil {
		date, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			return attendance.AttendanceResponse{}, fmt.Errorf("failed to parse date: %w", err)
		}
		// Stored punches are anchored on the record's date; moving the date
		// without moving them would derive minutes across calendar days.
		record.CheckIn = reanchorClock(record.CheckIn, date)
		record.CheckOut = reanchorClock(record.CheckOut, date)
		record.Date = date
	}
	if req.CheckInTime != nil {
		record.CheckIn = clockTimeOn(record.Date, req.CheckInTime)
	}
	if req.CheckOutTime != nil {
		record.CheckOut = clockTimeOn(record.Date, req.CheckOutTime)
	}
	if req.BreakMinutes != nil {
		record.BreakMinutes = req.BreakMinutes
	}
	if req.Status != nil {
		record.Status = attendance.Status(*req.Status)
	}
	if req.Notes != nil {
		record.Notes = *req.Notes
	}

	record = DeriveFields(emp, record)

	if err := s.AttendanceRepository.Update(ctx, record); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return s.Get(ctx, record.ID)
}

// Delete implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Delete(ctx context.Context, id string) error {
	return s.AttendanceRepository.Delete(ctx, id)
}

// clockTimeOn anchors an HH:MM string on the record's calendar day. The layout
// was validated upstream; a malformed value yields a nil punch.
func clockTimeOn(date time.Time, clock *string) *time.Time {
	if clock == nil {
		return nil
	}
	layout := "15:04"
	if len(*clock) == 8 {
		layout = "15:04:05"
	}
	parsed, err := time.Parse(layout, *clock)
	if err != nil {
		return nil
	}
	t := time.Date(date.Year(), date.Month(), date.Day(), parsed.Hour(), parsed.Minute(), parsed.Second(), 0, date.Location())
	return &t
}

// reanchorClock moves a punch onto date, keeping its time of day.
func reanchorClock(t *time.Time, date time.Time) *time.Time {
	if t == nil {
		return nil
	}
	anchored := time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), t.Second(), 0, t.Location())
	return &anchored
}

func mapToResponse(a attendance.Attendance) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		ID:                a.ID,
		EmployeeID:        a.EmployeeID,
		EmployeeName:      a.EmployeeName,
		Date:              a.Date.Format("2006-01-02"),
		CheckInTime:       clockString(a.CheckIn),
		CheckOutTime:      clockString(a.CheckOut),
		BreakMinutes:      a.BreakMinutes,
		Status:            string(a.Status),
		LateMinutes:       a.LateMinutes,
		EarlyLeaveMinutes: a.EarlyLeaveMinutes,
		WorkedHours:       WorkedHours(a.CheckIn, a.CheckOut, a.BreakMinutes),
		Notes:             a.Notes,
	}
}

func clockString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("15:04")
	return &s
}
