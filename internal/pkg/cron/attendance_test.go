package cron

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bavaria-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/bavaria-hr/attendance-backend-go/internal/domain/employee"
	"github.com/bavaria-hr/attendance-backend-go/internal/domain/holiday"
)

type stubAttendanceRepo struct {
	attendance.AttendanceRepository
	recordedIDs []string
	created     []attendance.Attendance
	createErr   error
}

func (r *stubAttendanceRepo) ListEmployeeIDsWithRecordOn(_ context.Context, _ time.Time) ([]string, error) {
	return r.recordedIDs, nil
}

func (r *stubAttendanceRepo) Create(_ context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	if r.createErr != nil {
		return attendance.Attendance{}, r.createErr
	}
	r.created = append(r.created, a)
	return a, nil
}

type stubEmployeeRepo struct {
	employee.EmployeeRepository
	active []employee.Employee
}

func (r *stubEmployeeRepo) ListActive(_ context.Context) ([]employee.Employee, error) {
	return r.active, nil
}

type stubHolidayService struct {
	holiday.HolidayService
	holidays map[string]holiday.Info
}

func (s *stubHolidayService) MonthSet(_ context.Context, year int, month int) (holiday.MonthResponse, error) {
	return holiday.MonthResponse{Year: year, Month: month, Holidays: s.holidays}, nil
}

func yesterdayUTC() time.Time {
	y := time.Now().UTC().AddDate(0, 0, -1)
	return time.Date(y.Year(), y.Month(), y.Day(), 0, 0, 0, 0, time.UTC)
}

func TestMarkAbsentEmployees_BackfillsMissingRecords(t *testing.T) {
	day := yesterdayUTC()
	attRepo := &stubAttendanceRepo{recordedIDs: []string{"emp-1"}}
	empRepo := &stubEmployeeRepo{active: []employee.Employee{
		{ID: "emp-1", JoiningDate: day.AddDate(-1, 0, 0)},
		{ID: "emp-2", JoiningDate: day.AddDate(-1, 0, 0)},
		{ID: "emp-3", JoiningDate: day.AddDate(0, 0, 1)}, // joined after
	}}
	jobs := NewAttendanceJobs(attRepo, empRepo, &stubHolidayService{})

	err := jobs.MarkAbsentEmployees(context.Background())

	require.NoError(t, err)
	require.Len(t, attRepo.created, 1)
	assert.Equal(t, "emp-2", attRepo.created[0].EmployeeID)
	assert.Equal(t, attendance.StatusAbsent, attRepo.created[0].Status)
	assert.Equal(t, day, attRepo.created[0].Date)
}

func TestMarkAbsentEmployees_SecondRunWritesNothing(t *testing.T) {
	day := yesterdayUTC()
	attRepo := &stubAttendanceRepo{recordedIDs: []string{"emp-1", "emp-2"}}
	empRepo := &stubEmployeeRepo{active: []employee.Employee{
		{ID: "emp-1", JoiningDate: day.AddDate(-1, 0, 0)},
		{ID: "emp-2", JoiningDate: day.AddDate(-1, 0, 0)},
	}}
	jobs := NewAttendanceJobs(attRepo, empRepo, &stubHolidayService{})

	err := jobs.MarkAbsentEmployees(context.Background())

	require.NoError(t, err)
	assert.Empty(t, attRepo.created)
}

func TestMarkAbsentEmployees_SkipsNonWorkingDay(t *testing.T) {
	day := yesterdayUTC()
	attRepo := &stubAttendanceRepo{}
	empRepo := &stubEmployeeRepo{active: []employee.Employee{
		{ID: "emp-1", JoiningDate: day.AddDate(-1, 0, 0)},
	}}
	svc := &stubHolidayService{holidays: map[string]holiday.Info{
		day.Format("2006-01-02"): {Name: "Public", Type: holiday.TypePublicHoliday},
	}}
	jobs := NewAttendanceJobs(attRepo, empRepo, svc)

	err := jobs.MarkAbsentEmployees(context.Background())

	require.NoError(t, err)
	assert.Empty(t, attRepo.created)
}

func TestMarkAbsentEmployees_DuplicateRowFromRaceIsIgnored(t *testing.T) {
	day := yesterdayUTC()
	attRepo := &stubAttendanceRepo{createErr: attendance.ErrDuplicateDate}
	empRepo := &stubEmployeeRepo{active: []employee.Employee{
		{ID: "emp-1", JoiningDate: day.AddDate(-1, 0, 0)},
	}}
	jobs := NewAttendanceJobs(attRepo, empRepo, &stubHolidayService{})

	err := jobs.MarkAbsentEmployees(context.Background())

	require.NoError(t, err)
	assert.Empty(t, attRepo.created)
}
