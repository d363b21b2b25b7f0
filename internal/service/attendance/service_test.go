package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bavaria-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/bavaria-hr/attendance-backend-go/internal/domain/employee"
)

type stubAttendanceRepo struct {
	attendance.AttendanceRepository
	record  attendance.Attendance
	updated *attendance.Attendance
}

func (r *stubAttendanceRepo) GetByID(_ context.Context, _ string) (attendance.Attendance, error) {
	if r.updated != nil {
		return *r.updated, nil
	}
	return r.record, nil
}

func (r *stubAttendanceRepo) Update(_ context.Context, a attendance.Attendance) error {
	r.updated = &a
	return nil
}

type stubEmployeeRepo struct {
	employee.EmployeeRepository
	emp employee.Employee
}

func (r *stubEmployeeRepo) GetByID(_ context.Context, _ string) (employee.Employee, error) {
	return r.emp, nil
}

func TestUpdate_DateChangeReanchorsPunches(t *testing.T) {
	checkIn := time.Date(2025, 3, 10, 9, 10, 0, 0, time.UTC)
	checkOut := time.Date(2025, 3, 10, 17, 10, 0, 0, time.UTC)
	repo := &stubAttendanceRepo{record: attendance.Attendance{
		ID:         "att-1",
		EmployeeID: "emp-1",
		Date:       time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		CheckIn:    &checkIn,
		CheckOut:   &checkOut,
		Status:     attendance.StatusPresent,
	}}
	svc := NewAttendanceService(repo, &stubEmployeeRepo{emp: employee.Employee{
		ID:       "emp-1",
		Category: employee.CategoryEightHour,
	}})

	newDate := "2025-03-09"
	_, err := svc.Update(context.Background(), attendance.UpdateAttendanceRequest{ID: "att-1", Date: &newDate})

	require.NoError(t, err)
	require.NotNil(t, repo.updated)
	assert.Equal(t, time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC), repo.updated.Date)

	require.NotNil(t, repo.updated.CheckIn)
	assert.Equal(t, time.Date(2025, 3, 9, 9, 10, 0, 0, time.UTC), *repo.updated.CheckIn)
	require.NotNil(t, repo.updated.CheckOut)
	assert.Equal(t, time.Date(2025, 3, 9, 17, 10, 0, 0, time.UTC), *repo.updated.CheckOut)

	// Derived minutes stay day-local after the move.
	assert.Equal(t, 10, repo.updated.LateMinutes)
	assert.Equal(t, 0, repo.updated.EarlyLeaveMinutes)
}

func TestUpdate_NewPunchAnchorsOnNewDate(t *testing.T) {
	repo := &stubAttendanceRepo{record: attendance.Attendance{
		ID:         "att-1",
		EmployeeID: "emp-1",
		Date:       time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Status:     attendance.StatusAbsent,
	}}
	svc := NewAttendanceService(repo, &stubEmployeeRepo{emp: employee.Employee{
		ID:       "emp-1",
		Category: employee.CategoryEightHour,
	}})

	newDate := "2025-03-09"
	checkIn := "09:00"
	_, err := svc.Update(context.Background(), attendance.UpdateAttendanceRequest{
		ID:          "att-1",
		Date:        &newDate,
		CheckInTime: &checkIn,
	})

	require.NoError(t, err)
	require.NotNil(t, repo.updated)
	require.NotNil(t, repo.updated.CheckIn)
	assert.Equal(t, time.Date(2025, 3, 9, 9, 0, 0, 0, time.UTC), *repo.updated.CheckIn)
	assert.Equal(t, 0, repo.updated.LateMinutes)
}
