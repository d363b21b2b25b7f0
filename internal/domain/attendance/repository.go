package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	Create(ctx context.Context, a Attendance) (Attendance, error)
	GetByID(ctx context.Context, id string) (Attendance, error)
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)

	// ListByEmployeeAndRange returns every record for the employee with
	// start <= date <= end, in one query. Monthly statistics are reduced from
	// this single snapshot.
	ListByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]Attendance, error)

	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, int64, error)
	Update(ctx context.Context, a Attendance) error
	Delete(ctx context.Context, id string) error

	// ListEmployeeIDsWithRecordOn supports the nightly absent-marking job.
	ListEmployeeIDsWithRecordOn(ctx context.Context, date time.Time) ([]string, error)
}
