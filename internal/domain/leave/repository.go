package leave

import (
	"context"
	"time"
)

type LeaveRepository interface {
	Create(ctx context.Context, l Leave) (Leave, error)
	GetByID(ctx context.Context, id string) (Leave, error)

	// ListByEmployeeAndRange returns every leave row for the employee with
	// start <= date <= end, regardless of status.
	ListByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]Leave, error)

	List(ctx context.Context, filter LeaveFilter) ([]Leave, int64, error)
	Update(ctx context.Context, l Leave) error
	Delete(ctx context.Context, id string) error
}
