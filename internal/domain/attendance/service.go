package attendance

import "context"

type AttendanceService interface {
	// Create records a day's punches. Late and early-leave minutes are derived
	// before the row is written; a missing status defaults to present when a
	// check-in exists.
	Create(ctx context.Context, req CreateAttendanceRequest) (AttendanceResponse, error)

	Get(ctx context.Context, id string) (AttendanceResponse, error)
	List(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)

	// Update re-derives the minute fields from the resulting punches, always.
	Update(ctx context.Context, req UpdateAttendanceRequest) (AttendanceResponse, error)

	Delete(ctx context.Context, id string) error
}
