package holiday

import "context"

type HolidayService interface {
	Create(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error)
	Get(ctx context.Context, id string) (HolidayResponse, error)
	ListByYear(ctx context.Context, year int) ([]HolidayResponse, error)
	Update(ctx context.Context, req UpdateHolidayRequest) (HolidayResponse, error)
	Delete(ctx context.Context, id string) error

	// MonthSet returns the complete non-working-day map for a month:
	// persisted holidays unioned with the weekly rest day, persisted entries
	// winning on collision.
	MonthSet(ctx context.Context, year int, month int) (MonthResponse, error)
}
