package holiday

import "context"

type HolidayRepository interface {
	Create(ctx context.Context, h Holiday) (Holiday, error)
	GetByID(ctx context.Context, id string) (Holiday, error)

	// ListForMonth returns holidays dated inside the month plus recurring
	// holidays whose month-of-year matches, regardless of stored year.
	ListForMonth(ctx context.Context, year int, month int) ([]Holiday, error)

	ListByYear(ctx context.Context, year int) ([]Holiday, error)
	Update(ctx context.Context, h Holiday) error
	Delete(ctx context.Context, id string) error
}
