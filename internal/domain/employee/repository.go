package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, e Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, int64, error)
	ListActive(ctx context.Context) ([]Employee, error)
	Update(ctx context.Context, e Employee) error

	// HasRecords reports whether the employee owns any attendance or leave rows.
	HasRecords(ctx context.Context, id string) (hasAttendance bool, hasLeave bool, err error)

	// Delete hard-deletes the employee; attendance and leave rows cascade.
	Delete(ctx context.Context, id string) error

	// InTransaction runs fn with every repository call in it sharing one
	// database transaction.
	InTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
