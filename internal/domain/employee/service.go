package employee

import "context"

type EmployeeService interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Get(ctx context.Context, id string) (EmployeeResponse, error)
	List(ctx context.Context, filter EmployeeFilter) (ListEmployeeResponse, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// Deactivate soft-disables the employee instead of deleting history.
	Deactivate(ctx context.Context, id string) error

	// Delete hard-deletes, subject to the deletion guard: the employee must be
	// inactive or marked repeated, and must own no attendance or leave rows.
	Delete(ctx context.Context, id string) error
}
