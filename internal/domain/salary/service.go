package salary

import "context"

type SalaryService interface {
	// MonthlySalary computes the breakdown for one employee and month.
	MonthlySalary(ctx context.Context, employeeID string, year int, month int) (Breakdown, error)

	// AllEmployeesMonthlySalary computes a breakdown per active employee.
	AllEmployeesMonthlySalary(ctx context.Context, year int, month int) ([]Breakdown, error)
}
