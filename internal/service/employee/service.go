package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/bavaria-hr/attendance-backend-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{EmployeeRepository: employeeRepo}
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	joiningDate, err := time.Parse("2006-01-02", req.JoiningDate)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to parse joining date: %w", err)
	}

	created, err := s.EmployeeRepository.Create(ctx, employee.Employee{
		Name:        req.Name,
		Category:    employee.Category(req.Category),
		GrossSalary: req.GrossSalary,
		Department:  req.Department,
		JoiningDate: joiningDate,
		IsActive:    true,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.MapToResponse(created), nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.MapToResponse(emp), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeeResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}

	employees, total, err := s.EmployeeRepository.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeeResponse{}, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employee.MapToResponse(emp))
	}

	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))

	return employee.ListEmployeeResponse{
		Employees:  responses,
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
	}, nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.Name != nil {
		emp.Name = *req.Name
	}
	if req.Category != nil {
		emp.Category = employee.Category(*req.Category)
	}
	if req.GrossSalary != nil {
		emp.GrossSalary = *req.GrossSalary
	}
	if req.Department != nil {
		emp.Department = *req.Department
	}
	if req.JoiningDate != nil {
		joiningDate, err := time.Parse("2006-01-02", *req.JoiningDate)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("failed to parse joining date: %w", err)
		}
		emp.JoiningDate = joiningDate
	}
	if req.IsActive != nil {
		emp.IsActive = *req.IsActive
	}
	if req.IsRepeated != nil {
		emp.IsRepeated = *req.IsRepeated
	}

	if err := s.EmployeeRepository.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.MapToResponse(emp), nil
}

// Deactivate implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Deactivate(ctx context.Context, id string) error {
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	emp.IsActive = false
	return s.EmployeeRepository.Update(ctx, emp)
}

// Delete implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	// The record check and the delete share one transaction so a punch or
	// leave row created in between cannot slip past the guard.
	return s.EmployeeRepository.InTransaction(ctx, func(ctx context.Context) error {
		hasAttendance, hasLeave, err := s.EmployeeRepository.HasRecords(ctx, id)
		if err != nil {
			return err
		}

		if reason := deletionDenialReason(emp, hasAttendance || hasLeave); reason != "" {
			return &employee.DeletionDeniedError{Reason: reason}
		}

		return s.EmployeeRepository.Delete(ctx, id)
	})
}

// deletionDenialReason returns the empty string when deletion is allowed.
// Deletion requires the employee to be inactive or marked repeated, and to
// own no attendance or leave rows.
func deletionDenialReason(emp employee.Employee, hasRecords bool) string {
	if emp.IsActive && !emp.IsRepeated {
		if hasRecords {
			return "cannot delete active employee with attendance or leave records"
		}
		return "cannot delete active employee"
	}
	if hasRecords {
		return "cannot delete employee with attendance or leave records"
	}
	return ""
}
