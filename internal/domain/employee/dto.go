package employee

import (
	"time"

	"github.com/bavaria-hr/attendance-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	GrossSalary decimal.Decimal `json:"gross_salary"`
	Department  string          `json:"department"`
	JoiningDate string          `json:"joining_date"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if !validator.IsInSlice(r.Category, []string{string(CategoryEightHour), string(CategoryElevenHour)}) {
		errs = append(errs, validator.ValidationError{Field: "category", Message: "must be 'eight_hour' or 'eleven_hour'"})
	}
	if r.GrossSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "gross_salary", Message: "must be non-negative"})
	}
	if _, ok := validator.IsValidDate(r.JoiningDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "joining_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID          string           `json:"-"`
	Name        *string          `json:"name,omitempty"`
	Category    *string          `json:"category,omitempty"`
	GrossSalary *decimal.Decimal `json:"gross_salary,omitempty"`
	Department  *string          `json:"department,omitempty"`
	JoiningDate *string          `json:"joining_date,omitempty"`
	IsActive    *bool            `json:"is_active,omitempty"`
	IsRepeated  *bool            `json:"is_repeated,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "must not be empty"})
	}
	if r.Category != nil && !validator.IsInSlice(*r.Category, []string{string(CategoryEightHour), string(CategoryElevenHour)}) {
		errs = append(errs, validator.ValidationError{Field: "category", Message: "must be 'eight_hour' or 'eleven_hour'"})
	}
	if r.GrossSalary != nil && r.GrossSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "gross_salary", Message: "must be non-negative"})
	}
	if r.JoiningDate != nil {
		if _, ok := validator.IsValidDate(*r.JoiningDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "joining_date", Message: "must be a valid date (YYYY-MM-DD)"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeFilter struct {
	Search     *string
	IsActive   *bool
	Category   *string
	Department *string
	Page       int
	Limit      int
}

type EmployeeResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	RequiredHours int             `json:"required_hours_per_day"`
	StartTime     string          `json:"office_start_time"`
	GrossSalary   decimal.Decimal `json:"gross_salary"`
	Department    string          `json:"department"`
	JoiningDate   string          `json:"joining_date"`
	IsActive      bool            `json:"is_active"`
	IsRepeated    bool            `json:"is_repeated"`
	CreatedAt     string          `json:"created_at"`
	UpdatedAt     string          `json:"updated_at"`
}

type ListEmployeeResponse struct {
	Employees  []EmployeeResponse `json:"employees"`
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"total_pages"`
}

// MapToResponse converts an Employee entity to its API shape.
func MapToResponse(e Employee) EmployeeResponse {
	rule := RuleFor(e.Category)
	return EmployeeResponse{
		ID:            e.ID,
		Name:          e.Name,
		Category:      string(e.Category),
		RequiredHours: rule.RequiredHours,
		StartTime:     time.Date(0, 1, 1, rule.StartHour, rule.StartMinute, 0, 0, time.UTC).Format("15:04"),
		GrossSalary:   e.GrossSalary,
		Department:    e.Department,
		JoiningDate:   e.JoiningDate.Format("2006-01-02"),
		IsActive:      e.IsActive,
		IsRepeated:    e.IsRepeated,
		CreatedAt:     e.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:     e.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
