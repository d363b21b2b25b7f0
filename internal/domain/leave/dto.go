package leave

import (
	"time"

	"github.com/bavaria-hr/attendance-backend-go/internal/pkg/validator"
)

type CreateLeaveRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Type       string `json:"leave_type"`
	Reason     string `json:"reason,omitempty"`
}

func (r *CreateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}

	date, ok := validator.IsValidDate(r.Date)
	if !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid date (YYYY-MM-DD)"})
	} else {
		now := time.Now()
		endOfToday := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, now.Location())
		if date.After(endOfToday) {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "cannot be in the future"})
		}
	}

	if !isKnownType(r.Type) {
		errs = append(errs, validator.ValidationError{Field: "leave_type", Message: "must be one of SL, CL, PL, ML, LWP, WL"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func isKnownType(t string) bool {
	for _, known := range AllTypes {
		if t == string(known) {
			return true
		}
	}
	return false
}

type LeaveFilter struct {
	EmployeeID *string
	Status     *string
	Type       *string
	StartDate  *string
	EndDate    *string
	Page       int
	Limit      int
}

type LeaveResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	Date         string  `json:"date"`
	Type         string  `json:"leave_type"`
	Reason       string  `json:"reason,omitempty"`
	Status       string  `json:"status"`
	IsPaid       bool    `json:"is_paid"`
	ApprovedBy   *string `json:"approved_by,omitempty"`
	ApprovedAt   *string `json:"approved_at,omitempty"`
}

type ListLeaveResponse struct {
	Leaves     []LeaveResponse `json:"leaves"`
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"total_pages"`
}
