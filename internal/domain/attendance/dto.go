package attendance

import (
	"time"

	"github.com/bavaria-hr/attendance-backend-go/internal/pkg/validator"
)

type CreateAttendanceRequest struct {
	EmployeeID   string  `json:"employee_id"`
	Date         string  `json:"date"`
	CheckInTime  *string `json:"check_in_time,omitempty"`
	CheckOutTime *string `json:"check_out_time,omitempty"`
	BreakMinutes *int    `json:"break_minutes,omitempty"`
	Status       *string `json:"status,omitempty"`
	Notes        string  `json:"notes,omitempty"`
}

func (r *CreateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}

	date, ok := validator.IsValidDate(r.Date)
	if !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid date (YYYY-MM-DD)"})
	} else if date.After(today()) {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "cannot be in the future"})
	}

	errs = append(errs, validateOptionalTimes(r.CheckInTime, r.CheckOutTime, r.BreakMinutes, r.Status)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateAttendanceRequest struct {
	ID           string  `json:"-"`
	Date         *string `json:"date,omitempty"`
	CheckInTime  *string `json:"check_in_time,omitempty"`
	CheckOutTime *string `json:"check_out_time,omitempty"`
	BreakMinutes *int    `json:"break_minutes,omitempty"`
	Status       *string `json:"status,omitempty"`
	Notes        *string `json:"notes,omitempty"`
}

func (r *UpdateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Date != nil {
		date, ok := validator.IsValidDate(*r.Date)
		if !ok {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid date (YYYY-MM-DD)"})
		} else if date.After(today()) {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "cannot be in the future"})
		}
	}

	errs = append(errs, validateOptionalTimes(r.CheckInTime, r.CheckOutTime, r.BreakMinutes, r.Status)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateOptionalTimes(checkIn, checkOut *string, breakMinutes *int, status *string) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if checkIn != nil {
		if _, ok := validator.IsValidClockTime(*checkIn); !ok {
			errs = append(errs, validator.ValidationError{Field: "check_in_time", Message: "must be a valid time (HH:MM)"})
		}
	}
	if checkOut != nil {
		if _, ok := validator.IsValidClockTime(*checkOut); !ok {
			errs = append(errs, validator.ValidationError{Field: "check_out_time", Message: "must be a valid time (HH:MM)"})
		}
	}
	if breakMinutes != nil && *breakMinutes < 0 {
		errs = append(errs, validator.ValidationError{Field: "break_minutes", Message: "must be non-negative"})
	}
	if status != nil && !validator.IsInSlice(*status, []string{string(StatusPresent), string(StatusAbsent), string(StatusOnLeave)}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be 'present', 'absent' or 'leave'"})
	}

	return errs
}

func today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, now.Location())
}

type AttendanceFilter struct {
	EmployeeID *string
	Status     *string
	StartDate  *string
	EndDate    *string
	Page       int
	Limit      int
}

type AttendanceResponse struct {
	ID                string  `json:"id"`
	EmployeeID        string  `json:"employee_id"`
	EmployeeName      *string `json:"employee_name,omitempty"`
	Date              string  `json:"date"`
	CheckInTime       *string `json:"check_in_time,omitempty"`
	CheckOutTime      *string `json:"check_out_time,omitempty"`
	BreakMinutes      *int    `json:"break_minutes,omitempty"`
	Status            string  `json:"status"`
	LateMinutes       int     `json:"late_minutes"`
	EarlyLeaveMinutes int     `json:"early_leave_minutes"`
	WorkedHours       float64 `json:"worked_hours"`
	Notes             string  `json:"notes,omitempty"`
}

type ListAttendanceResponse struct {
	Attendances []AttendanceResponse `json:"attendances"`
	TotalCount  int64                `json:"total_count"`
	Page        int                  `json:"page"`
	Limit       int                  `json:"limit"`
	TotalPages  int                  `json:"total_pages"`
}
