package holiday

import (
	"github.com/bavaria-hr/attendance-backend-go/internal/pkg/validator"
)

type CreateHolidayRequest struct {
	Date        string `json:"date"`
	Type        string `json:"holiday_type"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	IsRecurring bool   `json:"is_recurring,omitempty"`
}

func (r *CreateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	date, ok := validator.IsValidDate(r.Date)
	if !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid date (YYYY-MM-DD)"})
	} else if date.Year() < 2020 {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "year must be 2020 or later"})
	}

	if !validator.IsInSlice(r.Type, []string{
		string(TypeWeeklyRestDay), string(TypePublicHoliday), string(TypeReligiousDay), string(TypeCompanyOff),
	}) {
		errs = append(errs, validator.ValidationError{Field: "holiday_type", Message: "must be 'weekly_rest_day', 'public_holiday', 'religious_day' or 'company_off'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateHolidayRequest struct {
	ID          string  `json:"-"`
	Date        *string `json:"date,omitempty"`
	Type        *string `json:"holiday_type,omitempty"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	IsRecurring *bool   `json:"is_recurring,omitempty"`
}

func (r *UpdateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Date != nil {
		date, ok := validator.IsValidDate(*r.Date)
		if !ok {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid date (YYYY-MM-DD)"})
		} else if date.Year() < 2020 {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "year must be 2020 or later"})
		}
	}
	if r.Type != nil && !validator.IsInSlice(*r.Type, []string{
		string(TypeWeeklyRestDay), string(TypePublicHoliday), string(TypeReligiousDay), string(TypeCompanyOff),
	}) {
		errs = append(errs, validator.ValidationError{Field: "holiday_type", Message: "must be 'weekly_rest_day', 'public_holiday', 'religious_day' or 'company_off'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type HolidayResponse struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Type        string `json:"holiday_type"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	IsRecurring bool   `json:"is_recurring"`
}

// MonthResponse is the calendar view for one month: every non-working date
// keyed as YYYY-MM-DD.
type MonthResponse struct {
	Year           int             `json:"year"`
	Month          int             `json:"month"`
	WeeklyRestDays int             `json:"weekly_rest_days"`
	Holidays       map[string]Info `json:"holidays"`
}
