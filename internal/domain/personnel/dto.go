package personnel

import (
	"github.com/restotrack/personnel-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreatePersonnelRequest struct {
	PersonnelNo      string          `json:"personnel_no"`
	Name             string          `json:"name"`
	Surname          string          `json:"surname"`
	MonthlySalary    decimal.Decimal `json:"monthly_salary"`
	ShiftStart       string          `json:"shift_start"`
	ShiftEnd         string          `json:"shift_end"`
	MonthlyLeaveDays int             `json:"monthly_leave_days"`
}

func (r *CreatePersonnelRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PersonnelNo) {
		errs = append(errs, validator.ValidationError{Field: "personnel_no", Message: "personnel_no is required"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if validator.IsEmpty(r.Surname) {
		errs = append(errs, validator.ValidationError{Field: "surname", Message: "surname is required"})
	}
	if !r.MonthlySalary.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "monthly_salary", Message: "monthly_salary must be positive"})
	}
	if !validator.IsValidTimeOfDay(r.ShiftStart) {
		errs = append(errs, validator.ValidationError{Field: "shift_start", Message: "shift_start must be HH:MM"})
	}
	if !validator.IsValidTimeOfDay(r.ShiftEnd) {
		errs = append(errs, validator.ValidationError{Field: "shift_end", Message: "shift_end must be HH:MM"})
	}
	if r.MonthlyLeaveDays < 0 {
		errs = append(errs, validator.ValidationError{Field: "monthly_leave_days", Message: "monthly_leave_days must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdatePersonnelRequest struct {
	ID               string           `json:"-"`
	Name             *string          `json:"name"`
	Surname          *string          `json:"surname"`
	MonthlySalary    *decimal.Decimal `json:"monthly_salary"`
	ShiftStart       *string          `json:"shift_start"`
	ShiftEnd         *string          `json:"shift_end"`
	MonthlyLeaveDays *int             `json:"monthly_leave_days"`
	IsActive         *bool            `json:"is_active"`
}

func (r *UpdatePersonnelRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id is required"})
	}
	if r.MonthlySalary != nil && !r.MonthlySalary.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "monthly_salary", Message: "monthly_salary must be positive"})
	}
	if r.ShiftStart != nil && !validator.IsValidTimeOfDay(*r.ShiftStart) {
		errs = append(errs, validator.ValidationError{Field: "shift_start", Message: "shift_start must be HH:MM"})
	}
	if r.ShiftEnd != nil && !validator.IsValidTimeOfDay(*r.ShiftEnd) {
		errs = append(errs, validator.ValidationError{Field: "shift_end", Message: "shift_end must be HH:MM"})
	}
	if r.MonthlyLeaveDays != nil && *r.MonthlyLeaveDays < 0 {
		errs = append(errs, validator.ValidationError{Field: "monthly_leave_days", Message: "monthly_leave_days must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PersonnelResponse struct {
	ID                 string          `json:"id"`
	PersonnelNo        string          `json:"personnel_no"`
	Name               string          `json:"name"`
	Surname            string          `json:"surname"`
	MonthlySalary      decimal.Decimal `json:"monthly_salary"`
	DailyWage          decimal.Decimal `json:"daily_wage"`
	HourlyWage         decimal.Decimal `json:"hourly_wage"`
	MinuteWage         decimal.Decimal `json:"minute_wage"`
	ShiftStart         string          `json:"shift_start"`
	ShiftEnd           string          `json:"shift_end"`
	MonthlyLeaveDays   int             `json:"monthly_leave_days"`
	RemainingLeaveDays int             `json:"remaining_leave_days"`
	IsActive           bool            `json:"is_active"`
}
