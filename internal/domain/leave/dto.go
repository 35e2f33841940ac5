package leave

import (
	"time"

	"github.com/restotrack/personnel-backend-go/internal/pkg/validator"
)

type CreateLeaveRequest struct {
	PersonnelID string `json:"personnel_id"`
	Kind        string `json:"kind"`
	StartDate   string `json:"start_date"` // YYYY-MM-DD
	EndDate     string `json:"end_date"`   // YYYY-MM-DD
	Reason      string `json:"reason"`
	ApprovedBy  string `json:"approved_by"`
}

func (r *CreateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PersonnelID) {
		errs = append(errs, validator.ValidationError{Field: "personnel_id", Message: "personnel_id is required"})
	}
	if !validator.IsInSlice(r.Kind, ValidKinds()) {
		errs = append(errs, validator.ValidationError{Field: "kind", Message: "kind must be one of annual, sick, unpaid, excuse, maternity, other"})
	}
	if validator.IsEmpty(r.ApprovedBy) {
		errs = append(errs, validator.ValidationError{Field: "approved_by", Message: "approved_by is required"})
	}

	start, okStart := validator.IsValidDate(r.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be YYYY-MM-DD"})
	}
	end, okEnd := validator.IsValidDate(r.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be YYYY-MM-DD"})
	}
	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must not be before start_date"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Dates returns the parsed range. Call after Validate.
func (r *CreateLeaveRequest) Dates() (start, end time.Time) {
	start, _ = validator.IsValidDate(r.StartDate)
	end, _ = validator.IsValidDate(r.EndDate)
	return start, end
}

type DeleteLeaveRequest struct {
	LeaveID   string `json:"leave_id"`
	DeletedBy string `json:"deleted_by"`
}

func (r *DeleteLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LeaveID) {
		errs = append(errs, validator.ValidationError{Field: "leave_id", Message: "leave_id is required"})
	}
	if validator.IsEmpty(r.DeletedBy) {
		errs = append(errs, validator.ValidationError{Field: "deleted_by", Message: "deleted_by is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LeaveResponse struct {
	ID            string  `json:"id"`
	PersonnelID   string  `json:"personnel_id"`
	PersonnelName *string `json:"personnel_name,omitempty"`
	Kind          string  `json:"kind"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	TotalDays     int     `json:"total_days"`
	Reason        string  `json:"reason"`
	ApprovedBy    string  `json:"approved_by"`
	Status        string  `json:"status"`
}

// CreateLeaveResponse carries the created record together with the balance
// after the annual-leave deduction was applied.
type CreateLeaveResponse struct {
	Leave              LeaveResponse `json:"leave"`
	RemainingLeaveDays int           `json:"remaining_leave_days"`
}

type DeleteLeaveResponse struct {
	RemainingLeaveDays int  `json:"remaining_leave_days"`
	RestoredDays       int  `json:"restored_days"`
	BalanceRestored    bool `json:"balance_restored"`
}
