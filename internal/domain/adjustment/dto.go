package adjustment

import (
	"github.com/restotrack/personnel-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateAdjustmentRequest struct {
	PersonnelID  string          `json:"personnel_id"`
	Kind         string          `json:"kind"`
	Amount       decimal.Decimal `json:"amount"`
	AttendanceID *string         `json:"attendance_id"`
	Reason       string          `json:"reason"`
	CreatedBy    string          `json:"created_by"`
	AutoApprove  bool            `json:"auto_approve"`
}

func (r *CreateAdjustmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PersonnelID) {
		errs = append(errs, validator.ValidationError{Field: "personnel_id", Message: "personnel_id is required"})
	}
	if !validator.IsInSlice(r.Kind, ValidKinds()) {
		errs = append(errs, validator.ValidationError{Field: "kind", Message: "kind must be one of bonus, penalty, refund, correction"})
	}
	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "amount must be positive"})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "reason is required"})
	}
	if validator.IsEmpty(r.CreatedBy) {
		errs = append(errs, validator.ValidationError{Field: "created_by", Message: "created_by is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AdjustmentResponse struct {
	ID            string          `json:"id"`
	PersonnelID   string          `json:"personnel_id"`
	PersonnelName *string         `json:"personnel_name,omitempty"`
	Kind          string          `json:"kind"`
	Amount        decimal.Decimal `json:"amount"`
	AttendanceID  *string         `json:"attendance_id,omitempty"`
	Reason        string          `json:"reason"`
	Status        string          `json:"status"`
	CreatedBy     string          `json:"created_by"`
}
