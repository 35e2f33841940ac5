package absence

import (
	"time"

	"github.com/restotrack/personnel-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateAbsenceRequest struct {
	PersonnelID string           `json:"personnel_id"`
	Date        string           `json:"date"` // YYYY-MM-DD
	Kind        string           `json:"kind"`
	Excused     bool             `json:"excused"`
	Penalty     *decimal.Decimal `json:"penalty"` // nil means "resolve the default"
	Reason      string           `json:"reason"`
	CreatedBy   string           `json:"created_by"`
}

func (r *CreateAbsenceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PersonnelID) {
		errs = append(errs, validator.ValidationError{Field: "personnel_id", Message: "personnel_id is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be YYYY-MM-DD"})
	}
	if !validator.IsInSlice(r.Kind, ValidKinds()) {
		errs = append(errs, validator.ValidationError{Field: "kind", Message: "kind must be one of no_show, late, early_leave, unauthorized"})
	}
	if r.Penalty != nil && r.Penalty.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "penalty", Message: "penalty must not be negative"})
	}
	if validator.IsEmpty(r.CreatedBy) {
		errs = append(errs, validator.ValidationError{Field: "created_by", Message: "created_by is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Day returns the parsed absence date. Call after Validate.
func (r *CreateAbsenceRequest) Day() time.Time {
	d, _ := validator.IsValidDate(r.Date)
	return d
}

type DeleteAbsenceRequest struct {
	AbsenceID string `json:"absence_id"`
	DeletedBy string `json:"deleted_by"`
}

func (r *DeleteAbsenceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.AbsenceID) {
		errs = append(errs, validator.ValidationError{Field: "absence_id", Message: "absence_id is required"})
	}
	if validator.IsEmpty(r.DeletedBy) {
		errs = append(errs, validator.ValidationError{Field: "deleted_by", Message: "deleted_by is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Filter narrows absence listings; zero values mean "no constraint".
type Filter struct {
	PersonnelID string
	From        time.Time
	To          time.Time
}

type AbsenceResponse struct {
	ID            string          `json:"id"`
	PersonnelID   string          `json:"personnel_id"`
	PersonnelName *string         `json:"personnel_name,omitempty"`
	Date          string          `json:"date"`
	Kind          string          `json:"kind"`
	Excused       bool            `json:"excused"`
	PenaltyAmount decimal.Decimal `json:"penalty_amount"`
	Reason        string          `json:"reason"`
	CreatedBy     string          `json:"created_by"`
}

// AbsenceStats summarizes a listing, mirroring what the admin screens show.
type AbsenceStats struct {
	TotalAbsences  int             `json:"total_absences"`
	ExcusedCount   int             `json:"excused_count"`
	UnexcusedCount int             `json:"unexcused_count"`
	TotalPenalty   decimal.Decimal `json:"total_penalty"`
}

type ListAbsenceResponse struct {
	Absences []AbsenceResponse `json:"absences"`
	Stats    AbsenceStats      `json:"stats"`
}
