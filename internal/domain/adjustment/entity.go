package adjustment

import (
	"time"

	"github.com/shopspring/decimal"
)

type Kind string

const (
	KindBonus      Kind = "bonus"
	KindPenalty    Kind = "penalty"
	KindRefund     Kind = "refund"
	KindCorrection Kind = "correction"
)

func ValidKinds() []string {
	return []string{
		string(KindBonus), string(KindPenalty),
		string(KindRefund), string(KindCorrection),
	}
}

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

type SalaryAdjustment struct {
	ID          string
	PersonnelID string
	Kind        Kind

	// Amount is a non-negative magnitude; the sign is implied by Kind.
	Amount decimal.Decimal

	AttendanceID *string
	Reason       string
	Status       Status
	CreatedBy    string
	CreatedAt    time.Time

	// DTO
	PersonnelName *string
}

// Signed returns the amount with the sign implied by the kind: penalty
// subtracts from net earnings, everything else adds.
func (a SalaryAdjustment) Signed() decimal.Decimal {
	if a.Kind == KindPenalty {
		return a.Amount.Neg()
	}
	return a.Amount
}
