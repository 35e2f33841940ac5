package absence

import (
	"time"

	"github.com/shopspring/decimal"
)

type Kind string

const (
	KindNoShow       Kind = "no_show"
	KindLate         Kind = "late"
	KindEarlyLeave   Kind = "early_leave"
	KindUnauthorized Kind = "unauthorized"
)

func ValidKinds() []string {
	return []string{
		string(KindNoShow), string(KindLate),
		string(KindEarlyLeave), string(KindUnauthorized),
	}
}

type AbsenceRecord struct {
	ID          string
	PersonnelID string
	Date        time.Time
	Kind        Kind
	Excused     bool

	// PenaltyAmount is resolved once at creation and stored; later wage
	// changes do not rewrite it.
	PenaltyAmount decimal.Decimal

	Reason    string
	CreatedBy string
	CreatedAt time.Time

	// DTO
	PersonnelName *string
}
