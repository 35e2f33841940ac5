package leave

import "time"

type Kind string

const (
	KindAnnual    Kind = "annual"
	KindSick      Kind = "sick"
	KindUnpaid    Kind = "unpaid"
	KindExcuse    Kind = "excuse"
	KindMaternity Kind = "maternity"
	KindOther     Kind = "other"
)

func ValidKinds() []string {
	return []string{
		string(KindAnnual), string(KindSick), string(KindUnpaid),
		string(KindExcuse), string(KindMaternity), string(KindOther),
	}
}

type LeaveRecord struct {
	ID          string
	PersonnelID string
	Kind        Kind
	StartDate   time.Time
	EndDate     time.Time

	// TotalDays is the inclusive day count: end - start + 1.
	TotalDays int

	Reason     string
	ApprovedBy string
	Status     string
	CreatedAt  time.Time

	// DTO
	PersonnelName *string
}

// TotalDaysInclusive computes the inclusive day count of [start, end].
func TotalDaysInclusive(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}
