package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	Create(ctx context.Context, a Attendance) (Attendance, error)
	GetByID(ctx context.Context, id string) (Attendance, error)

	// GetByPersonnelAndDate is used to reject double check-in. Returns nil
	// when no record exists for that date.
	GetByPersonnelAndDate(ctx context.Context, personnelID string, date time.Time) (*Attendance, error)

	// Update persists the check-out and the computed earnings breakdown.
	Update(ctx context.Context, a Attendance) error

	List(ctx context.Context, filter Filter) ([]Attendance, error)

	// ListCompletedInRange returns records with both check-in and check-out
	// set, work date within [from, to] inclusive. Feeds the aggregation
	// engine; summaries are always recomputed from these rows.
	ListCompletedInRange(ctx context.Context, personnelID string, from, to time.Time) ([]Attendance, error)
}
