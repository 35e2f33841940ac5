package absence

import (
	"context"
	"time"
)

type AbsenceRepository interface {
	Create(ctx context.Context, record AbsenceRecord) (AbsenceRecord, error)
	GetByID(ctx context.Context, id string) (AbsenceRecord, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter Filter) ([]AbsenceRecord, error)

	// ListInRange feeds the aggregation engine: all records for one
	// personnel with date within [from, to] inclusive.
	ListInRange(ctx context.Context, personnelID string, from, to time.Time) ([]AbsenceRecord, error)
}
