package adjustment

import (
	"context"
	"time"
)

type AdjustmentRepository interface {
	Create(ctx context.Context, adj SalaryAdjustment) (SalaryAdjustment, error)
	GetByID(ctx context.Context, id string) (SalaryAdjustment, error)
	ListByPersonnel(ctx context.Context, personnelID string) ([]SalaryAdjustment, error)

	// ListApprovedInRange returns approved adjustments created within
	// [from, to] inclusive. Pending and rejected entries never reach the
	// aggregation engine.
	ListApprovedInRange(ctx context.Context, personnelID string, from, to time.Time) ([]SalaryAdjustment, error)
}
