package personnel

import "context"

// PersonnelRepository defines data access for the personnel registry.
// DeductLeaveDays and RestoreLeaveDays are single-statement balance updates;
// callers run them inside the same transaction as the leave record mutation
// so the pair commits or rolls back as one unit.
type PersonnelRepository interface {
	Create(ctx context.Context, p Personnel) (Personnel, error)
	GetByID(ctx context.Context, id string) (Personnel, error)

	// GetByIDForUpdate locks the row for the rest of the transaction.
	// Read-modify-write flows use it so a concurrent writer cannot slip a
	// commit between the read and the full-row update.
	GetByIDForUpdate(ctx context.Context, id string) (Personnel, error)

	List(ctx context.Context, activeOnly bool) ([]Personnel, error)
	Update(ctx context.Context, p Personnel) error

	// DeductLeaveDays subtracts days from remaining_leave_days, floored at 0.
	DeductLeaveDays(ctx context.Context, id string, days int) error

	// RestoreLeaveDays adds days back to remaining_leave_days. Uncapped:
	// restoring may exceed the monthly allotment.
	RestoreLeaveDays(ctx context.Context, id string, days int) error
}
