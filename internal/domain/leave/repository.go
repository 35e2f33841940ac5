package leave

import "context"

type LeaveRepository interface {
	Create(ctx context.Context, record LeaveRecord) (LeaveRecord, error)
	GetByID(ctx context.Context, id string) (LeaveRecord, error)
	Delete(ctx context.Context, id string) error
	ListByPersonnel(ctx context.Context, personnelID string) ([]LeaveRecord, error)
	List(ctx context.Context) ([]LeaveRecord, error)
}
