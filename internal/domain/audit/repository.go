package audit

import "context"

type AuditRepository interface {
	// Append writes one entry. There is no update or delete.
	Append(ctx context.Context, entry AuditLogEntry) error

	// List returns the newest entries first, at most limit rows.
	List(ctx context.Context, limit int) ([]AuditLogEntry, error)
}
