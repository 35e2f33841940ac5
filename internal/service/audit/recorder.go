package audit

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/restotrack/personnel-backend-go/internal/domain/audit"
)

// Recorder appends audit entries after primary mutations commit. Writes are
// best-effort: a failed append is logged and never propagated, so the primary
// operation's outcome is unaffected.
type Recorder interface {
	Record(ctx context.Context, actorID, action, tableName, recordID string, details map[string]interface{})
	List(ctx context.Context, limit int) ([]audit.AuditLogEntry, error)
}

type recorderImpl struct {
	auditRepo audit.AuditRepository
}

func NewRecorder(auditRepo audit.AuditRepository) Recorder {
	return &recorderImpl{auditRepo: auditRepo}
}

func (r *recorderImpl) Record(ctx context.Context, actorID, action, tableName, recordID string, details map[string]interface{}) {
	payload, err := json.Marshal(details)
	if err != nil {
		slog.Error("audit detail marshal failed", "action", action, "error", err)
		payload = []byte("{}")
	}

	entry := audit.AuditLogEntry{
		UserID:    actorID,
		Action:    action,
		TableName: tableName,
		RecordID:  recordID,
		Details:   payload,
	}

	if err := r.auditRepo.Append(ctx, entry); err != nil {
		slog.Error("audit write failed",
			"action", action,
			"table", tableName,
			"record_id", recordID,
			"error", err,
		)
	}
}

func (r *recorderImpl) List(ctx context.Context, limit int) ([]audit.AuditLogEntry, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	return r.auditRepo.List(ctx, limit)
}
