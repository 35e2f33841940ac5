package postgresql

import (
	"context"

	"github.com/google/uuid"

	"github.com/restotrack/personnel-backend-go/internal/domain/audit"
	"github.com/restotrack/personnel-backend-go/internal/pkg/database"
)

type auditRepositoryImpl struct {
	db *database.DB
}

func NewAuditRepository(db *database.DB) audit.AuditRepository {
	return &auditRepositoryImpl{db: db}
}

func (r *auditRepositoryImpl) Append(ctx context.Context, entry audit.AuditLogEntry) error {
	q := GetQuerier(ctx, r.db)

	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}

	insertQuery := `
		INSERT INTO audit_logs (id, user_id, action, table_name, record_id, details)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := q.Exec(ctx, insertQuery,
		entry.ID, entry.UserID, entry.Action, entry.TableName, entry.RecordID, entry.Details,
	)
	return err
}

func (r *auditRepositoryImpl) List(ctx context.Context, limit int) ([]audit.AuditLogEntry, error) {
	q := GetQuerier(ctx, r.db)

	selectQuery := `
		SELECT id, user_id, action, table_name, record_id, details, created_at
		FROM audit_logs
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := q.Query(ctx, selectQuery, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []audit.AuditLogEntry
	for rows.Next() {
		var entry audit.AuditLogEntry
		if err := rows.Scan(
			&entry.ID,
			&entry.UserID,
			&entry.Action,
			&entry.TableName,
			&entry.RecordID,
			&entry.Details,
			&entry.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, entry)
	}

	return result, rows.Err()
}
