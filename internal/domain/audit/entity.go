package audit

import (
	"encoding/json"
	"time"
)

// AuditLogEntry is append-only: entries are written once as a mutation's
// side effect and never updated or deleted.
type AuditLogEntry struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	Action    string          `json:"action"`
	TableName string          `json:"table_name"`
	RecordID  string          `json:"record_id"`
	Details   json.RawMessage `json:"details"`
	CreatedAt time.Time       `json:"created_at"`
}

// Action tags written by the services.
const (
	ActionPersonnelCreate     = "personnel_create"
	ActionPersonnelUpdate     = "personnel_update"
	ActionPersonnelDeactivate = "personnel_deactivate"
	ActionAttendanceCheckIn   = "attendance_checkin"
	ActionAttendanceCheckOut  = "attendance_checkout"
	ActionAttendanceRecompute = "attendance_recompute"
	ActionLeaveCreate         = "leave_create"
	ActionLeaveDelete         = "leave_delete"
	ActionAbsenceCreate       = "absence_create"
	ActionAbsenceDelete       = "absence_delete"
	ActionAdjustmentCreate    = "adjustment_create"
)
