package leave

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	auditDomain "github.com/restotrack/personnel-backend-go/internal/domain/audit"
	"github.com/restotrack/personnel-backend-go/internal/domain/leave"
	"github.com/restotrack/personnel-backend-go/internal/domain/personnel"
	auditService "github.com/restotrack/personnel-backend-go/internal/service/audit"
)

type fakePersonnelRepo struct {
	byID map[string]personnel.Personnel
}

func (f *fakePersonnelRepo) Create(ctx context.Context, p personnel.Personnel) (personnel.Personnel, error) {
	f.byID[p.ID] = p
	return p, nil
}

func (f *fakePersonnelRepo) GetByID(ctx context.Context, id string) (personnel.Personnel, error) {
	p, ok := f.byID[id]
	if !ok {
		return personnel.Personnel{}, personnel.ErrPersonnelNotFound
	}
	return p, nil
}

func (f *fakePersonnelRepo) GetByIDForUpdate(ctx context.Context, id string) (personnel.Personnel, error) {
	return f.GetByID(ctx, id)
}

func (f *fakePersonnelRepo) List(ctx context.Context, activeOnly bool) ([]personnel.Personnel, error) {
	var result []personnel.Personnel
	for _, p := range f.byID {
		if !activeOnly || p.IsActive {
			result = append(result, p)
		}
	}
	return result, nil
}

func (f *fakePersonnelRepo) Update(ctx context.Context, p personnel.Personnel) error {
	if _, ok := f.byID[p.ID]; !ok {
		return personnel.ErrPersonnelNotFound
	}
	f.byID[p.ID] = p
	return nil
}

func (f *fakePersonnelRepo) DeductLeaveDays(ctx context.Context, id string, days int) error {
	p, ok := f.byID[id]
	if !ok {
		return personnel.ErrPersonnelNotFound
	}
	p.RemainingLeaveDays -= days
	if p.RemainingLeaveDays < 0 {
		p.RemainingLeaveDays = 0
	}
	f.byID[id] = p
	return nil
}

func (f *fakePersonnelRepo) RestoreLeaveDays(ctx context.Context, id string, days int) error {
	p, ok := f.byID[id]
	if !ok {
		return personnel.ErrPersonnelNotFound
	}
	p.RemainingLeaveDays += days
	f.byID[id] = p
	return nil
}

type fakeLeaveRepo struct {
	byID map[string]leave.LeaveRecord
}

func (f *fakeLeaveRepo) Create(ctx context.Context, record leave.LeaveRecord) (leave.LeaveRecord, error) {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	f.byID[record.ID] = record
	return record, nil
}

func (f *fakeLeaveRepo) GetByID(ctx context.Context, id string) (leave.LeaveRecord, error) {
	record, ok := f.byID[id]
	if !ok {
		return leave.LeaveRecord{}, leave.ErrLeaveNotFound
	}
	return record, nil
}

func (f *fakeLeaveRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return leave.ErrLeaveNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeLeaveRepo) ListByPersonnel(ctx context.Context, personnelID string) ([]leave.LeaveRecord, error) {
	var result []leave.LeaveRecord
	for _, record := range f.byID {
		if record.PersonnelID == personnelID {
			result = append(result, record)
		}
	}
	return result, nil
}

func (f *fakeLeaveRepo) List(ctx context.Context) ([]leave.LeaveRecord, error) {
	var result []leave.LeaveRecord
	for _, record := range f.byID {
		result = append(result, record)
	}
	return result, nil
}

// passthroughTx runs the callback without a real transaction.
type passthroughTx struct{}

func (passthroughTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeAuditRepo struct {
	entries []auditDomain.AuditLogEntry
}

func (f *fakeAuditRepo) Append(ctx context.Context, entry auditDomain.AuditLogEntry) error {
	f.entries = append(f.entries, entry)
	return nil
}

func (f *fakeAuditRepo) List(ctx context.Context, limit int) ([]auditDomain.AuditLogEntry, error) {
	return f.entries, nil
}

func newTestService() (LeaveService, *fakePersonnelRepo, *fakeLeaveRepo, *fakeAuditRepo) {
	personnelRepo := &fakePersonnelRepo{byID: map[string]personnel.Personnel{}}
	leaveRepo := &fakeLeaveRepo{byID: map[string]leave.LeaveRecord{}}
	auditRepo := &fakeAuditRepo{}

	svc := NewLeaveService(leaveRepo, personnelRepo, passthroughTx{}, auditService.NewRecorder(auditRepo))
	return svc, personnelRepo, leaveRepo, auditRepo
}

func seedPersonnel(repo *fakePersonnelRepo, remaining int) string {
	id := uuid.New().String()
	repo.byID[id] = personnel.Personnel{
		ID:                 id,
		PersonnelNo:        "P-001",
		Name:               "Ayse",
		Surname:            "Demir",
		MonthlySalary:      decimal.NewFromInt(30000),
		MonthlyLeaveDays:   14,
		RemainingLeaveDays: remaining,
		IsActive:           true,
	}
	return id
}

func TestCreateAnnualLeaveDeductsBalance(t *testing.T) {
	svc, personnelRepo, _, auditRepo := newTestService()
	personnelID := seedPersonnel(personnelRepo, 14)

	resp, err := svc.Create(context.Background(), leave.CreateLeaveRequest{
		PersonnelID: personnelID,
		Kind:        "annual",
		StartDate:   "2026-03-10",
		EndDate:     "2026-03-13",
		ApprovedBy:  "admin-1",
	})
	require.NoError(t, err)

	assert.Equal(t, 4, resp.Leave.TotalDays)
	assert.Equal(t, 10, resp.RemainingLeaveDays)
	require.Len(t, auditRepo.entries, 1)
	assert.Equal(t, auditDomain.ActionLeaveCreate, auditRepo.entries[0].Action)
}

func TestCreateSickLeaveKeepsBalance(t *testing.T) {
	svc, personnelRepo, _, _ := newTestService()
	personnelID := seedPersonnel(personnelRepo, 14)

	resp, err := svc.Create(context.Background(), leave.CreateLeaveRequest{
		PersonnelID: personnelID,
		Kind:        "sick",
		StartDate:   "2026-03-10",
		EndDate:     "2026-03-12",
		ApprovedBy:  "admin-1",
	})
	require.NoError(t, err)

	assert.Equal(t, 14, resp.RemainingLeaveDays)
}

func TestCreateAnnualLeaveFloorsBalanceAtZero(t *testing.T) {
	svc, personnelRepo, _, _ := newTestService()
	personnelID := seedPersonnel(personnelRepo, 2)

	resp, err := svc.Create(context.Background(), leave.CreateLeaveRequest{
		PersonnelID: personnelID,
		Kind:        "annual",
		StartDate:   "2026-03-10",
		EndDate:     "2026-03-14",
		ApprovedBy:  "admin-1",
	})
	require.NoError(t, err)

	assert.Equal(t, 0, resp.RemainingLeaveDays)
}

func TestDeleteAnnualLeaveRestoresFullDayCount(t *testing.T) {
	svc, personnelRepo, _, _ := newTestService()
	personnelID := seedPersonnel(personnelRepo, 14)

	created, err := svc.Create(context.Background(), leave.CreateLeaveRequest{
		PersonnelID: personnelID,
		Kind:        "annual",
		StartDate:   "2026-03-10",
		EndDate:     "2026-03-13",
		ApprovedBy:  "admin-1",
	})
	require.NoError(t, err)
	require.Equal(t, 10, created.RemainingLeaveDays)

	deleted, err := svc.Delete(context.Background(), leave.DeleteLeaveRequest{
		LeaveID:   created.Leave.ID,
		DeletedBy: "admin-1",
	})
	require.NoError(t, err)

	assert.True(t, deleted.BalanceRestored)
	assert.Equal(t, 4, deleted.RestoredDays)
	assert.Equal(t, 14, deleted.RemainingLeaveDays)
}

func TestDeleteAfterFlooredDeductionOvershootsBalance(t *testing.T) {
	svc, personnelRepo, _, _ := newTestService()
	personnelID := seedPersonnel(personnelRepo, 2)

	created, err := svc.Create(context.Background(), leave.CreateLeaveRequest{
		PersonnelID: personnelID,
		Kind:        "annual",
		StartDate:   "2026-03-10",
		EndDate:     "2026-03-14",
		ApprovedBy:  "admin-1",
	})
	require.NoError(t, err)
	require.Equal(t, 0, created.RemainingLeaveDays)

	// The restore adds the full five days back even though only two were
	// deducted, so the balance ends above where it started.
	deleted, err := svc.Delete(context.Background(), leave.DeleteLeaveRequest{
		LeaveID:   created.Leave.ID,
		DeletedBy: "admin-1",
	})
	require.NoError(t, err)
	assert.Equal(t, 5, deleted.RemainingLeaveDays)
}

func TestDeleteNonAnnualLeaveSkipsRestore(t *testing.T) {
	svc, personnelRepo, _, _ := newTestService()
	personnelID := seedPersonnel(personnelRepo, 14)

	created, err := svc.Create(context.Background(), leave.CreateLeaveRequest{
		PersonnelID: personnelID,
		Kind:        "unpaid",
		StartDate:   "2026-03-10",
		EndDate:     "2026-03-11",
		ApprovedBy:  "admin-1",
	})
	require.NoError(t, err)

	deleted, err := svc.Delete(context.Background(), leave.DeleteLeaveRequest{
		LeaveID:   created.Leave.ID,
		DeletedBy: "admin-1",
	})
	require.NoError(t, err)

	assert.False(t, deleted.BalanceRestored)
	assert.Equal(t, 0, deleted.RestoredDays)
	assert.Equal(t, 14, deleted.RemainingLeaveDays)
}

func TestCreateLeaveInactivePersonnel(t *testing.T) {
	svc, personnelRepo, _, _ := newTestService()
	personnelID := seedPersonnel(personnelRepo, 14)
	p := personnelRepo.byID[personnelID]
	p.IsActive = false
	personnelRepo.byID[personnelID] = p

	_, err := svc.Create(context.Background(), leave.CreateLeaveRequest{
		PersonnelID: personnelID,
		Kind:        "annual",
		StartDate:   "2026-03-10",
		EndDate:     "2026-03-11",
		ApprovedBy:  "admin-1",
	})
	assert.ErrorIs(t, err, personnel.ErrPersonnelInactive)
}

func TestDeleteUnknownLeave(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.Delete(context.Background(), leave.DeleteLeaveRequest{
		LeaveID:   uuid.New().String(),
		DeletedBy: "admin-1",
	})
	assert.ErrorIs(t, err, leave.ErrLeaveNotFound)
}
