package adjustment

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restotrack/personnel-backend-go/internal/domain/adjustment"
	auditDomain "github.com/restotrack/personnel-backend-go/internal/domain/audit"
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
	return nil, nil
}

func (f *fakePersonnelRepo) Update(ctx context.Context, p personnel.Personnel) error { return nil }

func (f *fakePersonnelRepo) DeductLeaveDays(ctx context.Context, id string, days int) error {
	return nil
}

func (f *fakePersonnelRepo) RestoreLeaveDays(ctx context.Context, id string, days int) error {
	return nil
}

type fakeAdjustmentRepo struct {
	byID map[string]adjustment.SalaryAdjustment
}

func (f *fakeAdjustmentRepo) Create(ctx context.Context, adj adjustment.SalaryAdjustment) (adjustment.SalaryAdjustment, error) {
	if adj.ID == "" {
		adj.ID = uuid.New().String()
	}
	f.byID[adj.ID] = adj
	return adj, nil
}

func (f *fakeAdjustmentRepo) GetByID(ctx context.Context, id string) (adjustment.SalaryAdjustment, error) {
	adj, ok := f.byID[id]
	if !ok {
		return adjustment.SalaryAdjustment{}, adjustment.ErrAdjustmentNotFound
	}
	return adj, nil
}

func (f *fakeAdjustmentRepo) ListByPersonnel(ctx context.Context, personnelID string) ([]adjustment.SalaryAdjustment, error) {
	var result []adjustment.SalaryAdjustment
	for _, adj := range f.byID {
		if adj.PersonnelID == personnelID {
			result = append(result, adj)
		}
	}
	return result, nil
}

func (f *fakeAdjustmentRepo) ListApprovedInRange(ctx context.Context, personnelID string, from, to time.Time) ([]adjustment.SalaryAdjustment, error) {
	return nil, nil
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

func newTestService() (AdjustmentService, string) {
	personnelID := uuid.New().String()
	personnelRepo := &fakePersonnelRepo{byID: map[string]personnel.Personnel{
		personnelID: {ID: personnelID, IsActive: true},
	}}
	adjustmentRepo := &fakeAdjustmentRepo{byID: map[string]adjustment.SalaryAdjustment{}}

	svc := NewAdjustmentService(adjustmentRepo, personnelRepo, auditService.NewRecorder(&fakeAuditRepo{}))
	return svc, personnelID
}

func TestCreateDefaultsToPending(t *testing.T) {
	svc, personnelID := newTestService()

	resp, err := svc.Create(context.Background(), adjustment.CreateAdjustmentRequest{
		PersonnelID: personnelID,
		Kind:        "bonus",
		Amount:      decimal.NewFromInt(500),
		Reason:      "holiday shift coverage",
		CreatedBy:   "admin-1",
	})
	require.NoError(t, err)

	assert.Equal(t, string(adjustment.StatusPending), resp.Status)
}

func TestCreateAutoApprove(t *testing.T) {
	svc, personnelID := newTestService()

	resp, err := svc.Create(context.Background(), adjustment.CreateAdjustmentRequest{
		PersonnelID: personnelID,
		Kind:        "penalty",
		Amount:      decimal.NewFromInt(200),
		Reason:      "till shortage",
		CreatedBy:   "admin-1",
		AutoApprove: true,
	})
	require.NoError(t, err)

	assert.Equal(t, string(adjustment.StatusApproved), resp.Status)
}

func TestCreateValidation(t *testing.T) {
	svc, personnelID := newTestService()

	_, err := svc.Create(context.Background(), adjustment.CreateAdjustmentRequest{
		PersonnelID: personnelID,
		Kind:        "bonus",
		Amount:      decimal.NewFromInt(-500),
		Reason:      "oops",
		CreatedBy:   "admin-1",
	})
	assert.Error(t, err, "negative amount must be rejected")

	_, err = svc.Create(context.Background(), adjustment.CreateAdjustmentRequest{
		PersonnelID: personnelID,
		Kind:        "bonus",
		Amount:      decimal.NewFromInt(500),
		CreatedBy:   "admin-1",
	})
	assert.Error(t, err, "missing reason must be rejected")

	_, err = svc.Create(context.Background(), adjustment.CreateAdjustmentRequest{
		PersonnelID: personnelID,
		Kind:        "writeoff",
		Amount:      decimal.NewFromInt(500),
		Reason:      "x",
		CreatedBy:   "admin-1",
	})
	assert.Error(t, err, "unknown kind must be rejected")
}

func TestCreateUnknownPersonnel(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(context.Background(), adjustment.CreateAdjustmentRequest{
		PersonnelID: uuid.New().String(),
		Kind:        "bonus",
		Amount:      decimal.NewFromInt(500),
		Reason:      "x",
		CreatedBy:   "admin-1",
	})
	assert.ErrorIs(t, err, personnel.ErrPersonnelNotFound)
}

func TestSignedAmount(t *testing.T) {
	penalty := adjustment.SalaryAdjustment{Kind: adjustment.KindPenalty, Amount: decimal.NewFromInt(200)}
	bonus := adjustment.SalaryAdjustment{Kind: adjustment.KindBonus, Amount: decimal.NewFromInt(200)}

	assert.True(t, penalty.Signed().Equal(decimal.NewFromInt(-200)))
	assert.True(t, bonus.Signed().Equal(decimal.NewFromInt(200)))
}
