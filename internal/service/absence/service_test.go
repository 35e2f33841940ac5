package absence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restotrack/personnel-backend-go/internal/domain/absence"
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

type fakeAbsenceRepo struct {
	byID map[string]absence.AbsenceRecord
}

func (f *fakeAbsenceRepo) Create(ctx context.Context, record absence.AbsenceRecord) (absence.AbsenceRecord, error) {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	f.byID[record.ID] = record
	return record, nil
}

func (f *fakeAbsenceRepo) GetByID(ctx context.Context, id string) (absence.AbsenceRecord, error) {
	record, ok := f.byID[id]
	if !ok {
		return absence.AbsenceRecord{}, absence.ErrAbsenceNotFound
	}
	return record, nil
}

func (f *fakeAbsenceRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return absence.ErrAbsenceNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeAbsenceRepo) List(ctx context.Context, filter absence.Filter) ([]absence.AbsenceRecord, error) {
	var result []absence.AbsenceRecord
	for _, record := range f.byID {
		if filter.PersonnelID != "" && record.PersonnelID != filter.PersonnelID {
			continue
		}
		result = append(result, record)
	}
	return result, nil
}

func (f *fakeAbsenceRepo) ListInRange(ctx context.Context, personnelID string, from, to time.Time) ([]absence.AbsenceRecord, error) {
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

func newTestService() (AbsenceService, string) {
	personnelID := uuid.New().String()
	personnelRepo := &fakePersonnelRepo{byID: map[string]personnel.Personnel{
		personnelID: {
			ID:        personnelID,
			DailyWage: decimal.NewFromInt(1000),
			IsActive:  true,
		},
	}}
	absenceRepo := &fakeAbsenceRepo{byID: map[string]absence.AbsenceRecord{}}

	svc := NewAbsenceService(absenceRepo, personnelRepo, auditService.NewRecorder(&fakeAuditRepo{}))
	return svc, personnelID
}

func TestCreateUnexcusedNoShowChargesDailyWage(t *testing.T) {
	svc, personnelID := newTestService()

	resp, err := svc.Create(context.Background(), absence.CreateAbsenceRequest{
		PersonnelID: personnelID,
		Date:        "2026-03-10",
		Kind:        "no_show",
		CreatedBy:   "admin-1",
	})
	require.NoError(t, err)

	assert.True(t, resp.PenaltyAmount.Equal(decimal.NewFromInt(1000)), "penalty: %s", resp.PenaltyAmount)
}

func TestCreateExcusedNoShowIsFree(t *testing.T) {
	svc, personnelID := newTestService()

	resp, err := svc.Create(context.Background(), absence.CreateAbsenceRequest{
		PersonnelID: personnelID,
		Date:        "2026-03-10",
		Kind:        "no_show",
		Excused:     true,
		CreatedBy:   "admin-1",
	})
	require.NoError(t, err)

	assert.True(t, resp.PenaltyAmount.IsZero())
}

func TestCreateExplicitZeroPenaltyStoredVerbatim(t *testing.T) {
	svc, personnelID := newTestService()
	zero := decimal.Zero

	resp, err := svc.Create(context.Background(), absence.CreateAbsenceRequest{
		PersonnelID: personnelID,
		Date:        "2026-03-10",
		Kind:        "no_show",
		Penalty:     &zero,
		CreatedBy:   "admin-1",
	})
	require.NoError(t, err)

	assert.True(t, resp.PenaltyAmount.IsZero())
}

func TestCreateNegativePenaltyRejected(t *testing.T) {
	svc, personnelID := newTestService()
	negative := decimal.NewFromInt(-50)

	_, err := svc.Create(context.Background(), absence.CreateAbsenceRequest{
		PersonnelID: personnelID,
		Date:        "2026-03-10",
		Kind:        "no_show",
		Penalty:     &negative,
		CreatedBy:   "admin-1",
	})
	assert.Error(t, err)
}

func TestListStats(t *testing.T) {
	svc, personnelID := newTestService()

	explicit := decimal.NewFromInt(300)
	for _, req := range []absence.CreateAbsenceRequest{
		{PersonnelID: personnelID, Date: "2026-03-10", Kind: "no_show", CreatedBy: "admin-1"},
		{PersonnelID: personnelID, Date: "2026-03-11", Kind: "late", Excused: true, CreatedBy: "admin-1"},
		{PersonnelID: personnelID, Date: "2026-03-12", Kind: "late", Penalty: &explicit, CreatedBy: "admin-1"},
	} {
		_, err := svc.Create(context.Background(), req)
		require.NoError(t, err)
	}

	resp, err := svc.List(context.Background(), absence.Filter{PersonnelID: personnelID})
	require.NoError(t, err)

	assert.Equal(t, 3, resp.Stats.TotalAbsences)
	assert.Equal(t, 1, resp.Stats.ExcusedCount)
	assert.Equal(t, 2, resp.Stats.UnexcusedCount)
	assert.True(t, resp.Stats.TotalPenalty.Equal(decimal.NewFromInt(1300)), "total penalty: %s", resp.Stats.TotalPenalty)
}

func TestDeleteRemovesRecord(t *testing.T) {
	svc, personnelID := newTestService()

	created, err := svc.Create(context.Background(), absence.CreateAbsenceRequest{
		PersonnelID: personnelID,
		Date:        "2026-03-10",
		Kind:        "no_show",
		CreatedBy:   "admin-1",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), absence.DeleteAbsenceRequest{
		AbsenceID: created.ID,
		DeletedBy: "admin-1",
	}))

	_, err = svc.Get(context.Background(), created.ID)
	assert.ErrorIs(t, err, absence.ErrAbsenceNotFound)
}
