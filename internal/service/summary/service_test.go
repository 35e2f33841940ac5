package summary

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restotrack/personnel-backend-go/internal/domain/absence"
	"github.com/restotrack/personnel-backend-go/internal/domain/adjustment"
	"github.com/restotrack/personnel-backend-go/internal/domain/attendance"
	"github.com/restotrack/personnel-backend-go/internal/domain/personnel"
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

type fakeAttendanceRepo struct {
	records []attendance.Attendance
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	f.records = append(f.records, a)
	return a, nil
}

func (f *fakeAttendanceRepo) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) GetByPersonnelAndDate(ctx context.Context, personnelID string, date time.Time) (*attendance.Attendance, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) Update(ctx context.Context, a attendance.Attendance) error { return nil }

func (f *fakeAttendanceRepo) List(ctx context.Context, filter attendance.Filter) ([]attendance.Attendance, error) {
	return f.records, nil
}

func (f *fakeAttendanceRepo) ListCompletedInRange(ctx context.Context, personnelID string, from, to time.Time) ([]attendance.Attendance, error) {
	var result []attendance.Attendance
	for _, a := range f.records {
		if a.PersonnelID != personnelID || !a.Completed() {
			continue
		}
		if a.WorkDate.Before(from) || a.WorkDate.After(to) {
			continue
		}
		result = append(result, a)
	}
	return result, nil
}

type fakeAbsenceRepo struct {
	records []absence.AbsenceRecord
}

func (f *fakeAbsenceRepo) Create(ctx context.Context, record absence.AbsenceRecord) (absence.AbsenceRecord, error) {
	f.records = append(f.records, record)
	return record, nil
}

func (f *fakeAbsenceRepo) GetByID(ctx context.Context, id string) (absence.AbsenceRecord, error) {
	return absence.AbsenceRecord{}, absence.ErrAbsenceNotFound
}

func (f *fakeAbsenceRepo) Delete(ctx context.Context, id string) error { return nil }

func (f *fakeAbsenceRepo) List(ctx context.Context, filter absence.Filter) ([]absence.AbsenceRecord, error) {
	return f.records, nil
}

func (f *fakeAbsenceRepo) ListInRange(ctx context.Context, personnelID string, from, to time.Time) ([]absence.AbsenceRecord, error) {
	var result []absence.AbsenceRecord
	for _, record := range f.records {
		if record.PersonnelID != personnelID {
			continue
		}
		if record.Date.Before(from) || record.Date.After(to) {
			continue
		}
		result = append(result, record)
	}
	return result, nil
}

type fakeAdjustmentRepo struct {
	records []adjustment.SalaryAdjustment
}

func (f *fakeAdjustmentRepo) Create(ctx context.Context, adj adjustment.SalaryAdjustment) (adjustment.SalaryAdjustment, error) {
	f.records = append(f.records, adj)
	return adj, nil
}

func (f *fakeAdjustmentRepo) GetByID(ctx context.Context, id string) (adjustment.SalaryAdjustment, error) {
	return adjustment.SalaryAdjustment{}, adjustment.ErrAdjustmentNotFound
}

func (f *fakeAdjustmentRepo) ListByPersonnel(ctx context.Context, personnelID string) ([]adjustment.SalaryAdjustment, error) {
	return f.records, nil
}

func (f *fakeAdjustmentRepo) ListApprovedInRange(ctx context.Context, personnelID string, from, to time.Time) ([]adjustment.SalaryAdjustment, error) {
	var result []adjustment.SalaryAdjustment
	for _, adj := range f.records {
		if adj.PersonnelID != personnelID || adj.Status != adjustment.StatusApproved {
			continue
		}
		if adj.CreatedAt.Before(from) || !adj.CreatedAt.Before(to.AddDate(0, 0, 1)) {
			continue
		}
		result = append(result, adj)
	}
	return result, nil
}

func day(d int) time.Time {
	return time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC)
}

func completedShift(personnelID string, workDate time.Time, net, gross int64) attendance.Attendance {
	out := workDate.Add(18 * time.Hour)
	return attendance.Attendance{
		ID:            uuid.New().String(),
		PersonnelID:   personnelID,
		WorkDate:      workDate,
		CheckIn:       workDate.Add(9 * time.Hour),
		CheckOut:      &out,
		WorkedMinutes: 540,
		GrossEarnings: decimal.NewFromInt(gross),
		NetEarnings:   decimal.NewFromInt(net),
	}
}

func newTestFixture() (SummaryService, string, *fakeAttendanceRepo, *fakeAbsenceRepo, *fakeAdjustmentRepo) {
	personnelID := uuid.New().String()
	personnelRepo := &fakePersonnelRepo{byID: map[string]personnel.Personnel{
		personnelID: {ID: personnelID, IsActive: true},
	}}
	attendanceRepo := &fakeAttendanceRepo{}
	absenceRepo := &fakeAbsenceRepo{}
	adjustmentRepo := &fakeAdjustmentRepo{}

	svc := NewSummaryService(attendanceRepo, absenceRepo, adjustmentRepo, personnelRepo)
	return svc, personnelID, attendanceRepo, absenceRepo, adjustmentRepo
}

func TestRangeEmptyWindowIsZero(t *testing.T) {
	svc, personnelID, _, _, _ := newTestFixture()

	s, err := svc.Range(context.Background(), personnelID, day(1), day(31))
	require.NoError(t, err)

	assert.Equal(t, 0, s.WorkedDays)
	assert.True(t, s.NetEarnings.IsZero())
	assert.True(t, s.TotalDeductions.IsZero())
}

func TestRangeSumsAttendance(t *testing.T) {
	svc, personnelID, attendanceRepo, _, _ := newTestFixture()
	attendanceRepo.records = []attendance.Attendance{
		completedShift(personnelID, day(2), 1000, 1080),
		completedShift(personnelID, day(3), 1100, 1080),
	}

	s, err := svc.Range(context.Background(), personnelID, day(1), day(31))
	require.NoError(t, err)

	assert.Equal(t, 2, s.WorkedDays)
	assert.Equal(t, 1080, s.WorkedMinutes)
	assert.True(t, s.GrossEarnings.Equal(decimal.NewFromInt(2160)))
	assert.True(t, s.NetEarnings.Equal(decimal.NewFromInt(2100)))
}

func TestRangeExcludesOutsideAndOpenRecords(t *testing.T) {
	svc, personnelID, attendanceRepo, _, _ := newTestFixture()

	open := completedShift(personnelID, day(5), 1000, 1000)
	open.CheckOut = nil

	attendanceRepo.records = []attendance.Attendance{
		completedShift(personnelID, day(2), 1000, 1000),
		completedShift(personnelID, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), 999, 999),
		open,
	}

	s, err := svc.Range(context.Background(), personnelID, day(1), day(31))
	require.NoError(t, err)

	assert.Equal(t, 1, s.WorkedDays)
	assert.True(t, s.NetEarnings.Equal(decimal.NewFromInt(1000)))
}

func TestRangeSubtractsAbsencePenalties(t *testing.T) {
	svc, personnelID, attendanceRepo, absenceRepo, _ := newTestFixture()
	attendanceRepo.records = []attendance.Attendance{
		completedShift(personnelID, day(2), 2000, 2000),
	}
	absenceRepo.records = []absence.AbsenceRecord{
		{PersonnelID: personnelID, Date: day(4), Kind: absence.KindNoShow, PenaltyAmount: decimal.NewFromInt(1000)},
	}

	s, err := svc.Range(context.Background(), personnelID, day(1), day(31))
	require.NoError(t, err)

	assert.True(t, s.AbsencePenalty.Equal(decimal.NewFromInt(1000)))
	assert.True(t, s.NetEarnings.Equal(decimal.NewFromInt(1000)))
	assert.True(t, s.TotalDeductions.Equal(decimal.NewFromInt(1000)))
}

func TestRangeAppliesSignedAdjustments(t *testing.T) {
	svc, personnelID, attendanceRepo, _, adjustmentRepo := newTestFixture()
	attendanceRepo.records = []attendance.Attendance{
		completedShift(personnelID, day(2), 2000, 2000),
	}
	adjustmentRepo.records = []adjustment.SalaryAdjustment{
		{PersonnelID: personnelID, Kind: adjustment.KindBonus, Amount: decimal.NewFromInt(500), Status: adjustment.StatusApproved, CreatedAt: day(10)},
		{PersonnelID: personnelID, Kind: adjustment.KindPenalty, Amount: decimal.NewFromInt(200), Status: adjustment.StatusApproved, CreatedAt: day(11)},
		{PersonnelID: personnelID, Kind: adjustment.KindBonus, Amount: decimal.NewFromInt(9999), Status: adjustment.StatusPending, CreatedAt: day(12)},
	}

	s, err := svc.Range(context.Background(), personnelID, day(1), day(31))
	require.NoError(t, err)

	// 500 - 200, pending entry ignored
	assert.True(t, s.AdjustmentTotal.Equal(decimal.NewFromInt(300)), "adjustment total: %s", s.AdjustmentTotal)
	assert.True(t, s.NetEarnings.Equal(decimal.NewFromInt(2300)))
	assert.True(t, s.TotalDeductions.Equal(decimal.NewFromInt(200)))
}

func TestRangeRejectsReversedWindow(t *testing.T) {
	svc, personnelID, _, _, _ := newTestFixture()

	_, err := svc.Range(context.Background(), personnelID, day(10), day(1))
	assert.Error(t, err)
}

func TestRangeUnknownPersonnel(t *testing.T) {
	svc, _, _, _, _ := newTestFixture()

	_, err := svc.Range(context.Background(), uuid.New().String(), day(1), day(31))
	assert.ErrorIs(t, err, personnel.ErrPersonnelNotFound)
}

func TestCurrentMonthWindow(t *testing.T) {
	svc, personnelID, attendanceRepo, _, _ := newTestFixture()
	attendanceRepo.records = []attendance.Attendance{
		completedShift(personnelID, time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC), 500, 500),
		completedShift(personnelID, day(3), 1000, 1000),
	}

	s, err := svc.CurrentMonth(context.Background(), personnelID, time.Date(2026, 3, 15, 13, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	// February's record falls outside the month window.
	assert.Equal(t, 1, s.WorkedDays)
	assert.True(t, s.NetEarnings.Equal(decimal.NewFromInt(1000)))
}

func TestTrailing30Window(t *testing.T) {
	svc, personnelID, attendanceRepo, _, _ := newTestFixture()
	attendanceRepo.records = []attendance.Attendance{
		completedShift(personnelID, time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC), 500, 500),
		completedShift(personnelID, day(3), 1000, 1000),
	}

	s, err := svc.Trailing30(context.Background(), personnelID, time.Date(2026, 3, 15, 13, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	// Window is Feb 14 through Mar 15 inclusive, both records qualify.
	assert.Equal(t, 2, s.WorkedDays)
	assert.True(t, s.NetEarnings.Equal(decimal.NewFromInt(1500)))
}
